package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffeeShopManagement/internal/auth"
	"coffeeShopManagement/internal/config"
	"coffeeShopManagement/internal/db"
	grpcserver "coffeeShopManagement/internal/grpc"
	"coffeeShopManagement/internal/httpapi"
	"coffeeShopManagement/internal/scheduling"
	"coffeeShopManagement/repository"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithDefaults()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Printf("Configuration loaded: %v", cfg)

	// Open DB
	d, err := db.OpenDriver(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Printf("close db: %v", err)
		}
	}()

	deps := grpcserver.Deps{
		Employees:  repository.NewEmployeeRepository(d),
		Products:   repository.NewProductRepository(d),
		Catalog:    repository.NewCatalogRepository(d),
		Shifts:     repository.NewShiftRepository(d),
		FixedCosts: repository.NewFixedCostsRepository(d),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	mgr, err := auth.Bootstrap(ctx, deps.Employees, cfg.Bootstrap.Login, cfg.Bootstrap.Password)
	cancel()
	if err != nil {
		log.Fatalf("bootstrap manager: %v", err)
	}
	if mgr != nil {
		log.Printf("created initial manager %q", mgr.Login)
	}

	// Start gRPC
	stopGRPC, err := grpcserver.StartGRPC(cfg, deps)
	if err != nil {
		log.Fatalf("start grpc: %v", err)
	}
	log.Printf("gRPC server listening on %s", cfg.GRPC.Address)

	// Start HTTP intake
	stopHTTP, err := httpapi.Start(cfg, scheduling.New(deps.Employees, deps.Shifts))
	if err != nil {
		log.Fatalf("start http: %v", err)
	}
	log.Printf("HTTP server listening on %s (auth required: %t)", cfg.HTTP.Address, cfg.HTTP.RequireAuth)

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := stopHTTP(ctx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	if err := stopGRPC(ctx); err != nil {
		log.Printf("grpc shutdown error: %v", err)
	}
}
