package grpcserver

import (
	"context"
	"log"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	shopv1 "coffeeShopManagement/api/shop/v1"
	"coffeeShopManagement/internal/auth"
	"coffeeShopManagement/internal/config"
	"coffeeShopManagement/internal/scheduling"
	"coffeeShopManagement/repository"
)

const healthCheckMethod = "/grpc.health.v1.Health/Check"

// Deps are the repositories shared by every service.
type Deps struct {
	Employees  repository.EmployeeRepositoryI
	Products   repository.ProductRepositoryI
	Catalog    repository.CatalogRepositoryI
	Shifts     repository.ShiftRepositoryI
	FixedCosts repository.FixedCostsRepositoryI
}

// NewServer builds a gRPC server with all coffeeshop.v1 services and the
// standard health service registered. Login, ChangePassword and the health
// check are reachable without a token.
func NewServer(cfg *config.Config, deps Deps) *grpc.Server {
	if cfg == nil {
		panic("config is required")
	}
	authn := &auth.Authenticator{Employees: deps.Employees, Secret: cfg.Auth.JWTSecret, TTL: cfg.Auth.TokenTTL}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		loggingInterceptor,
		auth.NewUnaryAuthInterceptor(cfg.Auth.JWTSecret,
			healthCheckMethod,
			shopv1.AuthServiceMethod("Login"),
			shopv1.AuthServiceMethod("ChangePassword"),
		),
	))

	shopv1.RegisterAuthServiceServer(srv, &AuthServer{Auth: authn})
	shopv1.RegisterCatalogServiceServer(srv, &CatalogServer{Employees: deps.Employees, Products: deps.Products, Catalog: deps.Catalog})
	shopv1.RegisterCalculatorServiceServer(srv, &CalculatorServer{Employees: deps.Employees, Products: deps.Products, FixedCosts: deps.FixedCosts})
	shopv1.RegisterStaffServiceServer(srv, &StaffServer{
		Employees: deps.Employees,
		Shifts:    deps.Shifts,
		Scheduler: scheduling.New(deps.Employees, deps.Shifts),
	})
	shopv1.RegisterSettingsServiceServer(srv, &SettingsServer{
		Employees:  deps.Employees,
		Products:   deps.Products,
		Shifts:     deps.Shifts,
		FixedCosts: deps.FixedCosts,
		Secret:     cfg.Auth.JWTSecret,
		TTL:        cfg.Auth.TokenTTL,
	})

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return srv
}

// StartGRPC starts the gRPC server on the configured address and returns a shutdown function.
func StartGRPC(cfg *config.Config, deps Deps) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}

	addr := cfg.GRPC.Address
	if addr == "" {
		addr = ":50051"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	// Plaintext; terminate TLS in front of the service when exposed.
	srv := NewServer(cfg, deps)

	go func() {
		if err := srv.Serve(lis); err != nil {
			log.Printf("grpc serve: %v", err)
		}
	}()

	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() { srv.GracefulStop(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			srv.Stop()
			return ctx.Err()
		}
	}, nil
}

func loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	log.Printf("grpc %s %s %s", info.FullMethod, status.Code(err), time.Since(start).Round(time.Microsecond))
	return resp, err
}
