package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffeeShopManagement/internal/auth"
	"coffeeShopManagement/internal/loadtest"
)

func main() {
	baseURL := flag.String("url", "http://127.0.0.1:5000", "Base URL of the shift intake server")
	users := flag.Int("users", 10, "Number of concurrent users")
	requests := flag.Int("n", 100, "Total number of requests")
	maxEmployee := flag.Int("max-employee", 1000, "Upper bound for random employee ids")
	spread := flag.Int("spread-days", 0, "Spread shift dates over this many past days")
	minWait := flag.Duration("min-wait", time.Second, "Minimum think time between a user's requests")
	maxWait := flag.Duration("max-wait", 3*time.Second, "Maximum think time between a user's requests")
	timeout := flag.Duration("timeout", 10*time.Second, "Per-request timeout")
	token := flag.String("token", "", "Bearer token to send")
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "Mint a token with this secret when -token is empty")
	employeeID := flag.Int64("as-employee", 1, "Employee id placed in a minted token")
	login := flag.String("as-login", "loadtest", "Login placed in a minted token")
	csvPath := flag.String("csv", "", "Write per-request results to this CSV file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	tok := *token
	if tok == "" && *secret != "" {
		var err error
		tok, err = auth.Issue(*secret, auth.Principal{EmployeeID: *employeeID, Login: *login, Role: "staff"}, time.Hour)
		if err != nil {
			log.Fatalf("mint token: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, err := loadtest.Run(ctx, loadtest.Options{
		BaseURL:       *baseURL,
		Token:         tok,
		Users:         *users,
		Requests:      *requests,
		MaxEmployeeID: *maxEmployee,
		SpreadDays:    *spread,
		MinWait:       *minWait,
		MaxWait:       *maxWait,
		Timeout:       *timeout,
		Seed:          *seed,
	})
	if err != nil {
		log.Fatalf("load test: %v", err)
	}
	fmt.Print(rep.Summary())

	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			log.Fatalf("create csv: %v", err)
		}
		defer f.Close()
		if err := rep.WriteCSV(f); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		fmt.Printf("Results saved to %s\n", *csvPath)
	}
}
