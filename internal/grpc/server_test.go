package grpcserver

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	shopv1 "coffeeShopManagement/api/shop/v1"
	"coffeeShopManagement/internal/auth"
	"coffeeShopManagement/internal/config"
	"coffeeShopManagement/internal/testutil"
)

func TestServer_RoundTripOverBufconn(t *testing.T) {
	deps, d := newTestDeps(t, "serverroundtrip")
	anna := testutil.SeedEmployee(t, d, "anna", "staff")
	hash, err := auth.HashPassword("latte")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := deps.Employees.UpdatePassword(context.Background(), anna, hash); err != nil {
		t.Fatalf("set password: %v", err)
	}

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = testSecret
	cfg.Auth.TokenTTL = time.Hour
	srv := NewServer(cfg, deps)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hc, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil || hc.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("health = %v, %v", hc, err)
	}

	authc := shopv1.NewAuthServiceClient(conn)
	if _, err := authc.Login(ctx, &shopv1.LoginRequest{Login: "anna", Password: "wrong"}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated for bad password, got %v", err)
	}
	login, err := authc.Login(ctx, &shopv1.LoginRequest{Login: "anna", Password: "latte"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.Employee == nil || login.Employee.ID != anna || login.Token == "" {
		t.Fatalf("login = %+v", login)
	}

	staff := shopv1.NewStaffServiceClient(conn)
	req := &shopv1.ScheduleShiftRequest{EmployeeID: anna, Date: "2024-05-01", Start: "09:00", End: "11:00", HourlyRate: "150"}
	if _, err := staff.ScheduleShift(ctx, req); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated without token, got %v", err)
	}

	actx := metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+login.Token)
	created, err := staff.ScheduleShift(actx, req)
	if err != nil {
		t.Fatalf("ScheduleShift: %v", err)
	}
	if created.Shift.Salary.String() != "300" {
		t.Fatalf("salary = %s", created.Shift.Salary)
	}
	if _, err := staff.ScheduleShift(actx, req); status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
}
