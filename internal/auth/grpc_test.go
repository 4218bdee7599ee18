package auth

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"coffeeShopManagement/internal/testutil"
	"coffeeShopManagement/models"
	"coffeeShopManagement/repository"
)

func TestRequireManager_WithDBRoleCheck(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "authmanager")
	employees := repository.NewEmployeeRepository(d)
	id := testutil.SeedEmployee(t, d, "anna", "staff")
	ctx := context.Background()

	// Forged principal claims manager but the row says staff.
	pctx := WithPrincipal(ctx, &Principal{EmployeeID: id, Login: "anna", Role: "manager"})
	if _, err := RequireManager(pctx, employees); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied for staff row, got %v", err)
	}

	if err := employees.UpdateRoleByLogin(ctx, "anna", models.EmployeeRoleManager); err != nil {
		t.Fatalf("update role: %v", err)
	}
	if _, err := RequireManager(pctx, employees); err != nil {
		t.Fatalf("RequireManager real manager: %v", err)
	}

	// Staff claim is rejected before touching the DB.
	sctx := WithPrincipal(ctx, &Principal{EmployeeID: id, Login: "anna", Role: "staff"})
	if _, err := RequireManager(sctx, employees); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied for staff claim, got %v", err)
	}
}

func TestRequireActive(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "authactive")
	employees := repository.NewEmployeeRepository(d)
	id := testutil.SeedEmployee(t, d, "boris", "staff")
	ctx := WithPrincipal(context.Background(), &Principal{EmployeeID: id, Login: "boris", Role: "staff"})

	if _, err := RequireActive(ctx, employees); err != nil {
		t.Fatalf("RequireActive: %v", err)
	}
	if err := employees.UpdateStatus(context.Background(), id, models.EmployeeStatusInactive); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := RequireActive(ctx, employees); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied for inactive employee, got %v", err)
	}
	if _, err := RequireActive(context.Background(), employees); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated without principal, got %v", err)
	}
}

func TestUnaryAuthInterceptor(t *testing.T) {
	secret := "s3cr3t"
	interceptor := NewUnaryAuthInterceptor(secret, "/health")

	// Allowlisted path: no header, handler executes without a principal.
	hCalled := false
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/health"}, func(ctx context.Context, req any) (any, error) {
		hCalled = true
		if p, ok := FromContext(ctx); ok && p != nil {
			t.Fatalf("expected no principal on allowlisted path")
		}
		return 123, nil
	})
	if err != nil || !hCalled {
		t.Fatalf("allowlisted handler err=%v called=%v", err, hCalled)
	}

	// Authenticated path: principal injected.
	tok := testutil.GenerateJWTHS256(t, secret, 4, "bob", "staff")
	ctx := testutil.CtxWithBearer(context.Background(), tok)
	_, err = interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Op"}, func(ctx context.Context, req any) (any, error) {
		p, ok := FromContext(ctx)
		if !ok || p == nil || p.Login != "bob" || p.EmployeeID != 4 {
			t.Fatalf("principal not injected: %+v ok=%v", p, ok)
		}
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor auth path: %v", err)
	}

	// No token on a protected method.
	_, err = interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Op"}, func(ctx context.Context, req any) (any, error) {
		t.Fatalf("handler must not run")
		return nil, nil
	})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
}
