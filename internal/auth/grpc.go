package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"coffeeShopManagement/models"
	"coffeeShopManagement/repository"
)

// NewUnaryAuthInterceptor returns a gRPC unary interceptor that extracts and validates
// a Bearer JWT from incoming metadata and injects the Principal into the context.
// Methods listed in allowUnauthenticated will bypass authentication (e.g., login, health checks).
func NewUnaryAuthInterceptor(secret string, allowUnauthenticated ...string) grpc.UnaryServerInterceptor {
	allow := make(map[string]struct{}, len(allowUnauthenticated))
	for _, m := range allowUnauthenticated {
		allow[strings.TrimSpace(m)] = struct{}{}
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := allow[info.FullMethod]; ok {
			return handler(ctx, req)
		}
		p, err := ParseFromMD(ctx, secret)
		if err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "auth error: %v", err)
		}
		return handler(WithPrincipal(ctx, p), req)
	}
}

// RequirePrincipal ensures a principal is present in context.
func RequirePrincipal(ctx context.Context) (*Principal, error) {
	p, ok := FromContext(ctx)
	if !ok || p == nil {
		return nil, status.Error(codes.Unauthenticated, "missing principal")
	}
	return p, nil
}

// RequireActive ensures the caller still exists and is not deactivated.
// Tokens outlive status changes, so the row is consulted on each call.
func RequireActive(ctx context.Context, employees repository.EmployeeRepositoryI) (*models.Employee, error) {
	p, err := RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if employees == nil {
		return nil, status.Error(codes.Internal, "employees repository not configured")
	}
	e, err := employees.GetByID(ctx, p.EmployeeID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get employee: %v", err)
	}
	if e == nil || e.Login != p.Login {
		return nil, status.Error(codes.Unauthenticated, "employee no longer exists")
	}
	if e.Status == models.EmployeeStatusInactive {
		return nil, status.Error(codes.PermissionDenied, "employee is inactive")
	}
	return e, nil
}

// RequireManager ensures the caller is a manager principal AND that the underlying
// employee row still has role 'manager'. This prevents a stale or forged role claim.
func RequireManager(ctx context.Context, employees repository.EmployeeRepositoryI) (*models.Employee, error) {
	p, err := RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if p.Role != string(models.EmployeeRoleManager) {
		return nil, status.Error(codes.PermissionDenied, "only a manager can perform this action")
	}
	e, err := RequireActive(ctx, employees)
	if err != nil {
		return nil, err
	}
	if e.Role != models.EmployeeRoleManager {
		return nil, status.Error(codes.PermissionDenied, "only a manager can perform this action")
	}
	return e, nil
}
