package grpcserver

import (
	"context"
	"database/sql"
	"testing"

	"coffeeShopManagement/internal/auth"
	"coffeeShopManagement/internal/scheduling"
	"coffeeShopManagement/internal/testutil"
	"coffeeShopManagement/repository"
)

// newTestDeps opens an in-memory sqlite DB and returns the repositories over it.
func newTestDeps(t *testing.T, name string) (Deps, *sql.DB) {
	t.Helper()
	d := testutil.OpenInMemoryDB(t, name)
	return Deps{
		Employees:  repository.NewEmployeeRepository(d),
		Products:   repository.NewProductRepository(d),
		Catalog:    repository.NewCatalogRepository(d),
		Shifts:     repository.NewShiftRepository(d),
		FixedCosts: repository.NewFixedCostsRepository(d),
	}, d
}

// newPrincipalCtx returns a context with the given principal injected.
func newPrincipalCtx(id int64, login, role string) context.Context {
	return auth.WithPrincipal(context.Background(), &auth.Principal{EmployeeID: id, Login: login, Role: role})
}

func newStaffServer(deps Deps) *StaffServer {
	return &StaffServer{Employees: deps.Employees, Shifts: deps.Shifts, Scheduler: scheduling.New(deps.Employees, deps.Shifts)}
}
