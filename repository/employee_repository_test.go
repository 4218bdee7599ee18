package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"coffeeShopManagement/internal/db"
	"coffeeShopManagement/models"
)

func openRepoDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestEmployeeRepository_CRUDAndQueries(t *testing.T) {
	repo := NewEmployeeRepository(openRepoDB(t, "emprepo"))
	ctx := context.Background()

	birth := "1995-04-12"
	e, err := repo.Create(ctx, &models.Employee{FirstName: "Anna", LastName: "Ivanova", Login: "anna", PasswordHash: "h", BirthDate: &birth, Position: "barista"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.ID == 0 || e.Status != models.EmployeeStatusActive || e.Role != models.EmployeeRoleStaff {
		t.Fatalf("unexpected created employee: %+v", e)
	}

	if _, err := repo.Create(ctx, &models.Employee{FirstName: "Other", Login: "anna", PasswordHash: "h"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate login: want ErrDuplicate, got %v", err)
	}

	g, err := repo.GetByLogin(ctx, "anna")
	if err != nil || g == nil || g.ID != e.ID || g.BirthDate == nil || *g.BirthDate != birth {
		t.Fatalf("get by login: %v %+v", err, g)
	}
	if missing, err := repo.GetByID(ctx, 9999); err != nil || missing != nil {
		t.Fatalf("missing employee: %+v err=%v", missing, err)
	}

	g.FirstName = "Anya"
	g.Position = "senior barista"
	if err := repo.UpdateProfile(ctx, g); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if err := repo.UpdatePassword(ctx, e.ID, "h2"); err != nil {
		t.Fatalf("update password: %v", err)
	}
	if err := repo.UpdatePhoto(ctx, e.ID, []byte{1, 2, 3}); err != nil {
		t.Fatalf("update photo: %v", err)
	}
	if err := repo.UpdateRoleByLogin(ctx, "anna", models.EmployeeRoleManager); err != nil {
		t.Fatalf("update role: %v", err)
	}
	g2, _ := repo.GetByID(ctx, e.ID)
	if g2.FirstName != "Anya" || g2.PasswordHash != "h2" || len(g2.Photo) != 3 || g2.Role != models.EmployeeRoleManager {
		t.Fatalf("updates not applied: %+v", g2)
	}

	if err := repo.UpdateStatus(ctx, 9999, models.EmployeeStatusInactive); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("update missing: want ErrNoRows, got %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if list[0].Photo != nil {
		t.Fatalf("list should not load photos")
	}
	n, err := repo.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("count=%d err=%v", n, err)
	}
}
