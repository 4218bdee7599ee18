package testutil

import (
	"context"
	"database/sql"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/metadata"

	"coffeeShopManagement/internal/db"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations.
// The DB is closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	// Shared cache so every pooled connection sees the same database.
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// SeedEmployee inserts an employee row with a placeholder password hash and returns its id.
func SeedEmployee(t *testing.T, d *sql.DB, login, role string) int64 {
	t.Helper()
	res, err := d.Exec(`INSERT INTO employees (first_name, last_name, login, password_hash, status, position, role) VALUES (?,?,?,?,?,?,?)`,
		"Test", login, login, "x", "active", "barista", role)
	if err != nil {
		t.Fatalf("seed employee %s: %v", login, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("seed employee id: %v", err)
	}
	return id
}

// SeedCategory inserts a category and returns its id.
func SeedCategory(t *testing.T, d *sql.DB, name string) int64 {
	t.Helper()
	res, err := d.Exec(`INSERT INTO categories (name) VALUES (?)`, name)
	if err != nil {
		t.Fatalf("seed category %s: %v", name, err)
	}
	id, _ := res.LastInsertId()
	return id
}

// GenerateJWTHS256 returns a signed JWT string with the claims the app reads.
func GenerateJWTHS256(t *testing.T, secret string, employeeID int64, login, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  login,
		"eid":  employeeID,
		"role": role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// CtxWithBearer returns a context containing gRPC metadata Authorization header with the given token.
func CtxWithBearer(ctx context.Context, token string) context.Context {
	md := metadata.Pairs("authorization", "Bearer "+token)
	return metadata.NewIncomingContext(ctx, md)
}
