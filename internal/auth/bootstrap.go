package auth

import (
	"context"
	"fmt"
	"strings"

	"coffeeShopManagement/models"
	"coffeeShopManagement/repository"
)

// Bootstrap creates the first manager when the employees table is empty.
// It returns nil, nil when there is nothing to do.
func Bootstrap(ctx context.Context, employees repository.EmployeeRepositoryI, login, password string) (*models.Employee, error) {
	login = strings.TrimSpace(login)
	password = strings.TrimSpace(password)
	if login == "" || password == "" {
		return nil, nil
	}
	n, err := employees.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count employees: %w", err)
	}
	if n > 0 {
		return nil, nil
	}
	if len([]rune(password)) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return employees.Create(ctx, &models.Employee{
		FirstName:    login,
		Login:        login,
		PasswordHash: hash,
		Status:       models.EmployeeStatusActive,
		Position:     "manager",
		Role:         models.EmployeeRoleManager,
	})
}
