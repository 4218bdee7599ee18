package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"coffeeShopManagement/models"
	"coffeeShopManagement/repository"
)

// MinPasswordLength is the shortest password accepted on change.
const MinPasswordLength = 4

var (
	ErrMissingCredentials = errors.New("login and password are required")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInactive           = errors.New("employee is inactive")
	ErrWrongOldPassword   = errors.New("old password is incorrect")
	ErrPasswordMismatch   = errors.New("new passwords do not match")
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
)

// HashPassword returns a bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword compares a bcrypt hash with a candidate password.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Authenticator checks credentials against the employees table and issues tokens.
type Authenticator struct {
	Employees repository.EmployeeRepositoryI
	Secret    string
	TTL       time.Duration
}

// Login verifies login and password and returns a signed token with the employee.
// Unknown logins and wrong passwords produce the same error.
func (a *Authenticator) Login(ctx context.Context, login, password string) (string, *models.Employee, error) {
	login = strings.TrimSpace(login)
	password = strings.TrimSpace(password)
	if login == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}
	e, err := a.Employees.GetByLogin(ctx, login)
	if err != nil {
		return "", nil, fmt.Errorf("get employee: %w", err)
	}
	if e == nil || !CheckPassword(e.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}
	if e.Status == models.EmployeeStatusInactive {
		return "", nil, ErrInactive
	}
	tok, err := Issue(a.Secret, Principal{EmployeeID: e.ID, Login: e.Login, Role: string(e.Role)}, a.TTL)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return tok, e, nil
}

// ChangePassword replaces the password of login after checking the old one.
func (a *Authenticator) ChangePassword(ctx context.Context, login, oldPassword, newPassword, confirm string) error {
	login = strings.TrimSpace(login)
	if login == "" {
		return ErrMissingCredentials
	}
	e, err := a.Employees.GetByLogin(ctx, login)
	if err != nil {
		return fmt.Errorf("get employee: %w", err)
	}
	if e == nil {
		return ErrInvalidCredentials
	}
	if !CheckPassword(e.PasswordHash, strings.TrimSpace(oldPassword)) {
		return ErrWrongOldPassword
	}
	newPassword = strings.TrimSpace(newPassword)
	if newPassword != strings.TrimSpace(confirm) {
		return ErrPasswordMismatch
	}
	if len([]rune(newPassword)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return a.Employees.UpdatePassword(ctx, e.ID, hash)
}
