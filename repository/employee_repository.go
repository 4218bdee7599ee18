package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"coffeeShopManagement/models"
)

type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

const employeeColumns = `id, first_name, last_name, login, password_hash, birth_date, status, position, role, photo`

func scanEmployee(row interface{ Scan(...any) error }) (*models.Employee, error) {
	var e models.Employee
	var birth sql.NullString
	var status, role string
	if err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Login, &e.PasswordHash, &birth, &status, &e.Position, &role, &e.Photo); err != nil {
		return nil, err
	}
	if birth.Valid && birth.String != "" {
		v := birth.String
		e.BirthDate = &v
	}
	e.Status = models.EmployeeStatus(status)
	e.Role = models.EmployeeRole(role)
	return &e, nil
}

// Create inserts a new employee. Status defaults to active and role to staff.
// A login that is already taken yields ErrDuplicate.
func (r *EmployeeRepository) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	if e == nil {
		return nil, errors.New("employee is nil")
	}
	if e.Status == "" {
		e.Status = models.EmployeeStatusActive
	}
	if e.Role == "" {
		e.Role = models.EmployeeRoleStaff
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO employees (first_name, last_name, login, password_hash, birth_date, status, position, role, photo) VALUES (?,?,?,?,?,?,?,?,?)`,
		e.FirstName, e.LastName, e.Login, e.PasswordHash, e.BirthDate, string(e.Status), e.Position, string(e.Role), e.Photo)
	if err != nil {
		return nil, normalize(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *e
	out.ID = id
	return &out, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	e, err := scanEmployee(r.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *EmployeeRepository) GetByLogin(ctx context.Context, login string) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	e, err := scanEmployee(r.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE login = ?`, login))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// List returns every employee ordered by id. Photos are not loaded.
func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, first_name, last_name, login, password_hash, birth_date, status, position, role, NULL FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of employees; used to decide whether to bootstrap a manager.
func (r *EmployeeRepository) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n)
	return n, err
}

// UpdateProfile writes the editable profile fields (names, login, birth date, position).
func (r *EmployeeRepository) UpdateProfile(ctx context.Context, e *models.Employee) error {
	if e == nil {
		return errors.New("employee is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE employees SET first_name = ?, last_name = ?, login = ?, birth_date = ?, position = ? WHERE id = ?`,
		e.FirstName, e.LastName, e.Login, e.BirthDate, e.Position, e.ID)
	if err != nil {
		return normalize(err)
	}
	return expectOneRow(res)
}

func (r *EmployeeRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE employees SET password_hash = ? WHERE id = ?`, hash, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func (r *EmployeeRepository) UpdatePhoto(ctx context.Context, id int64, photo []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE employees SET photo = ? WHERE id = ?`, photo, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

// UpdateRoleByLogin sets the role for the given login.
// Intended for administrative flows and tests.
func (r *EmployeeRepository) UpdateRoleByLogin(ctx context.Context, login string, role models.EmployeeRole) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, `UPDATE employees SET role = ? WHERE login = ?`, string(role), login)
	return err
}

// UpdateStatus marks an employee active or inactive.
func (r *EmployeeRepository) UpdateStatus(ctx context.Context, id int64, status models.EmployeeStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE employees SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

// expectOneRow turns "no row matched" into sql.ErrNoRows.
// The mysql connection is opened with clientFoundRows so unchanged rows still count.
func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
