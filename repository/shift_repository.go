package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"coffeeShopManagement/models"
)

// ShiftRepository handles the shifts table.
// One shift per employee per date is enforced by a unique index; violations surface as ErrDuplicate.
type ShiftRepository struct {
	db *sql.DB
}

func NewShiftRepository(db *sql.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

const shiftColumns = `id, employee_id, shift_date, shift_start, shift_end, hourly_rate, shift_salary`

func scanShift(row interface{ Scan(...any) error }) (*models.Shift, error) {
	var s models.Shift
	if err := row.Scan(&s.ID, &s.EmployeeID, &s.Date, &s.Start, &s.End, &s.HourlyRate, &s.Salary); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a shift and returns it with its generated ID.
func (r *ShiftRepository) Create(ctx context.Context, s *models.Shift) (*models.Shift, error) {
	if s == nil {
		return nil, errors.New("shift is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO shifts (employee_id, shift_date, shift_start, shift_end, hourly_rate, shift_salary) VALUES (?,?,?,?,?,?)`,
		s.EmployeeID, s.Date, s.Start, s.End, s.HourlyRate, s.Salary)
	if err != nil {
		return nil, normalize(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *s
	out.ID = id
	return &out, nil
}

func (r *ShiftRepository) GetByID(ctx context.Context, id int64) (*models.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	s, err := scanShift(r.db.QueryRowContext(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// GetByEmployeeAndDate returns the employee's shift on date, nil when there is none.
func (r *ShiftRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (*models.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	s, err := scanShift(r.db.QueryRowContext(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE employee_id = ? AND shift_date = ?`, employeeID, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// ListByEmployee returns the employee's shifts ordered by date.
// A non-empty month (YYYY-MM) restricts the result to that month.
func (r *ShiftRepository) ListByEmployee(ctx context.Context, employeeID int64, month string) ([]models.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var (
		rows *sql.Rows
		err  error
	)
	if month != "" {
		rows, err = r.db.QueryContext(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE employee_id = ? AND shift_date LIKE ? ORDER BY shift_date, id`, employeeID, month+"-%")
	} else {
		rows, err = r.db.QueryContext(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE employee_id = ? ORDER BY shift_date, id`, employeeID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns every shift joined with its employee, newest date first.
func (r *ShiftRepository) ListAll(ctx context.Context) ([]models.ShiftRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, `
SELECT s.id, s.employee_id, s.shift_date, s.shift_start, s.shift_end, s.hourly_rate, s.shift_salary,
       e.first_name, e.last_name, e.position
FROM shifts s
JOIN employees e ON s.employee_id = e.id
ORDER BY s.shift_date DESC, s.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.ShiftRow
	for rows.Next() {
		var sr models.ShiftRow
		if err := rows.Scan(&sr.ID, &sr.EmployeeID, &sr.Date, &sr.Start, &sr.End, &sr.HourlyRate, &sr.Salary,
			&sr.FirstName, &sr.LastName, &sr.Position); err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites employee, times, rate and salary of an existing shift. The date is kept.
func (r *ShiftRepository) Update(ctx context.Context, s *models.Shift) error {
	if s == nil {
		return errors.New("shift is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE shifts SET employee_id = ?, shift_start = ?, shift_end = ?, hourly_rate = ?, shift_salary = ? WHERE id = ?`,
		s.EmployeeID, s.Start, s.End, s.HourlyRate, s.Salary, s.ID)
	if err != nil {
		return normalize(err)
	}
	if err := expectOneRow(res); err != nil {
		return fmt.Errorf("update shift %d: %w", s.ID, err)
	}
	return nil
}

func (r *ShiftRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}
