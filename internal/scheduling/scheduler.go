package scheduling

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"coffeeShopManagement/internal/payroll"
	"coffeeShopManagement/models"
	"coffeeShopManagement/repository"
)

var (
	// ErrShiftExists is returned when the employee already works on that date.
	ErrShiftExists = errors.New("employee already has a shift on this date")
	// ErrEmployeeNotFound is returned when the referenced employee does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrShiftNotFound is returned when editing or deleting a missing shift.
	ErrShiftNotFound = errors.New("shift not found")
)

// Scheduler owns the shift rules: one shift per employee per date, end after
// start, salary = round(rate * hours, 2). Shifts of different employees on the
// same date never conflict.
type Scheduler struct {
	Employees repository.EmployeeRepositoryI
	Shifts    repository.ShiftRepositoryI
}

func New(employees repository.EmployeeRepositoryI, shifts repository.ShiftRepositoryI) *Scheduler {
	return &Scheduler{Employees: employees, Shifts: shifts}
}

// Request describes a shift to create or edit. Date is ignored by Update.
type Request struct {
	EmployeeID int64
	Date       string
	Start      string
	End        string
	HourlyRate decimal.Decimal
}

func (s *Scheduler) requireEmployee(ctx context.Context, id int64) error {
	e, err := s.Employees.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get employee: %w", err)
	}
	if e == nil {
		return ErrEmployeeNotFound
	}
	return nil
}

// Schedule creates a new shift. The duplicate check runs before the insert;
// the unique index catches the race where two callers pass it together.
func (s *Scheduler) Schedule(ctx context.Context, req Request) (*models.Shift, error) {
	date, err := payroll.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	iv, err := payroll.Compute(req.Start, req.End, req.HourlyRate)
	if err != nil {
		return nil, err
	}
	if err := s.requireEmployee(ctx, req.EmployeeID); err != nil {
		return nil, err
	}
	existing, err := s.Shifts.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return nil, fmt.Errorf("check existing shift: %w", err)
	}
	if existing != nil {
		return nil, ErrShiftExists
	}
	created, err := s.Shifts.Create(ctx, &models.Shift{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Start:      iv.Start,
		End:        iv.End,
		HourlyRate: iv.Rate,
		Salary:     iv.Salary,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrShiftExists
		}
		return nil, fmt.Errorf("create shift: %w", err)
	}
	return created, nil
}

// Update edits an existing shift's employee, times and rate. The date is kept.
func (s *Scheduler) Update(ctx context.Context, id int64, req Request) (*models.Shift, error) {
	current, err := s.Shifts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shift: %w", err)
	}
	if current == nil {
		return nil, ErrShiftNotFound
	}
	iv, err := payroll.Compute(req.Start, req.End, req.HourlyRate)
	if err != nil {
		return nil, err
	}
	employeeID := req.EmployeeID
	if employeeID == 0 {
		employeeID = current.EmployeeID
	}
	if employeeID != current.EmployeeID {
		if err := s.requireEmployee(ctx, employeeID); err != nil {
			return nil, err
		}
		other, err := s.Shifts.GetByEmployeeAndDate(ctx, employeeID, current.Date)
		if err != nil {
			return nil, fmt.Errorf("check existing shift: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, ErrShiftExists
		}
	}
	updated := *current
	updated.EmployeeID = employeeID
	updated.Start = iv.Start
	updated.End = iv.End
	updated.HourlyRate = iv.Rate
	updated.Salary = iv.Salary
	if err := s.Shifts.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrShiftExists
		}
		return nil, fmt.Errorf("update shift: %w", err)
	}
	return &updated, nil
}

// Delete removes a shift.
func (s *Scheduler) Delete(ctx context.Context, id int64) error {
	current, err := s.Shifts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get shift: %w", err)
	}
	if current == nil {
		return ErrShiftNotFound
	}
	return s.Shifts.Delete(ctx, id)
}

// History is an employee's shift list with totals.
type History struct {
	Shifts  []models.Shift
	Summary payroll.Summary
}

// EmployeeHistory lists an employee's shifts (optionally for one YYYY-MM month) and totals salaries.
func (s *Scheduler) EmployeeHistory(ctx context.Context, employeeID int64, month string) (*History, error) {
	m, err := payroll.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	shifts, err := s.Shifts.ListByEmployee(ctx, employeeID, m)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	salaries := make([]decimal.Decimal, 0, len(shifts))
	for _, sh := range shifts {
		salaries = append(salaries, sh.Salary)
	}
	return &History{Shifts: shifts, Summary: payroll.Summarize(salaries)}, nil
}

// IsValidation reports whether err comes from rejected input rather than storage.
func IsValidation(err error) bool {
	return errors.Is(err, payroll.ErrInvalidInterval) || errors.Is(err, payroll.ErrNegativeRate) || isParseError(err)
}

func isParseError(err error) bool {
	var pe *payroll.ParseError
	return errors.As(err, &pe)
}
