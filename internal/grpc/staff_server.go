package grpcserver

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	shopv1 "coffeeShopManagement/api/shop/v1"
	"coffeeShopManagement/internal/auth"
	"coffeeShopManagement/internal/payroll"
	"coffeeShopManagement/internal/profit"
	"coffeeShopManagement/internal/scheduling"
	"coffeeShopManagement/models"
	"coffeeShopManagement/repository"
)

// StaffServer implements coffeeshop.v1.StaffService.
type StaffServer struct {
	Employees repository.EmployeeRepositoryI
	Shifts    repository.ShiftRepositoryI
	Scheduler *scheduling.Scheduler
}

func (s *StaffServer) ListEmployees(ctx context.Context, _ *shopv1.Empty) (*shopv1.ListEmployeesResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	list, err := s.Employees.List(ctx)
	if err != nil {
		return nil, toStatus("list employees", err)
	}
	return &shopv1.ListEmployeesResponse{Employees: list}, nil
}

// CreateEmployee hires a new employee. Managers only.
func (s *StaffServer) CreateEmployee(ctx context.Context, req *shopv1.CreateEmployeeRequest) (*shopv1.EmployeeResponse, error) {
	if _, err := auth.RequireManager(ctx, s.Employees); err != nil {
		return nil, err
	}
	e, err := NewEmployee(req)
	if err != nil {
		return nil, err
	}
	created, err := s.Employees.Create(ctx, e)
	if err != nil {
		return nil, toStatus("create employee", err)
	}
	return &shopv1.EmployeeResponse{Employee: created}, nil
}

// SetEmployeeStatus activates or deactivates an employee. Managers only, and a
// manager cannot deactivate their own account.
func (s *StaffServer) SetEmployeeStatus(ctx context.Context, req *shopv1.SetEmployeeStatusRequest) (*shopv1.EmployeeResponse, error) {
	caller, err := auth.RequireManager(ctx, s.Employees)
	if err != nil {
		return nil, err
	}
	st, err := ParseEmployeeStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if req.EmployeeID == caller.ID && st == models.EmployeeStatusInactive {
		return nil, status.Error(codes.FailedPrecondition, "cannot deactivate your own account")
	}
	if err := s.Employees.UpdateStatus(ctx, req.EmployeeID, st); err != nil {
		return nil, toStatus("set employee status", err)
	}
	e, err := s.Employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, toStatus("get employee", err)
	}
	if e == nil {
		return nil, status.Error(codes.NotFound, "employee not found")
	}
	return &shopv1.EmployeeResponse{Employee: e}, nil
}

// ParseEmployeeStatus accepts "active" or "inactive", case-insensitively.
func ParseEmployeeStatus(s string) (models.EmployeeStatus, error) {
	switch st := models.EmployeeStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case models.EmployeeStatusActive, models.EmployeeStatusInactive:
		return st, nil
	default:
		return "", status.Errorf(codes.InvalidArgument, "unknown status %q", s)
	}
}

// NewEmployee validates a hire request and hashes its password.
func NewEmployee(req *shopv1.CreateEmployeeRequest) (*models.Employee, error) {
	first := strings.TrimSpace(req.FirstName)
	login := strings.TrimSpace(req.Login)
	if first == "" || login == "" {
		return nil, status.Error(codes.InvalidArgument, "first_name and login are required")
	}
	password := strings.TrimSpace(req.Password)
	if len([]rune(password)) < auth.MinPasswordLength {
		return nil, invalid(auth.ErrPasswordTooShort)
	}
	role := models.EmployeeRole(strings.ToLower(strings.TrimSpace(req.Role)))
	switch role {
	case "":
		role = models.EmployeeRoleStaff
	case models.EmployeeRoleStaff, models.EmployeeRoleManager:
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown role %q", req.Role)
	}
	birth, err := optionalDate(req.BirthDate)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "hash password: %v", err)
	}
	return &models.Employee{
		FirstName:    first,
		LastName:     strings.TrimSpace(req.LastName),
		Login:        login,
		PasswordHash: hash,
		BirthDate:    birth,
		Status:       models.EmployeeStatusActive,
		Position:     strings.TrimSpace(req.Position),
		Role:         role,
	}, nil
}

func optionalDate(s string) (*string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := payroll.ParseDate(s)
	if err != nil {
		return nil, invalid(err)
	}
	return &d, nil
}

func (s *StaffServer) EmployeeShifts(ctx context.Context, req *shopv1.EmployeeShiftsRequest) (*shopv1.EmployeeShiftsResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	h, err := s.Scheduler.EmployeeHistory(ctx, req.EmployeeID, req.Month)
	if err != nil {
		return nil, toStatus("employee shifts", err)
	}
	return &shopv1.EmployeeShiftsResponse{Shifts: h.Shifts, Count: h.Summary.Count, TotalSalary: h.Summary.Total}, nil
}

func parseRate(s string) (decimal.Decimal, error) {
	rate, err := profit.ParseAmount("hourly_rate", s)
	if err != nil {
		return decimal.Zero, invalid(err)
	}
	return rate, nil
}

func (s *StaffServer) ScheduleShift(ctx context.Context, req *shopv1.ScheduleShiftRequest) (*shopv1.ShiftResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	rate, err := parseRate(req.HourlyRate)
	if err != nil {
		return nil, err
	}
	sh, err := s.Scheduler.Schedule(ctx, scheduling.Request{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Start:      req.Start,
		End:        req.End,
		HourlyRate: rate,
	})
	if err != nil {
		return nil, toStatus("schedule shift", err)
	}
	return &shopv1.ShiftResponse{Shift: sh}, nil
}

// GetShift returns the employee's shift on a date, used to prefill the edit form.
func (s *StaffServer) GetShift(ctx context.Context, req *shopv1.GetShiftRequest) (*shopv1.ShiftResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	date, err := payroll.ParseDate(req.Date)
	if err != nil {
		return nil, invalid(err)
	}
	sh, err := s.Shifts.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return nil, toStatus("get shift", err)
	}
	if sh == nil {
		return nil, status.Error(codes.NotFound, "no shift on this date")
	}
	return &shopv1.ShiftResponse{Shift: sh}, nil
}

func (s *StaffServer) ListShifts(ctx context.Context, _ *shopv1.Empty) (*shopv1.ListShiftsResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	rows, err := s.Shifts.ListAll(ctx)
	if err != nil {
		return nil, toStatus("list shifts", err)
	}
	return &shopv1.ListShiftsResponse{Shifts: rows}, nil
}

func (s *StaffServer) UpdateShift(ctx context.Context, req *shopv1.UpdateShiftRequest) (*shopv1.ShiftResponse, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	if req.ID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	rate, err := parseRate(req.HourlyRate)
	if err != nil {
		return nil, err
	}
	sh, err := s.Scheduler.Update(ctx, req.ID, scheduling.Request{
		EmployeeID: req.EmployeeID,
		Start:      req.Start,
		End:        req.End,
		HourlyRate: rate,
	})
	if err != nil {
		return nil, toStatus("update shift", err)
	}
	return &shopv1.ShiftResponse{Shift: sh}, nil
}

func (s *StaffServer) DeleteShift(ctx context.Context, req *shopv1.IDRequest) (*shopv1.Empty, error) {
	if _, err := auth.RequireActive(ctx, s.Employees); err != nil {
		return nil, err
	}
	if err := s.Scheduler.Delete(ctx, req.ID); err != nil {
		return nil, toStatus("delete shift", err)
	}
	return &shopv1.Empty{}, nil
}
