package models

import "github.com/shopspring/decimal"

// Shift is one scheduled work interval for an employee on a date.
// Date is YYYY-MM-DD, Start and End are HH:MM:SS.
type Shift struct {
	ID         int64           `db:"id" json:"id"`
	EmployeeID int64           `db:"employee_id" json:"employee_id"`
	Date       string          `db:"shift_date" json:"date"`
	Start      string          `db:"shift_start" json:"start"`
	End        string          `db:"shift_end" json:"end"`
	HourlyRate decimal.Decimal `db:"hourly_rate" json:"hourly_rate"`
	Salary     decimal.Decimal `db:"shift_salary" json:"salary"`
}

// ShiftRow is a shift joined with the employee it belongs to, used by the
// manage-shifts listing and the spreadsheet export.
type ShiftRow struct {
	Shift
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}
