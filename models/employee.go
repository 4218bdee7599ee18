package models

// EmployeeStatus tells whether an employee may still sign in.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// EmployeeRole separates managers (settings, hiring) from regular staff.
type EmployeeRole string

const (
	EmployeeRoleManager EmployeeRole = "manager"
	EmployeeRoleStaff   EmployeeRole = "staff"
)

// Employee maps to the `employees` table.
// PasswordHash is never serialised; Photo holds the cropped avatar PNG.
type Employee struct {
	ID           int64          `db:"id" json:"id"`
	FirstName    string         `db:"first_name" json:"first_name"`
	LastName     string         `db:"last_name" json:"last_name"`
	Login        string         `db:"login" json:"login"`
	PasswordHash string         `db:"password_hash" json:"-"`
	BirthDate    *string        `db:"birth_date" json:"birth_date,omitempty"`
	Status       EmployeeStatus `db:"status" json:"status"`
	Position     string         `db:"position" json:"position"`
	Role         EmployeeRole   `db:"role" json:"role"`
	Photo        []byte         `db:"photo" json:"photo,omitempty"`
}

// FullName is "First Last", as shown in employee pickers.
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
