package shopv1

import (
	"github.com/shopspring/decimal"

	"coffeeShopManagement/models"
)

// Empty is used by methods without parameters or results.
type Empty struct{}

// Money fields in requests are strings so that "3,5" and "3.5" are both accepted.

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string           `json:"token"`
	Employee *models.Employee `json:"employee"`
}

type ChangePasswordRequest struct {
	Login       string `json:"login"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
	Confirm     string `json:"confirm"`
}

type ListProductsRequest struct {
	CategoryID *int64 `json:"category_id,omitempty"`
	Search     string `json:"search,omitempty"`
}

type ListProductsResponse struct {
	Products []models.Product `json:"products"`
}

type IDRequest struct {
	ID int64 `json:"id"`
}

// ProductInput is the editable part of a product.
type ProductInput struct {
	Name           string   `json:"name"`
	CategoryID     int64    `json:"category_id"`
	Price          string   `json:"price"`
	WeightOrVolume *float64 `json:"weight_or_volume,omitempty"`
	UnitID         *int64   `json:"unit_id,omitempty"`
	Description    string   `json:"description"`
	Photo          []byte   `json:"photo,omitempty"`
}

type UpdateProductRequest struct {
	ID      int64        `json:"id"`
	Product ProductInput `json:"product"`
}

type ProductResponse struct {
	Product *models.Product `json:"product"`
}

type NameRequest struct {
	Name string `json:"name"`
}

type ListCategoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

type CategoryResponse struct {
	Category *models.Category `json:"category"`
}

type ListUnitsResponse struct {
	Units []models.Unit `json:"units"`
}

type UnitResponse struct {
	Unit *models.Unit `json:"unit"`
}

type CalculateProfitRequest struct {
	ProductID     int64  `json:"product_id"`
	UnitCost      string `json:"unit_cost"`
	OtherExpenses string `json:"other_expenses"`
	Quantity      int64  `json:"quantity"`
}

type CalculateProfitResponse struct {
	ProductName    string          `json:"product_name"`
	Price          decimal.Decimal `json:"price"`
	BankFeePercent decimal.Decimal `json:"bank_fee_percent"`
	TaxPercent     decimal.Decimal `json:"tax_percent"`
	Revenue        decimal.Decimal `json:"revenue"`
	VariableCost   decimal.Decimal `json:"variable_cost"`
	FixedCost      decimal.Decimal `json:"fixed_cost"`
	NetProfit      decimal.Decimal `json:"net_profit"`
	ProfitPercent  decimal.Decimal `json:"profit_percent"`
	Level          string          `json:"level"`
}

type ChangePriceRequest struct {
	ProductID int64  `json:"product_id"`
	Price     string `json:"price"`
}

type ListEmployeesResponse struct {
	Employees []models.Employee `json:"employees"`
}

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Login     string `json:"login"`
	Password  string `json:"password"`
	BirthDate string `json:"birth_date,omitempty"`
	Position  string `json:"position"`
	Role      string `json:"role,omitempty"`
}

type SetEmployeeStatusRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Status     string `json:"status"`
}

type EmployeeResponse struct {
	Employee *models.Employee `json:"employee"`
	// Token is set when the caller's login changed and the old token no longer matches.
	Token string `json:"token,omitempty"`
}

type EmployeeShiftsRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Month      string `json:"month,omitempty"` // YYYY-MM
}

type EmployeeShiftsResponse struct {
	Shifts      []models.Shift  `json:"shifts"`
	Count       int             `json:"count"`
	TotalSalary decimal.Decimal `json:"total_salary"`
}

type ScheduleShiftRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Start      string `json:"start"`
	End        string `json:"end"`
	HourlyRate string `json:"hourly_rate"`
}

type GetShiftRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
}

type UpdateShiftRequest struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id,omitempty"`
	Start      string `json:"start"`
	End        string `json:"end"`
	HourlyRate string `json:"hourly_rate"`
}

type ShiftResponse struct {
	Shift *models.Shift `json:"shift"`
}

type ListShiftsResponse struct {
	Shifts []models.ShiftRow `json:"shifts"`
}

// FixedCostsResponse shows fixed costs as percentages (3 = 3%).
type FixedCostsResponse struct {
	BankFeePercent decimal.Decimal `json:"bank_fee_percent"`
	TaxPercent     decimal.Decimal `json:"tax_percent"`
}

type UpdateFixedCostsRequest struct {
	BankFeePercent string `json:"bank_fee_percent"`
	TaxPercent     string `json:"tax_percent"`
}

type ExportResponse struct {
	FileName string `json:"file_name"`
	Data     []byte `json:"data"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Login     string `json:"login"`
	BirthDate string `json:"birth_date,omitempty"`
	Position  string `json:"position"`
}

type UpdateAvatarRequest struct {
	Image    []byte `json:"image"`
	CropX    int    `json:"crop_x,omitempty"`
	CropY    int    `json:"crop_y,omitempty"`
	CropSize int    `json:"crop_size,omitempty"`
}
