package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"coffeeShopManagement/models"
)

// EmployeeRepositoryI defines operations on Employee entities.
type EmployeeRepositoryI interface {
	Create(ctx context.Context, e *models.Employee) (*models.Employee, error)
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	GetByLogin(ctx context.Context, login string) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	Count(ctx context.Context) (int, error)
	UpdateProfile(ctx context.Context, e *models.Employee) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	UpdatePhoto(ctx context.Context, id int64, photo []byte) error
	UpdateStatus(ctx context.Context, id int64, status models.EmployeeStatus) error
}

// ProductRepositoryI defines operations on Product entities.
type ProductRepositoryI interface {
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context, f models.ProductFilter) ([]models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}

// CatalogRepositoryI defines operations on the category and unit lookup tables.
type CatalogRepositoryI interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	ListUnits(ctx context.Context) ([]models.Unit, error)
	GetUnit(ctx context.Context, id int64) (*models.Unit, error)
	CreateUnit(ctx context.Context, name string) (*models.Unit, error)
}

// ShiftRepositoryI defines operations on Shift entities.
type ShiftRepositoryI interface {
	Create(ctx context.Context, s *models.Shift) (*models.Shift, error)
	GetByID(ctx context.Context, id int64) (*models.Shift, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (*models.Shift, error)
	ListByEmployee(ctx context.Context, employeeID int64, month string) ([]models.Shift, error)
	ListAll(ctx context.Context) ([]models.ShiftRow, error)
	Update(ctx context.Context, s *models.Shift) error
	Delete(ctx context.Context, id int64) error
}

// FixedCostsRepositoryI reads and writes the single fixed_costs row.
type FixedCostsRepositoryI interface {
	Get(ctx context.Context) (*models.FixedCosts, error)
	Update(ctx context.Context, fc models.FixedCosts) error
}
