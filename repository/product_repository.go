package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"coffeeShopManagement/models"
)

// ProductRepository handles the products table and its joins to categories and units.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productSelect = `
SELECT p.id, p.name, p.category_id, COALESCE(c.name, ''), p.price, p.weight_or_volume, p.unit_id, COALESCE(u.name, ''), p.description, p.photo
FROM products p
LEFT JOIN categories c ON p.category_id = c.id
LEFT JOIN units u ON p.unit_id = u.id`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	var weight sql.NullFloat64
	var unitID sql.NullInt64
	if err := row.Scan(&p.ID, &p.Name, &p.CategoryID, &p.CategoryName, &p.Price, &weight, &unitID, &p.UnitName, &p.Description, &p.Photo); err != nil {
		return nil, err
	}
	if weight.Valid {
		v := weight.Float64
		p.WeightOrVolume = &v
	}
	if unitID.Valid {
		v := unitID.Int64
		p.UnitID = &v
	}
	return &p, nil
}

// Create inserts a product and returns it with joined lookup names.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	if p == nil {
		return nil, errors.New("product is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO products (name, category_id, price, weight_or_volume, unit_id, description, photo) VALUES (?,?,?,?,?,?,?)`,
		p.Name, p.CategoryID, p.Price, p.WeightOrVolume, p.UnitID, p.Description, p.Photo)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("created product not found: id=%d", id)
	}
	return out, nil
}

// GetByID fetches a product by its ID, nil when missing.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// likeEscaper escapes LIKE wildcards. '!' is used as the escape character
// because mysql treats a backslash in a string literal as an escape itself.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// List returns products filtered by category and a case-insensitive name substring.
func (r *ProductRepository) List(ctx context.Context, f models.ProductFilter) ([]models.Product, error) {
	var (
		conds []string
		args  []any
	)
	if f.CategoryID != nil && *f.CategoryID > 0 {
		conds = append(conds, "p.category_id = ?")
		args = append(args, *f.CategoryID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		conds = append(conds, "LOWER(p.name) LIKE ? ESCAPE '!'")
		args = append(args, "%"+likeEscaper.Replace(strings.ToLower(s))+"%")
	}
	q := productSelect
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY p.id"

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every editable column, photo included.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	if p == nil {
		return errors.New("product is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE products SET name = ?, category_id = ?, price = ?, weight_or_volume = ?, unit_id = ?, description = ?, photo = ? WHERE id = ?`,
		p.Name, p.CategoryID, p.Price, p.WeightOrVolume, p.UnitID, p.Description, p.Photo, p.ID)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func (r *ProductRepository) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE products SET price = ? WHERE id = ?`, price, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}
