package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"coffeeShopManagement/models"
)

// FixedCostsRepository reads and writes the single fixed_costs row (id = 1).
type FixedCostsRepository struct {
	db *sql.DB
}

func NewFixedCostsRepository(db *sql.DB) *FixedCostsRepository {
	return &FixedCostsRepository{db: db}
}

// Get returns the configured fractions, nil when the row was never seeded.
func (r *FixedCostsRepository) Get(ctx context.Context) (*models.FixedCosts, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	var fc models.FixedCosts
	err := r.db.QueryRowContext(ctx, `SELECT bank_fee, tax FROM fixed_costs WHERE id = 1`).Scan(&fc.BankFee, &fc.Tax)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &fc, nil
}

func (r *FixedCostsRepository) Update(ctx context.Context, fc models.FixedCosts) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := r.db.ExecContext(ctx, `UPDATE fixed_costs SET bank_fee = ?, tax = ? WHERE id = 1`, fc.BankFee, fc.Tax)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}
