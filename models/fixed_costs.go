package models

import "github.com/shopspring/decimal"

// FixedCosts is the single row (id=1) of fractions applied to every profit calculation.
type FixedCosts struct {
	BankFee decimal.Decimal `db:"bank_fee" json:"bank_fee"`
	Tax     decimal.Decimal `db:"tax" json:"tax"`
}
