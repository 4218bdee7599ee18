package models

import "github.com/shopspring/decimal"

// Category and Unit are insert-only lookup rows.
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Unit struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Product maps to the `products` table. CategoryName and UnitName are filled
// by list queries that join the lookup tables.
type Product struct {
	ID             int64           `db:"id" json:"id"`
	Name           string          `db:"name" json:"name"`
	CategoryID     int64           `db:"category_id" json:"category_id"`
	CategoryName   string          `db:"category_name" json:"category_name,omitempty"`
	Price          decimal.Decimal `db:"price" json:"price"`
	WeightOrVolume *float64        `db:"weight_or_volume" json:"weight_or_volume,omitempty"`
	UnitID         *int64          `db:"unit_id" json:"unit_id,omitempty"`
	UnitName       string          `db:"unit_name" json:"unit_name,omitempty"`
	Description    string          `db:"description" json:"description"`
	Photo          []byte          `db:"photo" json:"photo,omitempty"`
}

// ProductFilter narrows ListProducts. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID *int64
	Search     string
}
