package profit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")
	ErrNegativeCost        = errors.New("costs must not be negative")
	ErrNonPositivePrice    = errors.New("price must be greater than zero")
)

// Level buckets the profit percentage the way the calculator colours it.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

var (
	hundred         = decimal.NewFromInt(100)
	mediumThreshold = decimal.NewFromInt(20)
	highThreshold   = decimal.NewFromInt(40)
)

// Input is one calculation request. BankFee and Tax are fractions (0.03 = 3%).
type Input struct {
	Price         decimal.Decimal
	Quantity      int64
	UnitCost      decimal.Decimal
	OtherExpenses decimal.Decimal
	BankFee       decimal.Decimal
	Tax           decimal.Decimal
}

// Result holds every intermediate figure so callers can show the breakdown.
type Result struct {
	Revenue       decimal.Decimal `json:"revenue"`
	VariableCost  decimal.Decimal `json:"variable_cost"`
	FixedCost     decimal.Decimal `json:"fixed_cost"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
	Level         Level           `json:"level"`
}

// Calculate applies
//
//	revenue  = price * quantity
//	variable = (unit_cost + other) * quantity
//	fixed    = revenue * (bank_fee + tax)
//	net      = revenue - variable - fixed
//	percent  = net / revenue * 100, or 0 when revenue is 0
func Calculate(in Input) (*Result, error) {
	if in.Quantity <= 0 {
		return nil, ErrNonPositiveQuantity
	}
	if in.UnitCost.IsNegative() || in.OtherExpenses.IsNegative() {
		return nil, ErrNegativeCost
	}
	qty := decimal.NewFromInt(in.Quantity)
	revenue := in.Price.Mul(qty)
	variable := in.UnitCost.Add(in.OtherExpenses).Mul(qty)
	fixed := revenue.Mul(in.BankFee.Add(in.Tax))
	net := revenue.Sub(variable).Sub(fixed)

	percent := decimal.Zero
	if !revenue.IsZero() {
		percent = net.Div(revenue).Mul(hundred)
	}
	return &Result{
		Revenue:       revenue.Round(2),
		VariableCost:  variable.Round(2),
		FixedCost:     fixed.Round(2),
		NetProfit:     net.Round(2),
		ProfitPercent: percent.Round(1),
		Level:         LevelFor(percent),
	}, nil
}

// LevelFor maps a percentage to low (< 20), medium (< 40) or high.
func LevelFor(percent decimal.Decimal) Level {
	switch {
	case percent.LessThan(mediumThreshold):
		return LevelLow
	case percent.LessThan(highThreshold):
		return LevelMedium
	default:
		return LevelHigh
	}
}

// ParseAmount parses a user-entered money value, accepting a comma as the decimal separator.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, fmt.Errorf("%s is required", field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: invalid number %q", field, s)
	}
	return d, nil
}

// ParsePrice parses a new product price; it must be positive.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := ParseAmount("price", s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrNonPositivePrice
	}
	return d, nil
}

// PercentToFraction converts an entered percentage (3 or "3,5") to a stored fraction.
func PercentToFraction(field, s string) (decimal.Decimal, error) {
	d, err := ParseAmount(field, s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative", field)
	}
	return d.Div(hundred), nil
}

// FractionToPercent is the inverse of PercentToFraction, for display.
func FractionToPercent(d decimal.Decimal) decimal.Decimal {
	return d.Mul(hundred)
}
