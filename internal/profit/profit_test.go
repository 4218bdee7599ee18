package profit

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculate_KnownFigures(t *testing.T) {
	r, err := Calculate(Input{
		Price:         dec("100"),
		Quantity:      10,
		UnitCost:      dec("40"),
		OtherExpenses: dec("5"),
		BankFee:       dec("0.03"),
		Tax:           dec("0.06"),
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"revenue", r.Revenue, "1000"},
		{"variable", r.VariableCost, "450"},
		{"fixed", r.FixedCost, "90"},
		{"net", r.NetProfit, "460"},
		{"percent", r.ProfitPercent, "46.0"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
	if r.Level != LevelHigh {
		t.Errorf("level = %s, want high", r.Level)
	}
}

func TestCalculate_ZeroRevenue(t *testing.T) {
	r, err := Calculate(Input{Price: decimal.Zero, Quantity: 5, UnitCost: dec("10")})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if !r.ProfitPercent.IsZero() {
		t.Fatalf("percent = %s, want 0", r.ProfitPercent)
	}
	if !r.NetProfit.Equal(dec("-50")) {
		t.Fatalf("net = %s, want -50", r.NetProfit)
	}
}

func TestCalculate_Validation(t *testing.T) {
	if _, err := Calculate(Input{Price: dec("1"), Quantity: 0}); !errors.Is(err, ErrNonPositiveQuantity) {
		t.Fatalf("want ErrNonPositiveQuantity, got %v", err)
	}
	if _, err := Calculate(Input{Price: dec("1"), Quantity: 1, UnitCost: dec("-1")}); !errors.Is(err, ErrNegativeCost) {
		t.Fatalf("want ErrNegativeCost, got %v", err)
	}
}

func TestLevelFor(t *testing.T) {
	tests := map[string]Level{"-5": LevelLow, "19.9": LevelLow, "20": LevelMedium, "39.99": LevelMedium, "40": LevelHigh}
	for in, want := range tests {
		if got := LevelFor(dec(in)); got != want {
			t.Errorf("LevelFor(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestParsing(t *testing.T) {
	if d, err := ParseAmount("cost", " 12,5 "); err != nil || !d.Equal(dec("12.5")) {
		t.Fatalf("ParseAmount comma: %s %v", d, err)
	}
	if _, err := ParseAmount("cost", "abc"); err == nil {
		t.Fatalf("expected invalid number")
	}
	if _, err := ParsePrice("0"); !errors.Is(err, ErrNonPositivePrice) {
		t.Fatalf("want ErrNonPositivePrice, got %v", err)
	}
	f, err := PercentToFraction("tax", "6")
	if err != nil || !f.Equal(dec("0.06")) {
		t.Fatalf("PercentToFraction: %s %v", f, err)
	}
	if _, err := PercentToFraction("tax", "-1"); err == nil {
		t.Fatalf("expected negative percent error")
	}
	if p := FractionToPercent(dec("0.03")); !p.Equal(dec("3")) {
		t.Fatalf("FractionToPercent = %s", p)
	}
}
