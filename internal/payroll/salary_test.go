package payroll

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCompute_Salary(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		rate  string
		want  string
	}{
		{"full day", "09:00", "17:00", "200", "1600"},
		{"seconds form", "09:00:00", "17:00:00", "200", "1600"},
		{"third of an hour rounds", "09:00", "17:20", "250", "2083.33"},
		{"fractional rate", "10:15", "12:45", "187.5", "468.75"},
		{"zero rate", "08:00", "09:00", "0", "0"},
		{"half cent rounds up", "09:00", "09:50", "6.03", "5.03"},
		{"half cent on a third of an hour", "09:00", "09:20", "0.015", "0.01"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			iv, err := Compute(tc.start, tc.end, decimal.RequireFromString(tc.rate))
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			if !iv.Salary.Equal(decimal.RequireFromString(tc.want)) {
				t.Fatalf("salary = %s, want %s", iv.Salary, tc.want)
			}
		})
	}
}

func TestCompute_RejectsNonPositiveDuration(t *testing.T) {
	for _, pair := range [][2]string{{"17:00", "09:00"}, {"09:00", "09:00"}, {"23:00", "01:00"}} {
		if _, err := Compute(pair[0], pair[1], decimal.NewFromInt(200)); !errors.Is(err, ErrInvalidInterval) {
			t.Fatalf("%v: want ErrInvalidInterval, got %v", pair, err)
		}
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	if _, err := Compute("9am", "17:00", decimal.NewFromInt(1)); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := Compute("09:00", "17:00", decimal.NewFromInt(-1)); !errors.Is(err, ErrNegativeRate) {
		t.Fatalf("want ErrNegativeRate, got %v", err)
	}
}

func TestCompute_NormalisesTimes(t *testing.T) {
	iv, err := Compute("9:05", "17:30", decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if iv.Start != "09:05:00" || iv.End != "17:30:00" {
		t.Fatalf("normalised = %s-%s", iv.Start, iv.End)
	}
}

func TestRateFromSalary(t *testing.T) {
	got := RateFromSalary(decimal.NewFromInt(1600), "09:00:00", "17:00:00")
	if !got.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("rate = %s, want 200", got)
	}
	if !RateFromSalary(decimal.NewFromInt(10), "10:00:00", "10:00:00").IsZero() {
		t.Fatalf("zero-length shift should give zero rate")
	}
}

func TestParseDateAndMonth(t *testing.T) {
	if _, err := ParseDate("2025-02-30"); err == nil {
		t.Fatalf("expected invalid date")
	}
	if d, err := ParseDate(" 2025-02-28 "); err != nil || d != "2025-02-28" {
		t.Fatalf("ParseDate: %q %v", d, err)
	}
	if m, err := ParseMonth(""); err != nil || m != "" {
		t.Fatalf("empty month: %q %v", m, err)
	}
	if _, err := ParseMonth("2025-13"); err == nil {
		t.Fatalf("expected invalid month")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]decimal.Decimal{decimal.RequireFromString("1600"), decimal.RequireFromString("2083.33")})
	if s.Count != 2 || !s.Total.Equal(decimal.RequireFromString("3683.33")) {
		t.Fatalf("summary = %+v", s)
	}
}
