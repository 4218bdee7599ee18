package payroll

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateLayout is the storage format of shift dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the storage format of shift start and end times.
	TimeLayout = "15:04:05"

	secondsPerHour = 3600
)

var (
	// ErrInvalidInterval means the shift does not end after it starts.
	ErrInvalidInterval = errors.New("end time must be later than start time")
	// ErrNegativeRate means the hourly rate is below zero.
	ErrNegativeRate = errors.New("hourly rate must not be negative")
)

var timeLayouts = []string{TimeLayout, "15:04"}

// ParseError reports a malformed date, month or clock value.
type ParseError struct {
	Kind  string // "time", "date" or "month"
	Value string
	Want  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: want %s", e.Kind, e.Value, e.Want)
}

// ParseClock parses "HH:MM" or "HH:MM:SS" and returns the normalised HH:MM:SS
// form together with seconds since midnight.
func ParseClock(s string) (string, int, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			secs := t.Hour()*secondsPerHour + t.Minute()*60 + t.Second()
			return t.Format(TimeLayout), secs, nil
		}
	}
	return "", 0, &ParseError{Kind: "time", Value: s, Want: "HH:MM or HH:MM:SS"}
}

// ParseDate validates a YYYY-MM-DD date and returns it unchanged.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", &ParseError{Kind: "date", Value: s, Want: "YYYY-MM-DD"}
	}
	return t.Format(DateLayout), nil
}

// ParseMonth validates a YYYY-MM month filter. Empty input is allowed.
func ParseMonth(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return "", &ParseError{Kind: "month", Value: s, Want: "YYYY-MM"}
	}
	return t.Format("2006-01"), nil
}

// Hours returns the shift length in hours, (end - start) / 3600, for display.
// The result is not clamped: callers reject values <= 0.
func Hours(startSecs, endSecs int) decimal.Decimal {
	return decimal.NewFromInt(int64(endSecs - startSecs)).Div(decimal.NewFromInt(secondsPerHour))
}

// Salary returns round(rate * (end - start) / 3600, 2). The multiplication
// happens before the division so a half cent is rounded on the exact value.
func Salary(rate decimal.Decimal, startSecs, endSecs int) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(int64(endSecs - startSecs))).DivRound(decimal.NewFromInt(secondsPerHour), 2)
}

// Interval is a validated shift time range with its pay.
type Interval struct {
	Start  string // HH:MM:SS
	End    string // HH:MM:SS
	Hours  decimal.Decimal
	Rate   decimal.Decimal
	Salary decimal.Decimal
}

// Compute validates start/end and returns salary = round(rate * hours, 2).
// Shifts crossing midnight are rejected like any other end <= start.
func Compute(start, end string, rate decimal.Decimal) (*Interval, error) {
	if rate.IsNegative() {
		return nil, ErrNegativeRate
	}
	s, startSecs, err := ParseClock(start)
	if err != nil {
		return nil, err
	}
	e, endSecs, err := ParseClock(end)
	if err != nil {
		return nil, err
	}
	hours := Hours(startSecs, endSecs)
	if !hours.IsPositive() {
		return nil, ErrInvalidInterval
	}
	return &Interval{
		Start:  s,
		End:    e,
		Hours:  hours,
		Rate:   rate,
		Salary: Salary(rate, startSecs, endSecs),
	}, nil
}

// RateFromSalary recovers the hourly rate of a stored shift, used to
// prefill edit forms. Zero-length shifts yield zero.
func RateFromSalary(salary decimal.Decimal, start, end string) decimal.Decimal {
	_, s, err1 := ParseClock(start)
	_, e, err2 := ParseClock(end)
	if err1 != nil || err2 != nil {
		return decimal.Zero
	}
	hours := Hours(s, e)
	if !hours.IsPositive() {
		return decimal.Zero
	}
	return salary.DivRound(hours, 2)
}

// Summary totals a list of salaries, as shown under an employee's shift list.
type Summary struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// Summarize adds up salaries.
func Summarize(salaries []decimal.Decimal) Summary {
	total := decimal.Zero
	for _, s := range salaries {
		total = total.Add(s)
	}
	return Summary{Count: len(salaries), Total: total.Round(2)}
}
