package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the wire and storage format for expense dates.
// Dates carry no time component.
const dateLayout = "2006-01-02"

// Date is a calendar date (year-month-day). It marshals to and from the
// ISO form "YYYY-MM-DD" so the persisted expense blob stays stable.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses an ISO "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// MonthKey returns the year-month bucket key, e.g. "2024-01".
func (d Date) MonthKey() string {
	return d.Format("2006-01")
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Expense is a single user-entered spending event. It is the unit of the
// persisted expense blob; the ID is time-derived (Unix milliseconds) and
// unique for the lifetime of the store.
type Expense struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
}

// DateRange selects a relative date window for the filter layer.
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
	RangeYear  DateRange = "year"
)

// ParseDateRange validates a date-range selector, defaulting empty input to
// RangeAll.
func ParseDateRange(s string) (DateRange, error) {
	switch DateRange(s) {
	case "":
		return RangeAll, nil
	case RangeAll, RangeWeek, RangeMonth, RangeYear:
		return DateRange(s), nil
	default:
		return "", fmt.Errorf("unknown date range %q", s)
	}
}
