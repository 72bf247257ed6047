package domain

import "github.com/shopspring/decimal"

// Stats is the full set of aggregate statistics derived from the unfiltered
// expense history. An empty history yields zero totals, empty maps and nil
// Highest/Lowest/TopCategory — callers must treat nil as "no data", which is
// distinct from a genuine zero-amount expense.
type Stats struct {
	MonthlyTotals  map[string]decimal.Decimal `json:"monthlyTotals"`  // keyed by "YYYY-MM"
	CategoryTotals map[string]decimal.Decimal `json:"categoryTotals"` // keyed by category id
	ThisMonthTotal decimal.Decimal            `json:"thisMonthTotal"`
	LastMonthTotal decimal.Decimal            `json:"lastMonthTotal"`
	// MonthlyChange is (this-last)/last*100, defined as 0 when the last
	// month total is 0.
	MonthlyChange decimal.Decimal `json:"monthlyChange"`
	// DailyAverage is this month's total divided by the number of calendar
	// days in the current month, not by elapsed days.
	DailyAverage decimal.Decimal `json:"dailyAverage"`
	Highest      *Expense        `json:"highest,omitempty"`
	Lowest       *Expense        `json:"lowest,omitempty"`
	// TopCategory is the category with the largest summed spend.
	TopCategory *Category `json:"topCategory,omitempty"`
}

// TrendPoint is one calendar-month bucket in the trend series. Buckets span
// the actual min-to-max month range present in the data; months with no
// expenses appear with a zero amount.
type TrendPoint struct {
	Month        string          `json:"month"` // "YYYY-MM"
	Label        string          `json:"label"` // e.g. "Jan 24"
	Amount       decimal.Decimal `json:"amount"`
	RunningTotal decimal.Decimal `json:"runningTotal"`
	// Growth is the month-over-month change in percent, rounded to one
	// decimal place; 0 for the first bucket and whenever the previous
	// bucket's amount is 0.
	Growth decimal.Decimal `json:"growth"`
}
