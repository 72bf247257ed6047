package utils

import (
	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount formats an amount for display in the given currency.
// Example: amount 12.345 with USD returns "$12.35".
func FormatAmount(amount decimal.Decimal, currency domain.Currency) string {
	return currency.Symbol + amount.StringFixed(2)
}
