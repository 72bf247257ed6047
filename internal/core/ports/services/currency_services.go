package services

import (
	"context"

	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency state.
type CurrencyReaderSvc interface {
	// ListCurrencies returns the fixed configured currency list.
	ListCurrencies(ctx context.Context) []domain.Currency

	// ActiveCurrency returns the persisted active display currency, or the
	// first configured currency when none has been persisted yet.
	ActiveCurrency(ctx context.Context) (*domain.Currency, error)
}

// CurrencyWriterSvc defines the currency switch operation.
type CurrencyWriterSvc interface {
	// SwitchCurrency changes the active display currency and destructively
	// re-denominates every stored expense amount. It returns the new
	// currency and the number of converted records. Unknown codes fail
	// with ErrValidation.
	SwitchCurrency(ctx context.Context, code string) (*domain.Currency, int, error)
}

// CurrencySvcFacade combines all currency-related service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// RatesSvcFacade is the currency conversion service: a one-shot fetched rate
// table with a static fallback, and a pure conversion function over it.
type RatesSvcFacade interface {
	// Refresh performs the one-shot rate fetch. On any failure it installs
	// the static fallback table for the remainder of the session. Fetch
	// failures never surface to the caller.
	Refresh(ctx context.Context)

	// Convert converts an amount between two currency codes, rounding to
	// two decimal places. If either code is absent from the current table
	// the amount is returned unchanged.
	Convert(amount decimal.Decimal, fromCode, toCode string) decimal.Decimal

	// Snapshot returns a copy of the current rate table, the base currency
	// it is relative to, and the table's source state.
	Snapshot() (domain.RateTable, string, domain.RateSource)
}
