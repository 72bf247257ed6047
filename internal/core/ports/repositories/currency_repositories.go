package repositories

import (
	"context"

	"github.com/npatil9/expense_tracker_app/internal/core/domain"
)

// CurrencyReader defines read operations for the persisted active currency.
type CurrencyReader interface {
	// LoadActiveCurrency retrieves the persisted active display currency.
	// Returns apperrors.ErrNotFound when no currency has been persisted yet.
	LoadActiveCurrency(ctx context.Context) (*domain.Currency, error)
}

// CurrencyWriter defines write operations for the persisted active currency.
type CurrencyWriter interface {
	// SaveActiveCurrency overwrites the persisted active display currency.
	SaveActiveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
