package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/npatil9/expense_tracker_app/internal/apperrors"
	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/npatil9/expense_tracker_app/internal/core/ports/repositories"
)

const currencyStateKey = "currency"

type SQLiteCurrencyRepository struct {
	BaseRepository
}

// newSQLiteCurrencyRepository creates a new repository for the active
// currency blob.
func newSQLiteCurrencyRepository(db *sql.DB) portsrepo.CurrencyRepositoryFacade {
	return &SQLiteCurrencyRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*SQLiteCurrencyRepository)(nil)

// LoadActiveCurrency retrieves the persisted active display currency.
func (r *SQLiteCurrencyRepository) LoadActiveCurrency(ctx context.Context) (*domain.Currency, error) {
	value, found, err := r.getState(ctx, currencyStateKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: no active currency persisted", apperrors.ErrNotFound)
	}

	var currency domain.Currency
	if err := json.Unmarshal(value, &currency); err != nil {
		return nil, fmt.Errorf("failed to decode currency state: %w", err)
	}
	return &currency, nil
}

// SaveActiveCurrency overwrites the persisted active display currency.
func (r *SQLiteCurrencyRepository) SaveActiveCurrency(ctx context.Context, currency domain.Currency) error {
	value, err := json.Marshal(currency)
	if err != nil {
		return fmt.Errorf("failed to encode currency state: %w", err)
	}
	return r.setState(ctx, currencyStateKey, value)
}
