package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/npatil9/expense_tracker_app/internal/apperrors"
	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/npatil9/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/npatil9/expense_tracker_app/internal/core/ports/services"
)

// currencyService manages the active display currency and the switch
// operation that re-denominates the stored history.
type currencyService struct {
	BaseService
	repo     portsrepo.CurrencyRepositoryFacade
	expenses portssvc.ExpenseWriterSvc
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(repo portsrepo.CurrencyRepositoryFacade, expenses portssvc.ExpenseWriterSvc) portssvc.CurrencySvcFacade {
	return &currencyService{
		repo:     repo,
		expenses: expenses,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// ListCurrencies returns the fixed configured currency list.
func (s *currencyService) ListCurrencies(_ context.Context) []domain.Currency {
	return domain.SupportedCurrencies()
}

// ActiveCurrency returns the persisted active currency, falling back to the
// first configured currency when none has been persisted yet.
func (s *currencyService) ActiveCurrency(ctx context.Context) (*domain.Currency, error) {
	currency, err := s.repo.LoadActiveCurrency(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			def := domain.DefaultCurrency()
			return &def, nil
		}
		return nil, fmt.Errorf("failed to load active currency: %w", err)
	}

	// A persisted code outside the configured set means the configuration
	// shrank since it was saved; treat it like no selection.
	if _, ok := domain.CurrencyByCode(currency.Code); !ok {
		def := domain.DefaultCurrency()
		return &def, nil
	}
	return currency, nil
}

// SwitchCurrency changes the active currency and rewrites every stored
// amount into the new denomination. Switching to the already-active code
// converts nothing.
func (s *currencyService) SwitchCurrency(ctx context.Context, code string) (*domain.Currency, int, error) {
	target, ok := domain.CurrencyByCode(code)
	if !ok {
		return nil, 0, fmt.Errorf("%w: unsupported currency code %q", apperrors.ErrValidation, code)
	}

	active, err := s.ActiveCurrency(ctx)
	if err != nil {
		return nil, 0, err
	}
	if active.Code == target.Code {
		return &target, 0, nil
	}

	converted, err := s.expenses.RedenominateAll(ctx, *active, target)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to re-denominate expenses: %w", err)
	}

	if err := s.repo.SaveActiveCurrency(ctx, target); err != nil {
		return nil, 0, fmt.Errorf("failed to persist active currency: %w", err)
	}

	s.LogInfo(ctx, "Active currency switched",
		slog.String("from", active.Code),
		slog.String("to", target.Code),
		slog.Int("converted", converted))
	return &target, converted, nil
}
