package services

import (
	portsrepo "github.com/npatil9/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/npatil9/expense_tracker_app/internal/core/ports/services"
	"github.com/npatil9/expense_tracker_app/internal/platform/config"
)

// NewServiceContainer wires all application services with their cross
// dependencies. The rates service comes first because the expense service
// needs it for re-denomination, and the currency service in turn drives the
// expense service's bulk rewrite.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	rates := NewRatesService(cfg.RatesURL, cfg.RatesBaseCurrency, cfg.RatesFetchTimeout)
	expense := NewExpenseService(repos.ExpenseRepo, rates)
	reporting := NewReportingService(repos.ExpenseRepo, expense)
	currency := NewCurrencyService(repos.CurrencyRepo, expense)

	return &portssvc.ServiceContainer{
		Expense:   expense,
		Reporting: reporting,
		Currency:  currency,
		Rates:     rates,
	}
}
