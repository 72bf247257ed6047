package services_test

import (
	"context"

	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/npatil9/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/npatil9/expense_tracker_app/internal/core/ports/services"
	"github.com/npatil9/expense_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) LoadExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ReplaceExpenses(ctx context.Context, expenses []domain.Expense) error {
	args := m.Called(ctx, expenses)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) LoadActiveCurrency(ctx context.Context) (*domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveActiveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepository)(nil)

// --- Mock RatesService ---
type MockRatesService struct {
	mock.Mock
}

func (m *MockRatesService) Refresh(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockRatesService) Convert(amount decimal.Decimal, fromCode, toCode string) decimal.Decimal {
	args := m.Called(amount, fromCode, toCode)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockRatesService) Snapshot() (domain.RateTable, string, domain.RateSource) {
	args := m.Called()
	return args.Get(0).(domain.RateTable), args.String(1), args.Get(2).(domain.RateSource)
}

var _ portssvc.RatesSvcFacade = (*MockRatesService)(nil)

// --- Mock ExpenseWriterSvc ---
type MockExpenseWriterSvc struct {
	mock.Mock
}

func (m *MockExpenseWriterSvc) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseWriterSvc) UpdateExpense(ctx context.Context, id int64, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseWriterSvc) DeleteExpense(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpenseWriterSvc) RedenominateAll(ctx context.Context, from, to domain.Currency) (int, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Error(1)
}

var _ portssvc.ExpenseWriterSvc = (*MockExpenseWriterSvc)(nil)
