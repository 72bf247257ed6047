package services

import (
	"context"

	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	"github.com/npatil9/expense_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ExpenseFilter narrows the working expense set before it reaches the list
// view and the filtered aggregate views. The zero value passes everything.
type ExpenseFilter struct {
	// Category is a category id, or "all"/"" for no category filtering.
	Category string
	// Range is the relative date window.
	Range domain.DateRange
}

// ExpenseReaderSvc defines read operations over the expense store.
type ExpenseReaderSvc interface {
	// ListExpenses returns the filtered expense list, preserving insertion
	// order, together with the sum of the visible amounts.
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]domain.Expense, decimal.Decimal, error)
}

// ExpenseWriterSvc defines mutating operations on the expense store. Every
// mutation rewrites the persisted blob wholesale.
type ExpenseWriterSvc interface {
	// CreateExpense appends a new record with a fresh time-derived id and
	// today's date. Missing description or amount fails with ErrValidation.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// UpdateExpense replaces every field except the id of the matching
	// record. Returns ErrNotFound when no record matches.
	UpdateExpense(ctx context.Context, id int64, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes the matching record, leaving all others in
	// their original relative order. Deleting an absent id is a no-op.
	DeleteExpense(ctx context.Context, id int64) error

	// RedenominateAll destructively rewrites every stored amount from one
	// currency to another and returns the number of records converted.
	RedenominateAll(ctx context.Context, from, to domain.Currency) (int, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces.
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
