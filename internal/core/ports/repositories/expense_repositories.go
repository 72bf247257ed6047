package repositories

import (
	"context"

	"github.com/npatil9/expense_tracker_app/internal/core/domain"
)

// ExpenseReader defines read operations for the persisted expense list.
type ExpenseReader interface {
	// LoadExpenses returns the full ordered expense list. A store with no
	// prior state yields an empty slice, not an error.
	LoadExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for the persisted expense list.
// The list is the unit of persistence: every mutation rewrites it wholesale.
type ExpenseWriter interface {
	// ReplaceExpenses overwrites the persisted list with the given one.
	ReplaceExpenses(ctx context.Context, expenses []domain.Expense) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
