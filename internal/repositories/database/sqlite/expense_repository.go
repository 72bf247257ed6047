package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/npatil9/expense_tracker_app/internal/core/ports/repositories"
)

const expensesStateKey = "expenses"

type SQLiteExpenseRepository struct {
	BaseRepository
}

// newSQLiteExpenseRepository creates a new repository for the expense blob.
func newSQLiteExpenseRepository(db *sql.DB) portsrepo.ExpenseRepositoryFacade {
	return &SQLiteExpenseRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepositoryFacade = (*SQLiteExpenseRepository)(nil)

// LoadExpenses returns the full ordered expense list. A store that has never
// been written yields an empty slice.
func (r *SQLiteExpenseRepository) LoadExpenses(ctx context.Context) ([]domain.Expense, error) {
	value, found, err := r.getState(ctx, expensesStateKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.Expense{}, nil
	}

	var expenses []domain.Expense
	if err := json.Unmarshal(value, &expenses); err != nil {
		return nil, fmt.Errorf("failed to decode expenses state: %w", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, nil
}

// ReplaceExpenses overwrites the persisted list wholesale, preserving order.
func (r *SQLiteExpenseRepository) ReplaceExpenses(ctx context.Context, expenses []domain.Expense) error {
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	value, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("failed to encode expenses state: %w", err)
	}
	return r.setState(ctx, expensesStateKey, value)
}
