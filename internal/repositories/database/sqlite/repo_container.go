package sqlite

import (
	"database/sql"

	portsrepo "github.com/npatil9/expense_tracker_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	expenseRepo := newSQLiteExpenseRepository(db)
	currencyRepo := newSQLiteCurrencyRepository(db)

	return portsrepo.RepositoryProvider{
		ExpenseRepo:  expenseRepo,
		CurrencyRepo: currencyRepo,
	}
}
