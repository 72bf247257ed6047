package services

import (
	"context"

	"github.com/npatil9/expense_tracker_app/internal/core/domain"
)

// ReportingSvcFacade defines the aggregation engine: pure arithmetic over the
// expense history, exposed as read-only report operations.
//
// Stats and Trend always consume the full unfiltered history; TopExpenses
// respects the active filter. This asymmetry mirrors the views the UI
// renders and is intentional.
type ReportingSvcFacade interface {
	// Stats computes the aggregate statistics over the full history.
	Stats(ctx context.Context) (*domain.Stats, error)

	// Trend buckets the full history by calendar month across the actual
	// min-to-max date span present in the data.
	Trend(ctx context.Context) ([]domain.TrendPoint, error)

	// TopExpenses returns the limit largest filtered expenses by amount,
	// descending.
	TopExpenses(ctx context.Context, filter ExpenseFilter, limit int) ([]domain.Expense, error)
}
