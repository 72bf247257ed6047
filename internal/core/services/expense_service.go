package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/npatil9/expense_tracker_app/internal/apperrors"
	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/npatil9/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/npatil9/expense_tracker_app/internal/core/ports/services"
	"github.com/npatil9/expense_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// expenseService implements the expense store: an ordered list of records,
// mutated by add/edit/delete and rewritten wholesale to the repository on
// every mutation.
type expenseService struct {
	BaseService
	repo  portsrepo.ExpenseRepositoryFacade
	rates portssvc.RatesSvcFacade
	now   func() time.Time

	// mu serializes read-modify-write cycles so a mutation is atomic from
	// the caller's perspective; there are no partial-write visible states.
	mu     sync.Mutex
	lastID int64
}

// ExpenseServiceOption is a functional option for configuring the expense service
type ExpenseServiceOption func(*expenseService)

// WithExpenseClock overrides the clock used for ids and create dates.
func WithExpenseClock(now func() time.Time) ExpenseServiceOption {
	return func(s *expenseService) {
		s.now = now
	}
}

// NewExpenseService creates a new expense service backed by the given
// repository. The rates service is used only for bulk re-denomination.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, rates portssvc.RatesSvcFacade, options ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{
		repo:  repo,
		rates: rates,
		now:   time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// nextID returns a fresh time-derived id, strictly monotonic within the
// process even when two creates land in the same millisecond.
func (s *expenseService) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// CreateExpense appends a new record with a fresh id and today's date.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	// Presence checks only; an absent description or amount aborts the add
	// with nothing persisted.
	if strings.TrimSpace(req.Description) == "" || req.Amount == nil {
		return nil, fmt.Errorf("%w: description and amount are required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	expense := domain.Expense{
		ID:          s.nextID(),
		Description: req.Description,
		Amount:      *req.Amount,
		Category:    req.Category,
		Date:        domain.DateOf(s.now()),
	}

	expenses = append(expenses, expense)
	if err := s.repo.ReplaceExpenses(ctx, expenses); err != nil {
		return nil, fmt.Errorf("failed to persist expenses: %w", err)
	}

	s.LogInfo(ctx, "Expense created",
		slog.Int64("expense_id", expense.ID),
		slog.String("category", expense.Category),
		slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

// UpdateExpense replaces every field except the id of the matching record.
func (s *expenseService) UpdateExpense(ctx context.Context, id int64, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	if strings.TrimSpace(req.Description) == "" || req.Amount == nil {
		return nil, fmt.Errorf("%w: description and amount are required", apperrors.ErrValidation)
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	for i := range expenses {
		if expenses[i].ID != id {
			continue
		}
		expenses[i].Description = req.Description
		expenses[i].Amount = *req.Amount
		expenses[i].Category = req.Category
		expenses[i].Date = date

		if err := s.repo.ReplaceExpenses(ctx, expenses); err != nil {
			return nil, fmt.Errorf("failed to persist expenses: %w", err)
		}

		updated := expenses[i]
		s.LogInfo(ctx, "Expense updated", slog.Int64("expense_id", id))
		return &updated, nil
	}

	return nil, fmt.Errorf("%w: expense %d", apperrors.ErrNotFound, id)
}

// DeleteExpense removes the matching record. Deleting an absent id is an
// idempotent no-op; the remaining records keep their relative order.
func (s *expenseService) DeleteExpense(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}

	remaining := expenses[:0:0]
	for _, e := range expenses {
		if e.ID != id {
			remaining = append(remaining, e)
		}
	}
	if len(remaining) == len(expenses) {
		s.LogDebug(ctx, "Delete of unknown expense id is a no-op", slog.Int64("expense_id", id))
		return nil
	}

	if err := s.repo.ReplaceExpenses(ctx, remaining); err != nil {
		return fmt.Errorf("failed to persist expenses: %w", err)
	}

	s.LogInfo(ctx, "Expense deleted", slog.Int64("expense_id", id))
	return nil
}

// ListExpenses returns the filtered expense list and the sum of its amounts.
func (s *expenseService) ListExpenses(ctx context.Context, filter portssvc.ExpenseFilter) ([]domain.Expense, decimal.Decimal, error) {
	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to load expenses: %w", err)
	}

	filtered := filterExpenses(expenses, filter, s.now())

	total := decimal.Zero
	for _, e := range filtered {
		total = total.Add(e.Amount)
	}
	return filtered, total, nil
}

// RedenominateAll rewrites every stored amount from one currency to another.
// The rewrite is destructive: each amount is rounded to two decimals, so
// switching back does not restore the original values exactly.
func (s *expenseService) RedenominateAll(ctx context.Context, from, to domain.Currency) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load expenses: %w", err)
	}
	if len(expenses) == 0 {
		return 0, nil
	}

	for i := range expenses {
		expenses[i].Amount = s.rates.Convert(expenses[i].Amount, from.Code, to.Code)
	}

	if err := s.repo.ReplaceExpenses(ctx, expenses); err != nil {
		return 0, fmt.Errorf("failed to persist expenses: %w", err)
	}

	s.LogInfo(ctx, "Expenses re-denominated",
		slog.String("from", from.Code),
		slog.String("to", to.Code),
		slog.Int("count", len(expenses)))
	return len(expenses), nil
}

// filterExpenses narrows the working set by category and by a relative date
// window. It never mutates its input.
func filterExpenses(expenses []domain.Expense, filter portssvc.ExpenseFilter, now time.Time) []domain.Expense {
	cutoff, bounded := rangeCutoff(filter.Range, now)
	byCategory := filter.Category != "" && filter.Category != "all"

	out := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if byCategory && e.Category != filter.Category {
			continue
		}
		if bounded && e.Date.Before(cutoff) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// rangeCutoff computes the inclusive lower bound for a date window. The
// cutoff is truncated to a calendar date so records dated exactly on the
// boundary day are kept.
func rangeCutoff(r domain.DateRange, now time.Time) (time.Time, bool) {
	switch r {
	case domain.RangeWeek:
		return domain.DateOf(now.AddDate(0, 0, -7)).Time, true
	case domain.RangeMonth:
		return domain.DateOf(now.AddDate(0, -1, 0)).Time, true
	case domain.RangeYear:
		// Accepted in the period selector but applies no cutoff.
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
