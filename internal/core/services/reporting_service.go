package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/npatil9/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/npatil9/expense_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// reportingService implements the aggregation engine. Stats and Trend read
// the full history straight from the repository; TopExpenses goes through
// the expense service so the active filter applies.
type reportingService struct {
	BaseService
	repo     portsrepo.ExpenseReader
	expenses portssvc.ExpenseReaderSvc
	now      func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the clock that anchors the current month.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ExpenseReader, expenses portssvc.ExpenseReaderSvc, options ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		repo:     repo,
		expenses: expenses,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Stats computes the aggregate statistics over the full history.
func (s *reportingService) Stats(ctx context.Context) (*domain.Stats, error) {
	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	return computeStats(expenses, s.now()), nil
}

// Trend buckets the full history by calendar month.
func (s *reportingService) Trend(ctx context.Context) ([]domain.TrendPoint, error) {
	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	return buildTrend(expenses), nil
}

// TopExpenses returns the limit largest filtered expenses by amount.
func (s *reportingService) TopExpenses(ctx context.Context, filter portssvc.ExpenseFilter, limit int) ([]domain.Expense, error) {
	filtered, _, err := s.expenses.ListExpenses(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Stable sort keeps earlier records first among equal amounts.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Amount.GreaterThan(filtered[j].Amount)
	})
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// computeStats folds the history into per-month and per-category totals and
// derives the headline numbers from them. It is a pure function of the
// expense list and the reference time.
func computeStats(expenses []domain.Expense, now time.Time) *domain.Stats {
	stats := &domain.Stats{
		MonthlyTotals:  make(map[string]decimal.Decimal),
		CategoryTotals: make(map[string]decimal.Decimal),
	}

	highestAmount := decimal.Zero
	for i := range expenses {
		e := &expenses[i]
		month := e.Date.MonthKey()
		stats.MonthlyTotals[month] = stats.MonthlyTotals[month].Add(e.Amount)
		stats.CategoryTotals[e.Category] = stats.CategoryTotals[e.Category].Add(e.Amount)

		// Strictly greater, so a zero-amount record never becomes the
		// highest even in an otherwise empty history.
		if e.Amount.GreaterThan(highestAmount) {
			highestAmount = e.Amount
			stats.Highest = e
		}
		if stats.Lowest == nil || e.Amount.LessThan(stats.Lowest.Amount) {
			stats.Lowest = e
		}
	}

	thisMonth := domain.DateOf(now).MonthKey()
	lastMonth := previousMonthKey(now)
	stats.ThisMonthTotal = stats.MonthlyTotals[thisMonth]
	stats.LastMonthTotal = stats.MonthlyTotals[lastMonth]

	// A zero previous month reports no change rather than dividing by zero.
	if !stats.LastMonthTotal.IsZero() {
		stats.MonthlyChange = stats.ThisMonthTotal.Sub(stats.LastMonthTotal).
			Div(stats.LastMonthTotal).Mul(oneHundred).Round(1)
	}

	daysInMonth := decimal.NewFromInt(int64(time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()))
	stats.DailyAverage = stats.ThisMonthTotal.Div(daysInMonth).Round(2)

	topAmount := decimal.Zero
	for _, category := range domain.Categories() {
		total, ok := stats.CategoryTotals[category.ID]
		if !ok {
			continue
		}
		// Strictly greater, so ties resolve to the earlier category in
		// the fixed ordering.
		if total.GreaterThan(topAmount) {
			topAmount = total
			c := category
			stats.TopCategory = &c
		}
	}

	return stats
}

// buildTrend produces one point per calendar month spanning the actual
// min-to-max month range present in the data, including zero-spend months
// in between. Each point carries the month total, the running total up to
// and including that month, and the percentage growth over the previous
// point.
func buildTrend(expenses []domain.Expense) []domain.TrendPoint {
	if len(expenses) == 0 {
		return []domain.TrendPoint{}
	}

	totals := make(map[string]decimal.Decimal)
	minKey, maxKey := expenses[0].Date.MonthKey(), expenses[0].Date.MonthKey()
	for _, e := range expenses {
		key := e.Date.MonthKey()
		totals[key] = totals[key].Add(e.Amount)
		if key < minKey {
			minKey = key
		}
		if key > maxKey {
			maxKey = key
		}
	}

	points := make([]domain.TrendPoint, 0, len(totals))
	running := decimal.Zero
	previous := decimal.Zero
	for key := minKey; key <= maxKey; key = nextMonthKey(key) {
		amount := totals[key]
		running = running.Add(amount)

		growth := decimal.Zero
		if !previous.IsZero() {
			growth = amount.Sub(previous).Div(previous).Mul(oneHundred).Round(1)
		}

		points = append(points, domain.TrendPoint{
			Month:        key,
			Label:        monthLabel(key),
			Amount:       amount,
			RunningTotal: running,
			Growth:       growth,
		})
		previous = amount
	}
	return points
}

// previousMonthKey steps one month back with explicit year/month arithmetic
// so the January-to-December rollover lands on the prior year.
func previousMonthKey(now time.Time) string {
	year, month := now.Year(), int(now.Month())
	month--
	if month < 1 {
		month = 12
		year--
	}
	return fmt.Sprintf("%04d-%02d", year, month)
}

func nextMonthKey(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	year, month := t.Year(), int(t.Month())
	month++
	if month > 12 {
		month = 1
		year++
	}
	return fmt.Sprintf("%04d-%02d", year, month)
}

func monthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2006")
}
