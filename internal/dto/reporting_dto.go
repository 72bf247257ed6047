package dto

import (
	"sort"

	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	"github.com/npatil9/expense_tracker_app/internal/utils"
	"github.com/shopspring/decimal"
)

// ExpenseExtremeResponse is the highest/lowest expense view. An empty store
// yields the "no data" sentinel: zero amount, description "N/A".
type ExpenseExtremeResponse struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Formatted   string          `json:"formatted"`
}

// StatsResponse is the aggregate statistics view over the full history.
type StatsResponse struct {
	MonthlyTotals  map[string]decimal.Decimal `json:"monthlyTotals"`
	CategoryTotals map[string]decimal.Decimal `json:"categoryTotals"`
	ThisMonthTotal decimal.Decimal            `json:"thisMonthTotal"`
	LastMonthTotal decimal.Decimal            `json:"lastMonthTotal"`
	MonthlyChange  decimal.Decimal            `json:"monthlyChange"`
	DailyAverage   decimal.Decimal            `json:"dailyAverage"`
	HighestExpense ExpenseExtremeResponse     `json:"highestExpense"`
	LowestExpense  ExpenseExtremeResponse     `json:"lowestExpense"`
	TopCategory    *CategoryResponse          `json:"topCategory"`
}

// TrendPointResponse is one month bucket of the charting series.
type TrendPointResponse struct {
	Month        string          `json:"month"`
	Label        string          `json:"label"`
	Amount       decimal.Decimal `json:"amount"`
	RunningTotal decimal.Decimal `json:"runningTotal"`
	Growth       decimal.Decimal `json:"growth"`
}

// MonthTotalResponse is one row of the summary tab's monthly overview.
type MonthTotalResponse struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// SummaryResponse is the summary tab: monthly overview over the full history
// plus extremes and the average over the currently filtered set.
type SummaryResponse struct {
	MonthlyOverview []MonthTotalResponse   `json:"monthlyOverview"`
	HighestExpense  ExpenseExtremeResponse `json:"highestExpense"`
	LowestExpense   ExpenseExtremeResponse `json:"lowestExpense"`
	AverageExpense  decimal.Decimal        `json:"averageExpense"`
	ExpenseCount    int                    `json:"expenseCount"`
}

// ToExpenseExtremeResponse renders an extremal expense, mapping a nil
// expense to the "no data" sentinel rather than a zero-amount record.
func ToExpenseExtremeResponse(e *domain.Expense, currency domain.Currency) ExpenseExtremeResponse {
	if e == nil {
		return ExpenseExtremeResponse{
			Amount:      decimal.Zero,
			Description: "N/A",
			Formatted:   utils.FormatAmount(decimal.Zero, currency),
		}
	}
	return ExpenseExtremeResponse{
		Amount:      e.Amount,
		Description: e.Description,
		Formatted:   utils.FormatAmount(e.Amount, currency),
	}
}

// ToStatsResponse converts domain stats to the API view.
func ToStatsResponse(stats *domain.Stats, currency domain.Currency) StatsResponse {
	res := StatsResponse{
		MonthlyTotals:  stats.MonthlyTotals,
		CategoryTotals: stats.CategoryTotals,
		ThisMonthTotal: stats.ThisMonthTotal,
		LastMonthTotal: stats.LastMonthTotal,
		MonthlyChange:  stats.MonthlyChange,
		DailyAverage:   stats.DailyAverage,
		HighestExpense: ToExpenseExtremeResponse(stats.Highest, currency),
		LowestExpense:  ToExpenseExtremeResponse(stats.Lowest, currency),
	}
	if stats.TopCategory != nil {
		cat := ToCategoryResponse(*stats.TopCategory)
		res.TopCategory = &cat
	}
	return res
}

// ToTrendResponse converts the trend series to the API view.
func ToTrendResponse(points []domain.TrendPoint) []TrendPointResponse {
	res := make([]TrendPointResponse, len(points))
	for i, p := range points {
		res[i] = TrendPointResponse{
			Month:        p.Month,
			Label:        p.Label,
			Amount:       p.Amount,
			RunningTotal: p.RunningTotal,
			Growth:       p.Growth,
		}
	}
	return res
}

// ToSummaryResponse builds the summary tab view. The monthly overview is
// sorted by month descending, newest first.
func ToSummaryResponse(stats *domain.Stats, filteredTotal decimal.Decimal, filteredCount int, currency domain.Currency) SummaryResponse {
	overview := make([]MonthTotalResponse, 0, len(stats.MonthlyTotals))
	for month, total := range stats.MonthlyTotals {
		overview = append(overview, MonthTotalResponse{Month: month, Total: total})
	}
	sort.Slice(overview, func(i, j int) bool {
		return overview[i].Month > overview[j].Month
	})

	// Average over the filtered set; count floored at 1 so an empty list
	// yields a zero average instead of a division error.
	divisor := filteredCount
	if divisor == 0 {
		divisor = 1
	}
	average := filteredTotal.Div(decimal.NewFromInt(int64(divisor))).Round(2)

	return SummaryResponse{
		MonthlyOverview: overview,
		HighestExpense:  ToExpenseExtremeResponse(stats.Highest, currency),
		LowestExpense:   ToExpenseExtremeResponse(stats.Lowest, currency),
		AverageExpense:  average,
		ExpenseCount:    filteredCount,
	}
}
