package dto

import (
	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record a new expense.
// The date is not client-settable on create; the server stamps today.
// Amount is a pointer so a missing field is distinguishable from zero and
// rejected by binding; malformed numbers are rejected at this boundary
// rather than propagating into aggregate sums.
type CreateExpenseRequest struct {
	Description string           `json:"description" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Category    string           `json:"category" binding:"required"`
}

// UpdateExpenseRequest defines the data for editing an expense. All fields
// are replaceable except the id, including the date.
type UpdateExpenseRequest struct {
	Description string           `json:"description" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	Date        string           `json:"date" binding:"required,datetime=2006-01-02"`
}

// ExpenseResponse defines the data returned for a single expense. The
// category name is resolved display metadata; unknown stored ids resolve to
// the "Other" category without rewriting the stored id.
type ExpenseResponse struct {
	ID           int64           `json:"id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	CategoryName string          `json:"categoryName"`
	Date         string          `json:"date"`
}

// ListExpensesResponse is the filtered list view plus its visible total.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    decimal.Decimal   `json:"total"`
	Count    int               `json:"count"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToExpenseResponse converts a domain.Expense to an ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.ID,
		Description:  e.Description,
		Amount:       e.Amount,
		Category:     e.Category,
		CategoryName: domain.CategoryByID(e.Category).Name,
		Date:         e.Date.String(),
	}
}

// ToListExpensesResponse converts a filtered expense slice and its total to
// the list view DTO.
func ToListExpensesResponse(expenses []domain.Expense, total decimal.Decimal) ListExpensesResponse {
	res := ListExpensesResponse{
		Expenses: make([]ExpenseResponse, len(expenses)),
		Total:    total,
		Count:    len(expenses),
	}
	for i := range expenses {
		res.Expenses[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}

// ToCategoryResponse converts a domain.Category to a CategoryResponse DTO.
func ToCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

// ToListCategoryResponse converts the fixed category set to DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = ToCategoryResponse(c)
	}
	return res
}
