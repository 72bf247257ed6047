package dto

import (
	"github.com/npatil9/expense_tracker_app/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// SwitchCurrencyRequest defines the data needed to change the active display
// currency.
type SwitchCurrencyRequest struct {
	Code string `json:"code" binding:"required,len=3,uppercase"`
}

// SwitchCurrencyResponse reports the result of a currency switch: the new
// active currency and how many stored expenses were re-denominated.
type SwitchCurrencyResponse struct {
	Currency       CurrencyResponse `json:"currency"`
	ConvertedCount int              `json:"convertedCount"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO.
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:   curr.Code,
		Symbol: curr.Symbol,
		Name:   curr.Name,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
