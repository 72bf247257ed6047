package dto

import (
	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RatesResponse exposes the exchange-rate table and its load state. While
// the source is "loading" the one-shot fetch has not completed yet and the
// table holds the static fallback rates.
type RatesResponse struct {
	Base   string                     `json:"base"`
	Source string                     `json:"source"`
	Rates  map[string]decimal.Decimal `json:"rates"`
}

// ConvertResponse is the result of a one-off conversion.
type ConvertResponse struct {
	Amount decimal.Decimal `json:"amount"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Result decimal.Decimal `json:"result"`
}

// ToRatesResponse converts a rate table snapshot to the API view.
func ToRatesResponse(table domain.RateTable, base string, source domain.RateSource) RatesResponse {
	return RatesResponse{
		Base:   base,
		Source: string(source),
		Rates:  table,
	}
}
