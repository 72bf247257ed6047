package domain

import "github.com/shopspring/decimal"

// RateTable maps a currency code to its value relative to the base currency.
type RateTable map[string]decimal.Decimal

// Clone returns a copy of the table so callers can't mutate the live one.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for code, rate := range t {
		out[code] = rate
	}
	return out
}

// RateSource describes where the current rate table came from.
type RateSource string

const (
	// RateSourceLoading means the one-shot fetch has not settled yet and
	// conversions run against the static fallback table.
	RateSourceLoading RateSource = "loading"
	// RateSourceLive means the fetch succeeded.
	RateSourceLive RateSource = "live"
	// RateSourceFallback means the fetch failed and the static table is in
	// use for the remainder of the session.
	RateSourceFallback RateSource = "fallback"
)

// FallbackRates is the static approximate table used when the rate fetch
// fails. It covers exactly the configured currency list.
func FallbackRates() RateTable {
	return RateTable{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.85"),
		"GBP": decimal.RequireFromString("0.73"),
		"JPY": decimal.NewFromInt(110),
		"INR": decimal.NewFromInt(75),
	}
}
