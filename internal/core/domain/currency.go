package domain

// Currency represents a supported display currency. The JSON shape is also
// the persisted active-currency blob.
type Currency struct {
	Code   string `json:"code"`   // ISO 4217 code, e.g. "USD"
	Symbol string `json:"symbol"` // e.g. "$"
	Name   string `json:"name"`   // e.g. "US Dollar"
}

// supportedCurrencies is the fixed currency list. The first entry is the
// default active currency for a fresh store.
var supportedCurrencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
}

// SupportedCurrencies returns the fixed currency list.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// DefaultCurrency is the currency a fresh store starts with.
func DefaultCurrency() Currency {
	return supportedCurrencies[0]
}

// CurrencyByCode looks up a currency in the fixed list.
func CurrencyByCode(code string) (Currency, bool) {
	for _, c := range supportedCurrencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}
