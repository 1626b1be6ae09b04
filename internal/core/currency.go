package core

// Currency is a short ISO-style currency code (e.g. "USD").
type Currency string

// DefaultCurrency is assumed whenever a record carries no currency code.
const DefaultCurrency Currency = "USD"

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	BGN Currency = "BGN"
)

// CurrencyInfo describes a supported currency for display purposes.
type CurrencyInfo struct {
	Code   Currency `json:"code"`
	Symbol string   `json:"symbol"`
	Name   string   `json:"name"`
}

// Currencies is the closed-but-extensible set of known currencies.
var Currencies = []CurrencyInfo{
	{Code: USD, Symbol: "$", Name: "US Dollar"},
	{Code: EUR, Symbol: "€", Name: "Euro"},
	{Code: GBP, Symbol: "£", Name: "British Pound"},
	{Code: BGN, Symbol: "лв", Name: "Bulgarian Lev"},
}

// Known reports whether the code is one of the supported currencies.
func (c Currency) Known() bool {
	for _, ci := range Currencies {
		if ci.Code == c {
			return true
		}
	}
	return false
}

// OrDefault returns the currency itself, or DefaultCurrency when empty.
func (c Currency) OrDefault() Currency {
	if c == "" {
		return DefaultCurrency
	}
	return c
}

// Convert applies a multiplicative exchange rate to an amount. No rounding,
// no validation; the caller is trusted to pass a rate for the right pair.
func Convert(amount, rate float64) float64 {
	return amount * rate
}
