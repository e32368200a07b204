package models

import "strings"

// CurrencyCode is an ISO 4217 code from the supported set.
type CurrencyCode string

// Supported currency codes
const (
	INR CurrencyCode = "INR"
	USD CurrencyCode = "USD"
	GBP CurrencyCode = "GBP"
	EUR CurrencyCode = "EUR"
	SGD CurrencyCode = "SGD"
	MYR CurrencyCode = "MYR"
	AUD CurrencyCode = "AUD"
	CAD CurrencyCode = "CAD"
)

// BaseCurrency is the currency every source amount is authored in.
const BaseCurrency = INR

// CurrencyInfo describes how a currency is displayed.
type CurrencyInfo struct {
	Code   CurrencyCode `json:"code"`
	Symbol string       `json:"symbol"`
	Name   string       `json:"name"`
	Region string       `json:"region"` // Selector label, e.g. "India"
	Locale string       `json:"locale"` // BCP 47 tag used for digit grouping
}

var currencies = []CurrencyInfo{
	{Code: INR, Symbol: "₹", Name: "Indian Rupee", Region: "India", Locale: "en-IN"},
	{Code: USD, Symbol: "$", Name: "US Dollar", Region: "US", Locale: "en-US"},
	{Code: GBP, Symbol: "£", Name: "British Pound", Region: "UK", Locale: "en-US"},
	{Code: EUR, Symbol: "€", Name: "Euro", Region: "Europe", Locale: "en-US"},
	{Code: SGD, Symbol: "S$", Name: "Singapore Dollar", Region: "Singapore", Locale: "en-US"},
	{Code: MYR, Symbol: "RM", Name: "Malaysian Ringgit", Region: "Malaysia", Locale: "en-US"},
	{Code: AUD, Symbol: "A$", Name: "Australian Dollar", Region: "Australia", Locale: "en-US"},
	{Code: CAD, Symbol: "C$", Name: "Canadian Dollar", Region: "Canada", Locale: "en-US"},
}

// hardcoded fallback rates, units of currency per 1 INR
var defaultRates = map[CurrencyCode]float64{
	INR: 1,
	USD: 0.012,
	GBP: 0.0095,
	EUR: 0.011,
	SGD: 0.016,
	MYR: 0.053,
	AUD: 0.018,
	CAD: 0.017,
}

// Supported returns the supported currencies in selector order.
func Supported() []CurrencyInfo {
	out := make([]CurrencyInfo, len(currencies))
	copy(out, currencies)
	return out
}

// Lookup returns display info for a supported code.
func Lookup(code CurrencyCode) (CurrencyInfo, bool) {
	for _, c := range currencies {
		if c.Code == code {
			return c, true
		}
	}
	return CurrencyInfo{}, false
}

// ParseCurrencyCode normalizes user input and checks it against the supported set.
func ParseCurrencyCode(s string) (CurrencyCode, bool) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := Lookup(code); !ok {
		return "", false
	}
	return code, true
}

// DefaultRates returns the last-resort rate table used when neither the
// cache nor the remote source is available.
func DefaultRates() map[CurrencyCode]float64 {
	out := make(map[CurrencyCode]float64, len(defaultRates))
	for k, v := range defaultRates {
		out[k] = v
	}
	return out
}

// Country to currency mapping, keyed by ISO country code and by name.
var countryCurrency = map[string]CurrencyCode{
	"US": USD, "United States": USD,
	"GB": GBP, "United Kingdom": GBP, "UK": GBP,
	"DE": EUR, "Germany": EUR, "FR": EUR, "France": EUR,
	"IT": EUR, "Italy": EUR, "ES": EUR, "Spain": EUR,
	"SG": SGD, "Singapore": SGD,
	"MY": MYR, "Malaysia": MYR,
	"AU": AUD, "Australia": AUD,
	"CA": CAD, "Canada": CAD,
	"IN": INR, "India": INR,
}

// CurrencyForCountry maps a country to its currency, trying the country code
// before the country name.
func CurrencyForCountry(countryCode, countryName string) (CurrencyCode, bool) {
	if c, ok := countryCurrency[countryCode]; ok {
		return c, true
	}
	if c, ok := countryCurrency[countryName]; ok {
		return c, true
	}
	return "", false
}
