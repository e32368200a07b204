package services

import (
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	million = decimal.NewFromInt(1_000_000)
	lakh    = decimal.NewFromInt(100_000)
	mille   = decimal.NewFromInt(1_000)
)

// rounding tiers for non-base targets, keyed by upper bound of the converted amount
var roundingTiers = []struct {
	below decimal.Decimal
	step  decimal.Decimal
}{
	{below: decimal.NewFromInt(50), step: decimal.NewFromInt(1)},
	{below: decimal.NewFromInt(1_000), step: decimal.NewFromInt(10)},
	{below: decimal.NewFromInt(10_000), step: decimal.NewFromInt(100)},
}

var topTierStep = decimal.NewFromInt(1_000)

// PriceFormatter converts base-currency amounts with a fixed rate table and
// renders them for display.
type PriceFormatter struct {
	rates *models.RateSnapshot
}

// NewPriceFormatter binds a formatter to a rate snapshot.
func NewPriceFormatter(rates *models.RateSnapshot) *PriceFormatter {
	return &PriceFormatter{rates: rates}
}

func (f *PriceFormatter) lookup(code models.CurrencyCode) (models.ExchangeRate, error) {
	r, ok := f.rates.Rate(code)
	if !ok {
		logger.Log.Errorw("unsupported currency", "currency", code)
		return models.ExchangeRate{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return r, nil
}

// Convert multiplies by the target rate and rounds for display. The base
// currency is rounded to the nearest unit; other currencies are rounded to
// 1, 10, 100 or 1,000 depending on magnitude. Amounts must not be negative.
func (f *PriceFormatter) Convert(amountBase decimal.Decimal, code models.CurrencyCode) (decimal.Decimal, error) {
	if amountBase.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNegativeAmount, amountBase)
	}
	r, err := f.lookup(code)
	if err != nil {
		return decimal.Zero, err
	}

	converted := amountBase.Mul(decimal.NewFromFloat(r.Rate))
	if code == models.BaseCurrency {
		return converted.Round(0), nil
	}

	step := topTierStep
	for _, tier := range roundingTiers {
		if converted.LessThan(tier.below) {
			step = tier.step
			break
		}
	}
	return converted.Div(step).Round(0).Mul(step), nil
}

// Format renders {symbol}{grouped amount}. With showOriginal and a non-base
// target the base amount follows in parentheses.
func (f *PriceFormatter) Format(amountBase decimal.Decimal, code models.CurrencyCode, showOriginal bool) (string, error) {
	converted, err := f.Convert(amountBase, code)
	if err != nil {
		return "", err
	}
	info, _ := models.Lookup(code)

	out := info.Symbol + group(converted, info.Locale)
	if showOriginal && code != models.BaseCurrency {
		out += " (" + f.FormatOriginal(amountBase) + ")"
	}
	return out, nil
}

// FormatOriginal renders a base-currency amount in the base locale.
func (f *PriceFormatter) FormatOriginal(amountBase decimal.Decimal) string {
	info, _ := models.Lookup(models.BaseCurrency)
	return info.Symbol + group(amountBase, info.Locale)
}

// FormatCompact abbreviates an already converted amount: M for millions,
// L for lakhs, K for thousands.
func FormatCompact(amount decimal.Decimal) string {
	switch {
	case amount.GreaterThanOrEqual(million):
		return strings.TrimSuffix(amount.Div(million).StringFixed(1), ".0") + "M"
	case amount.GreaterThanOrEqual(lakh):
		return strings.TrimSuffix(amount.Div(lakh).StringFixed(1), ".0") + "L"
	case amount.GreaterThanOrEqual(mille):
		return amount.Div(mille).StringFixed(0) + "K"
	}
	return amount.String()
}

// FormatCompact calls the package-level FormatCompact.
func (f *PriceFormatter) FormatCompact(amount decimal.Decimal) string {
	return FormatCompact(amount)
}

// FormatCompactPrice converts and abbreviates: {symbol}{compact}.
func (f *PriceFormatter) FormatCompactPrice(amountBase decimal.Decimal, code models.CurrencyCode) (string, error) {
	converted, err := f.Convert(amountBase, code)
	if err != nil {
		return "", err
	}
	info, _ := models.Lookup(code)
	return info.Symbol + FormatCompact(converted), nil
}

// FormatStartingPrice is the catalog card form: {symbol}{en-US grouped}+.
func (f *PriceFormatter) FormatStartingPrice(amountBase decimal.Decimal, code models.CurrencyCode) (string, error) {
	converted, err := f.Convert(amountBase, code)
	if err != nil {
		return "", err
	}
	info, _ := models.Lookup(code)
	return info.Symbol + group(converted, "en-US") + "+", nil
}

func group(amount decimal.Decimal, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)
	if amount.Equal(amount.Truncate(0)) {
		return p.Sprintf("%d", amount.IntPart())
	}
	return p.Sprint(number.Decimal(amount.InexactFloat64(), number.MaxFractionDigits(3)))
}
