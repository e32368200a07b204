package services

import (
	"errors"
	"testing"

	"github.com/sbilibin2017/gw-currency-display/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultFormatter() *PriceFormatter {
	return NewPriceFormatter(models.DefaultRateSnapshot())
}

func TestPriceFormatter_Convert(t *testing.T) {
	f := defaultFormatter()

	tests := []struct {
		name   string
		amount string
		code   models.CurrencyCode
		want   int64
	}{
		{name: "small_rounds_to_one", amount: "42", code: models.USD, want: 1},
		{name: "below_50_nearest_unit", amount: "4000", code: models.USD, want: 48},
		{name: "half_rounds_up", amount: "125", code: models.USD, want: 2},
		{name: "below_1000_nearest_ten", amount: "4500", code: models.USD, want: 50},
		{name: "banner_price", amount: "65000", code: models.USD, want: 780},
		{name: "tier_boundary_rounds_up", amount: "83000", code: models.USD, want: 1000},
		{name: "below_10000_nearest_hundred", amount: "100000", code: models.USD, want: 1200},
		{name: "large_nearest_thousand", amount: "1291667", code: models.USD, want: 16000},
		{name: "gbp", amount: "100000", code: models.GBP, want: 950},
		{name: "myr", amount: "100000", code: models.MYR, want: 5300},
		{name: "base_currency_plain_rounding", amount: "123456", code: models.INR, want: 123456},
		{name: "base_currency_half_up", amount: "99.5", code: models.INR, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Convert(decimal.RequireFromString(tt.amount), tt.code)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s want %d", got, tt.want)
		})
	}
}

func TestPriceFormatter_NegativeAmount(t *testing.T) {
	f := defaultFormatter()

	_, err := f.Convert(decimal.NewFromFloat(-0.5), models.INR)
	assert.True(t, errors.Is(err, ErrNegativeAmount))

	_, err = f.Format(decimal.NewFromInt(-4125), models.USD, true)
	assert.True(t, errors.Is(err, ErrNegativeAmount))

	got, err := f.Convert(decimal.NewFromFloat(0.5), models.INR)
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())
}

func TestPriceFormatter_UnknownCurrency(t *testing.T) {
	f := defaultFormatter()

	_, err := f.Convert(decimal.NewFromInt(100), "ZZZ")
	assert.True(t, errors.Is(err, ErrUnknownCurrency))

	_, err = f.Format(decimal.NewFromInt(100), "ZZZ", true)
	assert.True(t, errors.Is(err, ErrUnknownCurrency))

	_, err = f.FormatCompactPrice(decimal.NewFromInt(100), "ZZZ")
	assert.True(t, errors.Is(err, ErrUnknownCurrency))

	_, err = f.FormatStartingPrice(decimal.NewFromInt(100), "ZZZ")
	assert.True(t, errors.Is(err, ErrUnknownCurrency))
}

func TestPriceFormatter_Format(t *testing.T) {
	f := defaultFormatter()

	tests := []struct {
		name         string
		amount       int64
		code         models.CurrencyCode
		showOriginal bool
		want         string
	}{
		{name: "usd", amount: 100000, code: models.USD, want: "$1,200"},
		{name: "usd_with_original", amount: 100000, code: models.USD, showOriginal: true, want: "$1,200 (₹1,00,000)"},
		{name: "eur_grouping", amount: 1000000, code: models.EUR, want: "€11,000"},
		{name: "inr_regional_grouping", amount: 100000, code: models.INR, want: "₹1,00,000"},
		{name: "inr_never_shows_original", amount: 650, code: models.INR, showOriginal: true, want: "₹650"},
		{name: "multi_letter_symbol", amount: 100000, code: models.MYR, want: "RM5,300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(decimal.NewFromInt(tt.amount), tt.code, tt.showOriginal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceFormatter_FormatOriginal(t *testing.T) {
	f := defaultFormatter()
	assert.Equal(t, "₹12,34,567", f.FormatOriginal(decimal.NewFromInt(1234567)))
	assert.Equal(t, "₹999", f.FormatOriginal(decimal.NewFromInt(999)))
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{amount: 1500000, want: "1.5M"},
		{amount: 1000000, want: "1M"},
		{amount: 250000, want: "2.5L"},
		{amount: 100000, want: "1L"},
		{amount: 4500, want: "5K"},
		{amount: 65000, want: "65K"},
		{amount: 1000, want: "1K"},
		{amount: 999, want: "999"},
		{amount: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCompact(decimal.NewFromInt(tt.amount)))
		})
	}
}

func TestPriceFormatter_FormatCompactPrice(t *testing.T) {
	f := defaultFormatter()

	got, err := f.FormatCompactPrice(decimal.NewFromInt(1000000), models.USD)
	require.NoError(t, err)
	assert.Equal(t, "$12K", got)

	got, err = f.FormatCompactPrice(decimal.NewFromInt(1000000), models.INR)
	require.NoError(t, err)
	assert.Equal(t, "₹1M", got)

	assert.Equal(t, "2.5L", f.FormatCompact(decimal.NewFromInt(250000)))
}

func TestPriceFormatter_FormatStartingPrice(t *testing.T) {
	f := defaultFormatter()

	got, err := f.FormatStartingPrice(decimal.NewFromInt(100000), models.USD)
	require.NoError(t, err)
	assert.Equal(t, "$1,200+", got)

	got, err = f.FormatStartingPrice(decimal.NewFromInt(150000), models.INR)
	require.NoError(t, err)
	assert.Equal(t, "₹150,000+", got)
}
