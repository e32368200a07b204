package services

import (
	"context"

	"github.com/sbilibin2017/gw-currency-display/internal/dom"
	"github.com/shopspring/decimal"
)

// Homepage amounts in the base currency.
const (
	BannerFromPrice     = 65_000
	HourlyRate          = 650
	FixedProjectMin     = 25_000
	FixedProjectMax     = 1_000_000
	MonthlyDedicatedMin = 30_000
	MonthlyDedicatedMax = 80_000
)

const (
	bannerPriceID      = "banner-price-range"
	fixedProjectID     = "fixed-project-price"
	monthlyDedicatedID = "monthly-dedicated-price"
)

// HomepagePricing rewrites the homepage banner and pricing section.
type HomepagePricing struct{}

// NewHomepagePricing creates the homepage renderer.
func NewHomepagePricing() *HomepagePricing {
	return &HomepagePricing{}
}

// Render has the RerenderHook signature. It runs after price tags are
// rewritten, so the hourly rate ends up in its short form.
func (h *HomepagePricing) Render(ctx context.Context, doc *dom.Document, cc *CurrencyContext) error {
	f := cc.Formatter()
	sym := cc.Info().Symbol

	compact := func(amount int64) (string, error) {
		converted, err := f.Convert(decimal.NewFromInt(amount), cc.Active)
		if err != nil {
			return "", err
		}
		return sym + FormatCompact(converted), nil
	}

	if el := doc.FindByID(bannerPriceID); el != nil {
		from, err := compact(BannerFromPrice)
		if err != nil {
			return err
		}
		dom.SetText(el, from+"+")
	}

	for _, el := range doc.FindByAttrValue(PriceAttr, "650") {
		converted, err := f.Convert(decimal.NewFromInt(HourlyRate), cc.Active)
		if err != nil {
			return err
		}
		dom.SetText(el, sym+converted.Round(0).String())
	}

	ranges := []struct {
		id       string
		min, max int64
	}{
		{id: fixedProjectID, min: FixedProjectMin, max: FixedProjectMax},
		{id: monthlyDedicatedID, min: MonthlyDedicatedMin, max: MonthlyDedicatedMax},
	}
	for _, r := range ranges {
		el := doc.FindByID(r.id)
		if el == nil {
			continue
		}
		lo, err := compact(r.min)
		if err != nil {
			return err
		}
		hi, err := compact(r.max)
		if err != nil {
			return err
		}
		dom.SetText(el, lo+"-"+hi)
	}
	return nil
}

// Hook returns Render as a RerenderHook.
func (h *HomepagePricing) Hook() RerenderHook {
	return h.Render
}
