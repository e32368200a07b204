package services

import (
	"github.com/sbilibin2017/gw-currency-display/internal/models"
)

// Origin records how the active currency was chosen.
type Origin string

const (
	OriginDefault    Origin = "default"
	OriginPreference Origin = "preference"
	OriginDetected   Origin = "detected"
	OriginUser       Origin = "user"
)

// CurrencyContext carries one visitor's active currency and the rate table a
// render uses. Each request builds its own.
type CurrencyContext struct {
	VisitorID string
	Active    models.CurrencyCode
	Rates     *models.RateSnapshot
	Origin    Origin
	Detection *models.Detection
}

// NewCurrencyContext starts a context in the base currency.
func NewCurrencyContext(visitorID string, rates *models.RateSnapshot) *CurrencyContext {
	return &CurrencyContext{
		VisitorID: visitorID,
		Active:    models.BaseCurrency,
		Rates:     rates,
		Origin:    OriginDefault,
	}
}

// Formatter returns a formatter bound to the context's rate table.
func (c *CurrencyContext) Formatter() *PriceFormatter {
	return NewPriceFormatter(c.Rates)
}

// Info returns display info for the active currency.
func (c *CurrencyContext) Info() models.CurrencyInfo {
	info, ok := models.Lookup(c.Active)
	if !ok {
		info, _ = models.Lookup(models.BaseCurrency)
	}
	return info
}

// Response converts the context to its API form.
func (c *CurrencyContext) Response() models.CurrencyResponse {
	info := c.Info()
	return models.CurrencyResponse{
		Currency:  info.Code,
		Symbol:    info.Symbol,
		Name:      info.Name,
		Source:    string(c.Origin),
		Detection: c.Detection,
	}
}
