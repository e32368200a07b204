package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-currency-display/internal/events"
	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
)

//go:generate mockgen -source=location.go -destination=location_mock.go -package=services

// NotificationDismissAfter is how long the detection banner stays visible.
const NotificationDismissAfter = 5 * time.Second

// GeoSource resolves an IP address to a country.
type GeoSource interface {
	Lookup(ctx context.Context, ip string) (*models.GeoLocation, error)
}

// LocationDetector guesses a visitor's currency from their IP address.
type LocationDetector struct {
	geo       GeoSource
	publisher Publisher
}

// NewLocationDetector creates a detector. publisher may be nil.
func NewLocationDetector(geo GeoSource, publisher Publisher) *LocationDetector {
	return &LocationDetector{geo: geo, publisher: publisher}
}

// Detect never fails: lookup errors and unmapped countries yield the base
// currency with Detected unset. A non-base result carries a notification.
func (d *LocationDetector) Detect(ctx context.Context, visitorID, ip string) models.Detection {
	fallback := models.Detection{Currency: models.BaseCurrency}

	loc, err := d.geo.Lookup(ctx, ip)
	if err != nil {
		logger.Log.Warnw("could not detect location, using base currency", "error", fmt.Errorf("%w: %w", ErrGeoLookup, err))
		return fallback
	}

	code, ok := models.CurrencyForCountry(loc.CountryCode, loc.CountryName)
	if !ok {
		logger.Log.Infow("no currency mapped for country", "country", loc.CountryName, "country_code", loc.CountryCode)
		fallback.Country = loc.CountryName
		fallback.CountryCode = loc.CountryCode
		return fallback
	}

	det := models.Detection{
		Country:     loc.CountryName,
		CountryCode: loc.CountryCode,
		Currency:    code,
		Detected:    true,
	}
	logger.Log.Infow("location detected", "country", det.Country, "currency", det.Currency)

	if code != models.BaseCurrency {
		det.Notice = newDetectionNotice(det)
		if d.publisher != nil {
			d.publisher.Publish(ctx, events.Event{
				Type:      events.TypeNotificationShown,
				VisitorID: visitorID,
				Payload: map[string]any{
					"title":    det.Notice.Title,
					"body":     det.Notice.Body,
					"country":  det.Country,
					"currency": string(det.Currency),
				},
			})
		}
	}
	return det
}

func newDetectionNotice(det models.Detection) *models.Notification {
	info, _ := models.Lookup(det.Currency)
	return &models.Notification{
		Title:        "Location Detected: " + det.Country,
		Body:         fmt.Sprintf("Prices shown in %s (%s)", info.Name, info.Symbol),
		DismissAfter: NotificationDismissAfter,
	}
}
