package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-currency-display/internal/dom"
	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=session.go -destination=session_mock.go -package=services

// RateProvider is the part of RateStore a session drives.
type RateProvider interface {
	Init(ctx context.Context) *models.RateSnapshot
	Refresh(ctx context.Context) (*models.RateSnapshot, error)
	Snapshot() *models.RateSnapshot
}

// PreferenceReader loads a visitor's stored currency.
type PreferenceReader interface {
	Get(ctx context.Context, visitorID string) (models.CurrencyCode, bool)
}

// CurrencyDetector guesses a currency from the visitor's address.
type CurrencyDetector interface {
	Detect(ctx context.Context, visitorID, ip string) models.Detection
}

// CurrencyApplier applies a currency to a context and page.
type CurrencyApplier interface {
	ApplyCurrency(ctx context.Context, doc *dom.Document, cc *CurrencyContext, code models.CurrencyCode, origin Origin) error
}

// CurrencySession runs the page-load flow: rates, then stored preference,
// then location detection, then the base currency.
type CurrencySession struct {
	rates    RateProvider
	prefs    PreferenceReader
	detector CurrencyDetector
	display  CurrencyApplier

	reload singleflight.Group
	now    func() time.Time
}

// NewCurrencySession creates a session service.
func NewCurrencySession(
	rates RateProvider,
	prefs PreferenceReader,
	detector CurrencyDetector,
	display CurrencyApplier,
) *CurrencySession {
	return &CurrencySession{
		rates:    rates,
		prefs:    prefs,
		detector: detector,
		display:  display,
		now:      time.Now,
	}
}

// currentRates returns the resident table, reloading it through Init when it
// is older than RatesCacheTTL. The hardcoded defaults are never fresh, so a
// failed load is retried on the next call. Concurrent reloads share one Init,
// which outlives the request that triggered it.
func (s *CurrencySession) currentRates(ctx context.Context) *models.RateSnapshot {
	if snap := s.rates.Snapshot(); snap.FreshAt(s.now(), RatesCacheTTL) {
		return snap
	}

	v, _, _ := s.reload.Do("rates", func() (interface{}, error) {
		if snap := s.rates.Snapshot(); snap.FreshAt(s.now(), RatesCacheTTL) {
			return snap, nil
		}
		snap := s.rates.Init(context.WithoutCancel(ctx))
		logger.Log.Infow("currency rates loaded", "fetched_at", snap.FetchedAt)
		return snap, nil
	})
	return v.(*models.RateSnapshot).Clone()
}

// Resolve picks the visitor's currency and applies it to doc, which may be nil.
func (s *CurrencySession) Resolve(ctx context.Context, doc *dom.Document, visitorID, ip string) (*CurrencyContext, error) {
	cc := NewCurrencyContext(visitorID, s.currentRates(ctx))

	if code, ok := s.prefs.Get(ctx, visitorID); ok {
		if err := s.display.ApplyCurrency(ctx, doc, cc, code, OriginPreference); err != nil {
			return nil, err
		}
		return cc, nil
	}

	det := s.detector.Detect(ctx, visitorID, ip)
	cc.Detection = &det

	code, origin := models.BaseCurrency, OriginDefault
	if det.Detected && det.Currency != models.BaseCurrency && cc.Rates.Supports(det.Currency) {
		code, origin = det.Currency, OriginDetected
	}
	if err := s.display.ApplyCurrency(ctx, doc, cc, code, origin); err != nil {
		return nil, err
	}
	return cc, nil
}

// ChangeCurrency applies and persists a manual choice.
func (s *CurrencySession) ChangeCurrency(ctx context.Context, doc *dom.Document, visitorID, code string) (*CurrencyContext, error) {
	parsed, ok := models.ParseCurrencyCode(code)
	if !ok {
		logger.Log.Errorw("invalid currency", "currency", code)
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}

	cc := NewCurrencyContext(visitorID, s.currentRates(ctx))
	if err := s.display.ApplyCurrency(ctx, doc, cc, parsed, OriginUser); err != nil {
		return nil, err
	}
	logger.Log.Infow("currency changed", "visitor_id", visitorID, "currency", parsed)
	return cc, nil
}

// RefreshRates forces a live rate fetch.
func (s *CurrencySession) RefreshRates(ctx context.Context) (*models.RateSnapshot, error) {
	return s.rates.Refresh(ctx)
}

// Rates returns the resident table, reloading it first when stale.
func (s *CurrencySession) Rates(ctx context.Context) *models.RateSnapshot {
	return s.currentRates(ctx)
}
