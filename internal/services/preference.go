package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
)

//go:generate mockgen -source=preference.go -destination=preference_mock.go -package=services

// PreferenceKey is the per-visitor storage key of the chosen currency.
const PreferenceKey = "selectedCurrency"

// RateChecker reports whether a currency can be displayed.
type RateChecker interface {
	Supports(code models.CurrencyCode) bool
}

// UserPreference persists a visitor's explicitly chosen currency.
type UserPreference struct {
	store KeyValueStore
	rates RateChecker
}

// NewUserPreference creates a preference store.
func NewUserPreference(store KeyValueStore, rates RateChecker) *UserPreference {
	return &UserPreference{store: store, rates: rates}
}

func preferenceKey(visitorID string) string {
	return fmt.Sprintf("visitor:%s:%s", visitorID, PreferenceKey)
}

// Get returns the stored code when one exists and is still supported.
func (p *UserPreference) Get(ctx context.Context, visitorID string) (models.CurrencyCode, bool) {
	raw, ok, err := p.store.Get(ctx, preferenceKey(visitorID))
	if err != nil {
		logger.Log.Warnw("preference read failed", "visitor_id", visitorID, "error", err)
		return "", false
	}
	if !ok {
		return "", false
	}

	code := models.CurrencyCode(raw)
	if !p.rates.Supports(code) {
		logger.Log.Warnw("ignoring unsupported stored preference", "visitor_id", visitorID, "currency", raw)
		return "", false
	}
	return code, true
}

// Set overwrites the stored code.
func (p *UserPreference) Set(ctx context.Context, visitorID string, code models.CurrencyCode) error {
	if err := p.store.Set(ctx, preferenceKey(visitorID), string(code)); err != nil {
		logger.Log.Errorw("preference write failed", "visitor_id", visitorID, "error", err)
		return err
	}
	return nil
}
