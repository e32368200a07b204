package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
)

//go:generate mockgen -source=rates.go -destination=rates_mock.go -package=handlers

// RatesReader defines the interface that the service must implement.
type RatesReader interface {
	Rates(ctx context.Context) *models.RateSnapshot
}

// RatesRefresher defines the interface that the service must implement.
type RatesRefresher interface {
	RefreshRates(ctx context.Context) (*models.RateSnapshot, error)
}

// NewGetRatesHandler returns an HTTP handler for the resident exchange rate table.
// @Summary Get exchange rates
// @Description Returns the exchange rates prices are converted with, relative to INR
// @Tags rates
// @Produce json
// @Success 200 {object} models.RatesResponse "Exchange rates"
// @Router /rates [get]
func NewGetRatesHandler(svc RatesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.NewRatesResponse(svc.Rates(r.Context())))
	}
}

// NewRefreshRatesHandler returns an HTTP handler that forces a live rate fetch.
// @Summary Refresh exchange rates
// @Description Fetches live rates from the provider and replaces the cached table
// @Tags rates
// @Produce json
// @Success 200 {object} models.RatesResponse "Refreshed exchange rates"
// @Failure 502 {object} models.ErrorResponse "Rate provider unavailable"
// @Router /rates/refresh [post]
func NewRefreshRatesHandler(svc RatesRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.RefreshRates(r.Context())
		if err != nil {
			logger.Log.Errorw("rate refresh failed", "error", err)
			writeError(w, http.StatusBadGateway, "Failed to refresh exchange rates")
			return
		}
		writeJSON(w, http.StatusOK, models.NewRatesResponse(snap))
	}
}
