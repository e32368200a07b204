package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-currency-display/internal/dom"
	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
	"github.com/sbilibin2017/gw-currency-display/internal/services"
)

//go:generate mockgen -source=currency.go -destination=currency_mock.go -package=handlers

// CurrencyResolver defines the interface that the service must implement.
type CurrencyResolver interface {
	Resolve(ctx context.Context, doc *dom.Document, visitorID, ip string) (*services.CurrencyContext, error)
}

// CurrencyChanger defines the interface that the service must implement.
type CurrencyChanger interface {
	ChangeCurrency(ctx context.Context, doc *dom.Document, visitorID, code string) (*services.CurrencyContext, error)
}

// NewListCurrenciesHandler returns an HTTP handler listing the supported currencies.
// @Summary List currencies
// @Description Returns the supported display currencies in selector order
// @Tags currency
// @Produce json
// @Success 200 {array} models.CurrencyInfo "Supported currencies"
// @Router /currencies [get]
func NewListCurrenciesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.Supported())
	}
}

// NewGetCurrencyHandler returns an HTTP handler resolving the visitor's display currency.
// @Summary Get active currency
// @Description Returns the stored preference, or the currency detected from the client IP
// @Tags currency
// @Produce json
// @Success 200 {object} models.CurrencyResponse "Active currency"
// @Failure 401 {object} models.ErrorResponse "No visitor session"
// @Failure 500 {object} models.ErrorResponse "Currency could not be resolved"
// @Router /currency [get]
func NewGetCurrencyHandler(svc CurrencyResolver, visitor VisitorGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitorID, ok := visitor(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		cc, err := svc.Resolve(r.Context(), nil, visitorID, clientIP(r))
		if err != nil {
			logger.Log.Errorw("failed to resolve currency", "visitor_id", visitorID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to resolve currency")
			return
		}
		writeJSON(w, http.StatusOK, cc.Response())
	}
}

// NewSetCurrencyHandler returns an HTTP handler for a manual currency change.
// @Summary Change currency
// @Description Applies and stores the visitor's chosen display currency
// @Tags currency
// @Accept json
// @Produce json
// @Param request body models.CurrencyRequest true "Currency Request"
// @Success 200 {object} models.CurrencyResponse "Currency changed"
// @Failure 400 {object} models.ErrorResponse "Invalid request or unknown currency"
// @Failure 401 {object} models.ErrorResponse "No visitor session"
// @Failure 500 {object} models.ErrorResponse "Currency could not be changed"
// @Router /currency [put]
func NewSetCurrencyHandler(svc CurrencyChanger, visitor VisitorGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitorID, ok := visitor(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req models.CurrencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		cc, err := svc.ChangeCurrency(r.Context(), nil, visitorID, req.Currency)
		if err != nil {
			if errors.Is(err, services.ErrUnknownCurrency) {
				writeError(w, http.StatusBadRequest, "Unknown currency")
				return
			}
			logger.Log.Errorw("failed to change currency", "visitor_id", visitorID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to change currency")
			return
		}
		writeJSON(w, http.StatusOK, cc.Response())
	}
}
