package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
	"github.com/sbilibin2017/gw-currency-display/internal/services"
	"github.com/shopspring/decimal"
)

// NewGetPriceHandler returns an HTTP handler formatting an INR amount for display.
// @Summary Format a price
// @Description Converts an INR amount into the visitor's currency, or the one given, and formats it
// @Tags price
// @Produce json
// @Param amount query string true "Amount in INR" example(100000)
// @Param currency query string false "Target currency, defaults to the visitor's"
// @Param original query bool false "Append the INR amount in parentheses"
// @Param compact query bool false "Abbreviate with K, L or M"
// @Success 200 {object} models.PriceResponse "Formatted price"
// @Failure 400 {object} models.ErrorResponse "Invalid amount or unknown currency"
// @Failure 401 {object} models.ErrorResponse "No visitor session"
// @Failure 500 {object} models.ErrorResponse "Price could not be formatted"
// @Router /price [get]
func NewGetPriceHandler(svc CurrencyResolver, visitor VisitorGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitorID, ok := visitor(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		q := r.URL.Query()
		amount, err := decimal.NewFromString(q.Get("amount"))
		if err != nil || amount.IsNegative() {
			writeError(w, http.StatusBadRequest, "Invalid amount")
			return
		}
		showOriginal, _ := strconv.ParseBool(q.Get("original"))
		compact, _ := strconv.ParseBool(q.Get("compact"))

		var code models.CurrencyCode
		if raw := q.Get("currency"); raw != "" {
			if code, ok = models.ParseCurrencyCode(raw); !ok {
				writeError(w, http.StatusBadRequest, "Unknown currency")
				return
			}
		}

		cc, err := svc.Resolve(r.Context(), nil, visitorID, clientIP(r))
		if err != nil {
			logger.Log.Errorw("failed to resolve currency", "visitor_id", visitorID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to resolve currency")
			return
		}
		if code == "" {
			code = cc.Active
		}

		f := cc.Formatter()
		converted, err := f.Convert(amount, code)
		if err != nil {
			if errors.Is(err, services.ErrUnknownCurrency) {
				writeError(w, http.StatusBadRequest, "Unknown currency")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to format price")
			return
		}

		var formatted string
		if compact {
			formatted, err = f.FormatCompactPrice(amount, code)
		} else {
			formatted, err = f.Format(amount, code, showOriginal)
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to format price")
			return
		}

		writeJSON(w, http.StatusOK, models.PriceResponse{
			Amount:    amount.String(),
			Currency:  code,
			Converted: converted.String(),
			Formatted: formatted,
		})
	}
}
