package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
)

// DefaultRatesURL is the public exchange-rate endpoint, parameterized by base.
const DefaultRatesURL = "https://api.exchangerate-api.com/v4/latest"

// ErrUnexpectedStatus is returned for non-2xx upstream responses.
var ErrUnexpectedStatus = errors.New("unexpected upstream status")

// ExchangeRatesHTTPFacade reads rates from a JSON endpoint of the form
// GET {baseURL}/{base} -> {"rates": {"USD": 0.012, ...}}.
type ExchangeRatesHTTPFacade struct {
	client  *http.Client
	baseURL string
}

// NewExchangeRatesHTTPFacade creates a facade; a nil client means http.DefaultClient.
func NewExchangeRatesHTTPFacade(client *http.Client, baseURL string) *ExchangeRatesHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &ExchangeRatesHTTPFacade{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

type latestRatesBody struct {
	Rates map[string]float64 `json:"rates"`
}

// GetExchangeRates fetches the latest rates keyed by the base currency.
func (f *ExchangeRatesHTTPFacade) GetExchangeRates(
	ctx context.Context,
	base models.CurrencyCode,
) (map[string]float64, error) {
	url := fmt.Sprintf("%s/%s", f.baseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("exchange rate request failed", "url", url, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorw("exchange rate request rejected", "url", url, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body latestRatesBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode exchange rates", "url", url, "error", err)
		return nil, err
	}
	if body.Rates == nil {
		return nil, errors.New("response has no rates")
	}

	logger.Log.Debugw("exchange rates received", "url", url, "count", len(body.Rates))
	return body.Rates, nil
}
