package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
)

// DefaultGeoURL is the public IP-geolocation endpoint.
const DefaultGeoURL = "https://ipapi.co"

// GeolocationHTTPFacade resolves an IP address to a country.
type GeolocationHTTPFacade struct {
	client  *http.Client
	baseURL string
}

// NewGeolocationHTTPFacade creates a facade; a nil client means http.DefaultClient.
func NewGeolocationHTTPFacade(client *http.Client, baseURL string) *GeolocationHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &GeolocationHTTPFacade{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// Lookup queries {baseURL}/{ip}/json/, or {baseURL}/json/ when the address is
// empty or not publicly routable (the caller's own address is used then).
func (f *GeolocationHTTPFacade) Lookup(ctx context.Context, ip string) (*models.GeoLocation, error) {
	url := f.baseURL + "/json/"
	if parsed := net.ParseIP(ip); parsed != nil && !parsed.IsLoopback() && !parsed.IsPrivate() && !parsed.IsUnspecified() {
		url = fmt.Sprintf("%s/%s/json/", f.baseURL, parsed.String())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Warnw("geolocation request failed", "url", url, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var loc models.GeoLocation
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return nil, err
	}
	return &loc, nil
}
