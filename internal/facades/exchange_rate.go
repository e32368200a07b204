package facades

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// ExchangeRatesGRPCFacade reads rates from the gw-exchanger gRPC service.
// The exchanger quotes every currency against its own base, so rates are
// re-based by dividing through the requested base currency.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// GetExchangeRates fetches all exchange rates and returns them as units of
// each currency per one unit of base.
func (f *ExchangeRatesGRPCFacade) GetExchangeRates(
	ctx context.Context,
	base models.CurrencyCode,
) (map[string]float64, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, err
	}

	baseRate, ok := resp.Rates[string(base)]
	if !ok || baseRate <= 0 {
		logger.Log.Errorw("exchanger response has no usable base rate", "base", base)
		return nil, fmt.Errorf("exchanger has no rate for base currency %s", base)
	}

	rates := make(map[string]float64, len(resp.Rates))
	for currency, rate := range resp.Rates {
		rates[currency] = float64(rate) / float64(baseRate)
	}
	return rates, nil
}
