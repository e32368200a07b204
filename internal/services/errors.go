package services

import "errors"

var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrFetchRates      = errors.New("failed to fetch exchange rates")
	ErrDecodeRates     = errors.New("malformed exchange rate response")
	ErrGeoLookup       = errors.New("geolocation lookup failed")
	ErrNegativeAmount  = errors.New("negative amount")
)
