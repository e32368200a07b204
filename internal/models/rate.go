package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// ExchangeRate is the conversion factor from the base currency to Code.
type ExchangeRate struct {
	Code   CurrencyCode `json:"code"`
	Rate   float64      `json:"rate"`
	Symbol string       `json:"symbol"`
	Name   string       `json:"name"`
}

// RateSnapshot is a complete rate table together with the time it was fetched.
// A zero FetchedAt marks the hardcoded defaults.
type RateSnapshot struct {
	Rates     map[CurrencyCode]ExchangeRate
	FetchedAt time.Time
}

// persisted layout: {"rates": {...}, "timestamp": <unix ms>}
type rateSnapshotJSON struct {
	Rates     map[CurrencyCode]ExchangeRate `json:"rates"`
	Timestamp int64                         `json:"timestamp"`
}

var ErrIncompleteRates = errors.New("incomplete rate table")

// NewRateSnapshot builds a full snapshot from bare rate numbers, taking
// symbols and names from the supported currency table. The base rate is
// always pinned to 1.
func NewRateSnapshot(rates map[CurrencyCode]float64, fetchedAt time.Time) *RateSnapshot {
	snap := &RateSnapshot{
		Rates:     make(map[CurrencyCode]ExchangeRate, len(currencies)),
		FetchedAt: fetchedAt,
	}
	for _, c := range currencies {
		rate, ok := rates[c.Code]
		if !ok {
			continue
		}
		if c.Code == BaseCurrency {
			rate = 1
		}
		snap.Rates[c.Code] = ExchangeRate{Code: c.Code, Rate: rate, Symbol: c.Symbol, Name: c.Name}
	}
	return snap
}

// DefaultRateSnapshot returns the hardcoded fallback table.
func DefaultRateSnapshot() *RateSnapshot {
	return NewRateSnapshot(DefaultRates(), time.Time{})
}

// Validate checks that every supported currency has a positive finite rate
// and that the base rate is exactly 1.
func (s *RateSnapshot) Validate() error {
	if s == nil || len(s.Rates) == 0 {
		return ErrIncompleteRates
	}
	for _, c := range currencies {
		r, ok := s.Rates[c.Code]
		if !ok {
			return fmt.Errorf("%w: missing %s", ErrIncompleteRates, c.Code)
		}
		if r.Rate <= 0 || math.IsNaN(r.Rate) || math.IsInf(r.Rate, 0) {
			return fmt.Errorf("%w: invalid rate %v for %s", ErrIncompleteRates, r.Rate, c.Code)
		}
	}
	if s.Rates[BaseCurrency].Rate != 1 {
		return fmt.Errorf("%w: base rate must be 1", ErrIncompleteRates)
	}
	return nil
}

// Rate returns the entry for code.
func (s *RateSnapshot) Rate(code CurrencyCode) (ExchangeRate, bool) {
	if s == nil {
		return ExchangeRate{}, false
	}
	r, ok := s.Rates[code]
	return r, ok
}

// Supports reports whether code can be applied with this table.
func (s *RateSnapshot) Supports(code CurrencyCode) bool {
	_, ok := s.Rate(code)
	return ok
}

// FreshAt reports whether the snapshot is younger than window at now.
func (s *RateSnapshot) FreshAt(now time.Time, window time.Duration) bool {
	if s == nil || s.FetchedAt.IsZero() {
		return false
	}
	return now.Sub(s.FetchedAt) < window
}

// Clone returns a deep copy.
func (s *RateSnapshot) Clone() *RateSnapshot {
	if s == nil {
		return nil
	}
	out := &RateSnapshot{
		Rates:     make(map[CurrencyCode]ExchangeRate, len(s.Rates)),
		FetchedAt: s.FetchedAt,
	}
	for k, v := range s.Rates {
		out.Rates[k] = v
	}
	return out
}

// MarshalJSON writes the persisted cache layout.
func (s RateSnapshot) MarshalJSON() ([]byte, error) {
	var ts int64
	if !s.FetchedAt.IsZero() {
		ts = s.FetchedAt.UnixMilli()
	}
	return json.Marshal(rateSnapshotJSON{Rates: s.Rates, Timestamp: ts})
}

// UnmarshalJSON reads the persisted cache layout. Symbols and names are
// re-derived from the currency table; only the numbers are trusted.
func (s *RateSnapshot) UnmarshalJSON(data []byte) error {
	var raw rateSnapshotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Timestamp <= 0 {
		return errors.New("missing snapshot timestamp")
	}
	rates := make(map[CurrencyCode]float64, len(raw.Rates))
	for code, r := range raw.Rates {
		rates[code] = r.Rate
	}
	decoded := NewRateSnapshot(rates, time.UnixMilli(raw.Timestamp))
	// keep the stored base rate so Validate can reject a corrupt table
	if r, ok := raw.Rates[BaseCurrency]; ok {
		base := decoded.Rates[BaseCurrency]
		base.Rate = r.Rate
		decoded.Rates[BaseCurrency] = base
	}
	*s = *decoded
	return nil
}

// RatesResponse represents the resident exchange rate table
// swagger:model RatesResponse
type RatesResponse struct {
	// Base currency of the table
	// example: INR
	Base CurrencyCode `json:"base"`

	// Exchange rates keyed by currency code
	Rates map[CurrencyCode]ExchangeRate `json:"rates"`

	// When the table was fetched, absent for hardcoded defaults
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// NewRatesResponse converts a snapshot into its API form.
func NewRatesResponse(s *RateSnapshot) RatesResponse {
	resp := RatesResponse{Base: BaseCurrency, Rates: s.Rates}
	if !s.FetchedAt.IsZero() {
		t := s.FetchedAt.UTC()
		resp.UpdatedAt = &t
	}
	return resp
}
