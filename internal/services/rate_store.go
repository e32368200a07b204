package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-currency-display/internal/events"
	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/sbilibin2017/gw-currency-display/internal/models"
)

//go:generate mockgen -source=rate_store.go -destination=rate_store_mock.go -package=services

const (
	// RatesCacheKey is the storage key of the persisted rate table.
	RatesCacheKey = "exchangeRatesCache"
	// RatesCacheTTL is how long a persisted table stays usable.
	RatesCacheTTL = 24 * time.Hour
)

// KeyValueStore is the string store the rate cache and visitor preferences
// live in.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// RateSource fetches live rates relative to base.
type RateSource interface {
	GetExchangeRates(ctx context.Context, base models.CurrencyCode) (map[string]float64, error)
}

// Publisher receives domain events.
type Publisher interface {
	Publish(ctx context.Context, e events.Event)
}

// RateStore owns the resident rate table. The table is replaced whole on
// every successful load, so readers never see a partial update.
type RateStore struct {
	mu        sync.RWMutex
	current   *models.RateSnapshot
	store     KeyValueStore
	source    RateSource
	publisher Publisher

	now func() time.Time
}

// NewRateStore creates a store whose resident table starts as the hardcoded
// defaults. publisher may be nil.
func NewRateStore(store KeyValueStore, source RateSource, publisher Publisher) *RateStore {
	return &RateStore{
		current:   models.DefaultRateSnapshot(),
		store:     store,
		source:    source,
		publisher: publisher,
		now:       time.Now,
	}
}

// LoadCached installs the persisted table when it is present, well formed and
// younger than RatesCacheTTL. Problems are logged and reported as a miss.
func (s *RateStore) LoadCached(ctx context.Context) (*models.RateSnapshot, bool) {
	raw, ok, err := s.store.Get(ctx, RatesCacheKey)
	if err != nil {
		logger.Log.Warnw("rate cache read failed", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var snap models.RateSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		logger.Log.Warnw("rate cache is malformed", "error", err)
		return nil, false
	}
	if err := snap.Validate(); err != nil {
		logger.Log.Warnw("rate cache is incomplete", "error", err)
		return nil, false
	}
	if !snap.FreshAt(s.now(), RatesCacheTTL) {
		logger.Log.Infow("rate cache expired", "fetched_at", snap.FetchedAt)
		return nil, false
	}

	s.install(&snap)
	logger.Log.Infow("using cached exchange rates", "fetched_at", snap.FetchedAt)
	return snap.Clone(), true
}

// FetchLive pulls a fresh table from the rate source, installs it and
// persists it. On failure the resident table is left untouched.
func (s *RateStore) FetchLive(ctx context.Context) (*models.RateSnapshot, error) {
	raw, err := s.source.GetExchangeRates(ctx, models.BaseCurrency)
	if err != nil {
		logger.Log.Errorw("exchange rate fetch failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrFetchRates, err)
	}

	rates := make(map[models.CurrencyCode]float64, len(raw))
	for _, c := range models.Supported() {
		if c.Code == models.BaseCurrency {
			rates[c.Code] = 1
			continue
		}
		r, ok := raw[string(c.Code)]
		if !ok || r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			logger.Log.Errorw("exchange rate response rejected", "currency", c.Code, "rate", r)
			return nil, fmt.Errorf("%w: missing or invalid rate for %s", ErrDecodeRates, c.Code)
		}
		rates[c.Code] = r
	}

	snap := models.NewRateSnapshot(rates, s.now())
	s.install(snap)
	logger.Log.Infow("exchange rates updated", "fetched_at", snap.FetchedAt)

	s.persist(ctx, snap)
	s.publish(ctx, snap)

	return snap.Clone(), nil
}

// Init prepares the resident table: a fresh cache wins, otherwise the live
// source is tried, otherwise the current table (the defaults) stays.
func (s *RateStore) Init(ctx context.Context) *models.RateSnapshot {
	if snap, ok := s.LoadCached(ctx); ok {
		return snap
	}
	if snap, err := s.FetchLive(ctx); err == nil {
		return snap
	}
	logger.Log.Warnw("using fallback exchange rates")
	return s.Snapshot()
}

// Refresh forces a live fetch regardless of cache age.
func (s *RateStore) Refresh(ctx context.Context) (*models.RateSnapshot, error) {
	return s.FetchLive(ctx)
}

// Snapshot returns a copy of the resident table.
func (s *RateStore) Snapshot() *models.RateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Rate returns the resident entry for code.
func (s *RateStore) Rate(code models.CurrencyCode) (models.ExchangeRate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Rate(code)
}

// Supports reports whether code has a resident rate.
func (s *RateStore) Supports(code models.CurrencyCode) bool {
	_, ok := s.Rate(code)
	return ok
}

func (s *RateStore) install(snap *models.RateSnapshot) {
	next := snap.Clone()
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
}

func (s *RateStore) persist(ctx context.Context, snap *models.RateSnapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		logger.Log.Errorw("failed to encode rate cache", "error", err)
		return
	}
	if err := s.store.Set(ctx, RatesCacheKey, string(data)); err != nil {
		logger.Log.Errorw("failed to persist rate cache", "error", err)
	}
}

func (s *RateStore) publish(ctx context.Context, snap *models.RateSnapshot) {
	if s.publisher == nil {
		return
	}
	rates := make(map[string]float64, len(snap.Rates))
	for code, r := range snap.Rates {
		rates[string(code)] = r.Rate
	}
	s.publisher.Publish(ctx, events.Event{
		Type: events.TypeRatesRefreshed,
		Payload: map[string]any{
			"rates":      rates,
			"fetched_at": snap.FetchedAt.UTC(),
		},
	})
}
