package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-currency-display/internal/logger"
)

// RedisStore provides the persisted key-value substrate using Redis
type RedisStore struct {
	client *redis.Client
	prefix string
	exp    time.Duration // expiration for written keys, 0 keeps them forever
}

// NewRedisStore creates a new store; every key is namespaced with prefix.
func NewRedisStore(client *redis.Client, prefix string, expiration time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		exp:    expiration,
	}
}

// Get fetches a value; a missing key is reported as absent, not as an error.
func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	fullKey := r.prefix + key

	val, err := r.client.Get(ctx, fullKey).Result()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("kv get", "store", "redis", "key", fullKey, "result", "miss")
		return "", false, nil
	}
	if err != nil {
		logger.Log.Errorw("kv get failed", "store", "redis", "key", fullKey, "error", err)
		return "", false, err
	}

	logger.Log.Debugw("kv get", "store", "redis", "key", fullKey, "result", "hit")
	return val, true, nil
}

// Set stores a value, replacing any previous one.
func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	fullKey := r.prefix + key
	err := r.client.Set(ctx, fullKey, value, r.exp).Err()

	logger.Log.Debugw("kv set",
		"store", "redis",
		"key", fullKey,
		"exp", r.exp,
		"error", err,
	)

	return err
}
