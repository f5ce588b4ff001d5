package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache caches search results keyed by the query fingerprint. The
// catalog is immutable, so entries only go stale when the dataset file
// changes between deployments; the TTL covers that.
type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, searchTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL: searchTTL,
	}
}

func (c *RedisCache) GetSearch(ctx context.Context, fingerprint string) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, searchKey(fingerprint)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetSearch(ctx context.Context, fingerprint string, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(fingerprint), payload, c.searchTTL).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func searchKey(fingerprint string) string {
	return "cache:search:" + fingerprint
}
