package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheRepository wraps Redis for the hot read paths (active tickers, the
// sports banner). Values are JSON round-tripped.
type CacheRepository struct {
	client *redis.Client
}

func NewCacheRepository(client *redis.Client) *CacheRepository {
	return &CacheRepository{client: client}
}

func (r *CacheRepository) SaveStruct(ctx context.Context, key string, model any, ttl time.Duration) error {
	val, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("error saving struct to cache: %w", err)
	}
	if err := r.client.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("error saving struct to cache: %w", err)
	}
	return nil
}

func (r *CacheRepository) GetStruct(ctx context.Context, key string, model any) error {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return fmt.Errorf("error reading struct from cache: %w", err)
	}
	return json.Unmarshal(raw, model)
}

func (r *CacheRepository) DeleteKey(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("error deleting key %s: %w", key, err)
	}
	return nil
}
