package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/opsuite/invopt/backend-go/internal/config"
	"github.com/opsuite/invopt/backend-go/internal/domain"
)

const classSummaryKey = "classification:class_summary"

// ClassificationCache caches the combined-class distribution that backs the
// classification dashboard. Writes to any classification invalidate it.
type ClassificationCache interface {
	GetClassSummary(ctx context.Context) ([]domain.ClassSummary, bool, error)
	SetClassSummary(ctx context.Context, summaries []domain.ClassSummary) error
	Invalidate(ctx context.Context) error
}

type redisClassificationCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopClassificationCache struct{}

// NewClassificationCache returns a Redis-backed cache, or a noop cache when
// caching is disabled.
func NewClassificationCache(cfg config.CacheConfig) (ClassificationCache, error) {
	if !cfg.Enabled {
		return &noopClassificationCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisClassificationCache{client: client, ttl: ttl}, nil
}

// NewNoopClassificationCache returns a cache that stores nothing.
func NewNoopClassificationCache() ClassificationCache {
	return &noopClassificationCache{}
}

func (c *redisClassificationCache) GetClassSummary(ctx context.Context) ([]domain.ClassSummary, bool, error) {
	payload, err := c.client.Get(ctx, classSummaryKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var summaries []domain.ClassSummary
	if err := json.Unmarshal(payload, &summaries); err != nil {
		return nil, false, fmt.Errorf("decode class summary cache: %w", err)
	}

	return summaries, true, nil
}

func (c *redisClassificationCache) SetClassSummary(ctx context.Context, summaries []domain.ClassSummary) error {
	payload, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("encode class summary cache: %w", err)
	}

	if err := c.client.Set(ctx, classSummaryKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisClassificationCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, classSummaryKey).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (c *noopClassificationCache) GetClassSummary(ctx context.Context) ([]domain.ClassSummary, bool, error) {
	return nil, false, nil
}

func (c *noopClassificationCache) SetClassSummary(ctx context.Context, summaries []domain.ClassSummary) error {
	return nil
}

func (c *noopClassificationCache) Invalidate(ctx context.Context) error {
	return nil
}
