package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jobhunter/platform/internal/core/domain"
)

const (
	featuredKeyPrefix = "featured:"
	featuredTTL       = 5 * time.Minute
)

// FeaturedJobCache caches the featured-listings response in Redis, keyed by
// limit. Cache failures degrade to misses; the read path never errors on it.
type FeaturedJobCache struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewFeaturedJobCache(client *redis.Client, logger zerolog.Logger) *FeaturedJobCache {
	return &FeaturedJobCache{client: client, logger: logger}
}

func (c *FeaturedJobCache) Get(ctx context.Context, limit int) ([]*domain.Job, bool) {
	data, err := c.client.Get(ctx, featuredKey(limit)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Msg("featured cache read failed")
		}
		return nil, false
	}

	var jobs []*domain.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		c.logger.Warn().Err(err).Msg("featured cache entry corrupt, dropping")
		c.client.Del(ctx, featuredKey(limit))
		return nil, false
	}
	return jobs, true
}

func (c *FeaturedJobCache) Set(ctx context.Context, limit int, jobs []*domain.Job) {
	data, err := json.Marshal(jobs)
	if err != nil {
		c.logger.Warn().Err(err).Msg("featured cache encode failed")
		return
	}
	if err := c.client.Set(ctx, featuredKey(limit), data, featuredTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("featured cache write failed")
	}
}

// Invalidate drops every cached limit variant.
func (c *FeaturedJobCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, featuredKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn().Err(err).Msg("featured cache invalidation failed")
	}
}

func featuredKey(limit int) string {
	return featuredKeyPrefix + strconv.Itoa(limit)
}
