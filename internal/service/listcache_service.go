package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const listCachePrefix = "console:list:"

// ListCache caches upstream list responses in Redis, keyed per entity and
// query string. Every mutating call for an entity invalidates all of its
// cached lists, so the whole-collection reload that follows a mutation
// always observes the write. Cache failures are logged and treated as
// misses; the console must stay usable without Redis.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewListCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) *ListCache {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ListCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *ListCache) key(entityName, query string) string {
	return listCachePrefix + entityName + ":" + query
}

// Get returns the cached payload for an entity list, if present.
func (c *ListCache) Get(ctx context.Context, entityName, query string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, c.key(entityName, query)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("List cache read failed for %s: %v", entityName, err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores a list payload with the configured TTL.
func (c *ListCache) Set(ctx context.Context, entityName, query string, payload []byte) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, c.key(entityName, query), payload, c.ttl).Err(); err != nil {
		c.log.Warnf("List cache write failed for %s: %v", entityName, err)
	}
}

// Invalidate drops every cached list for an entity.
func (c *ListCache) Invalidate(ctx context.Context, entityName string) {
	if c == nil || c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, c.key(entityName, "*"), 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Warnf("List cache scan failed for %s: %v", entityName, err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("List cache invalidation failed for %s: %v", entityName, err)
	}
}
