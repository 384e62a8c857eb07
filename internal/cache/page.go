// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides the Valkey-backed cache for public page reads.
// When a published page is served by slug, the rendered JSON body is
// stored in Valkey so subsequent requests skip the DB queries entirely.
// Any write to a page invalidates its slug.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached page bodies.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a served page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache caches served page bodies in Valkey, keyed by slug.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a new page cache backed by the given Valkey client.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get retrieves the cached body for a slug. Returns false on miss.
func (pc *PageCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, pageKeyPrefix+slug).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "slug", slug, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "slug", slug)
	return val, true
}

// Set stores a served body for a slug with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, slug string, body []byte) {
	if err := pc.client.Set(ctx, pageKeyPrefix+slug, body, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "slug", slug, "error", err)
	}
}

// Invalidate removes a single page from the cache by its slug.
func (pc *PageCache) Invalidate(ctx context.Context, slug string) {
	if err := pc.client.Del(ctx, pageKeyPrefix+slug).Err(); err != nil {
		slog.Warn("page cache invalidate error", "slug", slug, "error", err)
	}
	slog.Debug("page cache invalidated", "slug", slug)
}

// InvalidateAll removes all cached pages by scanning for the prefix.
// Used when a template's schema changes, since any page could be affected.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("page cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("page cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("page cache fully cleared", "deleted", deleted)
	}
}
