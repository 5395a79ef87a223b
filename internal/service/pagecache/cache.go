// Package pagecache caches rendered pages for a fixed TTL. Entries are never
// invalidated by writes; they expire or are cleared explicitly.
package pagecache

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// IndexPageKey holds the first page of the global feed.
const IndexPageKey = "index_page"

// DefaultTTL is used when the configured TTL is not positive.
const DefaultTTL = 20 * time.Second

type store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RenderFunc produces the page body on a cache miss.
type RenderFunc func(ctx context.Context) ([]byte, error)

// Cache serves stored bytes verbatim while they are fresh. Store failures are
// logged and the page is rendered anyway.
type Cache struct {
	store store
	ttl   time.Duration
	log   *slog.Logger
}

// New creates a Cache over store.
func New(log *slog.Logger, store store, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		store: store,
		ttl:   ttl,
		log:   log.With("service", "pagecache"),
	}
}

// TTL returns the lifetime of a cached page.
func (c *Cache) TTL() time.Duration { return c.ttl }

// GetOrRender returns the cached page for key, rendering and storing it on a
// miss. The second result reports whether the bytes came from the store.
func (c *Cache) GetOrRender(ctx context.Context, key string, render RenderFunc) ([]byte, bool, error) {
	cached, ok, err := c.store.Get(ctx, key)
	switch {
	case err != nil:
		c.log.WarnContext(ctx, "page cache get failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	case ok:
		return cached, true, nil
	}

	body, err := render(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("render %s: %w", key, err)
	}

	if err := c.store.Set(ctx, key, body, c.ttl); err != nil {
		c.log.WarnContext(ctx, "page cache set failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}

	return body, false, nil
}

// Clear drops key so the next request renders fresh.
func (c *Cache) Clear(ctx context.Context, key string) error {
	if err := c.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("clear %s: %w", key, err)
	}
	c.log.InfoContext(ctx, "page cache cleared", slog.String("key", key))
	return nil
}
