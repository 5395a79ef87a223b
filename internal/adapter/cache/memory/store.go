// Package memory is an in-process page cache store backed by a bounded LRU
// with per-entry expiry.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxEntries bounds the store when no option overrides it.
const DefaultMaxEntries = 128

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Store is safe for concurrent use.
type Store struct {
	mu         sync.Mutex
	entries    *lru.Cache[string, entry]
	maxEntries int
	clock      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithMaxEntries sets the LRU capacity. Non-positive values are ignored.
func WithMaxEntries(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New creates an empty store.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		maxEntries: DefaultMaxEntries,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	entries, err := lru.New[string, entry](s.maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	s.entries = entries

	return s, nil
}

// Get returns a copy of the stored value. Expired entries are evicted and
// reported as a miss.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !s.clock().Before(e.expiresAt) {
		s.entries.Remove(key)
		return nil, false, nil
	}

	return clone(e.value), true, nil
}

// Set stores value under key until ttl elapses. A non-positive ttl deletes
// the key.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ttl <= 0 {
		s.entries.Remove(key)
		return nil
	}

	s.entries.Add(key, entry{
		value:     clone(value),
		expiresAt: s.clock().Add(ttl),
	})
	return nil
}

// Delete removes key. Missing keys are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.entries.Remove(key)
	s.mu.Unlock()
	return nil
}

// Len reports the number of entries, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Len()
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
