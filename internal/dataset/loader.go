package dataset

import (
	"context"
	"sync"

	"github.com/mkvl/salesdash/internal/model"
)

// Loader wraps a Source and caches the first successful load for its
// lifetime. A Loader is constructed once at startup and passed by
// handle; the cached orders are shared read-only and must not be
// mutated by callers.
type Loader struct {
	source Source

	mu     sync.Mutex
	loaded bool
	orders []model.Order
}

// NewLoader creates a Loader over the given source.
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Load returns the cached orders, reading the source on first use.
// Failed loads are not cached.
func (l *Loader) Load(ctx context.Context) ([]model.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded {
		return l.orders, nil
	}
	orders, err := l.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	l.orders = orders
	l.loaded = true
	return l.orders, nil
}

// Invalidate drops the cache so the next Load re-reads the source.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loaded = false
	l.orders = nil
}
