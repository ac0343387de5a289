package cart

import (
	"context"
	"sync"
	"time"

	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
)

// Registry maps session IDs to their cart stores. Carts live in memory only;
// an idle session's cart is evicted after the configured TTL.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	maxQty  int
	idleTTL time.Duration
	logg    *logger.Logger
}

type registryEntry struct {
	store    *Store
	lastSeen time.Time
}

// NewRegistry builds a registry whose carts use the given quantity cap and
// are evicted after idleTTL without access.
func NewRegistry(maxQty int, idleTTL time.Duration, logg *logger.Logger) *Registry {
	return &Registry{
		entries: make(map[string]*registryEntry),
		maxQty:  maxQty,
		idleTTL: idleTTL,
		logg:    logg,
	}
}

// Get returns the cart for the session, creating an empty one on first use.
// Every access refreshes the idle clock.
func (r *Registry) Get(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[sessionID]
	if !ok {
		entry = &registryEntry{store: NewStore(r.maxQty)}
		r.entries[sessionID] = entry
	}
	entry.lastSeen = time.Now()
	return entry.store
}

// Drop removes the session's cart outright.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
}

// Len reports how many session carts are currently held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep evicts carts idle longer than the TTL and returns how many went.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, entry := range r.entries {
		if now.Sub(entry.lastSeen) > r.idleTTL {
			delete(r.entries, id)
			evicted++
		}
	}
	return evicted
}

// StartSweeper runs Sweep on the given interval until ctx is cancelled.
func (r *Registry) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if evicted := r.Sweep(now); evicted > 0 && r.logg != nil {
					logCtx := r.logg.WithFields(ctx, map[string]any{
						"evicted":   evicted,
						"remaining": r.Len(),
					})
					r.logg.Info(logCtx, "evicted idle carts")
				}
			}
		}
	}()
}
