package guard

import (
	"context"
	"sync"
	"time"

	"travel-checkout/internal/pkg/clock"
)

type memoryEntry struct {
	token     string
	expiresAt time.Time
}

// MemoryGuard keeps session locks in process memory. Use it when a single
// instance serves all checkouts.
type MemoryGuard struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryGuard(ttl time.Duration, clk clock.Clock) *MemoryGuard {
	return &MemoryGuard{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (g *MemoryGuard) Acquire(_ context.Context, key string) (ReleaseFunc, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	if e, ok := g.entries[key]; ok && now.Before(e.expiresAt) {
		return nil, ErrCheckoutInFlight
	}

	token := newToken()
	g.entries[key] = memoryEntry{token: token, expiresAt: now.Add(g.ttl)}

	var once sync.Once
	return func() {
		once.Do(func() { g.release(key, token) })
	}, nil
}

// release only drops the entry if it still belongs to token; an expired
// lock may have been taken over by a newer checkout.
func (g *MemoryGuard) release(key, token string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if e, ok := g.entries[key]; ok && e.token == token {
		delete(g.entries, key)
	}
}
