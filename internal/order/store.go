// Package order holds the server-side record that bridges the two HTTP
// round trips of a purchase: checkout writes the order under a single-use
// token, the success callback claims it back. Keeping the order here instead
// of only in the redirect URL closes the replay hole — a success URL can be
// claimed exactly once, and unclaimed orders expire.
//
// Dependency rule: order imports nothing from api, stripe, or email.
package order

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shepherd-study/gift-checkout/internal/gift"
)

// ErrNotFound is returned by Claim when the token is unknown, already
// claimed, or expired. The three cases are deliberately indistinguishable to
// the caller — a replayed or stale success URL gets the same treatment.
var ErrNotFound = errors.New("order: not found")

// DefaultTTL bounds how long an unclaimed order survives. It only needs to
// outlive a Stripe Checkout session, which expires after 24 hours at most;
// in practice purchasers return within minutes.
const DefaultTTL = time.Hour

type entry struct {
	order     gift.Order
	expiresAt time.Time
}

// Store is an in-memory, mutex-guarded token → order map with per-entry
// expiry. It is safe for concurrent use by multiple request goroutines.
type Store struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]entry

	// now is swappable in tests.
	now func() time.Time
}

// NewStore creates a Store. A non-positive ttl falls back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl: ttl,
		m:   make(map[string]entry),
		now: time.Now,
	}
}

// Create stores the order and returns the opaque token to embed in the
// success URL.
func (s *Store) Create(o gift.Order) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[token] = entry{order: o, expiresAt: s.now().Add(s.ttl)}
	return token
}

// Claim removes and returns the order for token. A second Claim of the same
// token returns ErrNotFound, which is what makes the success callback
// replay-safe.
func (s *Store) Claim(token string) (gift.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.m[token]
	if !ok {
		return gift.Order{}, ErrNotFound
	}
	delete(s.m, token)
	if s.now().After(e.expiresAt) {
		return gift.Order{}, ErrNotFound
	}
	return e.order, nil
}

// Len reports the number of unclaimed orders, expired entries included until
// the janitor sweeps them.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

// sweep drops expired entries and returns how many were removed.
func (s *Store) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, e := range s.m {
		if now.After(e.expiresAt) {
			delete(s.m, token)
			removed++
		}
	}
	return removed
}

// Run sweeps expired orders on a ticker until ctx is cancelled. Call it in a
// goroutine from main:
//
//	go orders.Run(ctx, logger)
func (s *Store) Run(ctx context.Context, logger *slog.Logger) {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sweep(); n > 0 {
				logger.Debug("order store: swept expired orders", "count", n)
			}
		}
	}
}
