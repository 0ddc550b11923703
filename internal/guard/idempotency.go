package guard

import "sync"

// IdempotencyGuard deduplicates recorded actions by transaction reference,
// backing the at-most-once recording rule for confirmed ledger calls.
type IdempotencyGuard struct {
	mu   sync.Mutex
	seen map[string]bool
}

// NewIdempotencyGuard creates a new in-memory idempotency guard.
func NewIdempotencyGuard() *IdempotencyGuard {
	return &IdempotencyGuard{seen: make(map[string]bool)}
}

// Check returns true if the key is new and marks it seen. Empty keys are
// always allowed (login actions carry synthetic refs, stakes real ones).
func (g *IdempotencyGuard) Check(key string) bool {
	if key == "" {
		return true
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.seen[key] {
		return false
	}
	g.seen[key] = true
	return true
}

// Remove deletes a key from the seen set so a failed recording can retry.
func (g *IdempotencyGuard) Remove(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.seen, key)
}
