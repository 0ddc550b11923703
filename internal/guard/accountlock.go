// Package guard provides concurrency and duplicate-suppression guards for
// the quest engine's single-writer-per-account model.
package guard

import "sync"

// AccountLock serializes access to a single account's progress. All
// engine mutations for one account run under its lock, so the
// record→evaluate→unlock→save chain applies atomically.
type AccountLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAccountLock creates an empty keyed lock set.
func NewAccountLock() *AccountLock {
	return &AccountLock{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the given account, creating it on first use.
func (l *AccountLock) Lock(accountID string) {
	l.mu.Lock()
	m, ok := l.locks[accountID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[accountID] = m
	}
	l.mu.Unlock()
	m.Lock()
}

// Unlock releases the mutex for the given account.
func (l *AccountLock) Unlock(accountID string) {
	l.mu.Lock()
	m := l.locks[accountID]
	l.mu.Unlock()
	if m != nil {
		m.Unlock()
	}
}
