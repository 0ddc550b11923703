// Package store provides the progress persistence boundary. The engine
// depends only on the ProgressStore interface; implementations are keyed
// exclusively by account identifier with no cross-account visibility.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/senseiarena/arena/internal/domain"
)

// ProgressStore loads and saves user progress keyed by account identifier.
type ProgressStore interface {
	// Load returns the stored progress, or nil if the account has none.
	Load(ctx context.Context, accountID string) (*domain.UserProgress, error)

	// Save persists the full progress snapshot.
	Save(ctx context.Context, accountID string, progress *domain.UserProgress) error

	// Delete removes all progress for the account.
	Delete(ctx context.Context, accountID string) error
}

// MemoryStore is an in-memory ProgressStore for tests and local dev.
// Snapshots are deep-copied through JSON so callers never share state
// with the store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, accountID string) (*domain.UserProgress, error) {
	s.mu.RLock()
	raw, ok := s.data[accountID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var progress domain.UserProgress
	if err := json.Unmarshal(raw, &progress); err != nil {
		return nil, domain.ErrInternal("decode progress", err)
	}
	return &progress, nil
}

func (s *MemoryStore) Save(_ context.Context, accountID string, progress *domain.UserProgress) error {
	raw, err := json.Marshal(progress)
	if err != nil {
		return domain.ErrInternal("encode progress", err)
	}
	s.mu.Lock()
	s.data[accountID] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, accountID string) error {
	s.mu.Lock()
	delete(s.data, accountID)
	s.mu.Unlock()
	return nil
}
