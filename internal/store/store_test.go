package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senseiarena/arena/internal/domain"
)

func TestMemoryStoreLoadMissing(t *testing.T) {
	s := NewMemoryStore()

	p, err := s.Load(context.Background(), "0.0.1001")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p := domain.NewUserProgress("0.0.1001")
	p.TotalPoints = 150
	p.CompletedQuests = []string{"beginner_first_stake"}
	p.Stats.PerGameWinCounts[domain.GameRunner] = 2

	require.NoError(t, s.Save(ctx, "0.0.1001", p))

	loaded, err := s.Load(ctx, "0.0.1001")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 150, loaded.TotalPoints)
	assert.Equal(t, []string{"beginner_first_stake"}, loaded.CompletedQuests)
	assert.Equal(t, 2, loaded.Stats.PerGameWinCounts[domain.GameRunner])
}

func TestMemoryStoreIsolatesSnapshots(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p := domain.NewUserProgress("0.0.1001")
	require.NoError(t, s.Save(ctx, "0.0.1001", p))

	// Mutating the saved value must not leak into the store.
	p.TotalPoints = 999

	loaded, err := s.Load(ctx, "0.0.1001")
	require.NoError(t, err)
	assert.Zero(t, loaded.TotalPoints)

	// Nor does mutating a loaded value affect later loads.
	loaded.TotalPoints = 500
	again, err := s.Load(ctx, "0.0.1001")
	require.NoError(t, err)
	assert.Zero(t, again.TotalPoints)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "0.0.1001", domain.NewUserProgress("0.0.1001")))
	require.NoError(t, s.Delete(ctx, "0.0.1001"))

	p, err := s.Load(ctx, "0.0.1001")
	require.NoError(t, err)
	assert.Nil(t, p)

	// Deleting an absent account is a no-op.
	assert.NoError(t, s.Delete(ctx, "0.0.9999"))
}
