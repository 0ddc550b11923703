package ledger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senseiarena/arena/internal/domain"
)

func newTestClient() *TestnetClient {
	return NewTestnetClient(slog.New(slog.DiscardHandler))
}

func TestInitializeIsIdempotent(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	first, err := c.Initialize(ctx, "0.0.1001")
	require.NoError(t, err)
	assert.Equal(t, "testnet", first.Network)
	assert.NotEmpty(t, first.TokenID)

	second, err := c.Initialize(ctx, "0.0.1001")
	require.NoError(t, err)
	assert.Equal(t, first.TokenID, second.TokenID, "token is stable per account")

	_, err = c.Initialize(ctx, "  ")
	assert.Error(t, err)
}

func TestPerformStake(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()
	_, err := c.Initialize(ctx, "0.0.1001")
	require.NoError(t, err)

	receipt, err := c.PerformStake(ctx, "0.0.1001", 50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), receipt.Amount)
	assert.True(t, receipt.Verified)
	assert.NotEmpty(t, receipt.TransactionID)
	assert.Equal(t, "1", receipt.SerialNumber)

	again, err := c.PerformStake(ctx, "0.0.1001", 25)
	require.NoError(t, err)
	assert.Equal(t, "2", again.SerialNumber)
	assert.NotEqual(t, receipt.TransactionID, again.TransactionID)
}

func TestPerformStakeRejectsNonPositiveAmount(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()

	_, err := c.PerformStake(ctx, "0.0.1001", 0)
	assert.Error(t, err)
	_, err = c.PerformStake(ctx, "0.0.1001", -10)
	assert.Error(t, err)
}

func TestMintBadge(t *testing.T) {
	c := newTestClient()
	ctx := context.Background()
	_, err := c.Initialize(ctx, "0.0.1001")
	require.NoError(t, err)

	quest := domain.QuestDefinition{
		ID:     "beginner_first_stake",
		Reward: domain.Reward{Badge: "Novice Staker", Points: 100},
	}
	receipt, err := c.MintBadge(ctx, "0.0.1001", quest)
	require.NoError(t, err)
	assert.Equal(t, "beginner_first_stake", receipt.QuestID)
	assert.Equal(t, "Novice Staker", receipt.Badge)
	assert.NotEmpty(t, receipt.TransactionID)

	_, err = c.MintBadge(ctx, "0.0.1001", domain.QuestDefinition{})
	assert.Error(t, err)
}
