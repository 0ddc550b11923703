package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senseiarena/arena/internal/auth"
	"github.com/senseiarena/arena/internal/catalog"
	"github.com/senseiarena/arena/internal/domain"
	"github.com/senseiarena/arena/internal/games"
	"github.com/senseiarena/arena/internal/infra"
	"github.com/senseiarena/arena/internal/ledger"
	"github.com/senseiarena/arena/internal/quest"
	"github.com/senseiarena/arena/internal/store"
)

func newTestService(t *testing.T) *ArenaService {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	engine, err := quest.NewEngine(catalog.Default(), store.NewMemoryStore(), domain.SystemClock{}, logger)
	require.NoError(t, err)
	return NewArenaService(
		engine,
		ledger.NewTestnetClient(logger),
		auth.NewJWTManager("test-secret-key-at-least-32-bytes!", time.Hour),
		infra.NewEventPublisher("", false, logger),
		logger,
	)
}

func TestConnectIssuesSession(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	result, err := s.Connect(ctx, "0.0.1001")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "testnet", result.Account.Network)
	require.NotNil(t, result.Snapshot)
	// The login completed the daily login quest.
	assert.Contains(t, result.Snapshot.Badges, "Daily Visitor")
	assert.Positive(t, result.Snapshot.TotalPoints)
}

func TestConnectRejectsBlankAccount(t *testing.T) {
	s := newTestService(t)

	_, err := s.Connect(context.Background(), "")
	assert.Error(t, err)
}

func TestDirectStakeRecordsAndMints(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	_, err := s.Connect(ctx, "0.0.1001")
	require.NoError(t, err)

	result, err := s.DirectStake(ctx, "0.0.1001", 50)
	require.NoError(t, err)
	require.NotNil(t, result.Receipt)
	assert.Equal(t, int64(50), result.Receipt.Amount)
	require.NotNil(t, result.Quest)

	// A first 50-unit stake completes the first-stake and daily-stake
	// quests; each completion minted a badge token.
	var ids []string
	for _, q := range result.Quest.Completed {
		ids = append(ids, q.ID)
	}
	assert.Contains(t, ids, "beginner_first_stake")
	assert.Len(t, result.Badges, len(result.Quest.Completed))
}

func TestDirectStakeRejectsNonPositiveAmount(t *testing.T) {
	s := newTestService(t)

	_, err := s.DirectStake(context.Background(), "0.0.1001", 0)
	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestSubmitOutcomeWinStakesAndRecords(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	_, err := s.Connect(ctx, "0.0.1001")
	require.NoError(t, err)

	result, err := s.SubmitOutcome(ctx, "0.0.1001", games.Outcome{
		Result:      games.ResultWin,
		StakeAmount: 25,
		GameType:    domain.GameTicTacToe,
		RawScore:    25,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(25), result.Receipt.Amount)
	assert.Equal(t, 1, result.Quest.Stats.PerGameWinCounts[domain.GameTicTacToe])
}

func TestSubmitOutcomeZeroStakeIsNoOp(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	for _, out := range []games.Outcome{
		{Result: games.ResultLoss, GameType: domain.GameTicTacToe},
		{Result: games.ResultDraw, GameType: domain.GameTicTacToe},
		{Result: games.ResultWin, StakeAmount: 0, GameType: domain.GameShooter},
	} {
		result, err := s.SubmitOutcome(ctx, "0.0.1001", out)
		require.NoError(t, err)
		assert.Nil(t, result)
	}

	// Nothing was recorded for the account.
	snap, err := s.Snapshot(ctx, "0.0.1001")
	require.NoError(t, err)
	assert.Zero(t, snap.Stats.TotalActions)
}

// A loss carrying partial credit still stakes its amount, but records a
// plain stake rather than a game win.
func TestSubmitOutcomeLossWithStakeStakesWithoutWin(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	_, err := s.Connect(ctx, "0.0.1001")
	require.NoError(t, err)

	result, err := s.SubmitOutcome(ctx, "0.0.1001", games.Outcome{
		Result:      games.ResultLoss,
		StakeAmount: 120,
		GameType:    domain.GameWaveQuest,
		RawScore:    240,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(120), result.Receipt.Amount)

	assert.Zero(t, result.Quest.Stats.TotalGameWins)
	assert.Zero(t, result.Quest.Stats.PerGameWinCounts[domain.GameWaveQuest])
	assert.Equal(t, 1, result.Quest.Stats.TotalStakeEvents)
	assert.Equal(t, int64(120), result.Quest.Stats.TotalValueStaked)
}

func TestSubmitOutcomeRequiresGameType(t *testing.T) {
	s := newTestService(t)

	_, err := s.SubmitOutcome(context.Background(), "0.0.1001", games.Outcome{
		Result:      games.ResultWin,
		StakeAmount: 25,
	})
	assert.Error(t, err)
}

func TestPartialOutcomeStakesScore(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	_, err := s.Connect(ctx, "0.0.1001")
	require.NoError(t, err)

	result, err := s.SubmitOutcome(ctx, "0.0.1001", games.Outcome{
		Result:      games.ResultPartial,
		StakeAmount: 350,
		GameType:    domain.GameRunner,
		RawScore:    350,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(350), result.Receipt.Amount)
}

func TestProfileOperations(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	_, err := s.Connect(ctx, "0.0.1001")
	require.NoError(t, err)

	require.NoError(t, s.SetAvatar(ctx, "0.0.1001", "sensei-red"))

	// Daily Visitor was earned on connect.
	require.NoError(t, s.EquipBadge(ctx, "0.0.1001", "Daily Visitor"))
	err = s.EquipBadge(ctx, "0.0.1001", "Never Earned")
	assert.Error(t, err)

	snap, err := s.Snapshot(ctx, "0.0.1001")
	require.NoError(t, err)
	assert.Equal(t, "sensei-red", snap.Avatar)
	assert.Equal(t, "Daily Visitor", snap.EquippedBadge)

	require.NoError(t, s.UnequipBadge(ctx, "0.0.1001"))
	require.NoError(t, s.Reset(ctx, "0.0.1001"))

	snap, err = s.Snapshot(ctx, "0.0.1001")
	require.NoError(t, err)
	assert.Empty(t, snap.Badges)
	assert.Zero(t, snap.TotalPoints)
}

type failingLedger struct {
	ledger.Client
}

func (failingLedger) PerformStake(context.Context, string, int64) (*ledger.StakeReceipt, error) {
	return nil, errors.New("network unreachable")
}

func TestStakeFailureLeavesProgressUntouched(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	engine, err := quest.NewEngine(catalog.Default(), store.NewMemoryStore(), domain.SystemClock{}, logger)
	require.NoError(t, err)
	s := NewArenaService(
		engine,
		failingLedger{Client: ledger.NewTestnetClient(logger)},
		auth.NewJWTManager("test-secret-key-at-least-32-bytes!", time.Hour),
		infra.NewEventPublisher("", false, logger),
		logger,
	)
	ctx := context.Background()

	_, err = s.DirectStake(ctx, "0.0.1001", 50)
	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TRANSACTION_ERROR", appErr.Code)

	snap, err := s.Snapshot(ctx, "0.0.1001")
	require.NoError(t, err)
	assert.Zero(t, snap.Stats.TotalActions, "failed stake is never recorded")
}
