package quest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senseiarena/arena/internal/domain"
)

var evalNow = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

func record(kind domain.ActionKind, amount int64, at time.Time) domain.ActionRecord {
	return domain.ActionRecord{Kind: kind, Amount: amount, OccurredAt: at}
}

func gameWin(gt domain.GameType, score int, at time.Time) domain.ActionRecord {
	return domain.ActionRecord{
		Kind:       domain.ActionGameWin,
		Amount:     int64(score),
		Game:       domain.GameMeta{GameType: gt, Score: score},
		OccurredAt: at,
	}
}

func questWith(req domain.Requirement) domain.QuestDefinition {
	return domain.QuestDefinition{ID: "q", Category: domain.CategoryBeginner, Requirement: req}
}

func TestCountMatchingStakeFilterAcceptsGameWins(t *testing.T) {
	history := []domain.ActionRecord{
		record(domain.ActionStake, 50, evalNow),
		gameWin(domain.GameRunner, 350, evalNow),
		record(domain.ActionLogin, 0, evalNow),
	}
	req := domain.Requirement{Action: domain.ActionStake}
	assert.Equal(t, 2, countMatching(history, req, evalNow))
}

func TestCountMatchingFilters(t *testing.T) {
	yesterday := evalNow.AddDate(0, 0, -1)
	history := []domain.ActionRecord{
		gameWin(domain.GameTicTacToe, 25, evalNow),
		gameWin(domain.GameRunner, 350, evalNow),
		record(domain.ActionStake, 5, evalNow),
		record(domain.ActionStake, 100, yesterday),
	}

	byGame := domain.Requirement{Action: domain.ActionGameWin, GameType: domain.GameRunner}
	assert.Equal(t, 1, countMatching(history, byGame, evalNow))

	byAmount := domain.Requirement{Action: domain.ActionStake, MinAmount: 10}
	assert.Equal(t, 3, countMatching(history, byAmount, evalNow))

	dailyStakes := domain.Requirement{Action: domain.ActionStake, MinAmount: 10, Daily: true}
	assert.Equal(t, 2, countMatching(history, dailyStakes, evalNow))
}

func TestCountCombosAdjacency(t *testing.T) {
	window := time.Hour
	history := []domain.ActionRecord{
		gameWin(domain.GameTicTacToe, 25, evalNow),
		record(domain.ActionStake, 10, evalNow.Add(30*time.Minute)),
		gameWin(domain.GameRunner, 350, evalNow.Add(2*time.Hour)),
		record(domain.ActionStake, 10, evalNow.Add(4*time.Hour)), // outside window
		gameWin(domain.GameShooter, 100, evalNow.Add(5*time.Hour)),
		record(domain.ActionLogin, 0, evalNow.Add(5*time.Hour)), // breaks adjacency
		record(domain.ActionStake, 10, evalNow.Add(5*time.Hour)),
	}
	assert.Equal(t, 1, countCombos(history, window))
}

func TestSatisfiedSingleAmount(t *testing.T) {
	p := domain.NewUserProgress("0.0.1001")
	p.ActionHistory = []domain.ActionRecord{record(domain.ActionStake, 9, evalNow)}
	q := questWith(domain.Requirement{Kind: domain.ReqSingleAmount, MinAmount: 10})

	ok, err := satisfied(q, nil, p, evalNow)
	require.NoError(t, err)
	assert.False(t, ok)

	p.ActionHistory = append(p.ActionHistory, gameWin(domain.GameRunner, 350, evalNow))
	ok, err = satisfied(q, nil, p, evalNow)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSatisfiedHighScore(t *testing.T) {
	p := domain.NewUserProgress("0.0.1001")
	p.Stats.PerGameHighScore[domain.GameShooter] = 240
	q := questWith(domain.Requirement{Kind: domain.ReqHighScore, GameType: domain.GameShooter, MinScore: 250})

	ok, err := satisfied(q, nil, p, evalNow)
	require.NoError(t, err)
	assert.False(t, ok)

	p.Stats.PerGameHighScore[domain.GameShooter] = 250
	ok, err = satisfied(q, nil, p, evalNow)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSatisfiedVarietyAndBalanced(t *testing.T) {
	p := domain.NewUserProgress("0.0.1001")
	p.Stats.PerGameWinCounts[domain.GameTicTacToe] = 2
	p.Stats.PerGameWinCounts[domain.GamePattern] = 1

	variety := questWith(domain.Requirement{
		Kind:      domain.ReqVariety,
		GameTypes: []domain.GameType{domain.GameTicTacToe, domain.GamePattern},
	})
	ok, err := satisfied(variety, nil, p, evalNow)
	require.NoError(t, err)
	assert.True(t, ok)

	balanced := questWith(domain.Requirement{Kind: domain.ReqBalanced, MinCount: 1})
	ok, err = satisfied(balanced, nil, p, evalNow)
	require.NoError(t, err)
	assert.False(t, ok, "shooter has no wins yet")

	p.Stats.PerGameWinCounts[domain.GameShooter] = 1
	ok, err = satisfied(balanced, nil, p, evalNow)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSatisfiedDailyCombo(t *testing.T) {
	yesterday := evalNow.AddDate(0, 0, -1)
	p := domain.NewUserProgress("0.0.1001")
	p.ActionHistory = []domain.ActionRecord{
		gameWin(domain.GameTicTacToe, 25, yesterday),
		record(domain.ActionStake, 10, evalNow),
	}
	q := questWith(domain.Requirement{Kind: domain.ReqDailyCombo})

	ok, err := satisfied(q, nil, p, evalNow)
	require.NoError(t, err)
	assert.False(t, ok, "win happened yesterday")

	// A game win is itself stake-like, so one win today satisfies both legs.
	p.ActionHistory = append(p.ActionHistory, gameWin(domain.GameRunner, 350, evalNow))
	ok, err = satisfied(q, nil, p, evalNow)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSatisfiedCategoryComplete(t *testing.T) {
	quests := []domain.QuestDefinition{
		{ID: "b1", Category: domain.CategoryBeginner},
		{ID: "b2", Category: domain.CategoryBeginner},
		{ID: "cap", Category: domain.CategoryBeginner,
			Requirement: domain.Requirement{Kind: domain.ReqCategoryComplete, Category: domain.CategoryBeginner}},
	}
	p := domain.NewUserProgress("0.0.1001")
	p.CompletedQuests = []string{"b1"}

	ok, err := satisfied(quests[2], quests, p, evalNow)
	require.NoError(t, err)
	assert.False(t, ok)

	p.CompletedQuests = append(p.CompletedQuests, "b2")
	ok, err = satisfied(quests[2], quests, p, evalNow)
	require.NoError(t, err)
	assert.True(t, ok, "the capstone itself is excluded from the check")
}

func TestSatisfiedUnknownKind(t *testing.T) {
	p := domain.NewUserProgress("0.0.1001")
	q := questWith(domain.Requirement{Kind: "mystery"})

	_, err := satisfied(q, nil, p, evalNow)
	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVARIANT_VIOLATION", appErr.Code)
}

func TestRecomputeUnlocksIsMonotonic(t *testing.T) {
	quests := []domain.QuestDefinition{
		{ID: "b1", Category: domain.CategoryBeginner},
		{ID: "d1", Category: domain.CategoryDisciple},
		{ID: "s1", Category: domain.CategorySenior},
	}
	p := domain.NewUserProgress("0.0.1001")

	assert.Empty(t, recomputeUnlocks(quests, p))

	p.CompletedQuests = []string{"b1"}
	assert.Equal(t, []domain.Category{domain.CategoryDisciple}, recomputeUnlocks(quests, p))
	// Second pass is a no-op.
	assert.Empty(t, recomputeUnlocks(quests, p))

	// Completing disciple cascades to senior but never re-reports disciple.
	p.CompletedQuests = append(p.CompletedQuests, "d1")
	assert.Equal(t, []domain.Category{domain.CategorySenior}, recomputeUnlocks(quests, p))
	assert.True(t, p.IsUnlocked(domain.CategoryDisciple))
	assert.True(t, p.IsUnlocked(domain.CategorySenior))
	assert.False(t, p.IsUnlocked(domain.CategorySensei), "senior is not complete yet")
}
