package games

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senseiarena/arena/internal/domain"
)

var runnerNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestRunnerDeathStakesScore(t *testing.T) {
	g := NewRunner(rand.New(rand.NewSource(1)))
	g.score = 350
	g.lives = 1
	g.obstacles = []runnerObstacle{{x: 9, hitbox: 8}}

	g.Advance(runnerNow)

	out, ended := g.Outcome()
	require.True(t, ended)
	assert.Equal(t, ResultPartial, out.Result)
	assert.Equal(t, int64(350), out.StakeAmount)
	assert.Equal(t, 350, out.RawScore)
	assert.Equal(t, domain.GameRunner, out.GameType)
}

func TestRunnerDeathAtZeroIsLoss(t *testing.T) {
	g := NewRunner(rand.New(rand.NewSource(1)))
	g.lives = 1
	g.obstacles = []runnerObstacle{{x: 9, hitbox: 8}}

	g.Advance(runnerNow)

	out, ended := g.Outcome()
	require.True(t, ended)
	assert.Equal(t, ResultLoss, out.Result)
	assert.Zero(t, out.StakeAmount)
}

func TestRunnerWinAtTarget(t *testing.T) {
	g := NewRunner(rand.New(rand.NewSource(1)))
	g.score = runnerTarget

	g.Advance(runnerNow)

	out, ended := g.Outcome()
	require.True(t, ended)
	assert.Equal(t, ResultWin, out.Result)
	assert.Equal(t, int64(runnerTarget), out.StakeAmount)
}

func TestRunnerStakeClampedToTarget(t *testing.T) {
	g := NewRunner(rand.New(rand.NewSource(1)))
	g.score = 540
	g.end(true)

	out, ended := g.Outcome()
	require.True(t, ended)
	assert.Equal(t, int64(runnerTarget), out.StakeAmount)
	assert.Equal(t, 540, out.RawScore)
}

func TestRunnerCollisionConsumesLife(t *testing.T) {
	g := NewRunner(rand.New(rand.NewSource(1)))
	g.obstacles = []runnerObstacle{{x: 9, hitbox: 8}}

	g.Advance(runnerNow)

	_, ended := g.Outcome()
	assert.False(t, ended)
	assert.Equal(t, runnerLives-1, g.lives)
	assert.Empty(t, g.obstacles, "hit obstacle is removed")
}

func TestRunnerShieldAbsorbsHit(t *testing.T) {
	g := NewRunner(rand.New(rand.NewSource(1)))
	g.lives = 1
	g.obstacles = []runnerObstacle{{x: 9, hitbox: 8}}
	g.Press(ControlSecondary)

	g.Advance(runnerNow)

	_, ended := g.Outcome()
	assert.False(t, ended)
	assert.Equal(t, 1, g.lives)
	assert.Equal(t, runnerShieldCharges-1, g.shieldCharges)
}

func TestRunnerJumpClearsGroundObstacle(t *testing.T) {
	g := NewRunner(rand.New(rand.NewSource(1)))
	g.knightY = 15
	g.obstacles = []runnerObstacle{{x: 9, hitbox: 8}}

	g.Advance(runnerNow)

	assert.Equal(t, runnerLives, g.lives)
	assert.Len(t, g.obstacles, 1, "cleared obstacle keeps scrolling")
}

func TestRunnerPassedObstacleScores(t *testing.T) {
	g := NewRunner(rand.New(rand.NewSource(1)))
	g.obstacles = []runnerObstacle{{x: -9, hitbox: 8}}

	g.Advance(runnerNow)

	assert.Equal(t, 10, g.Score())
	assert.Empty(t, g.obstacles)
}

func TestRunnerJumpPhysics(t *testing.T) {
	g := NewRunner(rand.New(rand.NewSource(1)))
	g.Press(ControlJump)

	g.Advance(runnerNow)
	require.Greater(t, g.knightY, 0.0)

	// The arc comes back down and lands exactly at ground level.
	for i := 0; i < 100; i++ {
		g.Advance(runnerNow)
	}
	assert.Zero(t, g.knightY)
	assert.Zero(t, g.jumpVel)
}

func TestRunnerInputIgnoredAfterEnd(t *testing.T) {
	g := NewRunner(rand.New(rand.NewSource(1)))
	g.end(false)

	g.Press(ControlJump)
	g.Advance(runnerNow)

	assert.False(t, g.jumpQueued)
	assert.Zero(t, g.knightY)
}
