package games

import (
	"math/rand"
	"sync"
	"time"

	"github.com/senseiarena/arena/internal/domain"
)

const (
	runnerTick          = 20 * time.Millisecond
	runnerGravity       = 0.8
	runnerJumpPower     = 12.0
	runnerLives         = 3
	runnerShieldCharges = 2
	runnerShieldTime    = 10 * time.Second
	runnerSpawnChance   = 0.012
	runnerBaseSpeed     = 2.5
	runnerSpeedStep     = 0.3
	runnerSpeedEvery    = 200
	runnerMaxSpeed      = 5.0
	runnerTarget        = 500
	runnerFlyingAt      = 100
)

type runnerObstacle struct {
	x         float64
	flying    bool
	hitbox    float64
	flyHeight float64
}

var groundObstacles = []runnerObstacle{
	{hitbox: 8},
	{hitbox: 8},
	{hitbox: 12},
	{hitbox: 8},
}

var flyingObstacles = []runnerObstacle{
	{flying: true, hitbox: 8, flyHeight: 25},
	{flying: true, hitbox: 8, flyHeight: 20},
	{flying: true, hitbox: 10, flyHeight: 22},
}

// Runner is the side-scrolling jump-and-dodge game. Score accumulates as
// obstacles scroll past; the score itself becomes the stake, clamped to
// the target. Death with a non-zero score still stakes it as a partial
// result.
type Runner struct {
	mu            sync.Mutex
	rnd           *rand.Rand
	score         int
	lives         int
	shieldCharges int
	shieldUntil   time.Time
	knightY       float64
	jumpVel       float64
	obstacles     []runnerObstacle
	jumpQueued    bool
	shieldQueued  bool
	outcome       *Outcome
}

func NewRunner(rnd *rand.Rand) *Runner {
	return &Runner{
		rnd:           defaultRand(rnd),
		lives:         runnerLives,
		shieldCharges: runnerShieldCharges,
	}
}

func (g *Runner) TickInterval() time.Duration { return runnerTick }

func (g *Runner) SetHeld(Control, bool) {}

func (g *Runner) Press(c Control) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome != nil {
		return
	}
	switch c {
	case ControlJump, ControlUp:
		g.jumpQueued = true
	case ControlSecondary:
		g.shieldQueued = true
	}
}

func (g *Runner) Advance(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome != nil {
		return
	}

	if g.shieldQueued {
		g.shieldQueued = false
		if g.shieldCharges > 0 && now.After(g.shieldUntil) {
			g.shieldCharges--
			g.shieldUntil = now.Add(runnerShieldTime)
		}
	}
	if g.jumpQueued {
		g.jumpQueued = false
		if g.knightY == 0 {
			g.jumpVel = runnerJumpPower
		}
	}

	shielding := now.Before(g.shieldUntil)
	speed := g.speed()

	// Spawn only when the track ahead is clear.
	if len(g.obstacles) == 0 || g.obstacles[len(g.obstacles)-1].x < 70 {
		if g.rnd.Float64() < runnerSpawnChance {
			pool := groundObstacles
			if g.score >= runnerFlyingAt {
				pool = append(append([]runnerObstacle{}, groundObstacles...), flyingObstacles...)
			}
			obs := pool[g.rnd.Intn(len(pool))]
			obs.x = 110
			g.obstacles = append(g.obstacles, obs)
		}
	}

	kept := g.obstacles[:0]
	for _, obs := range g.obstacles {
		obs.x -= speed * 0.6
		if obs.x < 10 && obs.x > 6 {
			if g.collides(obs) {
				if !shielding {
					g.lives--
					if g.lives <= 0 {
						g.end(false)
						return
					}
				}
				continue
			}
		}
		if obs.x < -10 {
			g.score += 10
			continue
		}
		kept = append(kept, obs)
	}
	g.obstacles = kept

	// Jump physics: integrate velocity under gravity until grounded.
	if g.knightY > 0 || g.jumpVel > 0 {
		g.jumpVel -= runnerGravity
		g.knightY += g.jumpVel
		if g.knightY <= 0 {
			g.knightY = 0
			g.jumpVel = 0
		}
	}

	if g.score >= runnerTarget {
		g.end(true)
	}
}

func (g *Runner) speed() float64 {
	s := runnerBaseSpeed + float64(g.score/runnerSpeedEvery)*runnerSpeedStep
	if s > runnerMaxSpeed {
		s = runnerMaxSpeed
	}
	return s
}

func (g *Runner) collides(obs runnerObstacle) bool {
	if obs.flying {
		// Height-band check against the jump arc, in screen units.
		diff := g.knightY*2.5 - obs.flyHeight*2.5
		if diff < 0 {
			diff = -diff
		}
		return diff < 30
	}
	return g.knightY < obs.hitbox
}

// end records the terminal outcome. The accumulated score is staked even
// on death; only a zero score is a pure loss. Caller holds the lock.
func (g *Runner) end(won bool) {
	stake := g.score
	if stake > runnerTarget {
		stake = runnerTarget
	}
	out := &Outcome{
		GameType:    domain.GameRunner,
		RawScore:    g.score,
		StakeAmount: int64(stake),
		Extra:       map[string]any{"lives": g.lives},
	}
	switch {
	case won:
		out.Result = ResultWin
	case g.score > 0:
		out.Result = ResultPartial
	default:
		out.Result = ResultLoss
		out.StakeAmount = 0
	}
	g.outcome = out
}

func (g *Runner) Outcome() (*Outcome, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome == nil {
		return nil, false
	}
	out := *g.outcome
	return &out, true
}

// Score returns the current score for display.
func (g *Runner) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}
