package games

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/senseiarena/arena/internal/domain"
)

const (
	shooterTick       = 50 * time.Millisecond
	shooterSpawnOdds  = 0.05
	shooterEnemyStep  = 2.0
	shooterBulletStep = 3.0
	shooterMoveStep   = 5.0
	shooterHitWindow  = 5.0
	shooterPlayerRow  = 85.0
	shooterMaxStake   = 500
	shooterMinStake   = 10
)

type sprite struct {
	x, y float64
}

// Shooter is the vertical scroller. Score converts to stake in steps of
// ten, capped at the per-game maximum; an enemy reaching the player's row
// ends the run immediately, and a run ending under the minimum stake is a
// loss.
type Shooter struct {
	mu       sync.Mutex
	rnd      *rand.Rand
	controls controls
	playerX  float64
	enemies  []sprite
	bullets  []sprite
	score    int
	shots    int
	cashout  bool
	outcome  *Outcome
}

func NewShooter(rnd *rand.Rand) *Shooter {
	return &Shooter{
		rnd:      defaultRand(rnd),
		controls: newControls(),
		playerX:  50,
	}
}

func (g *Shooter) TickInterval() time.Duration { return shooterTick }

func (g *Shooter) SetHeld(c Control, held bool) { g.controls.set(c, held) }

func (g *Shooter) Press(c Control) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome != nil || c != ControlFire {
		return
	}
	g.shots++
}

// CashOut ends the run with the stake earned so far.
func (g *Shooter) CashOut() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome != nil {
		return domain.ErrValidation("game already over")
	}
	g.cashout = true
	return nil
}

func (g *Shooter) Advance(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome != nil {
		return
	}
	if g.cashout {
		g.end()
		return
	}

	held := g.controls.snapshot()
	if held[ControlLeft] {
		g.playerX = math.Max(0, g.playerX-shooterMoveStep)
	}
	if held[ControlRight] {
		g.playerX = math.Min(95, g.playerX+shooterMoveStep)
	}
	for ; g.shots > 0; g.shots-- {
		g.bullets = append(g.bullets, sprite{x: g.playerX, y: shooterPlayerRow})
	}

	if g.rnd.Float64() < shooterSpawnOdds {
		g.enemies = append(g.enemies, sprite{x: g.rnd.Float64() * 90, y: 0})
	}

	keptEnemies := g.enemies[:0]
	for _, e := range g.enemies {
		e.y += shooterEnemyStep
		if e.y > 100 {
			continue
		}
		if e.y > shooterPlayerRow && math.Abs(e.x-g.playerX) < shooterHitWindow {
			g.end()
			return
		}
		keptEnemies = append(keptEnemies, e)
	}
	g.enemies = keptEnemies

	keptBullets := g.bullets[:0]
	for _, b := range g.bullets {
		b.y -= shooterBulletStep
		if b.y <= 0 {
			continue
		}
		hit := -1
		for i, e := range g.enemies {
			if math.Abs(b.x-e.x) < shooterHitWindow && math.Abs(b.y-e.y) < shooterHitWindow {
				hit = i
				break
			}
		}
		if hit >= 0 {
			g.enemies = append(g.enemies[:hit], g.enemies[hit+1:]...)
			g.score += 10
			continue
		}
		keptBullets = append(keptBullets, b)
	}
	g.bullets = keptBullets
}

// Stake converts the current score to its stake value.
func (g *Shooter) Stake() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return stakeForScore(g.score)
}

func stakeForScore(score int) int64 {
	stake := int64(score/10) * 10
	if stake > shooterMaxStake {
		stake = shooterMaxStake
	}
	return stake
}

// end settles the run. Caller holds the lock.
func (g *Shooter) end() {
	stake := stakeForScore(g.score)
	out := &Outcome{
		GameType: domain.GameShooter,
		RawScore: g.score,
	}
	if stake >= shooterMinStake {
		out.Result = ResultWin
		out.StakeAmount = stake
	} else {
		out.Result = ResultLoss
	}
	g.outcome = out
}

func (g *Shooter) Outcome() (*Outcome, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome == nil {
		return nil, false
	}
	out := *g.outcome
	return &out, true
}
