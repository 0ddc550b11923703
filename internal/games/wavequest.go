package games

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/senseiarena/arena/internal/domain"
)

const (
	waveTick          = 30 * time.Millisecond
	waveCount         = 3
	waveKillsRequired = 12
	waveReward        = 300
	waveBonus         = 100
	waveCashoutMin    = 300
	waveStartDelay    = 2 * time.Second
	waveSpawnTicks    = 60
	waveFireCooldown  = 300 * time.Millisecond
	waveFastCooldown  = 150 * time.Millisecond
	waveSlashWindow   = 200 * time.Millisecond
	waveSlashRange    = 12.0
	waveBuffChance    = 0.25
	waveBuffDuration  = 10 * time.Second
	waveHealAmount    = 20
	waveMaxHealth     = 100
)

type buffKind string

const (
	buffMultishot   buffKind = "multishot"
	buffShield      buffKind = "shield"
	buffAttackSpeed buffKind = "attackSpeed"
	buffHealing     buffKind = "healing"
)

var buffKinds = []buffKind{buffMultishot, buffShield, buffAttackSpeed, buffHealing}

type monster struct {
	x, y       float64
	hp, maxHP  int
	speed      float64
	points     int
	damage     int
	isBoss     bool
	attackCool int
	name       string
}

type monsterType struct {
	hp     int
	speed  float64
	points int
	damage int
	name   string
}

var regularMonsters = []monsterType{
	{hp: 1, speed: 1.5, points: 10, damage: 5, name: "Goblin"},
	{hp: 2, speed: 1.2, points: 20, damage: 10, name: "Zombie"},
	{hp: 1, speed: 2, points: 15, damage: 8, name: "Vampire"},
}

var waveBosses = []monsterType{
	{hp: 15, speed: 0.8, points: 200, damage: 20, name: "Ogre Lord"},
	{hp: 20, speed: 0.7, points: 300, damage: 30, name: "Lich King"},
	{hp: 25, speed: 0.5, points: 500, damage: 40, name: "Dark Witch"},
}

type fireball struct {
	x, y float64
}

type buffDrop struct {
	x, y float64
	kind buffKind
}

// WaveQuest is the top-down wave-survival game. Each of three waves needs
// a fixed kill count before its boss spawns; wages bank per cleared wave
// with a completion bonus, and the player can cash out once past the
// minimum earned threshold.
type WaveQuest struct {
	mu       sync.Mutex
	rnd      *rand.Rand
	controls controls

	playerX, playerY float64
	health           int
	score            int
	earned           int64
	wave             int
	killed           int
	bossActive       bool
	bossSpawned      bool
	waveStartUntil   time.Time
	started          bool
	spawnTimer       int

	monsters  []monster
	fireballs []fireball
	drops     []buffDrop

	buffUntil    map[buffKind]time.Time
	slashUntil   time.Time
	fireCoolOver time.Time
	fireQueued   bool
	slashQueued  bool
	cashoutAsked bool

	outcome *Outcome
}

func NewWaveQuest(rnd *rand.Rand) *WaveQuest {
	return &WaveQuest{
		rnd:       defaultRand(rnd),
		controls:  newControls(),
		playerX:   50,
		playerY:   80,
		health:    waveMaxHealth,
		wave:      1,
		buffUntil: make(map[buffKind]time.Time),
	}
}

func (g *WaveQuest) TickInterval() time.Duration { return waveTick }

func (g *WaveQuest) SetHeld(c Control, held bool) { g.controls.set(c, held) }

func (g *WaveQuest) Press(c Control) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome != nil {
		return
	}
	switch c {
	case ControlFire:
		g.fireQueued = true
	case ControlSecondary:
		g.slashQueued = true
	}
}

// CashOut ends the run voluntarily, keeping the wages banked so far. Only
// allowed once earnings pass the minimum threshold.
func (g *WaveQuest) CashOut() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome != nil {
		return domain.ErrValidation("game already over")
	}
	if g.earned < waveCashoutMin {
		return domain.ErrValidation("nothing banked to cash out yet")
	}
	g.cashoutAsked = true
	return nil
}

func (g *WaveQuest) Advance(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome != nil {
		return
	}
	if !g.started {
		g.started = true
		g.waveStartUntil = now.Add(waveStartDelay)
	}
	if g.cashoutAsked {
		g.end(true)
		return
	}

	g.movePlayer()

	if now.Before(g.waveStartUntil) {
		return
	}

	g.spawnMonsters(now)
	g.moveMonsters(now)
	if g.outcome != nil {
		return
	}
	g.fireIfQueued(now)
	g.moveFireballs(now)
	g.slashIfQueued(now)
	g.moveDrops(now)
}

func (g *WaveQuest) movePlayer() {
	held := g.controls.snapshot()
	if held[ControlLeft] {
		g.playerX = math.Max(5, g.playerX-2.5)
	}
	if held[ControlRight] {
		g.playerX = math.Min(95, g.playerX+2.5)
	}
	if held[ControlUp] {
		g.playerY = math.Max(15, g.playerY-2.5)
	}
	if held[ControlDown] {
		g.playerY = math.Min(90, g.playerY+2.5)
	}
}

func (g *WaveQuest) spawnMonsters(now time.Time) {
	if !g.bossActive && g.killed < waveKillsRequired {
		g.spawnTimer++
		if g.spawnTimer > waveSpawnTicks {
			g.spawnTimer = 0
			t := regularMonsters[g.rnd.Intn(len(regularMonsters))]
			g.monsters = append(g.monsters, monster{
				x: g.rnd.Float64()*80 + 10, y: 0,
				hp: t.hp, maxHP: t.hp, speed: t.speed,
				points: t.points, damage: t.damage, name: t.name,
			})
		}
		return
	}

	// Boss spawn is check-and-set guarded so exactly one boss exists per
	// wave even if this check repeats across ticks.
	if !g.bossActive && !g.bossSpawned && g.killed >= waveKillsRequired && len(g.monsters) == 0 {
		t := waveBosses[g.wave-1]
		g.monsters = []monster{{
			x: 50, y: 5,
			hp: t.hp, maxHP: t.hp, speed: t.speed,
			points: t.points, damage: t.damage, name: t.name,
			isBoss: true,
		}}
		g.bossActive = true
		g.bossSpawned = true
	}
}

func (g *WaveQuest) moveMonsters(now time.Time) {
	kept := g.monsters[:0]
	for _, m := range g.monsters {
		if m.isBoss {
			if m.y < 20 {
				m.y += 0.5
			} else {
				m.y = 20
				m.x += math.Sin(float64(now.UnixMilli())/800) * 0.4
				m.attackCool--
				if m.attackCool <= 0 && dist(g.playerX, g.playerY, m.x, m.y) < 30 {
					if !g.buffActive(buffShield, now) {
						g.damagePlayer(m.damage)
						if g.outcome != nil {
							return
						}
					}
					m.attackCool = 60
				}
			}
		} else {
			m.y += m.speed
		}
		m.x = math.Max(5, math.Min(95, m.x))

		if m.y > 100 {
			continue
		}
		if math.Abs(m.y-g.playerY) < 5 && math.Abs(m.x-g.playerX) < 5 {
			if g.buffActive(buffShield, now) {
				delete(g.buffUntil, buffShield)
			} else {
				g.damagePlayer(m.damage)
				if g.outcome != nil {
					return
				}
			}
			continue
		}
		kept = append(kept, m)
	}
	g.monsters = kept
}

func (g *WaveQuest) fireIfQueued(now time.Time) {
	if !g.fireQueued {
		return
	}
	g.fireQueued = false
	if now.Before(g.fireCoolOver) {
		return
	}
	cooldown := waveFireCooldown
	if g.buffActive(buffAttackSpeed, now) {
		cooldown = waveFastCooldown
	}
	g.fireCoolOver = now.Add(cooldown)

	shots := 1
	if g.buffActive(buffMultishot, now) {
		shots = 3
	}
	for i := 0; i < shots; i++ {
		g.fireballs = append(g.fireballs, fireball{
			x: g.playerX + float64(i-shots/2)*5,
			y: g.playerY - 5,
		})
	}
}

func (g *WaveQuest) moveFireballs(now time.Time) {
	kept := g.fireballs[:0]
	for _, fb := range g.fireballs {
		fb.y -= 5
		if fb.y <= 0 {
			continue
		}
		hit := false
		for i := range g.monsters {
			if dist(fb.x, fb.y, g.monsters[i].x, g.monsters[i].y) < 6 {
				g.hitMonster(i, now)
				hit = true
				break
			}
		}
		if g.outcome != nil {
			return
		}
		if hit {
			continue
		}
		kept = append(kept, fb)
	}
	g.fireballs = kept
}

func (g *WaveQuest) slashIfQueued(now time.Time) {
	if g.slashQueued {
		g.slashQueued = false
		if now.After(g.slashUntil) {
			g.slashUntil = now.Add(waveSlashWindow)
		}
	}
	if now.After(g.slashUntil) {
		return
	}
	// One point of damage per monster per active tick. Step back only when
	// the hit removed the monster, so survivors are not struck again.
	for i := 0; i < len(g.monsters); i++ {
		if dist(g.playerX, g.playerY, g.monsters[i].x, g.monsters[i].y) < waveSlashRange {
			before := len(g.monsters)
			g.hitMonster(i, now)
			if g.outcome != nil {
				return
			}
			if len(g.monsters) < before {
				i--
			}
		}
	}
}

// hitMonster deals one point of damage and resolves death: points, buff
// drop chance, kill counter or boss defeat. Caller holds the lock.
func (g *WaveQuest) hitMonster(i int, now time.Time) {
	g.monsters[i].hp--
	if g.monsters[i].hp > 0 {
		return
	}
	dead := g.monsters[i]
	g.monsters = append(g.monsters[:i], g.monsters[i+1:]...)
	g.score += dead.points
	if g.rnd.Float64() < waveBuffChance {
		g.drops = append(g.drops, buffDrop{
			x: dead.x, y: dead.y,
			kind: buffKinds[g.rnd.Intn(len(buffKinds))],
		})
	}
	if dead.isBoss {
		g.completeWave(now)
	} else {
		g.killed++
	}
}

func (g *WaveQuest) completeWave(now time.Time) {
	g.bossActive = false
	g.monsters = nil
	g.earned += waveReward

	if g.wave >= waveCount {
		g.earned += waveBonus
		g.end(true)
		return
	}
	g.wave++
	g.killed = 0
	g.bossSpawned = false
	g.spawnTimer = 0
	g.waveStartUntil = now.Add(waveStartDelay)
}

func (g *WaveQuest) moveDrops(now time.Time) {
	kept := g.drops[:0]
	for _, d := range g.drops {
		d.y += 1.5
		if d.y > 100 {
			continue
		}
		if math.Abs(d.y-g.playerY) < 5 && math.Abs(d.x-g.playerX) < 5 {
			if d.kind == buffHealing {
				g.health = min(waveMaxHealth, g.health+waveHealAmount)
			} else {
				base := now
				if until, ok := g.buffUntil[d.kind]; ok && until.After(now) {
					base = until
				}
				g.buffUntil[d.kind] = base.Add(waveBuffDuration)
			}
			continue
		}
		kept = append(kept, d)
	}
	g.drops = kept
}

func (g *WaveQuest) buffActive(k buffKind, now time.Time) bool {
	until, ok := g.buffUntil[k]
	return ok && until.After(now)
}

func (g *WaveQuest) damagePlayer(amount int) {
	g.health -= amount
	if g.health <= 0 {
		g.health = 0
		g.end(false)
	}
}

// end settles the run. Banked wages past the minimum survive a death.
// Caller holds the lock.
func (g *WaveQuest) end(won bool) {
	out := &Outcome{
		GameType: domain.GameWaveQuest,
		RawScore: g.score,
		Extra:    map[string]any{"wave": g.wave},
	}
	if won || g.earned >= waveCashoutMin {
		out.Result = ResultWin
		out.StakeAmount = g.earned
	} else {
		out.Result = ResultLoss
	}
	g.outcome = out
}

func (g *WaveQuest) Outcome() (*Outcome, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome == nil {
		return nil, false
	}
	out := *g.outcome
	return &out, true
}

// Earned returns the wages banked so far.
func (g *WaveQuest) Earned() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.earned
}

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}
