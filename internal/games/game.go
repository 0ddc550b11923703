// Package games implements the five arcade simulations. Each game is an
// explicit state struct advanced one atomic step per tick by a single
// loop; input handlers only set held-control flags or queue edge-triggered
// one-shot actions consulted at the next tick. Only the terminal outcome
// leaves the session.
package games

import (
	"math/rand"
	"sync"
	"time"

	"github.com/senseiarena/arena/internal/domain"
)

// Result classifies a terminal outcome. A draw is distinct from a loss
// and counts as neither a win nor a loss for quest purposes.
type Result string

const (
	ResultWin     Result = "win"
	ResultPartial Result = "partial"
	ResultLoss    Result = "loss"
	ResultDraw    Result = "draw"
)

// Outcome is the single terminal event a session emits. StakeAmount is
// clamped to the game's cap; a loss or draw with zero stake yields no
// staking action downstream.
type Outcome struct {
	Result      Result          `json:"result"`
	StakeAmount int64           `json:"stakeAmount"`
	GameType    domain.GameType `json:"gameType"`
	RawScore    int             `json:"rawScore"`
	Extra       map[string]any  `json:"extra,omitempty"`
}

// Control identifies a held movement control or a one-shot action.
type Control string

const (
	ControlLeft      Control = "left"
	ControlRight     Control = "right"
	ControlUp        Control = "up"
	ControlDown      Control = "down"
	ControlJump      Control = "jump"
	ControlFire      Control = "fire"
	ControlSecondary Control = "secondary"
)

// Session is the common contract across game variants. Advance performs
// exactly one tick: snapshot-read, compute, atomic-replace. Implementations
// are safe for concurrent input while a loop drives Advance.
type Session interface {
	// Advance runs one tick at the given time.
	Advance(now time.Time)

	// Outcome returns the terminal outcome once the session has ended.
	Outcome() (*Outcome, bool)

	// TickInterval is the session's tick cadence.
	TickInterval() time.Duration

	// SetHeld marks a movement control held or released.
	SetHeld(c Control, held bool)

	// Press triggers an edge-triggered one-shot action. Presses during a
	// non-reentrant cooldown window are ignored.
	Press(c Control)
}

// controls is the shared held-flag set sampled once per tick.
type controls struct {
	mu   sync.Mutex
	held map[Control]bool
}

func newControls() controls {
	return controls{held: make(map[Control]bool)}
}

func (c *controls) set(ctl Control, held bool) {
	c.mu.Lock()
	c.held[ctl] = held
	c.mu.Unlock()
}

func (c *controls) snapshot() map[Control]bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[Control]bool, len(c.held))
	for k, v := range c.held {
		out[k] = v
	}
	return out
}

// defaultRand returns a time-seeded source for live sessions. Tests pass
// their own seeded *rand.Rand for determinism.
func defaultRand(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
