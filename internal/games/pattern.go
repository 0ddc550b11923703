package games

import (
	"math/rand"
	"sync"
	"time"

	"github.com/senseiarena/arena/internal/domain"
)

const (
	patternSize    = 8
	patternColors  = 6
	patternMoves   = 20
	patternTarget  = 500
	patternPerCell = 10
	patternStake   = 50
	patternTick    = 100 * time.Millisecond
)

// Pattern is the tile-matching puzzle. A swap commits only when it
// creates a run of three or more same-colored cells; committed swaps
// clear matches, collapse columns and refill, consuming one move.
type Pattern struct {
	mu      sync.Mutex
	rnd     *rand.Rand
	grid    [patternSize][patternSize]int
	score   int
	moves   int
	outcome *Outcome
}

func NewPattern(rnd *rand.Rand) *Pattern {
	g := &Pattern{
		rnd:   defaultRand(rnd),
		moves: patternMoves,
	}
	for r := 0; r < patternSize; r++ {
		for c := 0; c < patternSize; c++ {
			g.grid[r][c] = g.rnd.Intn(patternColors)
		}
	}
	return g
}

type cell struct{ row, col int }

// Swap exchanges two cells. A swap producing no match is reverted and
// does not consume a move.
func (g *Pattern) Swap(r1, c1, r2, c2 int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.outcome != nil {
		return domain.ErrValidation("game already over")
	}
	for _, p := range []cell{{r1, c1}, {r2, c2}} {
		if p.row < 0 || p.row >= patternSize || p.col < 0 || p.col >= patternSize {
			return domain.ErrValidation("cell out of range")
		}
	}

	g.grid[r1][c1], g.grid[r2][c2] = g.grid[r2][c2], g.grid[r1][c1]

	matches := g.findMatches()
	if len(matches) == 0 {
		g.grid[r1][c1], g.grid[r2][c2] = g.grid[r2][c2], g.grid[r1][c1]
		return nil
	}

	g.removeMatches(matches)
	g.moves--
	g.settle()
	return nil
}

// findMatches collects every cell in a horizontal or vertical run of
// three. Caller holds the lock.
func (g *Pattern) findMatches() []cell {
	var matches []cell
	for r := 0; r < patternSize; r++ {
		for c := 0; c < patternSize-2; c++ {
			if g.grid[r][c] == g.grid[r][c+1] && g.grid[r][c] == g.grid[r][c+2] {
				matches = append(matches, cell{r, c}, cell{r, c + 1}, cell{r, c + 2})
			}
		}
	}
	for c := 0; c < patternSize; c++ {
		for r := 0; r < patternSize-2; r++ {
			if g.grid[r][c] == g.grid[r+1][c] && g.grid[r][c] == g.grid[r+2][c] {
				matches = append(matches, cell{r, c}, cell{r + 1, c}, cell{r + 2, c})
			}
		}
	}
	return matches
}

func (g *Pattern) removeMatches(matches []cell) {
	g.score += len(matches) * patternPerCell

	const hole = -1
	for _, m := range matches {
		g.grid[m.row][m.col] = hole
	}

	// Collapse each column downward, then refill from the top.
	for c := 0; c < patternSize; c++ {
		for r := patternSize - 1; r >= 0; r-- {
			if g.grid[r][c] != hole {
				continue
			}
			for above := r - 1; above >= 0; above-- {
				if g.grid[above][c] != hole {
					g.grid[r][c] = g.grid[above][c]
					g.grid[above][c] = hole
					break
				}
			}
		}
	}
	for r := 0; r < patternSize; r++ {
		for c := 0; c < patternSize; c++ {
			if g.grid[r][c] == hole {
				g.grid[r][c] = g.rnd.Intn(patternColors)
			}
		}
	}
}

// settle records the outcome once the target is reached or the move
// budget runs out. Caller holds the lock.
func (g *Pattern) settle() {
	if g.score >= patternTarget {
		g.outcome = &Outcome{
			Result:      ResultWin,
			StakeAmount: patternStake,
			GameType:    domain.GamePattern,
			RawScore:    g.score,
		}
		return
	}
	if g.moves <= 0 {
		g.outcome = &Outcome{
			Result:   ResultLoss,
			GameType: domain.GamePattern,
			RawScore: g.score,
		}
	}
}

func (g *Pattern) Advance(time.Time) {}

func (g *Pattern) TickInterval() time.Duration { return patternTick }

func (g *Pattern) Outcome() (*Outcome, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome == nil {
		return nil, false
	}
	out := *g.outcome
	return &out, true
}

// Grid returns a copy of the board for display.
func (g *Pattern) Grid() [patternSize][patternSize]int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.grid
}

// MovesLeft returns the remaining move budget.
func (g *Pattern) MovesLeft() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.moves
}

// Score returns the current score.
func (g *Pattern) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

func (g *Pattern) SetHeld(Control, bool) {}
func (g *Pattern) Press(Control)         {}
