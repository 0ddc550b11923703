package games

import (
	"math/rand"
	"sync"
	"time"

	"github.com/senseiarena/arena/internal/domain"
)

const (
	tttStake     = 25
	tttReplyLag  = 500 * time.Millisecond
	tttTick      = 100 * time.Millisecond
	playerMark   = "X"
	opponentMark = "O"
)

var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// TicTacToe is a 3x3 board game against a uniform-random opponent. The
// player places X; the opponent replies after a short delay on the next
// tick. A player line wins a fixed stake, an opponent line loses, and a
// full board with no line is a draw.
type TicTacToe struct {
	mu         sync.Mutex
	rnd        *rand.Rand
	board      [9]string
	playerTurn bool
	replyDue   time.Time
	replyWait  bool
	outcome    *Outcome
}

func NewTicTacToe(rnd *rand.Rand) *TicTacToe {
	return &TicTacToe{
		rnd:        defaultRand(rnd),
		playerTurn: true,
	}
}

// Place puts the player's mark at index 0..8. Out-of-turn, occupied-cell
// and post-game placements are rejected.
func (g *TicTacToe) Place(index int, now time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.outcome != nil {
		return domain.ErrValidation("game already over")
	}
	if index < 0 || index > 8 {
		return domain.ErrValidation("cell index out of range")
	}
	if !g.playerTurn || g.replyWait {
		return domain.ErrValidation("not your turn")
	}
	if g.board[index] != "" {
		return domain.ErrValidation("cell already taken")
	}

	g.board[index] = playerMark
	g.playerTurn = false

	if g.settle() {
		return nil
	}
	g.replyWait = true
	g.replyDue = now.Add(tttReplyLag)
	return nil
}

func (g *TicTacToe) Advance(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.outcome != nil || !g.replyWait || now.Before(g.replyDue) {
		return
	}
	g.replyWait = false

	empty := make([]int, 0, 9)
	for i, cell := range g.board {
		if cell == "" {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 {
		g.settle()
		return
	}
	g.board[empty[g.rnd.Intn(len(empty))]] = opponentMark
	if !g.settle() {
		g.playerTurn = true
	}
}

// settle checks the board and records the outcome when terminal. Caller
// holds the lock.
func (g *TicTacToe) settle() bool {
	for _, line := range winningLines {
		a, b, c := line[0], line[1], line[2]
		if g.board[a] != "" && g.board[a] == g.board[b] && g.board[a] == g.board[c] {
			if g.board[a] == playerMark {
				g.outcome = &Outcome{
					Result:      ResultWin,
					StakeAmount: tttStake,
					GameType:    domain.GameTicTacToe,
				}
			} else {
				g.outcome = &Outcome{
					Result:   ResultLoss,
					GameType: domain.GameTicTacToe,
				}
			}
			return true
		}
	}
	for _, cell := range g.board {
		if cell == "" {
			return false
		}
	}
	g.outcome = &Outcome{
		Result:   ResultDraw,
		GameType: domain.GameTicTacToe,
	}
	return true
}

func (g *TicTacToe) Outcome() (*Outcome, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome == nil {
		return nil, false
	}
	out := *g.outcome
	return &out, true
}

func (g *TicTacToe) TickInterval() time.Duration { return tttTick }

// Board returns a copy of the current board for display.
func (g *TicTacToe) Board() [9]string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board
}

// PlayerTurn reports whether the player may place a mark.
func (g *TicTacToe) PlayerTurn() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playerTurn && !g.replyWait && g.outcome == nil
}

func (g *TicTacToe) SetHeld(Control, bool) {}
func (g *TicTacToe) Press(Control)         {}
