package games

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senseiarena/arena/internal/domain"
)

var tttNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestTicTacToePlayerWin(t *testing.T) {
	g := NewTicTacToe(rand.New(rand.NewSource(1)))
	g.board = [9]string{"X", "X", "", "O", "O", "", "", "", ""}

	require.NoError(t, g.Place(2, tttNow))

	out, ended := g.Outcome()
	require.True(t, ended)
	assert.Equal(t, ResultWin, out.Result)
	assert.Equal(t, int64(tttStake), out.StakeAmount)
	assert.Equal(t, domain.GameTicTacToe, out.GameType)
}

func TestTicTacToeFullBoardIsDrawNotLoss(t *testing.T) {
	g := NewTicTacToe(rand.New(rand.NewSource(1)))
	g.board = [9]string{"X", "O", "X", "X", "O", "O", "O", "X", ""}

	require.NoError(t, g.Place(8, tttNow))

	out, ended := g.Outcome()
	require.True(t, ended)
	assert.Equal(t, ResultDraw, out.Result)
	assert.NotEqual(t, ResultLoss, out.Result)
	assert.Zero(t, out.StakeAmount)
}

func TestTicTacToeOpponentLineIsLoss(t *testing.T) {
	g := NewTicTacToe(rand.New(rand.NewSource(1)))
	// The only free cell completes the opponent's diagonal.
	g.board = [9]string{"O", "X", "O", "X", "O", "X", "X", "X", ""}
	g.playerTurn = false
	g.replyWait = true
	g.replyDue = tttNow

	g.Advance(tttNow.Add(time.Second))

	out, ended := g.Outcome()
	require.True(t, ended)
	assert.Equal(t, ResultLoss, out.Result)
	assert.Zero(t, out.StakeAmount)
}

func TestTicTacToePlacementValidation(t *testing.T) {
	g := NewTicTacToe(rand.New(rand.NewSource(1)))

	assert.Error(t, g.Place(-1, tttNow))
	assert.Error(t, g.Place(9, tttNow))

	require.NoError(t, g.Place(4, tttNow))
	// The opponent has not replied yet.
	assert.Error(t, g.Place(0, tttNow))
}

func TestTicTacToeOccupiedCellRejected(t *testing.T) {
	g := NewTicTacToe(rand.New(rand.NewSource(1)))
	g.board[4] = opponentMark

	err := g.Place(4, tttNow)
	assert.Error(t, err)
}

func TestTicTacToeOpponentRepliesAfterDelay(t *testing.T) {
	g := NewTicTacToe(rand.New(rand.NewSource(1)))
	require.NoError(t, g.Place(4, tttNow))
	assert.False(t, g.PlayerTurn())

	// Too early: the reply lag has not elapsed.
	g.Advance(tttNow.Add(100 * time.Millisecond))
	assert.False(t, g.PlayerTurn())

	g.Advance(tttNow.Add(tttReplyLag + time.Millisecond))
	assert.True(t, g.PlayerTurn())

	marks := 0
	for _, cell := range g.Board() {
		if cell == opponentMark {
			marks++
		}
	}
	assert.Equal(t, 1, marks)
}

func TestTicTacToePlaceAfterGameOverRejected(t *testing.T) {
	g := NewTicTacToe(rand.New(rand.NewSource(1)))
	g.board = [9]string{"X", "X", "", "O", "O", "", "", "", ""}
	require.NoError(t, g.Place(2, tttNow))

	assert.Error(t, g.Place(5, tttNow))
}
