package domain

import "time"

// ActionKind classifies an event ingested by the quest engine.
type ActionKind string

const (
	ActionLogin          ActionKind = "login"
	ActionStake          ActionKind = "stake"
	ActionGameWin        ActionKind = "game_win"
	ActionQuestCompleted ActionKind = "quest_completed"
)

// GameType identifies one of the arcade simulations.
type GameType string

const (
	GameTicTacToe GameType = "tictactoe"
	GameRunner    GameType = "runner"
	GameWaveQuest GameType = "wavequest"
	GamePattern   GameType = "pattern"
	GameShooter   GameType = "shooter"
)

// TrackedGameTypes are the games counted by variety and balanced-play
// predicates.
var TrackedGameTypes = []GameType{GameTicTacToe, GamePattern, GameShooter}

// GameMeta carries per-game detail on a game_win action.
type GameMeta struct {
	GameType GameType `json:"gameType,omitempty"`
	Score    int      `json:"score,omitempty"`
	Source   string   `json:"source,omitempty"`
}

// ActionRecord is one append-only history entry. History is the source of
// truth for daily, streak and combo predicates.
type ActionRecord struct {
	Kind           ActionKind `json:"kind"`
	Amount         int64      `json:"amount"`
	TransactionRef string     `json:"transactionRef,omitempty"`
	Game           GameMeta   `json:"game,omitempty"`
	QuestID        string     `json:"questId,omitempty"`
	OccurredAt     time.Time  `json:"occurredAt"`
}

// IsStakeLike reports whether the record counts toward stake-count and
// stake-amount predicates. Game wins stake their winnings, so both kinds
// qualify.
func (r ActionRecord) IsStakeLike() bool {
	return r.Kind == ActionStake || r.Kind == ActionGameWin
}

// SameDay reports whether the record occurred on the same UTC calendar
// day as t.
func (r ActionRecord) SameDay(t time.Time) bool {
	ry, rm, rd := r.OccurredAt.UTC().Date()
	ty, tm, td := t.UTC().Date()
	return ry == ty && rm == tm && rd == td
}
