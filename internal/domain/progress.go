package domain

import "time"

// Stats holds the rolling counters maintained by the recorder. All values
// are derivable from the action history; they are kept incrementally so
// predicate evaluation stays cheap.
type Stats struct {
	TotalStakeEvents int              `json:"totalStakeEvents"`
	TotalGameWins    int              `json:"totalGameWins"`
	TotalActions     int              `json:"totalActions"`
	TotalValueStaked int64            `json:"totalValueStaked"`
	PerGameWinCounts map[GameType]int `json:"perGameWinCounts"`
	PerGameHighScore map[GameType]int `json:"perGameHighScores"`
	DailyStreak      int              `json:"dailyStreak"`
	LastDailyDate    *time.Time       `json:"lastDailyCompletionDate,omitempty"`
}

// CategoryState tracks unlock and completion for one category.
// Unlocked never transitions back to false.
type CategoryState struct {
	Completed []string `json:"completed"`
	Unlocked  bool     `json:"unlocked"`
}

// UserProgress is the per-account progression state, owned exclusively by
// the quest engine for that account and mutated only through it.
type UserProgress struct {
	AccountID       string                      `json:"accountId"`
	Avatar          string                      `json:"avatar,omitempty"`
	TotalPoints     int                         `json:"totalPoints"`
	CompletedQuests []string                    `json:"completedQuests"`
	ActionHistory   []ActionRecord              `json:"actionHistory"`
	Badges          []string                    `json:"badges"`
	EquippedBadge   string                      `json:"equippedBadge,omitempty"`
	Categories      map[Category]*CategoryState `json:"categoryProgress"`
	Stats           Stats                       `json:"stats"`
}

// NewUserProgress returns default-initialized progress for an account:
// empty history, daily and beginner unlocked, everything past beginner
// locked.
func NewUserProgress(accountID string) *UserProgress {
	categories := make(map[Category]*CategoryState, len(AllCategories))
	for _, c := range AllCategories {
		categories[c] = &CategoryState{
			Completed: []string{},
			Unlocked:  c == CategoryDaily || c == CategoryBeginner,
		}
	}
	return &UserProgress{
		AccountID:       accountID,
		CompletedQuests: []string{},
		ActionHistory:   []ActionRecord{},
		Badges:          []string{},
		Categories:      categories,
		Stats: Stats{
			PerGameWinCounts: make(map[GameType]int),
			PerGameHighScore: make(map[GameType]int),
		},
	}
}

// HasCompleted reports whether the quest id is already completed.
func (p *UserProgress) HasCompleted(questID string) bool {
	for _, id := range p.CompletedQuests {
		if id == questID {
			return true
		}
	}
	return false
}

// IsUnlocked reports whether the category is currently accessible.
func (p *UserProgress) IsUnlocked(c Category) bool {
	state, ok := p.Categories[c]
	return ok && state.Unlocked
}

// HasBadge reports whether the badge name has been earned at least once.
func (p *UserProgress) HasBadge(name string) bool {
	for _, b := range p.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// Clock supplies the current time. Injected so daily, streak, and combo
// windows are deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
