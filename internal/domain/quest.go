package domain

import "time"

// Category is an ordered tier of quests. Later tiers unlock only once all
// quests in the immediately preceding tier are complete. Daily sits outside
// the chain and is always unlocked.
type Category string

const (
	CategoryDaily    Category = "daily"
	CategoryBeginner Category = "beginner"
	CategoryDisciple Category = "disciple"
	CategorySenior   Category = "senior"
	CategorySensei   Category = "sensei"
)

// CategoryChain is the unlock progression order. Each entry past the first
// is gated on full completion of the one before it.
var CategoryChain = []Category{CategoryBeginner, CategoryDisciple, CategorySenior, CategorySensei}

// AllCategories lists every category including daily.
var AllCategories = []Category{CategoryDaily, CategoryBeginner, CategoryDisciple, CategorySenior, CategorySensei}

// Difficulty grades a quest for display purposes.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyHard      Difficulty = "hard"
	DifficultyLegendary Difficulty = "legendary"
)

// RequirementKind tags the closed set of requirement predicate variants.
// The evaluator switches exhaustively over these; an unrecognized kind is
// a catalog authoring bug and raises an invariant violation.
type RequirementKind string

const (
	// ReqActionCount is satisfied once the history holds at least MinCount
	// matching actions (optionally filtered by game type, per-event minimum
	// amount, and the current calendar day).
	ReqActionCount RequirementKind = "action_count"
	// ReqSingleAmount is satisfied by any single stake-like event whose
	// amount meets MinAmount.
	ReqSingleAmount RequirementKind = "single_amount"
	// ReqCumulativeTotal is satisfied once total value staked meets MinAmount.
	ReqCumulativeTotal RequirementKind = "cumulative_total"
	// ReqHighScore is satisfied once the recorded high score for GameType
	// meets MinScore.
	ReqHighScore RequirementKind = "high_score"
	// ReqVariety is satisfied once every listed game type has at least one win.
	ReqVariety RequirementKind = "variety"
	// ReqBalanced is satisfied once every tracked game type has at least
	// MinCount wins.
	ReqBalanced RequirementKind = "balanced"
	// ReqStreak is satisfied once the daily streak reaches MinCount days.
	ReqStreak RequirementKind = "streak"
	// ReqComboWindow counts game_win→stake pairs occurring within Window.
	ReqComboWindow RequirementKind = "combo_window"
	// ReqDailyCombo requires a game win and a stake on the same calendar day.
	ReqDailyCombo RequirementKind = "daily_combo"
	// ReqCategoryComplete requires every other quest in Category complete.
	ReqCategoryComplete RequirementKind = "category_complete"
)

// Requirement is the tagged predicate variant evaluated against the action
// history and stats snapshot. Only the fields relevant to Kind are set.
type Requirement struct {
	Kind      RequirementKind `json:"kind"`
	Action    ActionKind      `json:"action,omitempty"`
	GameType  GameType        `json:"gameType,omitempty"`
	GameTypes []GameType      `json:"gameTypes,omitempty"`
	MinCount  int             `json:"minCount,omitempty"`
	MinAmount int64           `json:"minAmount,omitempty"`
	MinScore  int             `json:"minScore,omitempty"`
	Daily     bool            `json:"daily,omitempty"`
	Window    time.Duration   `json:"window,omitempty"`
	Category  Category        `json:"category,omitempty"`
}

// NFTMetadata describes the badge token minted for a completed quest.
type NFTMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"`
	Icon        string `json:"icon"`
}

// Reward is granted exactly once when a quest's requirement is satisfied.
type Reward struct {
	Badge    string      `json:"badge"`
	Points   int         `json:"points"`
	Metadata NFTMetadata `json:"nftMetadata"`
}

// QuestDefinition is an immutable catalog entry.
type QuestDefinition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    Category    `json:"category"`
	Difficulty  Difficulty  `json:"difficulty"`
	Requirement Requirement `json:"requirement"`
	Reward      Reward      `json:"reward"`
}
