// Package catalog holds the static, immutable quest catalog. Declaration
// order is the evaluation and reward-application order.
package catalog

import (
	"time"

	"github.com/senseiarena/arena/internal/domain"
)

// ComboWindow is the maximum gap between a game win and the following
// stake for the pair to count as a combo.
const ComboWindow = time.Hour

// Default returns the full quest catalog in declaration order.
func Default() []domain.QuestDefinition {
	return []domain.QuestDefinition{
		// Daily: reset by daily scoping, no unlock required.
		{
			ID: "daily_login", Name: "Daily Login", Description: "Log in to the arena today",
			Category: domain.CategoryDaily, Difficulty: domain.DifficultyEasy,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionLogin, MinCount: 1, Daily: true},
			Reward: domain.Reward{Badge: "Daily Visitor", Points: 25, Metadata: domain.NFTMetadata{
				Name: "Daily Login Badge", Description: "Logged in today", Rarity: "common", Icon: "🚪"}},
		},
		{
			ID: "daily_quest", Name: "Quest Completer", Description: "Complete any quest today",
			Category: domain.CategoryDaily, Difficulty: domain.DifficultyEasy,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionQuestCompleted, MinCount: 1, Daily: true},
			Reward: domain.Reward{Badge: "Daily Achiever", Points: 50, Metadata: domain.NFTMetadata{
				Name: "Quest Completer Badge", Description: "Completed a quest today", Rarity: "common", Icon: "✅"}},
		},
		{
			ID: "daily_game", Name: "Daily Gamer", Description: "Win any game today",
			Category: domain.CategoryDaily, Difficulty: domain.DifficultyEasy,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionGameWin, MinCount: 1, Daily: true},
			Reward: domain.Reward{Badge: "Daily Gamer", Points: 50, Metadata: domain.NFTMetadata{
				Name: "Daily Gamer Badge", Description: "Won a game today", Rarity: "common", Icon: "🎮"}},
		},
		{
			ID: "daily_stake", Name: "Daily Staker", Description: "Complete 1 stake today",
			Category: domain.CategoryDaily, Difficulty: domain.DifficultyEasy,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionStake, MinCount: 1, MinAmount: 10, Daily: true},
			Reward: domain.Reward{Badge: "Daily Dedication", Points: 50, Metadata: domain.NFTMetadata{
				Name: "Daily Staker Badge", Description: "Staked today", Rarity: "common", Icon: "💎"}},
		},
		{
			ID: "daily_combo", Name: "Daily Combo", Description: "Win a game and stake in one day",
			Category: domain.CategoryDaily, Difficulty: domain.DifficultyMedium,
			Requirement: domain.Requirement{Kind: domain.ReqDailyCombo},
			Reward: domain.Reward{Badge: "Combo Master", Points: 100, Metadata: domain.NFTMetadata{
				Name: "Daily Combo Badge", Description: "Completed combo today", Rarity: "uncommon", Icon: "🔥"}},
		},

		// Beginner: always unlocked.
		{
			ID: "beginner_first_stake", Name: "First Steps", Description: "Complete your first stake",
			Category: domain.CategoryBeginner, Difficulty: domain.DifficultyEasy,
			Requirement: domain.Requirement{Kind: domain.ReqSingleAmount, MinAmount: 10},
			Reward: domain.Reward{Badge: "Novice Staker", Points: 100, Metadata: domain.NFTMetadata{
				Name: "First Steps Badge", Description: "Your journey begins", Rarity: "common", Icon: "🌱"}},
		},
		{
			ID: "beginner_easy_wins", Name: "Easy Game Master", Description: "Win Tic Tac Toe 5 times",
			Category: domain.CategoryBeginner, Difficulty: domain.DifficultyEasy,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionGameWin, GameType: domain.GameTicTacToe, MinCount: 5},
			Reward: domain.Reward{Badge: "Easy Master", Points: 150, Metadata: domain.NFTMetadata{
				Name: "Easy Game Master Badge", Description: "Won easy game 5 times", Rarity: "common", Icon: "⭕"}},
		},
		{
			ID: "beginner_medium_wins", Name: "Pattern Pro", Description: "Win Pattern Match 3 times",
			Category: domain.CategoryBeginner, Difficulty: domain.DifficultyMedium,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionGameWin, GameType: domain.GamePattern, MinCount: 3},
			Reward: domain.Reward{Badge: "Pattern Pro", Points: 200, Metadata: domain.NFTMetadata{
				Name: "Pattern Pro Badge", Description: "Won medium game 3 times", Rarity: "uncommon", Icon: "🍬"}},
		},
		{
			ID: "beginner_high_score", Name: "Score Chaser", Description: "Score 1000+ in Space Shooter",
			Category: domain.CategoryBeginner, Difficulty: domain.DifficultyHard,
			Requirement: domain.Requirement{Kind: domain.ReqHighScore, GameType: domain.GameShooter, MinScore: 1000},
			Reward: domain.Reward{Badge: "Score Chaser", Points: 250, Metadata: domain.NFTMetadata{
				Name: "Score Chaser Badge", Description: "Scored 1000+ in hard game", Rarity: "rare", Icon: "🚀"}},
		},
		{
			ID: "beginner_first_game", Name: "Game Initiate", Description: "Win your first game",
			Category: domain.CategoryBeginner, Difficulty: domain.DifficultyEasy,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionGameWin, MinCount: 1},
			Reward: domain.Reward{Badge: "Game Initiate", Points: 100, Metadata: domain.NFTMetadata{
				Name: "Game Initiate Badge", Description: "First game victory", Rarity: "common", Icon: "🎯"}},
		},
		{
			ID: "beginner_tic_tac_toe", Name: "Tic Tac Master", Description: "Win 3 Tic Tac Toe games",
			Category: domain.CategoryBeginner, Difficulty: domain.DifficultyEasy,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionGameWin, GameType: domain.GameTicTacToe, MinCount: 3},
			Reward: domain.Reward{Badge: "Tic Tac Master", Points: 150, Metadata: domain.NFTMetadata{
				Name: "Tic Tac Master Badge", Description: "Master of strategy", Rarity: "common", Icon: "⭕"}},
		},
		{
			ID: "beginner_stake_50", Name: "Growing Confidence", Description: "Stake 50+ in one transaction",
			Category: domain.CategoryBeginner, Difficulty: domain.DifficultyEasy,
			Requirement: domain.Requirement{Kind: domain.ReqSingleAmount, MinAmount: 50},
			Reward: domain.Reward{Badge: "Confident Staker", Points: 150, Metadata: domain.NFTMetadata{
				Name: "Growing Confidence Badge", Description: "Building momentum", Rarity: "common", Icon: "💪"}},
		},
		{
			ID: "beginner_5_stakes", Name: "Consistent Beginner", Description: "Complete 5 stakes",
			Category: domain.CategoryBeginner, Difficulty: domain.DifficultyEasy,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionStake, MinCount: 5, MinAmount: 10},
			Reward: domain.Reward{Badge: "Consistent Beginner", Points: 200, Metadata: domain.NFTMetadata{
				Name: "Consistent Beginner Badge", Description: "Building habits", Rarity: "common", Icon: "🔄"}},
		},
		{
			ID: "beginner_all_games", Name: "Game Explorer", Description: "Win at least one of each game type",
			Category: domain.CategoryBeginner, Difficulty: domain.DifficultyMedium,
			Requirement: domain.Requirement{Kind: domain.ReqVariety, Action: domain.ActionGameWin,
				GameTypes: []domain.GameType{domain.GameTicTacToe, domain.GamePattern, domain.GameShooter}},
			Reward: domain.Reward{Badge: "Game Explorer", Points: 250, Metadata: domain.NFTMetadata{
				Name: "Game Explorer Badge", Description: "Tried all games", Rarity: "uncommon", Icon: "🗺️"}},
		},
		{
			ID: "beginner_100_total", Name: "Century Staker", Description: "Stake 100+ total",
			Category: domain.CategoryBeginner, Difficulty: domain.DifficultyMedium,
			Requirement: domain.Requirement{Kind: domain.ReqCumulativeTotal, MinAmount: 100},
			Reward: domain.Reward{Badge: "Century Staker", Points: 300, Metadata: domain.NFTMetadata{
				Name: "Century Staker Badge", Description: "Reached 100 total", Rarity: "uncommon", Icon: "💯"}},
		},
		{
			ID: "beginner_pattern_match", Name: "Pattern Seeker", Description: "Win 2 Pattern Match games",
			Category: domain.CategoryBeginner, Difficulty: domain.DifficultyMedium,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionGameWin, GameType: domain.GamePattern, MinCount: 2},
			Reward: domain.Reward{Badge: "Pattern Seeker", Points: 200, Metadata: domain.NFTMetadata{
				Name: "Pattern Seeker Badge", Description: "Pattern master", Rarity: "uncommon", Icon: "🍬"}},
		},

		// Disciple: unlocked after completing all beginner quests.
		{
			ID: "disciple_10_stakes", Name: "Dedicated Disciple", Description: "Complete 10 stakes",
			Category: domain.CategoryDisciple, Difficulty: domain.DifficultyMedium,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionStake, MinCount: 10, MinAmount: 10},
			Reward: domain.Reward{Badge: "Dedicated Disciple", Points: 400, Metadata: domain.NFTMetadata{
				Name: "Dedicated Disciple Badge", Description: "True dedication shown", Rarity: "rare", Icon: "🎓"}},
		},
		{
			ID: "disciple_stake_200", Name: "Power Player", Description: "Stake 200+ in one transaction",
			Category: domain.CategoryDisciple, Difficulty: domain.DifficultyMedium,
			Requirement: domain.Requirement{Kind: domain.ReqSingleAmount, MinAmount: 200},
			Reward: domain.Reward{Badge: "Power Player", Points: 500, Metadata: domain.NFTMetadata{
				Name: "Power Player Badge", Description: "High stakes player", Rarity: "rare", Icon: "⚡"}},
		},
		{
			ID: "disciple_5_pattern", Name: "Pattern Virtuoso", Description: "Win 5 Pattern Match games",
			Category: domain.CategoryDisciple, Difficulty: domain.DifficultyMedium,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionGameWin, GameType: domain.GamePattern, MinCount: 5},
			Reward: domain.Reward{Badge: "Pattern Virtuoso", Points: 450, Metadata: domain.NFTMetadata{
				Name: "Pattern Virtuoso Badge", Description: "Pattern game expert", Rarity: "rare", Icon: "🎨"}},
		},
		{
			ID: "disciple_shooter_500", Name: "Space Ace", Description: "Score 500+ in Space Shooter",
			Category: domain.CategoryDisciple, Difficulty: domain.DifficultyHard,
			Requirement: domain.Requirement{Kind: domain.ReqHighScore, GameType: domain.GameShooter, MinScore: 500},
			Reward: domain.Reward{Badge: "Space Ace", Points: 600, Metadata: domain.NFTMetadata{
				Name: "Space Ace Badge", Description: "Elite pilot", Rarity: "rare", Icon: "🚀"}},
		},
		{
			ID: "disciple_500_total", Name: "Half-K Achiever", Description: "Stake 500+ total",
			Category: domain.CategoryDisciple, Difficulty: domain.DifficultyMedium,
			Requirement: domain.Requirement{Kind: domain.ReqCumulativeTotal, MinAmount: 500},
			Reward: domain.Reward{Badge: "Half-K Achiever", Points: 550, Metadata: domain.NFTMetadata{
				Name: "Half-K Achiever Badge", Description: "Reached 500 total", Rarity: "rare", Icon: "🎯"}},
		},
		{
			ID: "disciple_15_games", Name: "Game Enthusiast", Description: "Win 15 games total",
			Category: domain.CategoryDisciple, Difficulty: domain.DifficultyMedium,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionGameWin, MinCount: 15},
			Reward: domain.Reward{Badge: "Game Enthusiast", Points: 500, Metadata: domain.NFTMetadata{
				Name: "Game Enthusiast Badge", Description: "Gaming dedication", Rarity: "rare", Icon: "🎪"}},
		},
		{
			ID: "disciple_combo_master", Name: "Combo Specialist", Description: "Complete 5 game+stake combos",
			Category: domain.CategoryDisciple, Difficulty: domain.DifficultyHard,
			Requirement: domain.Requirement{Kind: domain.ReqComboWindow, MinCount: 5, Window: ComboWindow},
			Reward: domain.Reward{Badge: "Combo Specialist", Points: 650, Metadata: domain.NFTMetadata{
				Name: "Combo Specialist Badge", Description: "Master of combinations", Rarity: "epic", Icon: "🌟"}},
		},
		{
			ID: "disciple_perfect_week", Name: "Perfect Week", Description: "Complete daily quests 7 days in a row",
			Category: domain.CategoryDisciple, Difficulty: domain.DifficultyHard,
			Requirement: domain.Requirement{Kind: domain.ReqStreak, MinCount: 7},
			Reward: domain.Reward{Badge: "Perfect Week", Points: 700, Metadata: domain.NFTMetadata{
				Name: "Perfect Week Badge", Description: "Week of dedication", Rarity: "epic", Icon: "📆"}},
		},

		// Senior: unlocked after completing all disciple quests.
		{
			ID: "senior_25_stakes", Name: "Senior Staker", Description: "Complete 25 stakes",
			Category: domain.CategorySenior, Difficulty: domain.DifficultyHard,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionStake, MinCount: 25, MinAmount: 10},
			Reward: domain.Reward{Badge: "Senior Staker", Points: 800, Metadata: domain.NFTMetadata{
				Name: "Senior Staker Badge", Description: "Veteran status achieved", Rarity: "epic", Icon: "🏅"}},
		},
		{
			ID: "senior_stake_500", Name: "Whale Watcher", Description: "Stake 500+ in one transaction",
			Category: domain.CategorySenior, Difficulty: domain.DifficultyHard,
			Requirement: domain.Requirement{Kind: domain.ReqSingleAmount, MinAmount: 500},
			Reward: domain.Reward{Badge: "Whale Watcher", Points: 900, Metadata: domain.NFTMetadata{
				Name: "Whale Watcher Badge", Description: "Big league player", Rarity: "epic", Icon: "🐋"}},
		},
		{
			ID: "senior_1000_total", Name: "Thousand Club", Description: "Stake 1000+ total",
			Category: domain.CategorySenior, Difficulty: domain.DifficultyHard,
			Requirement: domain.Requirement{Kind: domain.ReqCumulativeTotal, MinAmount: 1000},
			Reward: domain.Reward{Badge: "Thousand Club", Points: 1000, Metadata: domain.NFTMetadata{
				Name: "Thousand Club Badge", Description: "Elite staker", Rarity: "epic", Icon: "💎"}},
		},
		{
			ID: "senior_30_games", Name: "Game Veteran", Description: "Win 30 games total",
			Category: domain.CategorySenior, Difficulty: domain.DifficultyHard,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionGameWin, MinCount: 30},
			Reward: domain.Reward{Badge: "Game Veteran", Points: 850, Metadata: domain.NFTMetadata{
				Name: "Game Veteran Badge", Description: "Gaming mastery", Rarity: "epic", Icon: "🎖️"}},
		},
		{
			ID: "senior_shooter_1000", Name: "Space Legend", Description: "Score 1000+ in Space Shooter",
			Category: domain.CategorySenior, Difficulty: domain.DifficultyLegendary,
			Requirement: domain.Requirement{Kind: domain.ReqHighScore, GameType: domain.GameShooter, MinScore: 1000},
			Reward: domain.Reward{Badge: "Space Legend", Points: 1200, Metadata: domain.NFTMetadata{
				Name: "Space Legend Badge", Description: "Legendary pilot", Rarity: "legendary", Icon: "🌌"}},
		},
		{
			ID: "senior_10_pattern", Name: "Pattern Grandmaster", Description: "Win 10 Pattern Match games",
			Category: domain.CategorySenior, Difficulty: domain.DifficultyHard,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionGameWin, GameType: domain.GamePattern, MinCount: 10},
			Reward: domain.Reward{Badge: "Pattern Grandmaster", Points: 900, Metadata: domain.NFTMetadata{
				Name: "Pattern Grandmaster Badge", Description: "Pattern perfection", Rarity: "epic", Icon: "🎭"}},
		},
		{
			ID: "senior_perfect_month", Name: "Perfect Month", Description: "Complete daily quests 30 days in a row",
			Category: domain.CategorySenior, Difficulty: domain.DifficultyLegendary,
			Requirement: domain.Requirement{Kind: domain.ReqStreak, MinCount: 30},
			Reward: domain.Reward{Badge: "Perfect Month", Points: 1500, Metadata: domain.NFTMetadata{
				Name: "Perfect Month Badge", Description: "Month of perfection", Rarity: "legendary", Icon: "📅"}},
		},
		{
			ID: "senior_all_games_10", Name: "Tri-Game Master", Description: "Win 10+ of each game type",
			Category: domain.CategorySenior, Difficulty: domain.DifficultyLegendary,
			Requirement: domain.Requirement{Kind: domain.ReqBalanced, MinCount: 10},
			Reward: domain.Reward{Badge: "Tri-Game Master", Points: 1300, Metadata: domain.NFTMetadata{
				Name: "Tri-Game Master Badge", Description: "Master of all games", Rarity: "legendary", Icon: "🏆"}},
		},

		// Sensei: unlocked after completing all senior quests.
		{
			ID: "sensei_50_stakes", Name: "Sensei of Stakes", Description: "Complete 50 stakes",
			Category: domain.CategorySensei, Difficulty: domain.DifficultyLegendary,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionStake, MinCount: 50, MinAmount: 10},
			Reward: domain.Reward{Badge: "Sensei of Stakes", Points: 2000, Metadata: domain.NFTMetadata{
				Name: "Sensei of Stakes Badge", Description: "Ultimate staking mastery", Rarity: "legendary", Icon: "🥋"}},
		},
		{
			ID: "sensei_stake_1000", Name: "Mega Whale", Description: "Stake 1000+ in one transaction",
			Category: domain.CategorySensei, Difficulty: domain.DifficultyLegendary,
			Requirement: domain.Requirement{Kind: domain.ReqSingleAmount, MinAmount: 1000},
			Reward: domain.Reward{Badge: "Mega Whale", Points: 2500, Metadata: domain.NFTMetadata{
				Name: "Mega Whale Badge", Description: "Legendary whale status", Rarity: "legendary", Icon: "🐳"}},
		},
		{
			ID: "sensei_5000_total", Name: "Five-K Legend", Description: "Stake 5000+ total",
			Category: domain.CategorySensei, Difficulty: domain.DifficultyLegendary,
			Requirement: domain.Requirement{Kind: domain.ReqCumulativeTotal, MinAmount: 5000},
			Reward: domain.Reward{Badge: "Five-K Legend", Points: 3000, Metadata: domain.NFTMetadata{
				Name: "Five-K Legend Badge", Description: "Legendary accumulation", Rarity: "legendary", Icon: "💰"}},
		},
		{
			ID: "sensei_100_games", Name: "Century Gamer", Description: "Win 100 games total",
			Category: domain.CategorySensei, Difficulty: domain.DifficultyLegendary,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionGameWin, MinCount: 100},
			Reward: domain.Reward{Badge: "Century Gamer", Points: 2500, Metadata: domain.NFTMetadata{
				Name: "Century Gamer Badge", Description: "100 victories achieved", Rarity: "legendary", Icon: "🎯"}},
		},
		{
			ID: "sensei_shooter_2000", Name: "Cosmic Emperor", Description: "Score 2000+ in Space Shooter",
			Category: domain.CategorySensei, Difficulty: domain.DifficultyLegendary,
			Requirement: domain.Requirement{Kind: domain.ReqHighScore, GameType: domain.GameShooter, MinScore: 2000},
			Reward: domain.Reward{Badge: "Cosmic Emperor", Points: 3500, Metadata: domain.NFTMetadata{
				Name: "Cosmic Emperor Badge", Description: "Supreme space mastery", Rarity: "legendary", Icon: "👑"}},
		},
		{
			ID: "sensei_20_pattern", Name: "Pattern Deity", Description: "Win 20 Pattern Match games",
			Category: domain.CategorySensei, Difficulty: domain.DifficultyLegendary,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount, Action: domain.ActionGameWin, GameType: domain.GamePattern, MinCount: 20},
			Reward: domain.Reward{Badge: "Pattern Deity", Points: 2200, Metadata: domain.NFTMetadata{
				Name: "Pattern Deity Badge", Description: "Divine pattern mastery", Rarity: "legendary", Icon: "✨"}},
		},
		{
			ID: "sensei_perfect_100", Name: "Eternal Dedication", Description: "Complete daily quests 100 days in a row",
			Category: domain.CategorySensei, Difficulty: domain.DifficultyLegendary,
			Requirement: domain.Requirement{Kind: domain.ReqStreak, MinCount: 100},
			Reward: domain.Reward{Badge: "Eternal Dedication", Points: 5000, Metadata: domain.NFTMetadata{
				Name: "Eternal Dedication Badge", Description: "100 days of perfection", Rarity: "legendary", Icon: "🌟"}},
		},
		{
			ID: "sensei_all_games_50", Name: "Omnigamer", Description: "Win 50+ of each game type",
			Category: domain.CategorySensei, Difficulty: domain.DifficultyLegendary,
			Requirement: domain.Requirement{Kind: domain.ReqBalanced, MinCount: 50},
			Reward: domain.Reward{Badge: "Omnigamer", Points: 4000, Metadata: domain.NFTMetadata{
				Name: "Omnigamer Badge", Description: "Master of all realms", Rarity: "legendary", Icon: "🌈"}},
		},
		{
			ID: "sensei_ultimate", Name: "DeFi Sensei", Description: "Complete all other quests",
			Category: domain.CategorySensei, Difficulty: domain.DifficultyLegendary,
			Requirement: domain.Requirement{Kind: domain.ReqCategoryComplete, Category: domain.CategorySensei},
			Reward: domain.Reward{Badge: "DeFi Sensei", Points: 10000, Metadata: domain.NFTMetadata{
				Name: "DeFi Sensei Badge", Description: "Ultimate achievement - True Sensei", Rarity: "legendary", Icon: "🏯"}},
		},
	}
}

// ByCategory returns the quests of one category in declaration order.
func ByCategory(quests []domain.QuestDefinition, c domain.Category) []domain.QuestDefinition {
	var out []domain.QuestDefinition
	for _, q := range quests {
		if q.Category == c {
			out = append(out, q)
		}
	}
	return out
}

// Find returns the quest with the given id, or nil.
func Find(quests []domain.QuestDefinition, id string) *domain.QuestDefinition {
	for i := range quests {
		if quests[i].ID == id {
			return &quests[i]
		}
	}
	return nil
}

// Validate checks catalog authoring invariants: unique ids, known
// categories and requirement kinds, and at most one category-complete
// quest per category.
func Validate(quests []domain.QuestDefinition) error {
	seen := make(map[string]bool, len(quests))
	capstones := make(map[domain.Category]int)
	known := map[domain.Category]bool{}
	for _, c := range domain.AllCategories {
		known[c] = true
	}
	for _, q := range quests {
		if seen[q.ID] {
			return domain.ErrInvariant("duplicate quest id: " + q.ID)
		}
		seen[q.ID] = true
		if !known[q.Category] {
			return domain.ErrInvariant("unknown category for quest " + q.ID + ": " + string(q.Category))
		}
		switch q.Requirement.Kind {
		case domain.ReqActionCount, domain.ReqSingleAmount, domain.ReqCumulativeTotal,
			domain.ReqHighScore, domain.ReqVariety, domain.ReqBalanced, domain.ReqStreak,
			domain.ReqComboWindow, domain.ReqDailyCombo:
		case domain.ReqCategoryComplete:
			capstones[q.Requirement.Category]++
			if capstones[q.Requirement.Category] > 1 {
				return domain.ErrInvariant("multiple category-complete quests for " + string(q.Requirement.Category))
			}
		default:
			return domain.ErrInvariant("unknown requirement kind for quest " + q.ID + ": " + string(q.Requirement.Kind))
		}
	}
	return nil
}
