package quest

import (
	"time"

	"github.com/senseiarena/arena/internal/domain"
)

// satisfied tests one quest's requirement against the action history and
// stats snapshot. Pure: no mutation, deterministic for a given now.
// An unknown requirement kind is a catalog authoring bug.
func satisfied(q domain.QuestDefinition, quests []domain.QuestDefinition, p *domain.UserProgress, now time.Time) (bool, error) {
	req := q.Requirement
	switch req.Kind {
	case domain.ReqActionCount:
		return countMatching(p.ActionHistory, req, now) >= req.MinCount, nil

	case domain.ReqSingleAmount:
		for _, r := range p.ActionHistory {
			if r.IsStakeLike() && r.Amount >= req.MinAmount {
				return true, nil
			}
		}
		return false, nil

	case domain.ReqCumulativeTotal:
		return p.Stats.TotalValueStaked >= req.MinAmount, nil

	case domain.ReqHighScore:
		return p.Stats.PerGameHighScore[req.GameType] >= req.MinScore, nil

	case domain.ReqVariety:
		for _, gt := range req.GameTypes {
			if p.Stats.PerGameWinCounts[gt] == 0 {
				return false, nil
			}
		}
		return true, nil

	case domain.ReqBalanced:
		for _, gt := range domain.TrackedGameTypes {
			if p.Stats.PerGameWinCounts[gt] < req.MinCount {
				return false, nil
			}
		}
		return true, nil

	case domain.ReqStreak:
		return p.Stats.DailyStreak >= req.MinCount, nil

	case domain.ReqComboWindow:
		return countCombos(p.ActionHistory, req.Window) >= req.MinCount, nil

	case domain.ReqDailyCombo:
		var win, stake bool
		for _, r := range p.ActionHistory {
			if !r.SameDay(now) {
				continue
			}
			if r.Kind == domain.ActionGameWin {
				win = true
			}
			if r.IsStakeLike() {
				stake = true
			}
		}
		return win && stake, nil

	case domain.ReqCategoryComplete:
		for _, other := range quests {
			if other.Category != req.Category || other.ID == q.ID {
				continue
			}
			if !p.HasCompleted(other.ID) {
				return false, nil
			}
		}
		return true, nil

	default:
		return false, domain.ErrInvariant("quest " + q.ID + ": unknown requirement kind " + string(req.Kind))
	}
}

// countMatching counts history entries matching an action-count requirement.
// A stake action filter accepts any stake-like record; other kinds match
// exactly. Daily scoping filters to the current calendar day, never via a
// separate reset mechanism.
func countMatching(history []domain.ActionRecord, req domain.Requirement, now time.Time) int {
	count := 0
	for _, r := range history {
		if req.Action == domain.ActionStake {
			if !r.IsStakeLike() {
				continue
			}
		} else if r.Kind != req.Action {
			continue
		}
		if req.GameType != "" && r.Game.GameType != req.GameType {
			continue
		}
		if req.MinAmount > 0 && r.Amount < req.MinAmount {
			continue
		}
		if req.Daily && !r.SameDay(now) {
			continue
		}
		count++
	}
	return count
}

// countCombos counts game_win records immediately followed by a stake
// within the window. History is append-ordered by occurrence.
func countCombos(history []domain.ActionRecord, window time.Duration) int {
	count := 0
	for i := 0; i+1 < len(history); i++ {
		if history[i].Kind != domain.ActionGameWin || history[i+1].Kind != domain.ActionStake {
			continue
		}
		if history[i+1].OccurredAt.Sub(history[i].OccurredAt) <= window {
			count++
		}
	}
	return count
}
