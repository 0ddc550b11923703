package quest

import (
	"context"
	"time"

	"github.com/senseiarena/arena/internal/domain"
)

// QuestStatus is a catalog entry annotated with the account's state.
type QuestStatus struct {
	domain.QuestDefinition
	Completed       bool `json:"completed"`
	Locked          bool `json:"locked"`
	ProgressPercent int  `json:"progressPercent"`
}

// Snapshot is the read-only view handed to the presentation layer,
// recomputed on demand and never pushed.
type Snapshot struct {
	AccountID          string            `json:"accountId"`
	Avatar             string            `json:"avatar,omitempty"`
	EquippedBadge      string            `json:"equippedBadge,omitempty"`
	Badges             []string          `json:"badges"`
	TotalPoints        int               `json:"totalPoints"`
	CompletedQuests    int               `json:"completedQuests"`
	TotalQuests        int               `json:"totalQuests"`
	Quests             []QuestStatus     `json:"quests"`
	Stats              domain.Stats      `json:"stats"`
	UnlockedCategories []domain.Category `json:"unlockedCategories"`
}

// Snapshot builds the full view for one account.
func (e *Engine) Snapshot(ctx context.Context, accountID string) (*Snapshot, error) {
	e.locks.Lock(accountID)
	defer e.locks.Unlock(accountID)

	p, err := e.loadOrInit(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := e.clock.Now()
	quests := make([]QuestStatus, 0, len(e.quests))
	for _, q := range e.quests {
		quests = append(quests, QuestStatus{
			QuestDefinition: q,
			Completed:       p.HasCompleted(q.ID),
			Locked:          !p.IsUnlocked(q.Category),
			ProgressPercent: progressPercent(q, e.quests, p, now),
		})
	}

	return &Snapshot{
		AccountID:          p.AccountID,
		Avatar:             p.Avatar,
		EquippedBadge:      p.EquippedBadge,
		Badges:             p.Badges,
		TotalPoints:        p.TotalPoints,
		CompletedQuests:    len(p.CompletedQuests),
		TotalQuests:        len(e.quests),
		Quests:             quests,
		Stats:              p.Stats,
		UnlockedCategories: unlockedCategories(p),
	}, nil
}

// progressPercent estimates completion toward a quest, 0-100. Completed
// quests are always 100; boolean predicates report 0 or 100.
func progressPercent(q domain.QuestDefinition, quests []domain.QuestDefinition, p *domain.UserProgress, now time.Time) int {
	if p.HasCompleted(q.ID) {
		return 100
	}
	req := q.Requirement
	switch req.Kind {
	case domain.ReqActionCount:
		return clampPercent(countMatching(p.ActionHistory, req, now), req.MinCount)
	case domain.ReqCumulativeTotal:
		return clampPercent64(p.Stats.TotalValueStaked, req.MinAmount)
	case domain.ReqHighScore:
		return clampPercent(p.Stats.PerGameHighScore[req.GameType], req.MinScore)
	case domain.ReqStreak:
		return clampPercent(p.Stats.DailyStreak, req.MinCount)
	case domain.ReqComboWindow:
		return clampPercent(countCombos(p.ActionHistory, req.Window), req.MinCount)
	case domain.ReqBalanced:
		lowest := 100
		for _, gt := range domain.TrackedGameTypes {
			pct := clampPercent(p.Stats.PerGameWinCounts[gt], req.MinCount)
			if pct < lowest {
				lowest = pct
			}
		}
		return lowest
	case domain.ReqVariety:
		won := 0
		for _, gt := range req.GameTypes {
			if p.Stats.PerGameWinCounts[gt] > 0 {
				won++
			}
		}
		return clampPercent(won, len(req.GameTypes))
	case domain.ReqCategoryComplete:
		total, done := 0, 0
		for _, other := range quests {
			if other.Category != req.Category || other.ID == q.ID {
				continue
			}
			total++
			if p.HasCompleted(other.ID) {
				done++
			}
		}
		return clampPercent(done, total)
	default:
		// Boolean predicates (single amount, daily combo): all or nothing.
		if ok, err := satisfied(q, quests, p, now); err == nil && ok {
			return 100
		}
		return 0
	}
}

func clampPercent(current, target int) int {
	if target <= 0 {
		return 0
	}
	pct := current * 100 / target
	if pct > 100 {
		return 100
	}
	return pct
}

func clampPercent64(current, target int64) int {
	if target <= 0 {
		return 0
	}
	pct := int(current * 100 / target)
	if pct > 100 {
		return 100
	}
	return pct
}
