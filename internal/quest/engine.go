// Package quest implements the progression and achievement engine: it
// ingests gameplay and staking actions, evaluates quest predicates over
// the append-only history, resolves category unlocks, and derives user
// state. One Engine serves all accounts; per-account access is serialized.
package quest

import (
	"context"
	"log/slog"
	"time"

	"github.com/senseiarena/arena/internal/catalog"
	"github.com/senseiarena/arena/internal/domain"
	"github.com/senseiarena/arena/internal/guard"
	"github.com/senseiarena/arena/internal/store"
)

// Engine is the quest progression engine. Constructed per process with an
// injected store and clock; no ambient global state.
type Engine struct {
	quests []domain.QuestDefinition
	store  store.ProgressStore
	clock  domain.Clock
	logger *slog.Logger
	locks  *guard.AccountLock
	idem   *guard.IdempotencyGuard
}

// NewEngine creates an engine over the given catalog. The catalog is
// validated once here; an invalid catalog is a fatal authoring bug.
func NewEngine(quests []domain.QuestDefinition, st store.ProgressStore, clock domain.Clock, logger *slog.Logger) (*Engine, error) {
	if err := catalog.Validate(quests); err != nil {
		return nil, err
	}
	return &Engine{
		quests: quests,
		store:  st,
		clock:  clock,
		logger: logger,
		locks:  guard.NewAccountLock(),
		idem:   guard.NewIdempotencyGuard(),
	}, nil
}

// Catalog returns the engine's quest definitions in declaration order.
func (e *Engine) Catalog() []domain.QuestDefinition { return e.quests }

// RecordResult reports the effects of one recorded action.
type RecordResult struct {
	Record             domain.ActionRecord      `json:"record"`
	Completed          []domain.QuestDefinition `json:"completedQuests"`
	NewlyUnlocked      []domain.Category        `json:"newlyUnlocked,omitempty"`
	UnlockedCategories []domain.Category        `json:"unlockedCategories"`
	TotalPoints        int                      `json:"totalPoints"`
	Stats              domain.Stats             `json:"stats"`
}

// RecordAction is the single entry point for gameplay and staking events.
// It appends the action, updates rolling stats and the daily streak,
// evaluates quest predicates in catalog order, recomputes category
// unlocks, and saves: one logical transaction per account with no
// suspension point between the steps.
func (e *Engine) RecordAction(ctx context.Context, accountID string, kind domain.ActionKind, amount int64, txRef string, meta domain.GameMeta) (*RecordResult, error) {
	if accountID == "" {
		return nil, domain.ErrValidation("account id is required")
	}
	if amount < 0 {
		return nil, domain.ErrValidation("amount must not be negative")
	}
	switch kind {
	case domain.ActionLogin, domain.ActionStake, domain.ActionGameWin:
	default:
		return nil, domain.ErrValidation("unrecordable action kind: " + string(kind))
	}

	e.locks.Lock(accountID)
	defer e.locks.Unlock(accountID)

	if !e.idem.Check(txRef) {
		return nil, domain.ErrValidation("duplicate transaction reference: " + txRef)
	}

	progress, err := e.loadOrInit(ctx, accountID)
	if err != nil {
		e.idem.Remove(txRef)
		return nil, err
	}

	now := e.clock.Now()
	record := domain.ActionRecord{
		Kind:           kind,
		Amount:         amount,
		TransactionRef: txRef,
		Game:           meta,
		OccurredAt:     now,
	}
	progress.ActionHistory = append(progress.ActionHistory, record)
	applyStats(progress, record)
	updateDailyStreak(progress, now)

	completed, err := e.evaluate(progress, now)
	if err != nil {
		// Catalog bug: surface loudly, nothing persisted.
		e.idem.Remove(txRef)
		return nil, err
	}
	newly := recomputeUnlocks(e.quests, progress)

	if err := e.store.Save(ctx, accountID, progress); err != nil {
		e.idem.Remove(txRef)
		return nil, err
	}

	e.logger.Info("action recorded",
		"account", accountID,
		"kind", kind,
		"amount", amount,
		"completed_quests", len(completed),
		"total_points", progress.TotalPoints,
	)

	return &RecordResult{
		Record:             record,
		Completed:          completed,
		NewlyUnlocked:      newly,
		UnlockedCategories: unlockedCategories(progress),
		TotalPoints:        progress.TotalPoints,
		Stats:              progress.Stats,
	}, nil
}

// evaluate tests every incomplete quest in an unlocked category, in
// catalog declaration order, and applies rewards for satisfied ones.
// A synthetic quest_completed record is appended per completion so
// complete-a-quest daily predicates can observe it.
func (e *Engine) evaluate(p *domain.UserProgress, now time.Time) ([]domain.QuestDefinition, error) {
	var completed []domain.QuestDefinition
	for _, q := range e.quests {
		if p.HasCompleted(q.ID) || !p.IsUnlocked(q.Category) {
			continue
		}
		ok, err := satisfied(q, e.quests, p, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		p.CompletedQuests = append(p.CompletedQuests, q.ID)
		p.TotalPoints += q.Reward.Points
		p.Badges = append(p.Badges, q.Reward.Badge)
		p.Categories[q.Category].Completed = append(p.Categories[q.Category].Completed, q.ID)
		p.ActionHistory = append(p.ActionHistory, domain.ActionRecord{
			Kind:       domain.ActionQuestCompleted,
			QuestID:    q.ID,
			OccurredAt: now,
		})
		completed = append(completed, q)

		e.logger.Info("quest completed",
			"account", p.AccountID,
			"quest", q.ID,
			"points", q.Reward.Points,
			"badge", q.Reward.Badge,
		)
	}
	return completed, nil
}

// applyStats folds one record into the rolling counters.
func applyStats(p *domain.UserProgress, r domain.ActionRecord) {
	p.Stats.TotalActions++
	p.Stats.TotalValueStaked += r.Amount
	if r.IsStakeLike() {
		p.Stats.TotalStakeEvents++
	}
	if r.Kind == domain.ActionGameWin {
		p.Stats.TotalGameWins++
		if r.Game.GameType != "" {
			p.Stats.PerGameWinCounts[r.Game.GameType]++
			if r.Game.Score > p.Stats.PerGameHighScore[r.Game.GameType] {
				p.Stats.PerGameHighScore[r.Game.GameType] = r.Game.Score
			}
		}
	}
}

// updateDailyStreak advances the consecutive-day counter: first action of
// the day extends the streak when the previous mark was yesterday,
// otherwise restarts it; repeated same-day actions leave it unchanged.
func updateDailyStreak(p *domain.UserProgress, now time.Time) {
	last := p.Stats.LastDailyDate
	if last != nil {
		if sameDay(*last, now) {
			return
		}
		if sameDay(*last, now.AddDate(0, 0, -1)) {
			p.Stats.DailyStreak++
		} else {
			p.Stats.DailyStreak = 1
		}
	} else {
		p.Stats.DailyStreak = 1
	}
	ts := now
	p.Stats.LastDailyDate = &ts
}

// sameDay compares UTC calendar days, matching the day scoping used by
// daily quest predicates.
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.UTC().Date()
	y2, m2, d2 := b.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// loadOrInit fetches stored progress or default-initializes it, then
// recomputes unlocks so catalog changes take effect on load.
func (e *Engine) loadOrInit(ctx context.Context, accountID string) (*domain.UserProgress, error) {
	progress, err := e.store.Load(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = domain.NewUserProgress(accountID)
		e.logger.Info("progress initialized", "account", accountID)
	}
	ensureShape(progress)
	recomputeUnlocks(e.quests, progress)
	return progress, nil
}

// ensureShape backfills maps and category states missing from older
// stored snapshots.
func ensureShape(p *domain.UserProgress) {
	if p.Stats.PerGameWinCounts == nil {
		p.Stats.PerGameWinCounts = make(map[domain.GameType]int)
	}
	if p.Stats.PerGameHighScore == nil {
		p.Stats.PerGameHighScore = make(map[domain.GameType]int)
	}
	if p.Categories == nil {
		p.Categories = make(map[domain.Category]*domain.CategoryState)
	}
	for _, c := range domain.AllCategories {
		if p.Categories[c] == nil {
			p.Categories[c] = &domain.CategoryState{
				Completed: []string{},
				Unlocked:  c == domain.CategoryDaily || c == domain.CategoryBeginner,
			}
		}
	}
}

// Progress returns the current progress for an account, initializing it
// on first load.
func (e *Engine) Progress(ctx context.Context, accountID string) (*domain.UserProgress, error) {
	e.locks.Lock(accountID)
	defer e.locks.Unlock(accountID)
	return e.loadOrInit(ctx, accountID)
}

// SetAvatar records the selected avatar.
func (e *Engine) SetAvatar(ctx context.Context, accountID, avatarID string) error {
	return e.mutate(ctx, accountID, func(p *domain.UserProgress) error {
		p.Avatar = avatarID
		return nil
	})
}

// EquipBadge equips an earned badge by name.
func (e *Engine) EquipBadge(ctx context.Context, accountID, badge string) error {
	return e.mutate(ctx, accountID, func(p *domain.UserProgress) error {
		if !p.HasBadge(badge) {
			return domain.ErrValidation("badge not earned: " + badge)
		}
		p.EquippedBadge = badge
		return nil
	})
}

// UnequipBadge clears the equipped badge.
func (e *Engine) UnequipBadge(ctx context.Context, accountID string) error {
	return e.mutate(ctx, accountID, func(p *domain.UserProgress) error {
		p.EquippedBadge = ""
		return nil
	})
}

// Reset fully clears an account's progress.
func (e *Engine) Reset(ctx context.Context, accountID string) error {
	e.locks.Lock(accountID)
	defer e.locks.Unlock(accountID)
	if err := e.store.Delete(ctx, accountID); err != nil {
		return err
	}
	e.logger.Info("progress reset", "account", accountID)
	return nil
}

func (e *Engine) mutate(ctx context.Context, accountID string, fn func(*domain.UserProgress) error) error {
	e.locks.Lock(accountID)
	defer e.locks.Unlock(accountID)
	progress, err := e.loadOrInit(ctx, accountID)
	if err != nil {
		return err
	}
	if err := fn(progress); err != nil {
		return err
	}
	return e.store.Save(ctx, accountID, progress)
}
