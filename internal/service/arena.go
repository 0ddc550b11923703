package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/senseiarena/arena/internal/auth"
	"github.com/senseiarena/arena/internal/domain"
	"github.com/senseiarena/arena/internal/games"
	"github.com/senseiarena/arena/internal/infra"
	"github.com/senseiarena/arena/internal/ledger"
	"github.com/senseiarena/arena/internal/quest"
)

// ArenaService orchestrates the ledger, the quest engine and event
// publishing. Ledger operations always run first; an action is recorded
// only after its transaction succeeded, so quest state never reflects a
// stake that did not happen.
type ArenaService struct {
	engine *quest.Engine
	ledger ledger.Client
	jwt    *auth.JWTManager
	events *infra.EventPublisher
	logger *slog.Logger
}

func NewArenaService(engine *quest.Engine, lc ledger.Client, jwt *auth.JWTManager, events *infra.EventPublisher, logger *slog.Logger) *ArenaService {
	return &ArenaService{
		engine: engine,
		ledger: lc,
		jwt:    jwt,
		events: events,
		logger: logger,
	}
}

// ConnectResult holds the session established for an account.
type ConnectResult struct {
	Account  *ledger.Account `json:"account"`
	Token    string          `json:"token"`
	Snapshot *quest.Snapshot `json:"snapshot"`
}

// Connect verifies the account against the ledger, records the login
// action, and issues a session token.
func (s *ArenaService) Connect(ctx context.Context, accountID string) (*ConnectResult, error) {
	account, err := s.ledger.Initialize(ctx, accountID)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.RecordAction(ctx, accountID, domain.ActionLogin, 0, "", domain.GameMeta{})
	if err != nil {
		return nil, err
	}
	s.publishRecord(ctx, accountID, result)

	token, err := s.jwt.GenerateToken(accountID, account.Network)
	if err != nil {
		return nil, domain.ErrInternal("generate session token", err)
	}

	snap, err := s.engine.Snapshot(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &ConnectResult{Account: account, Token: token, Snapshot: snap}, nil
}

// StakeResult holds the effects of a stake that reached the ledger.
type StakeResult struct {
	Receipt *ledger.StakeReceipt  `json:"receipt"`
	Badges  []*ledger.MintReceipt `json:"badges,omitempty"`
	Quest   *quest.RecordResult   `json:"quest"`
}

// DirectStake performs a user-initiated stake transaction and records it.
func (s *ArenaService) DirectStake(ctx context.Context, accountID string, amount int64) (*StakeResult, error) {
	if amount <= 0 {
		return nil, domain.ErrValidation("stake amount must be positive")
	}

	receipt, err := s.ledger.PerformStake(ctx, accountID, amount)
	if err != nil {
		return nil, domain.ErrTransaction("stake transaction failed", err)
	}

	result, err := s.engine.RecordAction(ctx, accountID, domain.ActionStake, amount,
		receipt.TransactionID, domain.GameMeta{Source: "direct"})
	if err != nil {
		return nil, err
	}

	badges := s.mintBadges(ctx, accountID, result.Completed)
	s.publishRecord(ctx, accountID, result)

	return &StakeResult{Receipt: receipt, Badges: badges, Quest: result}, nil
}

// SubmitOutcome settles a finished game session. Draws and zero-stake
// outcomes touch neither the ledger nor the quest engine. Any positive
// stake amount is staked, including partial credit carried by a loss;
// only winning and partial results record a game win.
func (s *ArenaService) SubmitOutcome(ctx context.Context, accountID string, out games.Outcome) (*StakeResult, error) {
	if out.GameType == "" {
		return nil, domain.ErrValidation("game type required")
	}
	if out.Result == games.ResultDraw || out.StakeAmount <= 0 {
		s.logger.Info("game outcome without stake",
			"account", accountID,
			"game", out.GameType,
			"result", out.Result)
		return nil, nil
	}

	receipt, err := s.ledger.PerformStake(ctx, accountID, out.StakeAmount)
	if err != nil {
		return nil, domain.ErrTransaction("stake transaction failed", err)
	}

	kind := domain.ActionGameWin
	if out.Result == games.ResultLoss {
		kind = domain.ActionStake
	}
	result, err := s.engine.RecordAction(ctx, accountID, kind, out.StakeAmount,
		receipt.TransactionID, domain.GameMeta{
			GameType: out.GameType,
			Score:    out.RawScore,
			Source:   "game",
		})
	if err != nil {
		return nil, err
	}

	badges := s.mintBadges(ctx, accountID, result.Completed)
	s.publishRecord(ctx, accountID, result)

	return &StakeResult{Receipt: receipt, Badges: badges, Quest: result}, nil
}

// Snapshot returns the full derived quest state for an account.
func (s *ArenaService) Snapshot(ctx context.Context, accountID string) (*quest.Snapshot, error) {
	return s.engine.Snapshot(ctx, accountID)
}

// SetAvatar updates the account's avatar.
func (s *ArenaService) SetAvatar(ctx context.Context, accountID, avatarID string) error {
	return s.engine.SetAvatar(ctx, accountID, avatarID)
}

// EquipBadge equips an earned badge on the account's profile.
func (s *ArenaService) EquipBadge(ctx context.Context, accountID, badge string) error {
	return s.engine.EquipBadge(ctx, accountID, badge)
}

// UnequipBadge clears the equipped badge.
func (s *ArenaService) UnequipBadge(ctx context.Context, accountID string) error {
	return s.engine.UnequipBadge(ctx, accountID)
}

// Reset wipes the account's quest progress.
func (s *ArenaService) Reset(ctx context.Context, accountID string) error {
	if err := s.engine.Reset(ctx, accountID); err != nil {
		return err
	}
	if err := s.events.Publish(ctx, domain.NewProgressResetEvent(accountID, time.Now().UTC())); err != nil {
		s.logger.Warn("event publish failed",
			"account", accountID,
			"event_type", domain.EventProgressReset,
			"error", err)
	}
	return nil
}

// mintBadges mints one achievement token per completed quest. Minting is
// best effort: the quest completion already persisted, so a mint failure
// is logged and skipped rather than unwinding progress.
func (s *ArenaService) mintBadges(ctx context.Context, accountID string, completed []domain.QuestDefinition) []*ledger.MintReceipt {
	var receipts []*ledger.MintReceipt
	for _, q := range completed {
		receipt, err := s.ledger.MintBadge(ctx, accountID, q)
		if err != nil {
			s.logger.Warn("badge mint failed",
				"account", accountID,
				"quest", q.ID,
				"error", err)
			continue
		}
		receipts = append(receipts, receipt)
	}
	return receipts
}

// publishRecord emits events for a recorded action and its effects.
// Publishing is best effort.
func (s *ArenaService) publishRecord(ctx context.Context, accountID string, result *quest.RecordResult) {
	occurredAt := result.Record.OccurredAt
	drafts := []domain.EventDraft{domain.NewActionRecordedEvent(accountID, result.Record)}
	for _, q := range result.Completed {
		drafts = append(drafts, domain.NewQuestCompletedEvent(accountID, q, occurredAt))
	}
	for _, c := range result.NewlyUnlocked {
		drafts = append(drafts, domain.NewCategoryUnlockedEvent(accountID, c, occurredAt))
	}
	for _, d := range drafts {
		if err := s.events.Publish(ctx, d); err != nil {
			s.logger.Warn("event publish failed",
				"account", accountID,
				"event_type", d.EventType,
				"error", err)
		}
	}
}
