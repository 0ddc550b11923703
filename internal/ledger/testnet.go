package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/senseiarena/arena/internal/domain"
)

// TestnetClient is an in-process ledger backed by no real network. It
// validates inputs, fabricates receipts and keeps a per-account serial
// counter, which is enough for development and tests.
type TestnetClient struct {
	mu      sync.Mutex
	logger  *slog.Logger
	tokens  map[string]string
	serials map[string]int
}

func NewTestnetClient(logger *slog.Logger) *TestnetClient {
	return &TestnetClient{
		logger:  logger,
		tokens:  make(map[string]string),
		serials: make(map[string]int),
	}
}

func (c *TestnetClient) Initialize(ctx context.Context, accountID string) (*Account, error) {
	if err := validAccountID(accountID); err != nil {
		return nil, err
	}

	c.mu.Lock()
	token, ok := c.tokens[accountID]
	if !ok {
		token = fmt.Sprintf("0.0.%s", uuid.NewString()[:8])
		c.tokens[accountID] = token
	}
	c.mu.Unlock()

	c.logger.Info("ledger account initialized",
		slog.String("account_id", accountID),
		slog.String("token_id", token))

	return &Account{
		AccountID: accountID,
		Network:   "testnet",
		TokenID:   token,
	}, nil
}

func (c *TestnetClient) PerformStake(ctx context.Context, accountID string, amount int64) (*StakeReceipt, error) {
	if err := validAccountID(accountID); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, domain.ErrValidation("stake amount must be positive")
	}

	c.mu.Lock()
	token := c.tokens[accountID]
	c.serials[accountID]++
	serial := c.serials[accountID]
	c.mu.Unlock()

	txID := fmt.Sprintf("%s@%s", accountID, uuid.NewString())
	c.logger.Info("stake executed",
		slog.String("account_id", accountID),
		slog.Int64("amount", amount),
		slog.String("transaction_id", txID))

	return &StakeReceipt{
		Action:        "Stake",
		Amount:        amount,
		TokenID:       token,
		SerialNumber:  fmt.Sprintf("%d", serial),
		TransactionID: txID,
		Timestamp:     time.Now().UTC(),
		Verified:      true,
	}, nil
}

func (c *TestnetClient) MintBadge(ctx context.Context, accountID string, quest domain.QuestDefinition) (*MintReceipt, error) {
	if err := validAccountID(accountID); err != nil {
		return nil, err
	}
	if quest.ID == "" {
		return nil, domain.ErrValidation("quest id required")
	}

	c.mu.Lock()
	token := c.tokens[accountID]
	c.serials[accountID]++
	serial := c.serials[accountID]
	c.mu.Unlock()

	txID := fmt.Sprintf("%s@%s", accountID, uuid.NewString())
	c.logger.Info("badge minted",
		slog.String("account_id", accountID),
		slog.String("quest_id", quest.ID),
		slog.String("badge", quest.Reward.Badge),
		slog.String("transaction_id", txID))

	return &MintReceipt{
		QuestID:       quest.ID,
		Badge:         quest.Reward.Badge,
		TokenID:       token,
		SerialNumber:  fmt.Sprintf("%d", serial),
		TransactionID: txID,
		Timestamp:     time.Now().UTC(),
	}, nil
}

func validAccountID(accountID string) error {
	if strings.TrimSpace(accountID) == "" {
		return domain.ErrValidation("account id required")
	}
	return nil
}
