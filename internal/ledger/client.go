// Package ledger is the boundary to the external staking ledger. The
// quest engine never talks to it directly; the service layer performs
// ledger operations first and records actions only on success.
package ledger

import (
	"context"
	"time"

	"github.com/senseiarena/arena/internal/domain"
)

// Account is the ledger-side view of a connected account.
type Account struct {
	AccountID string `json:"accountId"`
	Network   string `json:"network"`
	TokenID   string `json:"tokenId,omitempty"`
}

// StakeReceipt confirms a completed stake transaction.
type StakeReceipt struct {
	Action        string    `json:"action"`
	Amount        int64     `json:"amount"`
	TokenID       string    `json:"nftId,omitempty"`
	SerialNumber  string    `json:"serialNumber,omitempty"`
	TransactionID string    `json:"transactionId"`
	Timestamp     time.Time `json:"timestamp"`
	Verified      bool      `json:"verified"`
}

// MintReceipt confirms a minted achievement badge token.
type MintReceipt struct {
	QuestID       string    `json:"questId"`
	Badge         string    `json:"badge"`
	TokenID       string    `json:"tokenId,omitempty"`
	SerialNumber  string    `json:"serialNumber"`
	TransactionID string    `json:"transactionId"`
	Timestamp     time.Time `json:"timestamp"`
}

// Client performs ledger operations. Implementations must be safe for
// concurrent use.
type Client interface {
	// Initialize verifies the account and prepares the badge token,
	// creating it on first use.
	Initialize(ctx context.Context, accountID string) (*Account, error)

	// PerformStake executes a stake transaction and returns its receipt.
	PerformStake(ctx context.Context, accountID string, amount int64) (*StakeReceipt, error)

	// MintBadge mints an achievement badge token for a completed quest.
	MintBadge(ctx context.Context, accountID string, quest domain.QuestDefinition) (*MintReceipt, error)
}
