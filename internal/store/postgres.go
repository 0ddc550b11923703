package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/senseiarena/arena/internal/domain"
)

// PostgresStore persists progress as one JSONB row per account.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Postgres-backed ProgressStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Load(ctx context.Context, accountID string) (*domain.UserProgress, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT progress FROM user_progress WHERE account_id = $1`, accountID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.ErrInternal("load progress", err)
	}
	var progress domain.UserProgress
	if err := json.Unmarshal(raw, &progress); err != nil {
		return nil, domain.ErrInternal("decode progress", err)
	}
	return &progress, nil
}

func (s *PostgresStore) Save(ctx context.Context, accountID string, progress *domain.UserProgress) error {
	raw, err := json.Marshal(progress)
	if err != nil {
		return domain.ErrInternal("encode progress", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO user_progress (account_id, progress, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (account_id)
		DO UPDATE SET progress = EXCLUDED.progress, updated_at = now()`,
		accountID, raw)
	if err != nil {
		return domain.ErrInternal("save progress", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, accountID string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM user_progress WHERE account_id = $1`, accountID)
	if err != nil {
		return domain.ErrInternal("delete progress", err)
	}
	return nil
}
