package repository

import (
	"context"
	"errors"
	"fmt"

	"course-order-export/internal/domain"
	"course-order-export/internal/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createShopTokensTable = `
CREATE TABLE IF NOT EXISTS shop_tokens (
  key TEXT PRIMARY KEY,
  shop TEXT NOT NULL,
  access_token TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresTokenStore implements TokenStore on a shop_tokens table
type PostgresTokenStore struct {
	pool *pgxpool.Pool
}

// NewPostgresTokenStore creates a token store on an existing pool
func NewPostgresTokenStore(pool *pgxpool.Pool) *PostgresTokenStore {
	return &PostgresTokenStore{pool: pool}
}

var _ ports.TokenStore = (*PostgresTokenStore)(nil)

// EnsureSchema creates the shop_tokens table if it does not exist
func (s *PostgresTokenStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createShopTokensTable); err != nil {
		return fmt.Errorf("create shop_tokens: %w", err)
	}
	return nil
}

// Get retrieves the token for a shop
func (s *PostgresTokenStore) Get(ctx context.Context, shop string) (string, bool, error) {
	var token string
	err := s.pool.QueryRow(ctx, `SELECT access_token FROM shop_tokens WHERE key = $1`, domain.TokenKey(shop)).Scan(&token)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get token: %w", err)
	}
	return token, true, nil
}

// Put upserts the token for a shop; the last write wins
func (s *PostgresTokenStore) Put(ctx context.Context, shop string, token string) error {
	_, err := s.pool.Exec(ctx, `
INSERT INTO shop_tokens (key, shop, access_token, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
ON CONFLICT (key) DO UPDATE
SET access_token = EXCLUDED.access_token,
    updated_at = now()
`, domain.TokenKey(shop), shop, token)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}
