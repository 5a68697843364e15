package repository

import (
	"context"
	"errors"
	"fmt"

	"course-order-export/internal/domain"
	"course-order-export/internal/ports"

	"github.com/redis/go-redis/v9"
)

// RedisTokenStore keeps one token per shop under token:<shop>, with no expiry
type RedisTokenStore struct {
	client redis.UniversalClient
}

// NewRedisTokenStore creates a token store on an existing Redis client
func NewRedisTokenStore(client redis.UniversalClient) ports.TokenStore {
	return &RedisTokenStore{client: client}
}

// Get retrieves the token for a shop
func (s *RedisTokenStore) Get(ctx context.Context, shop string) (string, bool, error) {
	token, err := s.client.Get(ctx, domain.TokenKey(shop)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get token: %w", err)
	}
	return token, true, nil
}

// Put stores or replaces the token for a shop
func (s *RedisTokenStore) Put(ctx context.Context, shop string, token string) error {
	if err := s.client.Set(ctx, domain.TokenKey(shop), token, 0).Err(); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}
