package ports

import "context"

// TokenStore persists one bearer token per shop.
// Get returns ("", false, nil) when nothing is stored for the shop.
type TokenStore interface {
	Get(ctx context.Context, shop string) (string, bool, error)
	Put(ctx context.Context, shop string, token string) error
}
