package ports

import (
	"context"
	"net/url"

	"course-order-export/internal/domain"
)

// ShopifyClient defines the upstream operations the export pipeline needs.
// Implementations own the wire format; callers only see domain types.
type ShopifyClient interface {
	// Authentication
	AuthorizeURL(shop string) string
	ExchangeToken(ctx context.Context, shop string, code string) (string, error)
	VerifyCallback(u *url.URL) (bool, error)

	// Order API
	ListOrders(ctx context.Context, shop string, accessToken string, query domain.OrderQuery) ([]domain.Order, error)

	// Product API
	ListProducts(ctx context.Context, shop string, accessToken string) ([]domain.Product, error)
}
