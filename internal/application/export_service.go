package application

import (
	"context"
	"fmt"

	"course-order-export/internal/domain"
	"course-order-export/internal/ports"

	"github.com/rs/zerolog"
)

// ExportService reads a shop's orders and products and shapes them for export
type ExportService struct {
	client ports.ShopifyClient
	store  ports.TokenStore
	logger zerolog.Logger
}

// NewExportService creates a new export service
func NewExportService(client ports.ShopifyClient, store ports.TokenStore, logger zerolog.Logger) *ExportService {
	return &ExportService{
		client: client,
		store:  store,
		logger: logger,
	}
}

// ExportOrdersInput selects the orders to export
type ExportOrdersInput struct {
	Shop      string
	Query     domain.OrderQuery
	ProductID string
}

// ExportOrders fetches every order in the date range and flattens it into export
// records. A failed fetch returns no records.
func (s *ExportService) ExportOrders(ctx context.Context, in ExportOrdersInput) ([]domain.ExportRecord, error) {
	if in.Shop == "" || in.Query.StartDate == "" || in.Query.EndDate == "" {
		return nil, fmt.Errorf("shop, startDate and endDate are required: %w", domain.ErrMissingParameter)
	}

	accessToken, err := s.accessToken(ctx, in.Shop)
	if err != nil {
		return nil, err
	}

	orders, err := s.client.ListOrders(ctx, in.Shop, accessToken, in.Query)
	if err != nil {
		s.logger.Error().Err(err).Str("shop", in.Shop).Msg("Failed to fetch orders")
		return nil, err
	}

	records := FlattenOrders(orders, in.ProductID)

	s.logger.Info().
		Str("shop", in.Shop).
		Str("startDate", in.Query.StartDate).
		Str("endDate", in.Query.EndDate).
		Str("productId", in.ProductID).
		Int("orders", len(orders)).
		Int("records", len(records)).
		Msg("Exported orders")

	return records, nil
}

// CourseProducts lists the shop's active course products sorted by title
func (s *ExportService) CourseProducts(ctx context.Context, shop string) ([]domain.CourseProduct, error) {
	if shop == "" {
		return nil, fmt.Errorf("shop is required: %w", domain.ErrMissingParameter)
	}

	accessToken, err := s.accessToken(ctx, shop)
	if err != nil {
		return nil, err
	}

	products, err := s.client.ListProducts(ctx, shop, accessToken)
	if err != nil {
		s.logger.Error().Err(err).Str("shop", shop).Msg("Failed to fetch products")
		return nil, err
	}

	return SelectCourseProducts(products), nil
}

func (s *ExportService) accessToken(ctx context.Context, shop string) (string, error) {
	token, ok, err := s.store.Get(ctx, shop)
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	if !ok {
		return "", domain.ErrNotAuthenticated
	}
	return token, nil
}
