package application

import (
	"context"
	"fmt"
	"net/url"

	"course-order-export/internal/domain"
	"course-order-export/internal/ports"

	"github.com/rs/zerolog"
)

// AuthService runs the OAuth install flow and answers whether a shop is connected
type AuthService struct {
	client     ports.ShopifyClient
	store      ports.TokenStore
	verifyHMAC bool
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service. When verifyHMAC is set, callbacks
// must carry a valid Shopify signature before any code is exchanged.
func NewAuthService(client ports.ShopifyClient, store ports.TokenStore, verifyHMAC bool, logger zerolog.Logger) *AuthService {
	return &AuthService{
		client:     client,
		store:      store,
		verifyHMAC: verifyHMAC,
		logger:     logger,
	}
}

// CallbackInput is what the OAuth redirect hands back to us
type CallbackInput struct {
	Shop string
	Code string
	// URL is the full callback URL, needed only for signature verification
	URL *url.URL
}

// AuthStatus reports whether a shop has a token on record
type AuthStatus struct {
	Authenticated bool   `json:"authenticated"`
	AuthURL       string `json:"authUrl,omitempty"`
}

// HandleCallback exchanges the authorization code for an access token and stores it.
// Missing input fails with domain.ErrMissingParameter before any upstream call.
func (s *AuthService) HandleCallback(ctx context.Context, in CallbackInput) error {
	if in.Shop == "" || in.Code == "" {
		return fmt.Errorf("code and shop are required: %w", domain.ErrMissingParameter)
	}

	if s.verifyHMAC {
		if in.URL == nil {
			return domain.ErrInvalidSignature
		}
		ok, err := s.client.VerifyCallback(in.URL)
		if err != nil {
			s.logger.Warn().Err(err).Str("shop", in.Shop).Msg("Failed to verify callback signature")
			return fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
		}
		if !ok {
			s.logger.Warn().Str("shop", in.Shop).Msg("Callback signature mismatch")
			return domain.ErrInvalidSignature
		}
	}

	accessToken, err := s.client.ExchangeToken(ctx, in.Shop, in.Code)
	if err != nil {
		s.logger.Error().Err(err).Str("shop", in.Shop).Msg("Failed to exchange token")
		return fmt.Errorf("failed to exchange token: %w", err)
	}

	if err := s.store.Put(ctx, in.Shop, accessToken); err != nil {
		s.logger.Error().Err(err).Str("shop", in.Shop).Msg("Failed to save access token")
		return fmt.Errorf("failed to save access token: %w", err)
	}

	s.logger.Info().Str("shop", in.Shop).Msg("Shop authenticated")
	return nil
}

// Check reports whether shop is connected, with the install URL when it is not
func (s *AuthService) Check(ctx context.Context, shop string) (*AuthStatus, error) {
	if shop == "" {
		return nil, fmt.Errorf("shop is required: %w", domain.ErrMissingParameter)
	}

	_, ok, err := s.store.Get(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}
	if ok {
		return &AuthStatus{Authenticated: true}, nil
	}

	return &AuthStatus{
		Authenticated: false,
		AuthURL:       s.client.AuthorizeURL(shop),
	}, nil
}
