package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"course-order-export/internal/config"
	"course-order-export/internal/domain"

	goshopify "github.com/bold-commerce/go-shopify/v4"
	"github.com/rs/zerolog"
)

// Client adapts the Shopify Admin REST API to ports.ShopifyClient
type Client struct {
	creds       config.ShopifyConfig
	limits      config.ExportConfig
	app         goshopify.App
	httpClient  *http.Client
	baseURL     BaseURLFunc
	redirectURI string
	pager       *Pager
	logger      zerolog.Logger
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for all upstream calls
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL points the client at a different origin than the shop domain
func WithBaseURL(fn BaseURLFunc) Option {
	return func(c *Client) {
		c.baseURL = fn
	}
}

// WithMetrics records pagination metrics
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.pager.metrics = m
	}
}

// NewClient creates a Shopify client adapter. appURL is the public origin of this
// service; the OAuth redirect lands on <appURL>/api/auth/callback.
func NewClient(creds config.ShopifyConfig, limits config.ExportConfig, appURL string, logger zerolog.Logger, opts ...Option) *Client {
	redirectURI := appURL + "/api/auth/callback"
	c := &Client{
		creds:  creds,
		limits: limits,
		app: goshopify.App{
			ApiKey:      creds.ClientID,
			ApiSecret:   creds.ClientSecret,
			RedirectUrl: redirectURI,
			Scope:       creds.Scopes,
		},
		httpClient:  &http.Client{Timeout: creds.HTTPTimeout},
		baseURL:     DefaultBaseURL,
		redirectURI: redirectURI,
		logger:      logger,
	}
	c.pager = NewPager(c.httpClient, c.baseURL, creds.APIVersion, nil, logger)
	for _, opt := range opts {
		opt(c)
	}
	c.pager.httpClient = c.httpClient
	c.pager.baseURL = c.baseURL
	return c
}

// NormalizeShop canonicalises a shop parameter to its myshopify.com domain
func NormalizeShop(shop string) string {
	if shop == "" {
		return ""
	}
	return goshopify.ShopFullName(shop)
}

// Authentication methods

// AuthorizeURL builds the OAuth install URL for a shop
func (c *Client) AuthorizeURL(shop string) string {
	return fmt.Sprintf(
		"%s/admin/oauth/authorize?client_id=%s&scope=%s&redirect_uri=%s",
		c.baseURL(shop),
		url.QueryEscape(c.creds.ClientID),
		url.QueryEscape(c.creds.Scopes),
		url.QueryEscape(c.redirectURI),
	)
}

// VerifyCallback checks the hmac Shopify appends to the OAuth callback URL
func (c *Client) VerifyCallback(u *url.URL) (bool, error) {
	return c.app.VerifyAuthorizationURL(u)
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
}

// ExchangeToken trades an authorization code for an offline access token with a
// single POST. A non-success status is returned as *domain.UpstreamAuthError.
func (c *Client) ExchangeToken(ctx context.Context, shop string, code string) (string, error) {
	payload, err := json.Marshal(tokenRequest{
		ClientID:     c.creds.ClientID,
		ClientSecret: c.creds.ClientSecret,
		Code:         code,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode token request: %w", err)
	}

	tokenURL := c.baseURL(shop) + "/admin/oauth/access_token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to exchange token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", &domain.UpstreamAuthError{Status: resp.StatusCode, Body: string(bodyBytes)}
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		Scope       string `json:"scope"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResponse.AccessToken == "" {
		return "", fmt.Errorf("token response for %s has no access_token", shop)
	}

	c.logger.Info().
		Str("shop", shop).
		Str("granted_scopes", tokenResponse.Scope).
		Msg("Exchanged OAuth code for access token")

	return tokenResponse.AccessToken, nil
}

// Order API

// ListOrders fetches every order of any status created within the query's days
func (c *Client) ListOrders(ctx context.Context, shop string, accessToken string, q domain.OrderQuery) ([]domain.Order, error) {
	query := url.Values{}
	query.Set("status", "any")
	query.Set("created_at_min", q.StartDate+"T00:00:00Z")
	query.Set("created_at_max", q.EndDate+"T23:59:59Z")
	query.Set("limit", strconv.Itoa(c.limits.PageLimit))

	raw, err := c.pager.FetchAll(ctx, shop, accessToken, "orders.json", query, "orders", c.limits.OrderSafetyCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(raw))
	for _, item := range raw {
		var order goshopify.Order
		if err := json.Unmarshal(item, &order); err != nil {
			return nil, fmt.Errorf("failed to decode order: %w", err)
		}
		orders = append(orders, orderToDomain(order))
	}
	return orders, nil
}

// Product API

// ListProducts fetches every active product
func (c *Client) ListProducts(ctx context.Context, shop string, accessToken string) ([]domain.Product, error) {
	query := url.Values{}
	query.Set("status", "active")
	query.Set("limit", strconv.Itoa(c.limits.PageLimit))

	raw, err := c.pager.FetchAll(ctx, shop, accessToken, "products.json", query, "products", c.limits.ProductSafetyCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]domain.Product, 0, len(raw))
	for _, item := range raw {
		var product goshopify.Product
		if err := json.Unmarshal(item, &product); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, productToDomain(product))
	}
	return products, nil
}
