package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"course-order-export/internal/domain"

	"github.com/rs/zerolog"
)

// BaseURLFunc maps a shop domain to the origin serving its Admin API
type BaseURLFunc func(shop string) string

// DefaultBaseURL talks to the shop's own domain over HTTPS
func DefaultBaseURL(shop string) string {
	return "https://" + shop
}

// Pager walks a cursor-paginated Admin REST collection.
// Pages are requested strictly one after another; each cursor comes from the
// previous response.
type Pager struct {
	httpClient *http.Client
	baseURL    BaseURLFunc
	apiVersion string
	metrics    *Metrics
	logger     zerolog.Logger
}

// NewPager creates a pager for the given Admin API version
func NewPager(httpClient *http.Client, baseURL BaseURLFunc, apiVersion string, metrics *Metrics, logger zerolog.Logger) *Pager {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == nil {
		baseURL = DefaultBaseURL
	}
	return &Pager{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiVersion: apiVersion,
		metrics:    metrics,
		logger:     logger,
	}
}

// FetchAll returns every item under itemsField across all pages of resourcePath.
//
// The first request carries initialQuery. Later requests carry only the page size
// and the page_info cursor, since the cursor already encodes the other filters.
// Fetching stops when no next page is advertised or once more than safetyCap items
// have been accumulated, so at most one page beyond the cap is read. Any
// non-success page aborts the whole fetch with *domain.UpstreamFetchError.
func (p *Pager) FetchAll(
	ctx context.Context,
	shop string,
	accessToken string,
	resourcePath string,
	initialQuery url.Values,
	itemsField string,
	safetyCap int,
) ([]json.RawMessage, error) {
	start := time.Now()
	defer p.metrics.observeDuration(itemsField, start)

	endpoint := fmt.Sprintf("%s/admin/api/%s/%s", p.baseURL(shop), p.apiVersion, resourcePath)
	limit := initialQuery.Get("limit")
	query := initialQuery

	var items []json.RawMessage
	for page := 1; ; page++ {
		body, link, err := p.getPage(ctx, endpoint, accessToken, query, itemsField)
		if err != nil {
			return nil, err
		}

		pageItems, err := decodeItems(body, itemsField)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s page %d: %w", itemsField, page, err)
		}
		items = append(items, pageItems...)
		p.metrics.observePage(itemsField, len(pageItems))

		p.logger.Debug().
			Str("shop", shop).
			Str("resource", itemsField).
			Int("page", page).
			Int("items", len(items)).
			Msg("Fetched page")

		cursor, ok := NextPageInfo(link)
		if !ok {
			break
		}
		if len(items) > safetyCap {
			p.logger.Warn().
				Str("shop", shop).
				Str("resource", itemsField).
				Int("items", len(items)).
				Int("safetyCap", safetyCap).
				Msg("Safety cap exceeded, stopping pagination")
			break
		}

		query = url.Values{}
		if limit != "" {
			query.Set("limit", limit)
		}
		query.Set("page_info", cursor)
	}

	return items, nil
}

// getPage performs one GET and returns the body and the Link header
func (p *Pager) getPage(ctx context.Context, endpoint, accessToken string, query url.Values, resource string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		p.metrics.observeError(resource, resp.StatusCode)
		return nil, "", &domain.UpstreamFetchError{Status: resp.StatusCode, Resource: resource}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s response: %w", resource, err)
	}

	return body, strings.Join(resp.Header.Values("Link"), ", "), nil
}

// decodeItems pulls the array under field out of a page body. A missing or null
// field yields no items.
func decodeItems(body []byte, field string) ([]json.RawMessage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	raw, ok := envelope[field]
	if !ok {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
