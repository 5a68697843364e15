package application

import (
	"context"
	"net/url"
	"sync"

	"course-order-export/internal/domain"
)

type fakeShopifyClient struct {
	mu sync.Mutex

	token       string
	exchangeErr error
	verifyOK    bool
	verifyErr   error
	orders      []domain.Order
	products    []domain.Product
	fetchErr    error

	exchangeCalls int
	verifyCalls   int
	listCalls     int
	lastToken     string
	lastQuery     domain.OrderQuery
}

func (f *fakeShopifyClient) AuthorizeURL(shop string) string {
	return "https://" + shop + "/admin/oauth/authorize?client_id=test"
}

func (f *fakeShopifyClient) ExchangeToken(ctx context.Context, shop string, code string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exchangeCalls++
	if f.exchangeErr != nil {
		return "", f.exchangeErr
	}
	return f.token, nil
}

func (f *fakeShopifyClient) VerifyCallback(u *url.URL) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyCalls++
	return f.verifyOK, f.verifyErr
}

func (f *fakeShopifyClient) ListOrders(ctx context.Context, shop string, accessToken string, query domain.OrderQuery) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	f.lastToken = accessToken
	f.lastQuery = query
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.orders, nil
}

func (f *fakeShopifyClient) ListProducts(ctx context.Context, shop string, accessToken string) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	f.lastToken = accessToken
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.products, nil
}

type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
	puts   int
	getErr error
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]string{}}
}

func (f *fakeTokenStore) Get(ctx context.Context, shop string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", false, f.getErr
	}
	t, ok := f.tokens[shop]
	return t, ok, nil
}

func (f *fakeTokenStore) Put(ctx context.Context, shop string, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	f.tokens[shop] = token
	return nil
}
