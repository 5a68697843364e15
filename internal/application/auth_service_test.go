package application

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"course-order-export/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShop = "kids-club.myshopify.com"

func TestHandleCallback(t *testing.T) {
	client := &fakeShopifyClient{token: "shpat_1"}
	store := newFakeTokenStore()
	svc := NewAuthService(client, store, false, zerolog.Nop())

	err := svc.HandleCallback(context.Background(), CallbackInput{Shop: testShop, Code: "abc"})
	require.NoError(t, err)
	assert.Equal(t, 1, client.exchangeCalls)
	assert.Equal(t, 1, store.puts)
	assert.Equal(t, "shpat_1", store.tokens[testShop])
}

func TestHandleCallbackMissingParameters(t *testing.T) {
	for _, in := range []CallbackInput{
		{Shop: testShop},
		{Code: "abc"},
		{},
	} {
		client := &fakeShopifyClient{token: "shpat_1"}
		store := newFakeTokenStore()
		svc := NewAuthService(client, store, true, zerolog.Nop())

		err := svc.HandleCallback(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrMissingParameter)
		assert.Zero(t, client.exchangeCalls)
		assert.Zero(t, client.verifyCalls)
		assert.Zero(t, store.puts)
	}
}

func TestHandleCallbackExchangeRejected(t *testing.T) {
	client := &fakeShopifyClient{exchangeErr: &domain.UpstreamAuthError{Status: 400, Body: "bad code"}}
	store := newFakeTokenStore()
	svc := NewAuthService(client, store, false, zerolog.Nop())

	err := svc.HandleCallback(context.Background(), CallbackInput{Shop: testShop, Code: "abc"})

	var authErr *domain.UpstreamAuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, 400, authErr.Status)
	assert.Zero(t, store.puts)
}

func TestHandleCallbackSignature(t *testing.T) {
	u, err := url.Parse("https://export.example.com/api/auth/callback?code=abc&shop=kids-club.myshopify.com&hmac=deadbeef")
	require.NoError(t, err)

	t.Run("rejected", func(t *testing.T) {
		client := &fakeShopifyClient{token: "shpat_1", verifyOK: false}
		store := newFakeTokenStore()
		svc := NewAuthService(client, store, true, zerolog.Nop())

		err := svc.HandleCallback(context.Background(), CallbackInput{Shop: testShop, Code: "abc", URL: u})
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
		assert.Zero(t, client.exchangeCalls)
		assert.Zero(t, store.puts)
	})

	t.Run("accepted", func(t *testing.T) {
		client := &fakeShopifyClient{token: "shpat_1", verifyOK: true}
		store := newFakeTokenStore()
		svc := NewAuthService(client, store, true, zerolog.Nop())

		err := svc.HandleCallback(context.Background(), CallbackInput{Shop: testShop, Code: "abc", URL: u})
		require.NoError(t, err)
		assert.Equal(t, 1, client.verifyCalls)
		assert.Equal(t, 1, store.puts)
	})
}

func TestCheck(t *testing.T) {
	client := &fakeShopifyClient{}
	store := newFakeTokenStore()
	svc := NewAuthService(client, store, false, zerolog.Nop())

	status, err := svc.Check(context.Background(), testShop)
	require.NoError(t, err)
	assert.False(t, status.Authenticated)
	assert.Equal(t, "https://kids-club.myshopify.com/admin/oauth/authorize?client_id=test", status.AuthURL)

	require.NoError(t, store.Put(context.Background(), testShop, "shpat_1"))
	status, err = svc.Check(context.Background(), testShop)
	require.NoError(t, err)
	assert.True(t, status.Authenticated)
	assert.Empty(t, status.AuthURL)

	_, err = svc.Check(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}
