package domain

import "time"

// tokenKeyPrefix namespaces bearer tokens inside the shared key-value store
const tokenKeyPrefix = "token:"

// TokenKey returns the store key holding the bearer token for a shop
func TokenKey(shop string) string {
	return tokenKeyPrefix + shop
}

// ShopToken is a persisted bearer token for a tenant shop.
// Tokens carry no expiry; re-authenticating overwrites the previous value.
type ShopToken struct {
	Key         string    `json:"key"`
	Shop        string    `json:"shop"`
	AccessToken string    `json:"-"`
	UpdatedAt   time.Time `json:"updated_at"`
}
