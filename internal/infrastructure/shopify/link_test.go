package shopify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPageInfo(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{
			name:   "empty header",
			header: "",
		},
		{
			name:   "only previous",
			header: `<https://shop.myshopify.com/admin/api/2024-01/orders.json?limit=250&page_info=prev123>; rel="previous"`,
		},
		{
			name:   "next only",
			header: `<https://shop.myshopify.com/admin/api/2024-01/orders.json?limit=250&page_info=abc123>; rel="next"`,
			want:   "abc123",
			wantOK: true,
		},
		{
			name: "previous and next",
			header: `<https://shop.myshopify.com/admin/api/2024-01/orders.json?limit=250&page_info=prev>; rel="previous", ` +
				`<https://shop.myshopify.com/admin/api/2024-01/orders.json?limit=250&page_info=next>; rel="next"`,
			want:   "next",
			wantOK: true,
		},
		{
			name:   "next without cursor",
			header: `<https://shop.myshopify.com/admin/api/2024-01/orders.json?limit=250>; rel="next"`,
		},
		{
			name:   "cursor is opaque",
			header: `<https://shop.myshopify.com/admin/api/2024-01/products.json?page_info=eyJsYXN0X2lkIjo0fQ>; rel="next"`,
			want:   "eyJsYXN0X2lkIjo0fQ",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextPageInfo(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
