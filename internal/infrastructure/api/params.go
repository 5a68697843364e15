package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"course-order-export/internal/domain"
	shopifyinfra "course-order-export/internal/infrastructure/shopify"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type shopParams struct {
	Shop string `validate:"required"`
}

type ordersParams struct {
	Shop      string `validate:"required"`
	StartDate string `validate:"required,datetime=2006-01-02"`
	EndDate   string `validate:"required,datetime=2006-01-02"`
	ProductID string `validate:"omitempty,numeric"`
}

type callbackParams struct {
	Shop string `validate:"required"`
	Code string `validate:"required"`
	Host string
}

// shopParam reads and normalises the shop query parameter
func shopParam(r *http.Request) string {
	shop := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("shop")))
	return shopifyinfra.NormalizeShop(shop)
}

func parseShopParams(r *http.Request) (shopParams, error) {
	p := shopParams{Shop: shopParam(r)}
	return p, checkParams(p)
}

func parseOrdersParams(r *http.Request) (ordersParams, error) {
	q := r.URL.Query()
	p := ordersParams{
		Shop:      shopParam(r),
		StartDate: strings.TrimSpace(q.Get("startDate")),
		EndDate:   strings.TrimSpace(q.Get("endDate")),
		ProductID: strings.TrimSpace(q.Get("productId")),
	}
	return p, checkParams(p)
}

func parseCallbackParams(r *http.Request) (callbackParams, error) {
	q := r.URL.Query()
	p := callbackParams{
		Shop: shopParam(r),
		Code: q.Get("code"),
		Host: q.Get("host"),
	}
	return p, checkParams(p)
}

// checkParams validates p; absent fields map to ErrMissingParameter and
// malformed ones to ErrInvalidParameter
func checkParams(p interface{}) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(missing, ", "), domain.ErrMissingParameter)
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidParameter, strings.Join(invalid, ", "))
}
