package shopify

import (
	"fmt"
	"strconv"

	"course-order-export/internal/domain"

	goshopify "github.com/bold-commerce/go-shopify/v4"
)

func orderToDomain(o goshopify.Order) domain.Order {
	order := domain.Order{
		ID:        formatID(o.Id),
		Name:      o.Name,
		Email:     o.Email,
		LineItems: make([]domain.LineItem, 0, len(o.LineItems)),
	}
	if o.CreatedAt != nil {
		order.CreatedAt = *o.CreatedAt
	}
	if o.Customer != nil {
		order.Customer = &domain.Customer{
			FirstName: o.Customer.FirstName,
			LastName:  o.Customer.LastName,
			Email:     o.Customer.Email,
		}
	}
	for _, li := range o.LineItems {
		item := domain.LineItem{
			Title:        li.Title,
			VariantTitle: li.VariantTitle,
			ProductID:    formatID(li.ProductId),
			Properties:   make([]domain.Property, 0, len(li.Properties)),
		}
		for _, p := range li.Properties {
			item.Properties = append(item.Properties, domain.Property{
				Name:  p.Name,
				Value: propertyValue(p.Value),
			})
		}
		order.LineItems = append(order.LineItems, item)
	}
	return order
}

func productToDomain(p goshopify.Product) domain.Product {
	return domain.Product{
		ID:    formatID(p.Id),
		Title: p.Title,
		Tags:  p.Tags,
	}
}

// formatID renders an upstream id; zero means absent
func formatID(id uint64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatUint(id, 10)
}

// propertyValue renders a checkout property value, which may be any JSON scalar
func propertyValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
