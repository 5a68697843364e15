package application

import (
	"strings"
	"time"

	"course-order-export/internal/domain"
)

const (
	guestCustomerName = "Guest"
	orderDateLayout   = "02/01/2006"
)

// Checkout property names seen for each extracted field, most specific first
var (
	childNameAliases         = []string{"Child's Name", "Child Name", "child_name"}
	childAgeAliases          = []string{"Child's Age", "Child Age", "child_age"}
	childDOBAliases          = []string{"Child's Date of Birth", "Date of Birth", "child_dob"}
	medicalConditionsAliases = []string{"Known Medical Conditions", "Medical Conditions", "medical_conditions"}
	contactPhoneAliases      = []string{"Contact Telephone Number", "Contact Phone", "phone"}
	contactEmailAliases      = []string{"Contact Email", "contact_email"}
)

// FlattenOrders turns orders into one export record per line item, keeping fetch
// order and line item order. When productID is non-empty only line items of that
// product are kept.
func FlattenOrders(orders []domain.Order, productID string) []domain.ExportRecord {
	records := make([]domain.ExportRecord, 0, len(orders))
	for _, order := range orders {
		for _, item := range order.LineItems {
			if productID != "" && item.ProductID != productID {
				continue
			}
			records = append(records, flattenLineItem(order, item))
		}
	}
	return records
}

func flattenLineItem(order domain.Order, item domain.LineItem) domain.ExportRecord {
	props := propertyMap(item.Properties)
	return domain.ExportRecord{
		OrderNumber:       order.Name,
		OrderDate:         formatOrderDate(order.CreatedAt),
		CustomerName:      customerName(order.Customer),
		CustomerEmail:     customerEmail(order),
		CourseName:        courseName(item),
		ChildName:         resolveAlias(props, childNameAliases),
		ChildAge:          resolveAlias(props, childAgeAliases),
		ChildDOB:          resolveAlias(props, childDOBAliases),
		MedicalConditions: resolveAlias(props, medicalConditionsAliases),
		ContactPhone:      resolveAlias(props, contactPhoneAliases),
		ContactEmail:      resolveAlias(props, contactEmailAliases),
	}
}

// propertyMap indexes properties by name; a repeated name keeps its last value
func propertyMap(properties []domain.Property) map[string]string {
	props := make(map[string]string, len(properties))
	for _, p := range properties {
		props[p.Name] = p.Value
	}
	return props
}

// resolveAlias returns the value of the first alias that is present and non-empty
func resolveAlias(props map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if v := props[alias]; v != "" {
			return v
		}
	}
	return ""
}

func customerName(c *domain.Customer) string {
	if c == nil {
		return guestCustomerName
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func customerEmail(order domain.Order) string {
	if order.Customer != nil && order.Customer.Email != "" {
		return order.Customer.Email
	}
	return order.Email
}

func courseName(item domain.LineItem) string {
	if item.VariantTitle == "" {
		return item.Title
	}
	return item.Title + " - " + item.VariantTitle
}

// formatOrderDate renders day/month/year in UTC
func formatOrderDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(orderDateLayout)
}
