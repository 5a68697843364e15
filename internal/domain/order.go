package domain

import "time"

// Order is the subset of an upstream order the export needs
type Order struct {
	ID        string
	Name      string // display number, e.g. "#1001"
	Email     string // order-level email, used when there is no customer
	CreatedAt time.Time
	Customer  *Customer
	LineItems []LineItem
}

// Customer attached to an order. Nil on the order means a guest checkout.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
}

// LineItem is a single purchased item with its checkout properties
type LineItem struct {
	Title        string
	VariantTitle string
	ProductID    string // empty for custom items without a product
	Properties   []Property
}

// Property is a free-form key/value attached at checkout.
// Names are not unique upstream.
type Property struct {
	Name  string
	Value string
}

// OrderQuery selects orders by creation date range (inclusive days, YYYY-MM-DD)
type OrderQuery struct {
	StartDate string
	EndDate   string
}
