// Package store holds the sample shop models the catalog describes.
package store

import (
	"time"

	"typerep/repr"
)

// Money is an amount in the currency's minor unit.
type Money struct {
	Cents    int64  `json:"cents"`
	Currency string `json:"currency"`
}

// Audit is embedded by records that track their own changes.
type Audit struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Product struct {
	Audit
	ID          int64             `json:"id"`
	SKU         string            `json:"sku"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       Money             `json:"price"`
	Inventory   int               `json:"inventory_count,string"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// Category nests into a tree of categories.
type Category struct {
	Name     string     `json:"name"`
	Products []int64    `json:"products"`
	Children []Category `json:"children"`
}

type Customer struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Address  *string `json:"address"`
	IsActive bool    `json:"is_active"`
}

type Order struct {
	Audit
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customer_id"`
	Status     OrderStatus `json:"status"`
	Total      Money       `json:"total"`
	Items      []OrderItem `json:"items"`
	Location   [2]float64  `json:"location,omitempty"`
	Notes      []string    `json:"-"`
}

// OrderItem snapshots the product at the time of purchase.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Statuses lists every OrderStatus in lifecycle order.
var Statuses = []OrderStatus{StatusPending, StatusPaid, StatusShipped, StatusCancelled}

// Shape describes an OrderStatus as the union of its string values.
func (OrderStatus) Shape() repr.Descriptor {
	alts := make([]repr.Descriptor, len(Statuses))
	for i, s := range Statuses {
		alts[i] = repr.Literal(string(s))
	}

	return repr.UnionOf(alts)
}
