// Package store holds the domain model used by examples and tests: orders
// that reference their customer through pointers.
package store

import (
	"errors"
	"time"
)

var (
	// ErrNegativeDiscount is returned by Order.SetDiscountCents.
	ErrNegativeDiscount = errors.New("discount must not be negative")
	// ErrInvalidTotal is returned by Order.Validate.
	ErrInvalidTotal = errors.New("total must not be negative")
)

// Address is a postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Customer represents the user placing orders.
type Customer struct {
	ID       int64    `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	Address  *Address `json:"address"`
	IsActive bool     `json:"is_active"`
}

// Order represents a transaction made by a customer.
// We use int64 for amounts to represent cents and avoid floating-point errors.
type Order struct {
	ID         int64       `json:"id"`
	Customer   *Customer   `json:"customer"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	Items      []OrderItem `json:"items"`
	OrderedAt  time.Time   `json:"ordered_at"`

	discountCents int64
}

// DiscountCents returns the discount granted on the order.
func (o *Order) DiscountCents() int64 { return o.discountCents }

// SetDiscountCents sets the discount granted on the order.
func (o *Order) SetDiscountCents(v int64) error {
	if v < 0 {
		return ErrNegativeDiscount
	}

	o.discountCents = v

	return nil
}

// Validate checks the order amounts.
func (o *Order) Validate() error {
	if o.TotalCents < 0 {
		return ErrInvalidTotal
	}

	return nil
}

// ItemCount is read-only: it is derived from Items.
func (o Order) ItemCount() int { return len(o.Items) }

// OrderItem is a product line within an order.
// It snapshots the price at the time of purchase.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
