// Package warehouse holds flat read models built from the store domain.
package warehouse

import (
	"time"

	"property-mapper/store"
)

// OrderView is a denormalized order row.
type OrderView struct {
	ID            int64             `json:"id"`
	Status        store.OrderStatus `json:"status"`
	TotalCents    int64             `json:"total_cents"`
	DiscountCents int64             `json:"discount_cents"`
	ItemCount     int               `json:"item_count"`
	OrderedAt     time.Time         `json:"ordered_at"`

	// Flattened from Order.Customer
	CustomerEmail string `json:"customer_email"`

	// Filled by the warehouse itself, never by mapping
	PickerNote string `json:"picker_note"`
	Currency   string `json:"currency"`
}

// CustomerView is a customer row with its city inlined.
type CustomerView struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`

	// Flattened from Customer.Address
	AddressCity    string `json:"address_city"`
	AddressCountry string `json:"address_country"`

	// Status of the row in the warehouse; Customer has no such field
	Status string `json:"status"`
}
