package entity

import "time"

// PaymentMethod is a selectable way to pay for an order.
type PaymentMethod struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
