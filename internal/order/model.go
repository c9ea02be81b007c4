package order

import "time"

// Statuses an order moves through. Orders are created pending and a
// restaurateur accepts or rejects them from the back office.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Line is one priced position of an order. UnitPrice is a snapshot of
// the menu price at parse time, never a live reference.
type Line struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Note      string  `json:"note"`
}

// Order is a persisted customer order.
//
// CallID is the caller-supplied idempotency key (a telephony call/session
// id). It is empty for orders placed without one; when set, at most one
// order per (restaurant, CallID) exists.
type Order struct {
	ID           int       `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Lines        []Line    `json:"lines"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	Source       string    `json:"source"`
	CallID       string    `json:"call_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
