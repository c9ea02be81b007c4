package order

import "context"

// Repository defines all database operations for orders.
//
// FindByCallID returns (nil, nil) when no order carries that idempotency
// key. The store also enforces uniqueness of (restaurant_id, call_id),
// which is the authoritative duplicate guard: the read-then-write done by
// callers is an optimization, not the safety mechanism.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, orderID int) (*Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID int, status string) error
	FindByCallID(ctx context.Context, restaurantID, callID string) (*Order, error)
}
