package restaurant

import "context"

// Repository defines all database operations for restaurant profiles.
// FindByCallNumber returns (nil, nil) when no restaurant matches, so
// "not found" stays distinguishable from a failing store.
type Repository interface {
	Create(ctx context.Context, r *Restaurant) error
	GetByID(ctx context.Context, id string) (*Restaurant, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error)
	IsOwner(ctx context.Context, restaurantID, userID string) (bool, error)
	Update(ctx context.Context, id string, upd Update) (*Restaurant, error)
	FindByCallNumber(ctx context.Context, number string) (*Restaurant, error)
}
