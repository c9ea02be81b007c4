package menu

import "context"

// Repository defines all database operations for menu items. The voice
// pipeline only ever calls ListByRestaurant: it works on a read-only
// snapshot of the menu.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, restaurantID string, itemID int) (*Item, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, restaurantID string, itemID int) error
}
