package menu

import (
	"context"
	"sort"
)

// InMemoryRepository backs tests. Items keep menu (id) order, matching
// the postgres repository.
type InMemoryRepository struct {
	items  map[int]*Item
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[int]*Item), nextID: 1}
}

func (r *InMemoryRepository) Create(ctx context.Context, item *Item) error {
	item.ID = r.nextID
	r.nextID++
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, restaurantID string, itemID int) (*Item, error) {
	item, ok := r.items[itemID]
	if !ok || item.RestaurantID != restaurantID {
		return nil, ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *InMemoryRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]Item, error) {
	var items []Item
	for _, item := range r.items {
		if item.RestaurantID == restaurantID {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, item *Item) error {
	existing, ok := r.items[item.ID]
	if !ok || existing.RestaurantID != item.RestaurantID {
		return ErrItemNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, restaurantID string, itemID int) error {
	item, ok := r.items[itemID]
	if !ok || item.RestaurantID != restaurantID {
		return ErrItemNotFound
	}
	delete(r.items, itemID)
	return nil
}
