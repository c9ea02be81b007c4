package order

import (
	"context"
	"errors"
	"sort"
	"time"
)

// InMemoryRepository backs tests, including the idempotency scenarios of
// the voice pipeline.
type InMemoryRepository struct {
	orders map[int]*Order
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make(map[int]*Order), nextID: 1}
}

func (r *InMemoryRepository) Create(ctx context.Context, o *Order) error {
	if o.CallID != "" {
		for _, existing := range r.orders {
			if existing.RestaurantID == o.RestaurantID && existing.CallID == o.CallID {
				// mirrors the store's unique index on (restaurant_id, call_id)
				return errors.New("duplicate call_id for restaurant")
			}
		}
	}

	o.ID = r.nextID
	r.nextID++
	o.CreatedAt = time.Now()
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, orderID int) (*Order, error) {
	o, ok := r.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *InMemoryRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*Order, error) {
	var out []*Order
	for _, o := range r.orders {
		if o.RestaurantID == restaurantID {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, orderID int, status string) error {
	o, ok := r.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (r *InMemoryRepository) FindByCallID(ctx context.Context, restaurantID, callID string) (*Order, error) {
	for _, o := range r.orders {
		if o.RestaurantID == restaurantID && o.CallID == callID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}
