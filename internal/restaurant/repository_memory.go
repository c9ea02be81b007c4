package restaurant

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository backs tests and drives the voice pipeline without a
// database.
type InMemoryRepository struct {
	restaurants map[string]*Restaurant
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{restaurants: make(map[string]*Restaurant)}
}

func (r *InMemoryRepository) Create(ctx context.Context, rest *Restaurant) error {
	if rest.ID == "" {
		rest.ID = uuid.New().String()
	}
	rest.CreatedAt = time.Now()
	r.restaurants[rest.ID] = rest
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	rest, ok := r.restaurants[id]
	if !ok {
		return nil, errors.New("restaurant not found")
	}
	return rest, nil
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error) {
	var out []*Restaurant
	for _, rest := range r.restaurants {
		if rest.OwnerID == ownerID {
			out = append(out, rest)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) IsOwner(ctx context.Context, restaurantID, userID string) (bool, error) {
	rest, ok := r.restaurants[restaurantID]
	return ok && rest.OwnerID == userID, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id string, upd Update) (*Restaurant, error) {
	rest, ok := r.restaurants[id]
	if !ok {
		return nil, errors.New("restaurant not found")
	}
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&rest.Name, upd.Name)
	apply(&rest.ContactFirstName, upd.ContactFirstName)
	apply(&rest.ContactLastName, upd.ContactLastName)
	apply(&rest.Address, upd.Address)
	apply(&rest.Email, upd.Email)
	apply(&rest.CallNumber, upd.CallNumber)
	return rest, nil
}

func (r *InMemoryRepository) FindByCallNumber(ctx context.Context, number string) (*Restaurant, error) {
	target := NormalizeNumber(number)
	if target == "" {
		return nil, nil
	}
	for _, rest := range r.restaurants {
		if rest.CallNumber != "" && NormalizeNumber(rest.CallNumber) == target {
			return rest, nil
		}
	}
	return nil, nil
}
