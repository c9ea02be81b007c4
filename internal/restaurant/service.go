package restaurant

import (
	"context"
	"errors"
)

var ErrNotOwner = errors.New("unauthorized")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Create restaurant
// --------------------------------------------------
func (s *Service) CreateRestaurant(
	ctx context.Context,
	ownerID string,
	name string,
	contactFirstName string,
	contactLastName string,
	address string,
	email string,
	callNumber string,
) (*Restaurant, error) {

	if name == "" {
		return nil, errors.New("missing required fields")
	}

	rest := &Restaurant{
		OwnerID:          ownerID,
		Name:             name,
		ContactFirstName: contactFirstName,
		ContactLastName:  contactLastName,
		Address:          address,
		Email:            email,
		CallNumber:       NormalizeNumber(callNumber),
	}

	if err := s.repo.Create(ctx, rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// --------------------------------------------------
// List restaurants owned by user
// --------------------------------------------------
func (s *Service) ListMyRestaurants(ctx context.Context, ownerID string) ([]*Restaurant, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// --------------------------------------------------
// Update profile (ownership enforced here)
// --------------------------------------------------
func (s *Service) UpdateRestaurant(
	ctx context.Context,
	restaurantID string,
	userID string,
	upd Update,
) (*Restaurant, error) {

	isOwner, err := s.repo.IsOwner(ctx, restaurantID, userID)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		return nil, ErrNotOwner
	}

	if upd.CallNumber != nil {
		normalized := NormalizeNumber(*upd.CallNumber)
		upd.CallNumber = &normalized
	}

	return s.repo.Update(ctx, restaurantID, upd)
}

// --------------------------------------------------
// Voice channel lookup (READ ONLY)
// --------------------------------------------------
func (s *Service) FindByCallNumber(ctx context.Context, number string) (*Restaurant, error) {
	return s.repo.FindByCallNumber(ctx, number)
}
