package order

import (
	"context"
	"errors"
)

var ErrNotOwner = errors.New("unauthorized")

// OwnershipChecker is the slice of the restaurant repository needed to
// scope order reads and status changes to the owning restaurateur.
type OwnershipChecker interface {
	IsOwner(ctx context.Context, restaurantID, userID string) (bool, error)
}

type Service struct {
	repo   Repository
	owners OwnershipChecker
}

func NewService(repo Repository, owners OwnershipChecker) *Service {
	return &Service{repo: repo, owners: owners}
}

// --------------------------------------------------
// List orders for a restaurant
// --------------------------------------------------
func (s *Service) ListOrders(ctx context.Context, restaurantID, userID string) ([]*Order, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

// --------------------------------------------------
// Status transitions
// --------------------------------------------------
func (s *Service) AcceptOrder(ctx context.Context, restaurantID, userID string, orderID int) error {
	return s.transition(ctx, restaurantID, userID, orderID, StatusAccepted)
}

func (s *Service) RejectOrder(ctx context.Context, restaurantID, userID string, orderID int) error {
	return s.transition(ctx, restaurantID, userID, orderID, StatusRejected)
}

func (s *Service) transition(ctx context.Context, restaurantID, userID string, orderID int, status string) error {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return err
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.RestaurantID != restaurantID {
		return ErrOrderNotFound
	}

	return s.repo.UpdateStatus(ctx, orderID, status)
}

func (s *Service) requireOwner(ctx context.Context, restaurantID, userID string) error {
	isOwner, err := s.owners.IsOwner(ctx, restaurantID, userID)
	if err != nil {
		return err
	}
	if !isOwner {
		return ErrNotOwner
	}
	return nil
}
