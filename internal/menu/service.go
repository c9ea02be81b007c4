package menu

import (
	"context"
	"errors"
	"strings"
)

var ErrNotOwner = errors.New("unauthorized")

// OwnershipChecker is the slice of the restaurant repository the menu
// service needs: every mutation is scoped to the caller's restaurant.
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
// Add item
// --------------------------------------------------
func (s *Service) AddItem(
	ctx context.Context,
	restaurantID string,
	userID string,
	name string,
	description string,
	price float64,
	aliases []string,
) (*Item, error) {

	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("name is required")
	}
	if price < 0 {
		return nil, errors.New("price must not be negative")
	}

	item := &Item{
		RestaurantID: restaurantID,
		Name:         name,
		Description:  description,
		Price:        price,
		Aliases:      joinAliases(aliases),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// --------------------------------------------------
// List / Get
// --------------------------------------------------
func (s *Service) ListItems(ctx context.Context, restaurantID, userID string) ([]Item, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

func (s *Service) GetItem(ctx context.Context, restaurantID, userID string, itemID int) (*Item, error) {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, restaurantID, itemID)
}

// --------------------------------------------------
// Update item
// --------------------------------------------------
func (s *Service) UpdateItem(
	ctx context.Context,
	restaurantID string,
	userID string,
	itemID int,
	name string,
	description string,
	price float64,
	aliases []string,
) (*Item, error) {

	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("name is required")
	}
	if price < 0 {
		return nil, errors.New("price must not be negative")
	}

	item := &Item{
		ID:           itemID,
		RestaurantID: restaurantID,
		Name:         name,
		Description:  description,
		Price:        price,
		Aliases:      joinAliases(aliases),
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// --------------------------------------------------
// Delete item
// --------------------------------------------------
func (s *Service) DeleteItem(ctx context.Context, restaurantID, userID string, itemID int) error {
	if err := s.requireOwner(ctx, restaurantID, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, restaurantID, itemID)
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

// joinAliases stores aliases as CSV. Reads must stay tolerant of other
// historical encodings, which is the lexicon builder's job.
func joinAliases(aliases []string) string {
	var kept []string
	for _, a := range aliases {
		if a = strings.TrimSpace(a); a != "" {
			kept = append(kept, a)
		}
	}
	return strings.Join(kept, ",")
}
