package restaurant

import (
	"context"
	"errors"
	"testing"
)

func TestCreateRestaurantNormalizesCallNumber(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	rest, err := svc.CreateRestaurant(context.Background(),
		"owner-1", "Chez Luigi", "Luigi", "Rossi",
		"1 rue de la Paix", "luigi@example.com", "07 55 12 34 56")
	if err != nil {
		t.Fatalf("CreateRestaurant: %v", err)
	}
	if rest.CallNumber != "+33755123456" {
		t.Errorf("call number = %q, want +33755123456", rest.CallNumber)
	}
	if rest.ID == "" {
		t.Error("restaurant was not assigned an id")
	}
}

func TestCreateRestaurantRequiresName(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	if _, err := svc.CreateRestaurant(context.Background(),
		"owner-1", "", "", "", "", "", ""); err == nil {
		t.Fatal("expected an error for a missing name")
	}
}

func TestUpdateRestaurantOwnership(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	ctx := context.Background()

	rest, err := svc.CreateRestaurant(ctx, "owner-1", "Chez Luigi", "", "", "", "", "")
	if err != nil {
		t.Fatalf("CreateRestaurant: %v", err)
	}

	name := "Chez Mario"
	if _, err := svc.UpdateRestaurant(ctx, rest.ID, "intruder", Update{Name: &name}); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}

	updated, err := svc.UpdateRestaurant(ctx, rest.ID, "owner-1", Update{Name: &name})
	if err != nil {
		t.Fatalf("UpdateRestaurant: %v", err)
	}
	if updated.Name != "Chez Mario" {
		t.Errorf("name = %q, want Chez Mario", updated.Name)
	}
}

func TestUpdateRestaurantNormalizesCallNumber(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	ctx := context.Background()

	rest, err := svc.CreateRestaurant(ctx, "owner-1", "Chez Luigi", "", "", "", "", "")
	if err != nil {
		t.Fatalf("CreateRestaurant: %v", err)
	}

	number := "06 11 22 33 44"
	updated, err := svc.UpdateRestaurant(ctx, rest.ID, "owner-1", Update{CallNumber: &number})
	if err != nil {
		t.Fatalf("UpdateRestaurant: %v", err)
	}
	if updated.CallNumber != "+33611223344" {
		t.Errorf("call number = %q, want +33611223344", updated.CallNumber)
	}
}

func TestFindByCallNumberMatchesAnyDialedForm(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	ctx := context.Background()

	rest, err := svc.CreateRestaurant(ctx, "owner-1", "Chez Luigi", "", "", "", "", "0755123456")
	if err != nil {
		t.Fatalf("CreateRestaurant: %v", err)
	}

	for _, dialed := range []string{"0755123456", "+33755123456", "0033755123456", "07 55 12 34 56"} {
		found, err := svc.FindByCallNumber(ctx, dialed)
		if err != nil {
			t.Fatalf("FindByCallNumber(%q): %v", dialed, err)
		}
		if found == nil || found.ID != rest.ID {
			t.Errorf("FindByCallNumber(%q) missed the restaurant", dialed)
		}
	}

	found, err := svc.FindByCallNumber(ctx, "0700000000")
	if err != nil {
		t.Fatalf("FindByCallNumber: %v", err)
	}
	if found != nil {
		t.Errorf("unknown number matched restaurant %q", found.Name)
	}
}
