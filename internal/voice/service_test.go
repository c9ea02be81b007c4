package voice

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/lmasumbuku/backend/internal/menu"
	"github.com/lmasumbuku/backend/internal/order"
	"github.com/lmasumbuku/backend/internal/restaurant"
)

// --------------------------------------------------
// Fixtures
// --------------------------------------------------

func newTestService(t *testing.T, items []menu.Item) (*Service, *restaurant.Restaurant, *order.InMemoryRepository) {
	t.Helper()
	ctx := context.Background()

	restaurants := restaurant.NewInMemoryRepository()
	menus := menu.NewInMemoryRepository()
	orders := order.NewInMemoryRepository()

	rest := &restaurant.Restaurant{Name: "Chez Luigi", CallNumber: "+33612345678"}
	if err := restaurants.Create(ctx, rest); err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	for i := range items {
		items[i].RestaurantID = rest.ID
		if err := menus.Create(ctx, &items[i]); err != nil {
			t.Fatalf("create menu item: %v", err)
		}
	}

	return NewService(restaurants, menus, orders), rest, orders
}

func pizzaMenu() []menu.Item {
	return []menu.Item{
		{Name: "Margherita", Price: 10.0},
		{Name: "Coca", Price: 3.0, Aliases: "coca cola"},
	}
}

// --------------------------------------------------
// Parse
// --------------------------------------------------

func TestParseFullUtterance(t *testing.T) {
	svc, rest, _ := newTestService(t, pizzaMenu())

	result, err := svc.Parse(context.Background(), "0612345678", "2 margherita et 1 coca cola")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !result.Ok {
		t.Fatalf("expected Ok, got message %q", result.Message)
	}
	if result.RestaurantID != rest.ID || result.RestaurantName != "Chez Luigi" {
		t.Errorf("wrong restaurant in result: %+v", result)
	}

	want := []order.Line{
		{Name: "Margherita", UnitPrice: 10.0, Quantity: 2},
		{Name: "Coca", UnitPrice: 3.0, Quantity: 1},
	}
	if !reflect.DeepEqual(result.Lines, want) {
		t.Errorf("lines = %+v, want %+v", result.Lines, want)
	}
	if result.Total != 23.0 {
		t.Errorf("total = %f, want 23.0", result.Total)
	}
}

func TestParseUnknownDish(t *testing.T) {
	svc, _, _ := newTestService(t, pizzaMenu())

	result, err := svc.Parse(context.Background(), "0612345678", "une pizza inconnue")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.Ok {
		t.Fatalf("unknown dish should not parse, got lines %+v", result.Lines)
	}
	if len(result.Lines) != 0 || result.Total != 0 {
		t.Errorf("failed parse should carry no lines, got %+v", result)
	}
	if result.Message != ReasonNoItems {
		t.Errorf("message = %q, want %q", result.Message, ReasonNoItems)
	}
}

func TestParseConsolidatesRepeatedItems(t *testing.T) {
	svc, _, _ := newTestService(t, pizzaMenu())

	result, err := svc.Parse(context.Background(), "0612345678", "2 margherita et 1 margherita")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(result.Lines) != 1 {
		t.Fatalf("expected one consolidated line, got %+v", result.Lines)
	}
	if result.Lines[0].Quantity != 3 || result.Total != 30.0 {
		t.Errorf("consolidated line = %+v total %f, want qty 3 total 30.0", result.Lines[0], result.Total)
	}
}

func TestParseAliasAndNameAreSameItem(t *testing.T) {
	svc, _, _ := newTestService(t, pizzaMenu())
	ctx := context.Background()

	byName, err := svc.Parse(ctx, "0612345678", "un coca")
	if err != nil {
		t.Fatalf("Parse by name: %v", err)
	}
	byAlias, err := svc.Parse(ctx, "0612345678", "un coca cola")
	if err != nil {
		t.Fatalf("Parse by alias: %v", err)
	}
	if !reflect.DeepEqual(byName.Lines, byAlias.Lines) {
		t.Errorf("alias produced different lines: %+v vs %+v", byName.Lines, byAlias.Lines)
	}
}

func TestParseIsPure(t *testing.T) {
	svc, _, _ := newTestService(t, pizzaMenu())
	ctx := context.Background()

	first, err := svc.Parse(ctx, "0612345678", "2 margherita et 1 coca cola")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	second, err := svc.Parse(ctx, "0612345678", "2 margherita et 1 coca cola")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parse diverged: %+v vs %+v", first, second)
	}
}

func TestParseTotalMatchesLines(t *testing.T) {
	svc, _, _ := newTestService(t, pizzaMenu())

	result, err := svc.Parse(context.Background(), "0612345678", "trois margherita, deux coca")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := SumLines(result.Lines); got != result.Total {
		t.Errorf("total %f does not match line sum %f", result.Total, got)
	}
}

func TestParseEmptyMenu(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	result, err := svc.Parse(context.Background(), "0612345678", "2 margherita")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.Ok || result.Message != ReasonEmptyMenu {
		t.Errorf("empty menu should fail with %q, got %+v", ReasonEmptyMenu, result)
	}
}

func TestParseUnknownNumber(t *testing.T) {
	svc, _, _ := newTestService(t, pizzaMenu())

	_, err := svc.Parse(context.Background(), "0700000000", "2 margherita")
	if !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("err = %v, want ErrRestaurantNotFound", err)
	}
}

// --------------------------------------------------
// ParseAndCreate
// --------------------------------------------------

func TestParseAndCreatePersistsOrder(t *testing.T) {
	svc, rest, orders := newTestService(t, pizzaMenu())
	ctx := context.Background()

	o, err := svc.ParseAndCreate(ctx, VoiceOrder{
		RestaurantNumber: "0612345678",
		Utterance:        "2 margherita et 1 coca cola",
	})
	if err != nil {
		t.Fatalf("ParseAndCreate: %v", err)
	}
	if o.ID == 0 {
		t.Error("order was not assigned an id")
	}
	if o.RestaurantID != rest.ID || o.Status != order.StatusPending || o.Source != "voice" {
		t.Errorf("unexpected order: %+v", o)
	}
	if o.Total != 23.0 {
		t.Errorf("total = %f, want 23.0", o.Total)
	}

	stored, err := orders.GetByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if !reflect.DeepEqual(stored.Lines, o.Lines) {
		t.Errorf("stored lines %+v differ from returned %+v", stored.Lines, o.Lines)
	}
}

func TestParseAndCreateIdempotentPerCall(t *testing.T) {
	svc, _, _ := newTestService(t, pizzaMenu())
	ctx := context.Background()

	in := VoiceOrder{
		RestaurantNumber: "0612345678",
		Utterance:        "2 margherita",
		CallID:           "call-42",
	}

	first, err := svc.ParseAndCreate(ctx, in)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.ParseAndCreate(ctx, in)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("retry created a new order: %d then %d", first.ID, second.ID)
	}
}

func TestParseAndCreateStructuredItems(t *testing.T) {
	svc, _, _ := newTestService(t, pizzaMenu())

	o, err := svc.ParseAndCreate(context.Background(), VoiceOrder{
		RestaurantNumber: "0612345678",
		Items: []BasketItem{
			{Name: "coca cola", Quantity: 2, Note: "bien frais"},
			{Name: "Margherita", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("ParseAndCreate: %v", err)
	}
	if len(o.Lines) != 2 {
		t.Fatalf("lines = %+v", o.Lines)
	}
	if o.Lines[0].Name != "Coca" || o.Lines[0].Quantity != 2 || o.Lines[0].Note != "bien frais" {
		t.Errorf("first line = %+v", o.Lines[0])
	}
	if o.Total != 16.0 {
		t.Errorf("total = %f, want 16.0", o.Total)
	}
}

func TestParseAndCreateUnknownStructuredItem(t *testing.T) {
	svc, _, _ := newTestService(t, pizzaMenu())

	_, err := svc.ParseAndCreate(context.Background(), VoiceOrder{
		RestaurantNumber: "0612345678",
		Items:            []BasketItem{{Name: "Sushi", Quantity: 1}},
	})

	var unknown *UnknownItemError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownItemError", err)
	}
	if unknown.Name != "Sushi" {
		t.Errorf("unknown item = %q, want Sushi", unknown.Name)
	}
}

func TestParseAndCreateNothingRecognized(t *testing.T) {
	svc, _, _ := newTestService(t, pizzaMenu())

	_, err := svc.ParseAndCreate(context.Background(), VoiceOrder{
		RestaurantNumber: "0612345678",
		Utterance:        "une pizza inconnue",
	})
	if !errors.Is(err, ErrNoItemsRecognized) {
		t.Fatalf("err = %v, want ErrNoItemsRecognized", err)
	}
}

func TestParseAndCreateEmptyMenu(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	_, err := svc.ParseAndCreate(context.Background(), VoiceOrder{
		RestaurantNumber: "0612345678",
		Utterance:        "2 margherita",
	})
	if !errors.Is(err, ErrEmptyMenu) {
		t.Fatalf("err = %v, want ErrEmptyMenu", err)
	}
}

// --------------------------------------------------
// LookupRestaurant
// --------------------------------------------------

func TestLookupRestaurant(t *testing.T) {
	svc, rest, _ := newTestService(t, pizzaMenu())

	out, err := svc.LookupRestaurant(context.Background(), "06 12 34 56 78")
	if err != nil {
		t.Fatalf("LookupRestaurant: %v", err)
	}
	if out.ID != rest.ID || out.Name != "Chez Luigi" {
		t.Errorf("wrong restaurant: %+v", out)
	}
	if len(out.Menu) != 2 {
		t.Fatalf("menu = %+v", out.Menu)
	}
	if !reflect.DeepEqual(out.Menu[1].Aliases, []string{"coca cola"}) {
		t.Errorf("aliases = %+v, want [coca cola]", out.Menu[1].Aliases)
	}
	if out.Menu[0].Aliases == nil {
		t.Error("items without aliases should serialize an empty list, not null")
	}
}
