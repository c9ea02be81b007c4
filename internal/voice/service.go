package voice

import (
	"context"
	"fmt"

	"github.com/lmasumbuku/backend/internal/menu"
	"github.com/lmasumbuku/backend/internal/order"
	"github.com/lmasumbuku/backend/internal/restaurant"
)

// RestaurantDirectory resolves a dialed number to a restaurant.
// (nil, nil) means no restaurant answers to that number.
type RestaurantDirectory interface {
	FindByCallNumber(ctx context.Context, number string) (*restaurant.Restaurant, error)
}

// MenuReader supplies the menu snapshot a parse call works on.
type MenuReader interface {
	ListByRestaurant(ctx context.Context, restaurantID string) ([]menu.Item, error)
}

// OrderStore persists materialized orders and answers idempotency reads.
type OrderStore interface {
	Create(ctx context.Context, o *order.Order) error
	FindByCallID(ctx context.Context, restaurantID, callID string) (*order.Order, error)
}

// BasketItem is an already-structured line sent by the voice bot when it
// has resolved items itself instead of forwarding free text.
type BasketItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note"`
}

// VoiceOrder is the payload for ParseAndCreate. Exactly one of Utterance
// or Items carries the order content; Items wins when both are present.
type VoiceOrder struct {
	RestaurantNumber string       `json:"restaurant_number"`
	Utterance        string       `json:"utterance"`
	Items            []BasketItem `json:"items"`
	CustomerName     string       `json:"customer_name"`
	CustomerPhone    string       `json:"customer_phone"`
	CallID           string       `json:"call_id"`
	Source           string       `json:"source"`
}

type Service struct {
	restaurants RestaurantDirectory
	menus       MenuReader
	orders      OrderStore
}

func NewService(restaurants RestaurantDirectory, menus MenuReader, orders OrderStore) *Service {
	return &Service{restaurants: restaurants, menus: menus, orders: orders}
}

// --------------------------------------------------
// Parse: utterance -> priced lines (READ ONLY)
// --------------------------------------------------

// Parse runs the full pipeline against the restaurant's current menu.
// It has no side effects and is a pure function of (menu snapshot,
// utterance): two identical calls yield structurally equal results.
func (s *Service) Parse(ctx context.Context, restaurantNumber, utterance string) (*ParseResult, error) {
	rest, items, err := s.loadMenu(ctx, restaurantNumber)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{
		RestaurantID:   rest.ID,
		RestaurantName: rest.Name,
		Lines:          []order.Line{},
	}

	if len(items) == 0 {
		result.Message = ReasonEmptyMenu
		return result, nil
	}

	lex := BuildLexicon(items)

	var matched []resolved
	for _, chunk := range Segment(utterance) {
		m, ok := MatchLabel(chunk.Label, lex)
		if !ok {
			continue
		}
		matched = append(matched, resolved{item: m, quantity: chunk.Quantity})
	}

	if len(matched) == 0 {
		result.Message = ReasonNoItems
		return result, nil
	}

	result.Ok = true
	result.Lines, result.Total = Assemble(matched)
	return result, nil
}

// --------------------------------------------------
// ParseAndCreate: parse (or accept structured items), persist
// --------------------------------------------------

// ParseAndCreate materializes an order. When in.CallID is set and a
// previous call already created an order under that key, the existing
// order is returned and nothing is written. The existence check runs
// before the write; under concurrent retries the store's uniqueness
// constraint on (restaurant, call id) is what actually prevents
// duplicates.
func (s *Service) ParseAndCreate(ctx context.Context, in VoiceOrder) (*order.Order, error) {
	rest, items, err := s.loadMenu(ctx, in.RestaurantNumber)
	if err != nil {
		return nil, err
	}

	if in.CallID != "" {
		existing, err := s.orders.FindByCallID(ctx, rest.ID, in.CallID)
		if err != nil {
			return nil, fmt.Errorf("idempotency lookup: %w", err)
		}
		if existing != nil {
			return existing, nil
		}
	}

	if len(items) == 0 {
		return nil, ErrEmptyMenu
	}

	var lines []order.Line
	var total float64
	if len(in.Items) > 0 {
		lines, total, err = s.resolveStructured(in.Items, items)
		if err != nil {
			return nil, err
		}
	} else {
		result, err := s.Parse(ctx, in.RestaurantNumber, in.Utterance)
		if err != nil {
			return nil, err
		}
		if !result.Ok {
			return nil, ErrNoItemsRecognized
		}
		lines, total = result.Lines, result.Total
	}

	source := in.Source
	if source == "" {
		source = "voice"
	}

	o := &order.Order{
		RestaurantID: rest.ID,
		Lines:        lines,
		Total:        total,
		Status:       order.StatusPending,
		Source:       source,
		CallID:       in.CallID,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	return o, nil
}

// resolveStructured maps bot-resolved basket items onto the menu by
// exact normalized name or alias. A miss here is a caller bug and fails
// the request, unlike a fuzzy miss during free-text parsing.
func (s *Service) resolveStructured(basket []BasketItem, items []menu.Item) ([]order.Line, float64, error) {
	lex := BuildLexicon(items)

	var matched []resolved
	for _, b := range basket {
		it, ok := lex.Lookup(Normalize(b.Name))
		if !ok {
			return nil, 0, &UnknownItemError{Name: b.Name}
		}
		matched = append(matched, resolved{
			item:     Match{Item: it, Score: 1},
			quantity: b.Quantity,
		})
	}

	lines, total := Assemble(matched)

	// Notes ride along per basket item; after consolidation the first
	// note for an item wins.
	noteFor := make(map[string]string)
	for _, b := range basket {
		key := Normalize(b.Name)
		if it, ok := lex.Lookup(key); ok {
			if _, seen := noteFor[it.Name]; !seen && b.Note != "" {
				noteFor[it.Name] = b.Note
			}
		}
	}
	for i := range lines {
		lines[i].Note = noteFor[lines[i].Name]
	}

	return lines, total, nil
}

// RestaurantMenu is the lookup payload for the voice bot: the resolved
// restaurant plus its menu with aliases already parsed out of storage.
type RestaurantMenu struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	CallNumber string           `json:"call_number"`
	Menu       []MenuItemOut    `json:"menu"`
}

type MenuItemOut struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Price   float64  `json:"price"`
	Aliases []string `json:"aliases"`
}

// LookupRestaurant resolves a called number to the restaurant and its
// menu snapshot.
func (s *Service) LookupRestaurant(ctx context.Context, number string) (*RestaurantMenu, error) {
	rest, items, err := s.loadMenu(ctx, number)
	if err != nil {
		return nil, err
	}

	out := &RestaurantMenu{
		ID:         rest.ID,
		Name:       rest.Name,
		CallNumber: rest.CallNumber,
		Menu:       []MenuItemOut{},
	}
	for _, it := range items {
		aliases := ParseAliases(it.Aliases)
		if aliases == nil {
			aliases = []string{}
		}
		out.Menu = append(out.Menu, MenuItemOut{
			ID:      it.ID,
			Name:    it.Name,
			Price:   it.Price,
			Aliases: aliases,
		})
	}
	return out, nil
}

func (s *Service) loadMenu(ctx context.Context, number string) (*restaurant.Restaurant, []menu.Item, error) {
	rest, err := s.restaurants.FindByCallNumber(ctx, number)
	if err != nil {
		return nil, nil, fmt.Errorf("restaurant lookup: %w", err)
	}
	if rest == nil {
		return nil, nil, ErrRestaurantNotFound
	}

	items, err := s.menus.ListByRestaurant(ctx, rest.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("menu snapshot: %w", err)
	}
	return rest, items, nil
}
