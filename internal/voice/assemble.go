package voice

import (
	"math"

	"github.com/lmasumbuku/backend/internal/order"
)

// ParseResult reasons for Ok=false. A restaurant that cannot be resolved
// is reported as an error instead, because that failure belongs to the
// lookup collaborator, not to parsing.
const (
	ReasonEmptyMenu = "empty menu"
	ReasonNoItems   = "no items recognized"
)

// ParseResult is the outcome of parsing one utterance against one menu
// snapshot. Lines appear in order of first mention and reference each
// menu item at most once.
type ParseResult struct {
	Ok             bool         `json:"ok"`
	RestaurantID   string       `json:"restaurant_id,omitempty"`
	RestaurantName string       `json:"restaurant_name,omitempty"`
	Lines          []order.Line `json:"lines"`
	Total          float64      `json:"total"`
	Message        string       `json:"message,omitempty"`
}

// resolved pairs a matched menu item with the quantity spoken for it.
type resolved struct {
	item     Match
	quantity int
}

// Assemble consolidates matched chunks into priced order lines: repeated
// mentions of the same item sum their quantities under a single line,
// and the total is rounded to cents.
func Assemble(matches []resolved) ([]order.Line, float64) {
	lineFor := make(map[int]int)
	var lines []order.Line

	for _, m := range matches {
		qty := m.quantity
		if qty < 1 {
			qty = 1
		}
		if i, ok := lineFor[m.item.Item.ID]; ok {
			lines[i].Quantity += qty
			continue
		}
		lines = append(lines, order.Line{
			Name:      m.item.Item.Name,
			UnitPrice: m.item.Item.Price,
			Quantity:  qty,
		})
		lineFor[m.item.Item.ID] = len(lines) - 1
	}

	return lines, SumLines(lines)
}

// SumLines totals quantity × unit price across lines, rounded to the
// pricing unit's two minor digits.
func SumLines(lines []order.Line) float64 {
	total := 0.0
	for _, l := range lines {
		total += float64(l.Quantity) * l.UnitPrice
	}
	return roundCents(total)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
