package menu

// Item is a dish on a restaurant's menu.
//
// Aliases holds the raw stored alias representation. Depending on how the
// row was written it is either a comma-separated list ("coca,coca cola")
// or a JSON-encoded array ('["coca","coca cola"]'); consumers that need
// the individual aliases parse it themselves (see internal/voice).
type Item struct {
	ID           int     `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Aliases      string  `json:"-"`
}
