package restaurant

import "time"

// Restaurant is a restaurateur's establishment profile. CallNumber is
// the telephone number customers dial; the voice channel resolves the
// called number back to this row.
type Restaurant struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"owner_id"`
	Name             string    `json:"name"`
	ContactFirstName string    `json:"contact_first_name,omitempty"`
	ContactLastName  string    `json:"contact_last_name,omitempty"`
	Address          string    `json:"address,omitempty"`
	Email            string    `json:"email,omitempty"`
	CallNumber       string    `json:"call_number,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Update carries the editable profile fields. Nil means "leave as is".
type Update struct {
	Name             *string `json:"name"`
	ContactFirstName *string `json:"contact_first_name"`
	ContactLastName  *string `json:"contact_last_name"`
	Address          *string `json:"address"`
	Email            *string `json:"email"`
	CallNumber       *string `json:"call_number"`
}
