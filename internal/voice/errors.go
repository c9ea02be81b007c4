package voice

import (
	"errors"
	"fmt"
)

var (
	// ErrRestaurantNotFound means no restaurant answers to the called
	// number. Surfaced to the caller unchanged, never retried here.
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrEmptyMenu means the restaurant exists but has nothing orderable.
	ErrEmptyMenu = errors.New("menu is empty")

	// ErrNoItemsRecognized means the utterance produced zero accepted
	// matches, so there is nothing to create an order from.
	ErrNoItemsRecognized = errors.New("no items recognized")
)

// UnknownItemError reports a structured basket item naming something the
// menu does not have. Distinct from ErrNoItemsRecognized because it
// signals an integration bug, not ambiguous speech.
type UnknownItemError struct {
	Name string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("unknown menu item: %q", e.Name)
}
