package wardrobe

import "errors"

var (
	// ErrDuplicateID is returned when an insert reuses an existing id.
	// Ids are generated fresh, so hitting this is a caller bug.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrEmptySelection is returned when an outfit log has no items.
	ErrEmptySelection = errors.New("no items selected")

	ErrItemNotFound = errors.New("item not found")
	ErrMoodNotFound = errors.New("mood not found")
)
