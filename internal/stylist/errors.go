package stylist

import "errors"

var (
	// ErrStylistUnavailable wraps a failed Gemini call. The wardrobe
	// itself is unaffected; callers should surface this as a gateway
	// failure and let the user retry.
	ErrStylistUnavailable = errors.New("stylist is unavailable")

	// ErrBadStylistReply means Gemini answered but the reply could not
	// be parsed into the expected structure.
	ErrBadStylistReply = errors.New("stylist returned an unusable reply")

	ErrMoodNotFound = errors.New("style mood not found")
	ErrEmptyImage   = errors.New("image data is required")
)
