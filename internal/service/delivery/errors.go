package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrInvalidUrgency        = errors.New("invalid urgency")
	ErrInvalidCoordinates    = errors.New("coordinates out of range")
	ErrInvalidRole           = errors.New("unknown actor role")

	ErrDeliveryNotFound = errors.New("delivery not found")
)
