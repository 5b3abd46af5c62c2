package route

import "errors"

var (
	ErrInvalidDeliveryID  = errors.New("invalid delivery id")
	ErrMissingCoordinates = errors.New("missing pickup or dropoff coordinates")
)
