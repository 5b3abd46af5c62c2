package inventory

import "errors"

var (
	ErrInvalidDelivery = errors.New("delivery is not eligible for inventory adjustment")
	ErrRecordNotFound  = errors.New("inventory record not found")
)
