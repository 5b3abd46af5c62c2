package transition

import "errors"

var (
	ErrNotFound          = errors.New("delivery not found")
	ErrForbidden         = errors.New("transition forbidden for actor")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidation        = errors.New("invalid transition request")
	ErrConflict          = errors.New("delivery version conflict")
	ErrUnavailable       = errors.New("storage unavailable")
)
