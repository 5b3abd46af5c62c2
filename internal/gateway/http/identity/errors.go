package identity

import "errors"

var (
	ErrUnauthenticated = errors.New("credential rejected by identity service")
	ErrUnavailable     = errors.New("identity service unavailable")
)
