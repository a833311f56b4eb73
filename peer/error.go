package peer

import "errors"

var (
	// ErrBadGateway is returned when a peer responds with a status of 400
	// or above.
	ErrBadGateway = errors.New("bad gateway")
)
