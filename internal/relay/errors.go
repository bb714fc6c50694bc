package relay

import "errors"

var (
	ErrInvalidPayload = errors.New("invalid payload")
)
