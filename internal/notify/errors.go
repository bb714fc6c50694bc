package notify

import "errors"

var (
	ErrSinkPanicked = errors.New("sink panicked")
	ErrClosed       = errors.New("dispatcher closed")
)
