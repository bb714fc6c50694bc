package http

import (
	"errors"

	"webhook-relay/internal/relay"
)

var errInvalidBody = errors.New("body must be a JSON object")

// mapError translates use-case errors into client-facing errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, relay.ErrInvalidPayload):
		return errInvalidBody
	default:
		return err
	}
}
