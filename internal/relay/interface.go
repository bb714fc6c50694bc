package relay

import (
	"context"

	"webhook-relay/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Process runs filter, classifier and formatter, then hands the text to
	// the dispatcher without waiting for delivery.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
	// Preview does the same work as Process but never dispatches.
	Preview(ctx context.Context, payload model.Payload) (ProcessOutput, error)
}

// Dispatcher receives accepted notifications. Dispatch must not block on sink I/O.
type Dispatcher interface {
	Dispatch(ctx context.Context, n model.Notification)
}
