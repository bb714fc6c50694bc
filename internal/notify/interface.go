package notify

import "context"

// Sink is one chat backend. Notify receives the final text for that sink.
type Sink interface {
	Name() string
	Notify(ctx context.Context, text string) error
}
