package sink

import (
	"context"

	"webhook-relay/pkg/hook"
)

// Hook sends to a user-templated HTTP endpoint.
type Hook struct {
	client *hook.Client
}

func NewHook(client *hook.Client) *Hook {
	return &Hook{client: client}
}

func (h *Hook) Name() string { return "webhook" }

func (h *Hook) Notify(ctx context.Context, text string) error {
	return h.client.Send(ctx, h.Name(), text)
}
