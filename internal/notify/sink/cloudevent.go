package sink

import (
	"context"

	"webhook-relay/pkg/cloudevent"
)

type CloudEvent struct {
	sender *cloudevent.Sender
}

func NewCloudEvent(sender *cloudevent.Sender) *CloudEvent {
	return &CloudEvent{sender: sender}
}

func (c *CloudEvent) Name() string { return "cloudevents" }

func (c *CloudEvent) Notify(ctx context.Context, text string) error {
	return c.sender.Send(ctx, cloudevent.Payload{Text: text})
}
