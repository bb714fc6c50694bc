package sink

import (
	"context"

	"webhook-relay/pkg/irc"
)

// IRC posts to the channel joined by an already dialed client and owns its lifecycle.
type IRC struct {
	client *irc.Client
}

func NewIRC(client *irc.Client) *IRC {
	return &IRC{client: client}
}

func (i *IRC) Name() string { return "irc" }

func (i *IRC) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return i.client.Send(text)
}

func (i *IRC) Close() error {
	return i.client.Close()
}
