package sink

import (
	"context"

	"webhook-relay/pkg/slack"
)

type Slack struct {
	client   *slack.Client
	username string
	channel  string
	icon     string
}

// NewSlack wraps an incoming-webhook client. Empty username, channel and icon
// leave the webhook's own defaults in place.
func NewSlack(client *slack.Client, username, channel, icon string) *Slack {
	return &Slack{client: client, username: username, channel: channel, icon: icon}
}

func (s *Slack) Name() string { return "slack" }

func (s *Slack) Notify(ctx context.Context, text string) error {
	return s.client.Post(ctx, slack.Message{
		Text:      slack.Escape(text),
		Username:  s.username,
		Channel:   s.channel,
		IconEmoji: s.icon,
	})
}
