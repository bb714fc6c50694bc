package cloudevent

import (
	"context"
	"errors"
	"fmt"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

const (
	DefaultSource = "webhook-relay"
	DefaultType   = "dev.webhook-relay.notification"
)

var ErrMissingTarget = errors.New("cloudevent: target url is required")

// Config describes where and how notifications are emitted as CloudEvents.
type Config struct {
	Target string
	Source string
	Type   string
}

// Payload is the event data.
type Payload struct {
	Text     string `json:"text"`
}

// Sender posts notifications as binary-mode CloudEvents over HTTP.
type Sender struct {
	client cloudevents.Client
	source string
	typ    string
}

// NewSender builds an HTTP CloudEvents client bound to cfg.Target.
func NewSender(cfg Config) (*Sender, error) {
	if cfg.Target == "" {
		return nil, ErrMissingTarget
	}
	if cfg.Source == "" {
		cfg.Source = DefaultSource
	}
	if cfg.Type == "" {
		cfg.Type = DefaultType
	}

	p, err := cloudevents.NewHTTP(cloudevents.WithTarget(cfg.Target))
	if err != nil {
		return nil, fmt.Errorf("cloudevent: protocol: %w", err)
	}
	c, err := cloudevents.NewClient(p, cloudevents.WithTimeNow(), cloudevents.WithUUIDs())
	if err != nil {
		return nil, fmt.Errorf("cloudevent: client: %w", err)
	}

	return &Sender{client: c, source: cfg.Source, typ: cfg.Type}, nil
}

// Send emits one event carrying payload.
func (s *Sender) Send(ctx context.Context, payload Payload) error {
	event := cloudevents.NewEvent()
	event.SetSource(s.source)
	event.SetType(s.typ)
	if err := event.SetData(cloudevents.ApplicationJSON, payload); err != nil {
		return fmt.Errorf("cloudevent: encode: %w", err)
	}

	result := s.client.Send(ctx, event)
	if cloudevents.IsUndelivered(result) {
		return fmt.Errorf("cloudevent: undelivered: %w", result)
	}
	if !cloudevents.IsACK(result) {
		return fmt.Errorf("cloudevent: rejected: %w", result)
	}
	return nil
}
