package sink

import (
	"context"
	"time"

	"webhook-relay/pkg/stream"
)

const streamMessageType = "notification"

// Stream broadcasts to WebSocket subscribers of /stream.
type Stream struct {
	hub *stream.Hub
	now func() time.Time
}

func NewStream(hub *stream.Hub) *Stream {
	return &Stream{hub: hub, now: time.Now}
}

func (s *Stream) Name() string { return "stream" }

func (s *Stream) Notify(ctx context.Context, text string) error {
	return s.hub.Broadcast(stream.Message{
		Type:      streamMessageType,
		Text:      text,
		Timestamp: s.now().UTC(),
	})
}
