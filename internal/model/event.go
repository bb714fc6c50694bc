package model

import "time"

// Event is one inbound webhook delivery as seen by the relay.
type Event struct {
	DeliveryID string
	Type       string // X-GitHub-Event, may be empty
	Payload    Payload
	ReceivedAt time.Time
}

// Notification is one formatted message handed to the dispatcher.
type Notification struct {
	DeliveryID string
	Category   Category
	Text       string
	CreatedAt  time.Time
}
