package notify

import (
	"time"

	"webhook-relay/internal/model"
)

// IconMode selects how a sink renders icon shortcodes.
type IconMode string

const (
	IconShortcode IconMode = "shortcode"
	IconGlyph     IconMode = "glyph"
)

const (
	DefaultTimeout     = 30 * time.Second
	DefaultHistorySize = 100
)

// Target pairs a sink with its icon rendering.
type Target struct {
	Sink  Sink
	Icons IconMode
}

// Render applies the target's icon mode to text.
func (t Target) Render(text string) string {
	if t.Icons == IconGlyph {
		return model.ReplaceIcons(text)
	}
	return text
}

type Status string

const (
	StatusSent   Status = "sent"
	StatusFailed Status = "failed"
)

// Delivery records one attempt to hand a notification to one sink.
type Delivery struct {
	Seq        uint64
	DeliveryID string
	Category   model.Category
	Sink       string
	Text       string
	Status     Status
	Error      string
	Duration   time.Duration
	At         time.Time
}

// Config configures the dispatcher.
type Config struct {
	Timeout     time.Duration
	HistorySize int
}
