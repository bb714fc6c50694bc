package slack

// Message is the incoming-webhook payload. Only Text is required; the
// optional fields are honoured by legacy webhooks and ignored by app webhooks.
type Message struct {
	Text      string `json:"text"`
	Username  string `json:"username,omitempty"`
	IconEmoji string `json:"icon_emoji,omitempty"`
	Channel   string `json:"channel,omitempty"`
}
