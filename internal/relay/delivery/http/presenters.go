package http

import (
	"time"

	"webhook-relay/internal/model"
	"webhook-relay/internal/notify"
	"webhook-relay/internal/relay"
)

const (
	statusAccepted   = "accepted"
	statusSuppressed = "suppressed"
	statusDuplicate  = "duplicate"
	statusPong       = "pong"
)

// --- Request DTOs ---

type receiveReq struct {
	Payload     model.Payload
	EventType   string
	DeliveryID  string
	generatedID bool
}

func (r receiveReq) validate() error {
	if r.Payload == nil {
		return errInvalidBody
	}
	return nil
}

// isPing reports a hook setup ping, with or without the event header.
func (r receiveReq) isPing() bool {
	if r.EventType == "ping" {
		return true
	}
	return r.EventType == "" && r.Payload.Has("zen") && r.Payload.Has("hook_id")
}

func (r receiveReq) toInput() relay.ProcessInput {
	return relay.ProcessInput{
		Event: model.Event{
			DeliveryID: r.DeliveryID,
			Type:       r.EventType,
			Payload:    r.Payload,
			ReceivedAt: time.Now(),
		},
	}
}

type recentReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

func (r recentReq) validate() error { return nil }

func (r recentReq) limit() int {
	if r.Limit <= 0 {
		return 20
	}
	return r.Limit
}

// --- Response DTOs ---

type receiveResp struct {
	Status     string `json:"status"`
	DeliveryID string `json:"delivery_id"`
	Category   string `json:"category,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

func (h *handler) newReceiveResp(req receiveReq, out relay.ProcessOutput) receiveResp {
	resp := receiveResp{
		Status:     statusAccepted,
		DeliveryID: req.DeliveryID,
		Category:   string(out.Category),
	}
	if out.Suppressed {
		resp.Status = statusSuppressed
		resp.Reason = out.Reason
	}
	return resp
}

type deliveryItem struct {
	Seq        uint64    `json:"seq"`
	DeliveryID string    `json:"delivery_id"`
	Category   string    `json:"category"`
	Sink       string    `json:"sink"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
	Text       string    `json:"text"`
	DurationMS int64     `json:"duration_ms"`
	At         time.Time `json:"at"`
}

type recentResp struct {
	Items []deliveryItem `json:"items"`
	Total int            `json:"total"`
}

func (h *handler) newRecentResp(ds []notify.Delivery) recentResp {
	items := make([]deliveryItem, 0, len(ds))
	for _, d := range ds {
		items = append(items, deliveryItem{
			Seq:        d.Seq,
			DeliveryID: d.DeliveryID,
			Category:   string(d.Category),
			Sink:       d.Sink,
			Status:     string(d.Status),
			Error:      d.Error,
			Text:       d.Text,
			DurationMS: d.Duration.Milliseconds(),
			At:         d.At,
		})
	}
	return recentResp{Items: items, Total: len(items)}
}
