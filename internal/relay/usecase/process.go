package usecase

import (
	"context"
	"time"

	"webhook-relay/internal/model"
	"webhook-relay/internal/relay"
)

func (uc *implUseCase) Process(ctx context.Context, input relay.ProcessInput) (relay.ProcessOutput, error) {
	ev := input.Event
	out, err := uc.evaluate(ev.Payload)
	if err != nil {
		return out, err
	}

	if out.Suppressed {
		uc.l.Debugf(ctx, "relay.usecase.Process: delivery %s suppressed (%s): %s", ev.DeliveryID, out.Category, out.Reason)
		return out, nil
	}

	if uc.dispatcher == nil {
		return out, nil
	}

	createdAt := ev.ReceivedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	uc.dispatcher.Dispatch(ctx, model.Notification{
		DeliveryID: ev.DeliveryID,
		Category:   out.Category,
		Text:       out.Text,
		CreatedAt:  createdAt,
	})
	out.Dispatched = true

	uc.l.Infof(ctx, "relay.usecase.Process: delivery %s dispatched as %s", ev.DeliveryID, out.Category)
	return out, nil
}

func (uc *implUseCase) Preview(ctx context.Context, payload model.Payload) (relay.ProcessOutput, error) {
	return uc.evaluate(payload)
}

func (uc *implUseCase) evaluate(p model.Payload) (relay.ProcessOutput, error) {
	if p == nil {
		return relay.ProcessOutput{}, relay.ErrInvalidPayload
	}

	if suppressed, reason := uc.filter.check(p); suppressed {
		return relay.ProcessOutput{Suppressed: true, Reason: reason}, nil
	}

	c := classify(p)
	if c == model.CategoryUnclassified {
		return relay.ProcessOutput{Category: c, Suppressed: true, Reason: "unclassified"}, nil
	}

	text, reason := uc.format.format(c, p)
	if text == "" {
		return relay.ProcessOutput{Category: c, Suppressed: true, Reason: reason}, nil
	}

	return relay.ProcessOutput{Category: c, Text: text}, nil
}
