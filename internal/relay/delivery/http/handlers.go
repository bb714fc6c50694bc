package http

import (
	"github.com/gin-gonic/gin"

	"webhook-relay/pkg/log"
	"webhook-relay/pkg/response"
)

// Receive godoc
// @Summary     Receive a GitHub webhook
// @Description Filters, classifies and formats the event, then relays it to the configured sinks without waiting for delivery.
// @Tags        Relay
// @Accept      json
// @Produce     json
// @Param       X-GitHub-Event    header string false "GitHub event name"
// @Param       X-GitHub-Delivery header string false "GitHub delivery id"
// @Param       body body object true "GitHub webhook payload"
// @Success     200 {object} receiveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /webhook/github [POST]
func (h *handler) Receive(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReceiveReq(c)
	if err != nil {
		h.l.Warnf(ctx, "relay.delivery.http.Receive: invalid body: %v", err)
		response.Error(c, errInvalidBody, nil)
		return
	}
	ctx = log.WithTraceID(ctx, req.DeliveryID)

	if req.isPing() {
		h.l.Infof(ctx, "relay.delivery.http.Receive: ping for hook %s", req.Payload.String("hook_id"))
		response.OK(c, receiveResp{Status: statusPong, DeliveryID: req.DeliveryID})
		return
	}

	if !req.generatedID && h.remember(req.DeliveryID) {
		h.l.Infof(ctx, "relay.delivery.http.Receive: duplicate delivery %s", req.DeliveryID)
		response.OK(c, receiveResp{Status: statusDuplicate, DeliveryID: req.DeliveryID})
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "relay.delivery.http.Receive: uc.Process: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReceiveResp(req, output))
}

// Recent godoc
// @Summary     Recent sink deliveries
// @Description Lists the latest delivery attempts per sink, newest first.
// @Tags        Relay
// @Produce     json
// @Param       limit query int false "Max items (default 20)"
// @Success     200 {object} recentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /notifications/recent [GET]
func (h *handler) Recent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecentReq(c)
	if err != nil {
		h.l.Warnf(ctx, "relay.delivery.http.Recent: %v", err)
		response.Error(c, err, nil)
		return
	}

	if h.history == nil {
		response.OK(c, h.newRecentResp(nil))
		return
	}
	response.OK(c, h.newRecentResp(h.history.Recent(req.limit())))
}
