package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v57/github"
	"github.com/google/uuid"
)

// processReceiveReq decodes the body and reads the GitHub delivery headers.
func (h *handler) processReceiveReq(c *gin.Context) (receiveReq, error) {
	var req receiveReq
	if err := c.ShouldBindJSON(&req.Payload); err != nil {
		return req, err
	}

	req.EventType = github.WebHookType(c.Request)
	req.DeliveryID = github.DeliveryID(c.Request)
	if req.DeliveryID == "" {
		req.DeliveryID = uuid.NewString()
		req.generatedID = true
	}
	return req, req.validate()
}

// processRecentReq binds the recent notifications query.
func (h *handler) processRecentReq(c *gin.Context) (recentReq, error) {
	var req recentReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
