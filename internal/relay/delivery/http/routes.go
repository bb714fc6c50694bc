package http

import (
	"github.com/gin-gonic/gin"

	"webhook-relay/internal/middleware"
)

// RegisterRoutes mounts the webhook receivers and the history endpoint.
// POST / is kept for hooks configured against the bare host.
func RegisterRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.POST("/", mw.RateLimit(), mw.Auth(), h.Receive)
	r.POST("/webhook/github", mw.RateLimit(), mw.Auth(), h.Receive)
	r.GET("/notifications/recent", mw.Auth(), h.Recent)
}
