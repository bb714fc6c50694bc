package httpserver

import (
	"context"

	"webhook-relay/internal/middleware"
	relayHTTP "webhook-relay/internal/relay/delivery/http"
)

// setupRelayDomain wires the relay handler and registers its routes.
func (srv HTTPServer) setupRelayDomain(ctx context.Context, mw middleware.Middleware) error {
	h := relayHTTP.New(srv.l, srv.relayUC, srv.history, srv.relayCfg)

	// POST /, POST /webhook/github, GET /notifications/recent
	relayHTTP.RegisterRoutes(srv.gin, h, mw)

	srv.l.Infof(ctx, "Relay domain registered")
	return nil
}
