package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"webhook-relay/internal/middleware"
	"webhook-relay/internal/relay"
	relayHTTP "webhook-relay/internal/relay/delivery/http"
	"webhook-relay/pkg/log"
)

const defaultShutdownTimeout = 15 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Relay domain
	relayUC    relay.UseCase
	history    relayHTTP.HistoryReader
	relayCfg   relayHTTP.Config
	middleware middleware.Config

	// Live notification stream, optional
	stream http.Handler
	sinks  []string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Relay domain
	RelayUseCase relay.UseCase
	History      relayHTTP.HistoryReader
	Relay        relayHTTP.Config
	Middleware   middleware.Config

	// Stream serves GET /stream when set.
	Stream http.Handler
	// Sinks is reported by GET /ready.
	Sinks  []string
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		relayUC:         cfg.RelayUseCase,
		history:         cfg.History,
		relayCfg:        cfg.Relay,
		middleware:      cfg.Middleware,
		stream:          cfg.Stream,
		sinks:           cfg.Sinks,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.relayUC == nil {
		return errors.New("relay use case is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}
