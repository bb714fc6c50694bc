package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"webhook-relay/config"
	_ "webhook-relay/docs" // Swagger docs
	"webhook-relay/internal/httpserver"
	"webhook-relay/internal/middleware"
	"webhook-relay/internal/notify"
	"webhook-relay/internal/relay"
	relayHTTP "webhook-relay/internal/relay/delivery/http"
	relayUC "webhook-relay/internal/relay/usecase"
	"webhook-relay/pkg/log"
)

const drainTimeout = 30 * time.Second

func newServeCmd(configPath *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the webhook server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(*configPath)
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.HTTPServer.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides http_server.port)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	// 1. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	logger.Info(ctx, "Starting webhook relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 2. Sinks
	sinks, err := buildSinks(ctx, logger, cfg.Sinks)
	if err != nil {
		return err
	}
	if sinks.hub != nil {
		go sinks.hub.Run(ctx)
	}
	if len(sinks.targets) == 0 {
		logger.Warn(ctx, "No sinks configured: notifications will only appear in /notifications/recent")
	}

	// 3. Dispatcher
	dispatcher, err := notify.NewDispatcher(logger, notify.Config{
		Timeout:     cfg.Dispatch.Timeout,
		HistorySize: cfg.Dispatch.HistorySize,
	}, sinks.targets...)
	if err != nil {
		return err
	}
	logger.Infof(ctx, "Dispatching to sinks: %v", dispatcher.Sinks())

	// 4. Relay use case
	uc := relayUC.New(logger, relayConfig(cfg.Relay), dispatcher)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		RelayUseCase:    uc,
		History:         dispatcher.History(),
		Relay: relayHTTP.Config{
			DedupeSize: cfg.Webhook.DedupeSize,
			DedupeTTL:  cfg.Webhook.DedupeTTL,
		},
		Middleware: middleware.Config{
			Password:        cfg.Auth.Password,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
		Stream: sinks.streamHandler(),
		Sinks:  dispatcher.Sinks(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	// 6. Run
	runErr := httpServer.Run(ctx)
	if runErr != nil {
		logger.Error(ctx, "Failed to run server: ", runErr)
	}

	// 7. Drain deliveries and release sink connections
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
	defer cancel()
	if err := dispatcher.Close(drainCtx); err != nil {
		logger.Warnf(ctx, "Dispatcher close: %v", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
	return runErr
}

func relayConfig(c config.RelayConfig) relay.Config {
	return relay.Config{
		Filter: relay.FilterConfig{
			IgnoreActions: c.IgnoreActions,
			IgnoreKeys:    c.IgnoreKeys,
			IgnoreSenders: c.IgnoreSenders,
		},
		CIMarkers: c.CIMarkers,
		TrimLimit: c.TrimLimit,
	}
}
