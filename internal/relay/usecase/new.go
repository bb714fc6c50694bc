package usecase

import (
	"webhook-relay/internal/relay"
	"webhook-relay/pkg/log"
)

// implUseCase is the private implementation of relay.UseCase.
type implUseCase struct {
	l          log.Logger
	filter     filter
	format     formatter
	dispatcher relay.Dispatcher
}

// New creates a relay UseCase. A nil dispatcher turns Process into Preview.
func New(l log.Logger, cfg relay.Config, dispatcher relay.Dispatcher) relay.UseCase {
	if cfg.TrimLimit <= 0 {
		cfg.TrimLimit = relay.DefaultTrimLimit
	}
	return &implUseCase{
		l:          l,
		filter:     newFilter(cfg.Filter),
		format:     formatter{trimLimit: cfg.TrimLimit, ciMarkers: cfg.CIMarkers},
		dispatcher: dispatcher,
	}
}
