package http

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"webhook-relay/internal/notify"
	"webhook-relay/internal/relay"
	"webhook-relay/pkg/log"
)

const (
	defaultDedupeSize = 1000
	defaultDedupeTTL  = 10 * time.Minute
)

// Handler is the public interface for the relay HTTP delivery layer.
type Handler interface {
	Receive(c *gin.Context)
	Recent(c *gin.Context)
}

// HistoryReader lists recent sink deliveries.
type HistoryReader interface {
	Recent(limit int) []notify.Delivery
}

// Config controls redelivery de-duplication.
type Config struct {
	DedupeSize int
	DedupeTTL  time.Duration
}

type handler struct {
	l       log.Logger
	uc      relay.UseCase
	history HistoryReader

	mu   sync.Mutex
	seen *expirable.LRU[string, struct{}]
}

// New creates a new HTTP handler for the relay domain. history may be nil.
func New(l log.Logger, uc relay.UseCase, history HistoryReader, cfg Config) *handler {
	if cfg.DedupeSize <= 0 {
		cfg.DedupeSize = defaultDedupeSize
	}
	if cfg.DedupeTTL <= 0 {
		cfg.DedupeTTL = defaultDedupeTTL
	}
	return &handler{
		l:       l,
		uc:      uc,
		history: history,
		seen:    expirable.NewLRU[string, struct{}](cfg.DedupeSize, nil, cfg.DedupeTTL),
	}
}

// remember records id and reports whether it had been seen already.
func (h *handler) remember(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.seen.Contains(id) {
		return true
	}
	h.seen.Add(id, struct{}{})
	return false
}
