package notify

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// History keeps the most recent deliveries, evicting the oldest.
type History struct {
	seq   atomic.Uint64
	cache *lru.Cache[uint64, Delivery]
}

// NewHistory returns a history holding at most size deliveries.
func NewHistory(size int) (*History, error) {
	if size <= 0 {
		size = DefaultHistorySize
	}
	cache, err := lru.New[uint64, Delivery](size)
	if err != nil {
		return nil, err
	}
	return &History{cache: cache}, nil
}

// Add stores d and returns the sequence number assigned to it.
func (h *History) Add(d Delivery) uint64 {
	d.Seq = h.seq.Add(1)
	h.cache.Add(d.Seq, d)
	return d.Seq
}

// Recent returns up to limit deliveries, newest first. limit <= 0 means all.
func (h *History) Recent(limit int) []Delivery {
	values := h.cache.Values()
	if limit <= 0 || limit > len(values) {
		limit = len(values)
	}

	out := make([]Delivery, 0, limit)
	for i := len(values) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, values[i])
	}
	return out
}

// Len returns the number of stored deliveries.
func (h *History) Len() int {
	return h.cache.Len()
}
