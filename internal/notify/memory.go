package notify

import (
	"context"
	"sync"
)

// MemorySink keeps every text it receives. It backs the dry-run mode and tests.
type MemorySink struct {
	name string
	err  error

	mu    sync.Mutex
	texts []string
}

// NewMemorySink returns a sink that records texts and answers with err.
func NewMemorySink(name string, err error) *MemorySink {
	return &MemorySink{name: name, err: err}
}

func (m *MemorySink) Name() string { return m.name }

func (m *MemorySink) Notify(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts = append(m.texts, text)
	return m.err
}

// Texts returns a copy of the received texts.
func (m *MemorySink) Texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.texts...)
}
