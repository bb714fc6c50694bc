package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"webhook-relay/internal/model"
	"webhook-relay/internal/relay"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockDispatcher struct {
	mu   sync.Mutex
	sent []model.Notification
}

func (m *mockDispatcher) Dispatch(ctx context.Context, n model.Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, n)
}

func (m *mockDispatcher) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func payload(t *testing.T, raw string) model.Payload {
	t.Helper()
	var p model.Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("invalid test payload: %v", err)
	}
	return p
}

func newTestUseCase(d relay.Dispatcher) *implUseCase {
	return New(&mockLogger{}, relay.DefaultConfig(), d).(*implUseCase)
}
