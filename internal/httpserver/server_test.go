package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"webhook-relay/internal/model"
	"webhook-relay/internal/relay"
	"webhook-relay/pkg/log"
)

type stubUseCase struct{}

func (stubUseCase) Process(ctx context.Context, input relay.ProcessInput) (relay.ProcessOutput, error) {
	return relay.ProcessOutput{Category: model.CategoryIssue, Text: "x", Dispatched: true}, nil
}

func (stubUseCase) Preview(ctx context.Context, payload model.Payload) (relay.ProcessOutput, error) {
	return relay.ProcessOutput{}, nil
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing mode", Config{Port: 8080, RelayUseCase: stubUseCase{}}},
		{"missing port", Config{Mode: gin.TestMode, RelayUseCase: stubUseCase{}}},
		{"missing use case", Config{Mode: gin.TestMode, Port: 8080}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tt.cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	streamed := false
	stream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		streamed = true
		w.WriteHeader(http.StatusTeapot)
	})

	srv, err := New(log.NewNop(), Config{
		Mode:         gin.TestMode,
		Port:         8080,
		RelayUseCase: stubUseCase{},
		Stream:       stream,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/ready", "", http.StatusOK},
		{http.MethodGet, "/live", "", http.StatusOK},
		{http.MethodPost, "/webhook/github", `{"issue":{}}`, http.StatusOK},
		{http.MethodPost, "/", `{"issue":{}}`, http.StatusOK},
		{http.MethodGet, "/notifications/recent", "", http.StatusOK},
		{http.MethodGet, "/stream", "", http.StatusTeapot},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}

	if !streamed {
		t.Error("stream handler was not reached")
	}
}

func TestStreamRouteOptional(t *testing.T) {
	srv, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080, RelayUseCase: stubUseCase{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stream", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
