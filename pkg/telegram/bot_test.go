package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"webhook-relay/pkg/telegram"
)

func TestBot(t *testing.T) {
	var (
		mu       sync.Mutex
		lastText string
	)
	last := func() string {
		mu.Lock()
		defer mu.Unlock()
		return lastText
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasSuffix(path, "/getMe") {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true, "result": {"id": 42, "is_bot": true, "first_name": "Relay", "username": "relay_bot"}}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			var req telegram.SendMessageRequest
			json.NewDecoder(r.Body).Decode(&req)
			mu.Lock()
			lastText = req.Text
			mu.Unlock()

			if req.ChatID == "" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "error_code": 400, "description": "Bad Request: chat not found"}`))
				return
			}
			if req.Text == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true, "result": {}}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	ctx := context.Background()

	t.Run("GetMe Success", func(t *testing.T) {
		me, err := bot.GetMe(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if me.Username != "relay_bot" || !me.IsBot {
			t.Errorf("unexpected user: %+v", me)
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := bot.SendMessage(ctx, "-100123", "Hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := last(); got != "Hello" {
			t.Errorf("expected Hello, got %q", got)
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		err := bot.SendMessage(ctx, "", "Hello")
		if err == nil || !strings.Contains(err.Error(), "chat not found") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SendMessage HTTP Failed", func(t *testing.T) {
		if err := bot.SendMessage(ctx, "-100123", "cause_500"); err == nil {
			t.Fatalf("expected http decoding error")
		}
	})

	t.Run("SendMessage Truncates Long Text", func(t *testing.T) {
		long := strings.Repeat("é", telegram.MaxMessageLength+10)
		if err := bot.SendMessage(ctx, "-100123", long); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := utf8.RuneCountInString(last()); n != telegram.MaxMessageLength {
			t.Errorf("expected %d characters, got %d", telegram.MaxMessageLength, n)
		}
	})

	t.Run("Invalid API URL", func(t *testing.T) {
		badBot := telegram.NewBot("test")
		badBot.SetAPIURL("http://invalid-url.local:1234")
		if err := badBot.SendMessage(ctx, "1", "fail"); err == nil {
			t.Errorf("expected network failure on invalid domain")
		}
	})
}
