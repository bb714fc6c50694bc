package sink

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webhook-relay/internal/notify"
	"webhook-relay/pkg/cloudevent"
	"webhook-relay/pkg/hook"
	"webhook-relay/pkg/slack"
	"webhook-relay/pkg/stream"
	"webhook-relay/pkg/telegram"
)

var (
	_ notify.Sink = (*Slack)(nil)
	_ notify.Sink = (*Telegram)(nil)
	_ notify.Sink = (*IRC)(nil)
	_ notify.Sink = (*Stream)(nil)
	_ notify.Sink = (*CloudEvent)(nil)
	_ notify.Sink = (*Hook)(nil)
)

type recorder struct {
	mu     sync.Mutex
	bodies [][]byte
	paths  []string
}

func (r *recorder) handler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		b, _ := io.ReadAll(req.Body)
		r.mu.Lock()
		r.bodies = append(r.bodies, b)
		r.paths = append(r.paths, req.URL.Path)
		r.mu.Unlock()
		w.WriteHeader(status)
		if strings.HasSuffix(req.URL.Path, "/sendMessage") {
			_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
		}
	}
}

func (r *recorder) last(t *testing.T, v any) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.bodies)
	require.NoError(t, json.Unmarshal(r.bodies[len(r.bodies)-1], v))
	return r.paths[len(r.paths)-1]
}

func TestSlack(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(rec.handler(http.StatusOK))
	defer srv.Close()

	s := NewSlack(slack.NewClient(srv.URL), "relay", "#dev", ":octocat:")
	require.NoError(t, s.Notify(context.Background(), ":merged: a merged a pull request: \"<b> & c\"\n(u)"))

	var got slack.Message
	rec.last(t, &got)
	assert.Equal(t, ":merged: a merged a pull request: \"&lt;b&gt; &amp; c\"\n(u)", got.Text)
	assert.Equal(t, "relay", got.Username)
	assert.Equal(t, "#dev", got.Channel)
	assert.Equal(t, ":octocat:", got.IconEmoji)
}

func TestSlackError(t *testing.T) {
	srv := httptest.NewServer((&recorder{}).handler(http.StatusForbidden))
	defer srv.Close()

	s := NewSlack(slack.NewClient(srv.URL), "", "", "")
	assert.Error(t, s.Notify(context.Background(), "x"))
}

func TestTelegram(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(rec.handler(http.StatusOK))
	defer srv.Close()

	bot := telegram.NewBot("token")
	bot.SetAPIURL(srv.URL)
	s := NewTelegram(bot, "-100123")
	require.NoError(t, s.Notify(context.Background(), "🔀 merged"))

	var got telegram.SendMessageRequest
	path := rec.last(t, &got)
	assert.Equal(t, "/sendMessage", path)
	assert.Equal(t, "-100123", got.ChatID)
	assert.Equal(t, "🔀 merged", got.Text)
}

func TestHook(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(rec.handler(http.StatusOK))
	defer srv.Close()

	c, err := hook.New(hook.Config{URL: srv.URL, Template: `{"content": {{ .Text | toJson }}, "via": "{{ .Sink }}"}`})
	require.NoError(t, err)

	s := NewHook(c)
	require.NoError(t, s.Notify(context.Background(), "hello"))

	var got map[string]string
	rec.last(t, &got)
	assert.Equal(t, "hello", got["content"])
	assert.Equal(t, "webhook", got["via"])
}

func TestCloudEvent(t *testing.T) {
	rec := &recorder{}
	srv := httptest.NewServer(rec.handler(http.StatusAccepted))
	defer srv.Close()

	sender, err := cloudevent.NewSender(cloudevent.Config{Target: srv.URL})
	require.NoError(t, err)

	s := NewCloudEvent(sender)
	require.NoError(t, s.Notify(context.Background(), "✳️ pushed"))

	var got cloudevent.Payload
	rec.last(t, &got)
	assert.Equal(t, "✳️ pushed", got.Text)
}

func TestStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := stream.NewHub()
	go hub.Run(ctx)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 1, hub.Clients())

	s := NewStream(hub)
	require.NoError(t, s.Notify(context.Background(), "👀 reviewed"))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg stream.Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "notification", msg.Type)
	assert.Equal(t, "👀 reviewed", msg.Text)
}

func TestIRCHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewIRC(nil)
	assert.ErrorIs(t, s.Notify(ctx, "x"), context.Canceled)
}
