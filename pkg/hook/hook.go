package hook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

// DefaultTemplate renders the text as a Slack-compatible JSON body.
const DefaultTemplate = `{"text": {{ .Text | toJson }}}`

var ErrMissingURL = errors.New("hook: url is required")

// Data is what the body template sees.
type Data struct {
	Text      string
	Sink      string
	Timestamp time.Time
}

// Config describes a generic outbound webhook.
type Config struct {
	URL         string
	Method      string
	ContentType string
	Template    string
	Headers     map[string]string
}

// Client renders Data through a sprig-enabled template and sends it.
type Client struct {
	cfg  Config
	tmpl *template.Template
	http *http.Client
	now  func() time.Time
}

func funcMap() template.FuncMap {
	fm := sprig.TxtFuncMap()
	delete(fm, "env")
	delete(fm, "expandenv")
	return fm
}

// New parses the body template and returns a client.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}
	if cfg.Method == "" {
		cfg.Method = http.MethodPost
	}
	if cfg.ContentType == "" {
		cfg.ContentType = "application/json"
	}
	if cfg.Template == "" {
		cfg.Template = DefaultTemplate
	}

	tmpl, err := template.New("hook").Funcs(funcMap()).Parse(cfg.Template)
	if err != nil {
		return nil, fmt.Errorf("hook: parse template: %w", err)
	}

	return &Client{
		cfg:  cfg,
		tmpl: tmpl,
		http: &http.Client{Timeout: 15 * time.Second},
		now:  time.Now,
	}, nil
}

// Render executes the template for text.
func (c *Client) Render(sink, text string) ([]byte, error) {
	var buf bytes.Buffer
	data := Data{Text: text, Sink: sink, Timestamp: c.now().UTC()}
	if err := c.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("hook: render: %w", err)
	}
	return buf.Bytes(), nil
}

// Send renders and delivers text. Any non-2xx answer is an error.
func (c *Client) Send(ctx context.Context, sink, text string) error {
	body, err := c.Render(sink, text)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, c.cfg.Method, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("hook: request: %w", err)
	}
	req.Header.Set("Content-Type", c.cfg.ContentType)
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("hook: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("hook: status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
