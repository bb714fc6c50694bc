package irc

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cenkalti/backoff/v4"
	"github.com/ergochat/irc-go/ircevent"
	"github.com/ergochat/irc-go/ircmsg"
)

// MaxLineBytes keeps a PRIVMSG with its prefix under the 512 byte protocol limit.
const MaxLineBytes = 400

var ErrMissingConfig = errors.New("irc: server, nick and channel are required")

// Config describes one IRC session joined to a single channel.
type Config struct {
	Server         string // host:port
	Nick           string
	RealName       string
	Password       string
	Channel        string
	UseTLS         bool
	ConnectTimeout time.Duration
}

// Client is a long-lived IRC session. The underlying connection reconnects on its own
// once established; Dial only retries the first connect.
type Client struct {
	conn    *ircevent.Connection
	channel string
	done    chan struct{}
}

// Dial connects to the server and joins the configured channel on every (re)connect.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Server == "" || cfg.Nick == "" || cfg.Channel == "" {
		return nil, ErrMissingConfig
	}

	conn := &ircevent.Connection{
		Server:      cfg.Server,
		Nick:        cfg.Nick,
		User:        cfg.Nick,
		RealName:    cfg.RealName,
		Password:    cfg.Password,
		UseTLS:      cfg.UseTLS,
		QuitMessage: "relay shutting down",
	}
	if cfg.UseTLS {
		host, _, err := net.SplitHostPort(cfg.Server)
		if err != nil {
			host = cfg.Server
		}
		conn.TLSConfig = &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12}
	}

	c := &Client{
		conn:    conn,
		channel: cfg.Channel,
		done:    make(chan struct{}),
	}
	conn.AddConnectCallback(func(ircmsg.Message) {
		_ = conn.Join(cfg.Channel)
	})

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	if cfg.ConnectTimeout > 0 {
		b.MaxElapsedTime = cfg.ConnectTimeout
	}
	if err := backoff.Retry(conn.Connect, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("irc: failed to connect to %s: %w", cfg.Server, err)
	}

	go func() {
		defer close(c.done)
		conn.Loop()
	}()

	return c, nil
}

// Send writes text to the channel, one PRIVMSG per line.
func (c *Client) Send(text string) error {
	for _, line := range Lines(text, MaxLineBytes) {
		if err := c.conn.Privmsg(c.channel, line); err != nil {
			return fmt.Errorf("irc: privmsg %s: %w", c.channel, err)
		}
	}
	return nil
}

// Close quits the session and waits briefly for the read loop to exit.
func (c *Client) Close() error {
	c.conn.Quit()
	select {
	case <-c.done:
	case <-time.After(5 * time.Second):
	}
	return nil
}

// Lines splits text into non-empty lines no longer than maxBytes,
// cutting long lines on rune boundaries.
func Lines(text string, maxBytes int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		for len(line) > maxBytes {
			cut := maxBytes
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			if cut == 0 {
				cut = maxBytes
			}
			out = append(out, line[:cut])
			line = line[cut:]
		}
		out = append(out, line)
	}
	return out
}
