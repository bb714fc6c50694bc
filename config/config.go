package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Inbound
	Auth    AuthConfig
	Webhook WebhookConfig

	// Relay core
	Relay    RelayConfig
	Dispatch DispatchConfig

	// Outbound
	Sinks SinksConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AuthConfig enables basic auth on the webhook routes when Password is set.
type AuthConfig struct {
	Password string
}

type WebhookConfig struct {
	RateLimitPerMin int
	DedupeTTL       time.Duration
	DedupeSize      int
}

type RelayConfig struct {
	IgnoreActions []string
	IgnoreKeys    []string
	IgnoreSenders []string
	CIMarkers     []string
	TrimLimit     int
}

type DispatchConfig struct {
	Timeout     time.Duration
	HistorySize int
}

type SinksConfig struct {
	Slack       SlackConfig
	Telegram    TelegramConfig
	IRC         IRCConfig
	Stream      StreamConfig
	CloudEvents CloudEventsConfig
	Webhook     HookConfig
}

type SlackConfig struct {
	WebhookURL string
	Username   string `default:"webhook-relay"`
	Channel    string
	IconEmoji  string `default:":octocat:"`
	Icons      string `default:"shortcode"`
}

type TelegramConfig struct {
	BotToken string
	ChatID   string
	Icons    string `default:"glyph"`
}

type IRCConfig struct {
	Server         string
	Nick           string `default:"webhook-relay"`
	RealName       string `default:"GitHub webhook relay"`
	Password       string
	Channel        string
	UseTLS         bool
	ConnectTimeout time.Duration `default:"30s"`
	Icons          string        `default:"glyph"`
}

type StreamConfig struct {
	Enabled bool
	Icons   string `default:"glyph"`
}

type CloudEventsConfig struct {
	Target string
	Source string `default:"webhook-relay"`
	Type   string `default:"dev.webhook-relay.notification"`
	Icons  string `default:"shortcode"`
}

type HookConfig struct {
	URL         string
	Method      string `default:"POST"`
	ContentType string `default:"application/json"`
	Template    string
	Headers     map[string]string
	Icons       string `default:"shortcode"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads path when given, otherwise searches the default locations.
// Environment variables override file values, e.g. SINKS_SLACK_WEBHOOK_URL.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Inbound
	cfg.Auth.Password = v.GetString("auth.password")
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.DedupeTTL = v.GetDuration("webhook.dedupe_ttl")
	cfg.Webhook.DedupeSize = v.GetInt("webhook.dedupe_size")

	// Relay core
	cfg.Relay.IgnoreActions = stringList(v, "relay.ignore_actions")
	cfg.Relay.IgnoreKeys = stringList(v, "relay.ignore_keys")
	cfg.Relay.IgnoreSenders = stringList(v, "relay.ignore_senders")
	cfg.Relay.CIMarkers = stringList(v, "relay.ci_markers")
	cfg.Relay.TrimLimit = v.GetInt("relay.trim_limit")
	cfg.Dispatch.Timeout = v.GetDuration("dispatch.timeout")
	cfg.Dispatch.HistorySize = v.GetInt("dispatch.history_size")

	// Sinks
	s := &cfg.Sinks
	s.Slack.WebhookURL = v.GetString("sinks.slack.webhook_url")
	s.Slack.Username = v.GetString("sinks.slack.username")
	s.Slack.Channel = v.GetString("sinks.slack.channel")
	s.Slack.IconEmoji = v.GetString("sinks.slack.icon_emoji")
	s.Slack.Icons = v.GetString("sinks.slack.icons")

	s.Telegram.BotToken = v.GetString("sinks.telegram.bot_token")
	s.Telegram.ChatID = v.GetString("sinks.telegram.chat_id")
	s.Telegram.Icons = v.GetString("sinks.telegram.icons")

	s.IRC.Server = v.GetString("sinks.irc.server")
	s.IRC.Nick = v.GetString("sinks.irc.nick")
	s.IRC.RealName = v.GetString("sinks.irc.real_name")
	s.IRC.Password = v.GetString("sinks.irc.password")
	s.IRC.Channel = v.GetString("sinks.irc.channel")
	s.IRC.UseTLS = v.GetBool("sinks.irc.use_tls")
	s.IRC.ConnectTimeout = v.GetDuration("sinks.irc.connect_timeout")
	s.IRC.Icons = v.GetString("sinks.irc.icons")

	s.Stream.Enabled = v.GetBool("sinks.stream.enabled")
	s.Stream.Icons = v.GetString("sinks.stream.icons")

	s.CloudEvents.Target = v.GetString("sinks.cloudevents.target")
	s.CloudEvents.Source = v.GetString("sinks.cloudevents.source")
	s.CloudEvents.Type = v.GetString("sinks.cloudevents.type")
	s.CloudEvents.Icons = v.GetString("sinks.cloudevents.icons")

	s.Webhook.URL = v.GetString("sinks.webhook.url")
	s.Webhook.Method = v.GetString("sinks.webhook.method")
	s.Webhook.ContentType = v.GetString("sinks.webhook.content_type")
	s.Webhook.Template = v.GetString("sinks.webhook.template")
	s.Webhook.Headers = v.GetStringMapString("sinks.webhook.headers")
	s.Webhook.Icons = v.GetString("sinks.webhook.icons")

	if err := defaults.Set(s); err != nil {
		return nil, fmt.Errorf("sink defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "15s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("webhook.rate_limit_per_min", 600)
	v.SetDefault("webhook.dedupe_ttl", "10m")
	v.SetDefault("webhook.dedupe_size", 1000)

	v.SetDefault("relay.ignore_actions", []string{
		"labeled", "unlabeled", "assigned", "unassigned",
		"review_requested", "review_request_removed",
		"deleted", "milestoned", "demilestoned",
	})
	v.SetDefault("relay.ignore_keys", []string{"changes"})
	v.SetDefault("relay.ignore_senders", []string{"codecov[bot]", "dependabot[bot]"})
	v.SetDefault("relay.ci_markers", []string{"# [Codecov]", "## [Codecov]"})
	v.SetDefault("relay.trim_limit", 500)

	v.SetDefault("dispatch.timeout", "30s")
	v.SetDefault("dispatch.history_size", 100)
}

// stringList reads a list key. Env vars arrive as one comma-separated string.
func stringList(v *viper.Viper, key string) []string {
	if raw, ok := v.Get(key).(string); ok {
		var out []string
		for _, item := range strings.Split(raw, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
		return out
	}
	return v.GetStringSlice(key)
}

var validIcons = map[string]bool{"shortcode": true, "glyph": true}

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", c.HTTPServer.Port)
	}
	if c.Relay.TrimLimit <= 0 {
		return fmt.Errorf("relay.trim_limit must be positive")
	}

	s := c.Sinks
	if (s.Telegram.BotToken == "") != (s.Telegram.ChatID == "") {
		return errors.New("sinks.telegram needs both bot_token and chat_id")
	}
	if s.IRC.Server != "" && s.IRC.Channel == "" {
		return errors.New("sinks.irc.channel is required when sinks.irc.server is set")
	}

	icons := map[string]string{
		"slack":       s.Slack.Icons,
		"telegram":    s.Telegram.Icons,
		"irc":         s.IRC.Icons,
		"stream":      s.Stream.Icons,
		"cloudevents": s.CloudEvents.Icons,
		"webhook":     s.Webhook.Icons,
	}
	for name, mode := range icons {
		if !validIcons[mode] {
			return fmt.Errorf("sinks.%s.icons must be shortcode or glyph, got %q", name, mode)
		}
	}
	return nil
}
