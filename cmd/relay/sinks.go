package main

import (
	"context"
	"net/http"

	"webhook-relay/config"
	"webhook-relay/internal/notify"
	"webhook-relay/internal/notify/sink"
	"webhook-relay/pkg/cloudevent"
	"webhook-relay/pkg/hook"
	"webhook-relay/pkg/irc"
	"webhook-relay/pkg/log"
	"webhook-relay/pkg/slack"
	"webhook-relay/pkg/stream"
	"webhook-relay/pkg/telegram"
)

type sinkSet struct {
	targets []notify.Target
	hub     *stream.Hub
}

func (s sinkSet) streamHandler() http.Handler {
	if s.hub == nil {
		return nil
	}
	return s.hub
}

func (s *sinkSet) add(n notify.Sink, icons string) {
	s.targets = append(s.targets, notify.Target{Sink: n, Icons: notify.IconMode(icons)})
}

// buildSinks opens every configured sink. A sink whose backend is unreachable
// at startup is skipped with a warning so the others still work.
func buildSinks(ctx context.Context, l log.Logger, cfg config.SinksConfig) (sinkSet, error) {
	var set sinkSet

	if cfg.Slack.WebhookURL != "" {
		client := slack.NewClient(cfg.Slack.WebhookURL)
		set.add(sink.NewSlack(client, cfg.Slack.Username, cfg.Slack.Channel, cfg.Slack.IconEmoji), cfg.Slack.Icons)
		l.Info(ctx, "Slack sink enabled")
	} else {
		l.Info(ctx, "Slack sink skipped: sinks.slack.webhook_url is empty")
	}

	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		if me, err := bot.GetMe(ctx); err != nil {
			l.Warnf(ctx, "Telegram getMe failed, sending anyway: %v", err)
		} else {
			l.Infof(ctx, "Telegram sink enabled as @%s", me.Username)
		}
		set.add(sink.NewTelegram(bot, cfg.Telegram.ChatID), cfg.Telegram.Icons)
	} else {
		l.Info(ctx, "Telegram sink skipped: sinks.telegram.bot_token is empty")
	}

	if cfg.IRC.Server != "" {
		dialCtx, cancel := context.WithTimeout(ctx, cfg.IRC.ConnectTimeout)
		client, err := irc.Dial(dialCtx, irc.Config{
			Server:         cfg.IRC.Server,
			Nick:           cfg.IRC.Nick,
			RealName:       cfg.IRC.RealName,
			Password:       cfg.IRC.Password,
			Channel:        cfg.IRC.Channel,
			UseTLS:         cfg.IRC.UseTLS,
			ConnectTimeout: cfg.IRC.ConnectTimeout,
		})
		cancel()
		if err != nil {
			l.Warnf(ctx, "IRC sink skipped: %v", err)
		} else {
			set.add(sink.NewIRC(client), cfg.IRC.Icons)
			l.Infof(ctx, "IRC sink enabled on %s %s", cfg.IRC.Server, cfg.IRC.Channel)
		}
	} else {
		l.Info(ctx, "IRC sink skipped: sinks.irc.server is empty")
	}

	if cfg.Stream.Enabled {
		set.hub = stream.NewHub()
		set.add(sink.NewStream(set.hub), cfg.Stream.Icons)
		l.Info(ctx, "Stream sink enabled at GET /stream")
	}

	if cfg.CloudEvents.Target != "" {
		sender, err := cloudevent.NewSender(cloudevent.Config{
			Target: cfg.CloudEvents.Target,
			Source: cfg.CloudEvents.Source,
			Type:   cfg.CloudEvents.Type,
		})
		if err != nil {
			return set, err
		}
		set.add(sink.NewCloudEvent(sender), cfg.CloudEvents.Icons)
		l.Infof(ctx, "CloudEvents sink enabled for %s", cfg.CloudEvents.Target)
	}

	if cfg.Webhook.URL != "" {
		client, err := hook.New(hook.Config{
			URL:         cfg.Webhook.URL,
			Method:      cfg.Webhook.Method,
			ContentType: cfg.Webhook.ContentType,
			Template:    cfg.Webhook.Template,
			Headers:     cfg.Webhook.Headers,
		})
		if err != nil {
			return set, err
		}
		set.add(sink.NewHook(client), cfg.Webhook.Icons)
		l.Infof(ctx, "Webhook sink enabled for %s", cfg.Webhook.URL)
	}

	return set, nil
}
