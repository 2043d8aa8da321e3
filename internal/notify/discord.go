package notify

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// DiscordConfig identifies the webhook the summary is posted to.
type DiscordConfig struct {
	WebhookID    string `mapstructure:"webhook_id"`
	WebhookToken string `mapstructure:"webhook_token"`
}

// DiscordSink posts the report summary through a Discord webhook. Webhook
// execution needs no bot token, so the session is created unauthenticated.
type DiscordSink struct {
	cfg DiscordConfig
}

// NewDiscordSink validates the config and returns the sink.
func NewDiscordSink(cfg DiscordConfig) (*DiscordSink, error) {
	if cfg.WebhookID == "" || cfg.WebhookToken == "" {
		return nil, fmt.Errorf("discord notifications need webhook_id and webhook_token configured")
	}
	return &DiscordSink{cfg: cfg}, nil
}

func (s *DiscordSink) Send(ctx context.Context, report Report) error {
	session, err := discordgo.New("")
	if err != nil {
		return fmt.Errorf("creating discord session: %w", err)
	}
	_, err = session.WebhookExecute(s.cfg.WebhookID, s.cfg.WebhookToken, true, &discordgo.WebhookParams{
		Content: report.Summary(),
	}, discordgo.WithContext(ctx))
	return err
}
