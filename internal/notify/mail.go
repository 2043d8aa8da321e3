package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// MailConfig holds the SMTP settings for the mail sink.
type MailConfig struct {
	Host     string   `mapstructure:"host"`
	Port     int      `mapstructure:"port"`
	Username string   `mapstructure:"username"`
	Password string   `mapstructure:"password"`
	From     string   `mapstructure:"from"`
	To       []string `mapstructure:"to"`
}

// MailSink emails the full report body over SMTP.
type MailSink struct {
	cfg MailConfig
}

// NewMailSink validates the config and returns the sink.
func NewMailSink(cfg MailConfig) (*MailSink, error) {
	if cfg.Host == "" || cfg.From == "" || len(cfg.To) == 0 {
		return nil, fmt.Errorf("mail notifications need at least host, from and to configured")
	}
	return &MailSink{cfg: cfg}, nil
}

func (s *MailSink) Send(ctx context.Context, report Report) error {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(s.cfg.To...); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(report.Subject())
	msg.SetBodyString(mail.TypeTextPlain, report.Body())

	opts := []mail.Option{mail.WithPort(s.cfg.Port)}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("building smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
