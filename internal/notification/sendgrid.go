package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

const sendGridSendPath = "/v3/mail/send"

// SendGridNotifier delivers rendered templates through the SendGrid v3 API.
type SendGridNotifier struct {
	client *sendgrid.Client
	from   *mail.Email
	logger *zap.Logger
}

func NewSendGridNotifier(apiKey, fromAddress, fromName string, logger ...*zap.Logger) *SendGridNotifier {
	l := zap.L().Named("notification.sendgrid")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &SendGridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromAddress),
		logger: l,
	}
}

// WithHost points the client at another API host.
func (n *SendGridNotifier) WithHost(host string) *SendGridNotifier {
	n.client.BaseURL = strings.TrimRight(host, "/") + sendGridSendPath
	return n
}

func (n *SendGridNotifier) Send(ctx context.Context, to string, kind Kind, data TemplateData) error {
	email, err := Build(to, kind, data)
	if err != nil {
		return err
	}

	msg := mail.NewSingleEmail(n.from, email.Subject, mail.NewEmail("", to), email.TextBody, email.HTMLBody)
	resp, err := n.client.SendWithContext(ctx, msg)
	if err != nil {
		n.logger.Error("send email failed", zap.String("kind", string(kind)), zap.Error(err))
		return fmt.Errorf("send %s email: %w", kind, err)
	}
	if resp.StatusCode >= 300 {
		n.logger.Error("send email rejected",
			zap.String("kind", string(kind)),
			zap.Int("status", resp.StatusCode),
			zap.String("body", resp.Body),
		)
		return fmt.Errorf("send %s email: provider returned status %d", kind, resp.StatusCode)
	}

	n.logger.Info("email sent", zap.String("kind", string(kind)), zap.String("to", to))
	return nil
}

// LogNotifier only logs. Used when no SendGrid key is configured.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger ...*zap.Logger) *LogNotifier {
	l := zap.L().Named("notification.log")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &LogNotifier{logger: l}
}

func (n *LogNotifier) Send(ctx context.Context, to string, kind Kind, data TemplateData) error {
	email, err := Build(to, kind, data)
	if err != nil {
		return err
	}
	n.logger.Info("email suppressed",
		zap.String("kind", string(kind)),
		zap.String("to", to),
		zap.String("subject", email.Subject),
	)
	return nil
}

// New picks the SendGrid notifier when a key is present.
func New(apiKey, fromAddress, fromName string, logger *zap.Logger) Notifier {
	if apiKey == "" {
		return NewLogNotifier(logger)
	}
	return NewSendGridNotifier(apiKey, fromAddress, fromName, logger)
}
