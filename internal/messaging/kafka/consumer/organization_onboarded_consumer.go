package consumer

import (
	"context"
	"encoding/json"

	"github.com/mmnete/bimasoft-backend/internal/events"
	"github.com/mmnete/bimasoft-backend/internal/notification"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeOrganizationOnboarded mails the operations inbox for every
// onboarded organization. Undecodable messages are committed and skipped.
// A failed send is left uncommitted so the message is redelivered.
func ConsumeOrganizationOnboarded(
	ctx context.Context,
	reader MessageReader,
	notifier notification.Notifier,
	opsEmail string,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.organization_onboarded")
	log.Info("organization onboarded consumer started", zap.String("ops_email", opsEmail))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("organization onboarded consumer stopped")
				return
			}
			log.Error("fetch organization onboarded message failed", zap.Error(err))
			continue
		}

		handleOrganizationOnboarded(ctx, reader, notifier, opsEmail, msg, log)
	}
}

func handleOrganizationOnboarded(
	ctx context.Context,
	reader MessageReader,
	notifier notification.Notifier,
	opsEmail string,
	msg kafkago.Message,
	log *zap.Logger,
) {
	var event events.OrganizationOnboardedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode organization_onboarded event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	fields := []zap.Field{
		zap.Int64("organization_id", event.OrganizationID),
		zap.String("request_id", event.RequestID),
	}

	if opsEmail == "" {
		log.Warn("ops email not configured, skipping approval request", fields...)
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	err := notifier.Send(ctx, opsEmail, notification.KindApprovalRequest, notification.TemplateData{
		CompanyName:    event.LegalName,
		CompanyEmail:   event.ContactEmail,
		CompanyAddress: event.Address,
	})
	if err != nil {
		log.Error("send approval request failed", append(fields, zap.Error(err))...)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit organization onboarded message failed", append(fields, zap.Error(err))...)
		return
	}

	log.Info("approval request sent", fields...)
}
