package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/mmnete/bimasoft-backend/internal/config"
	"github.com/mmnete/bimasoft-backend/internal/events"
	"github.com/mmnete/bimasoft-backend/internal/messaging/kafka/consumer"
	"github.com/mmnete/bimasoft-backend/internal/notification"
	"github.com/mmnete/bimasoft-backend/internal/shared/connection"
	"go.uber.org/zap"
)

// RunConsumer mails the operations inbox about onboarded organizations
// until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}
	if cfg.App.OpsEmail == "" {
		return fmt.Errorf("OPS_EMAIL is required")
	}

	reader := connection.NewKafkaReader(cfg.Kafka.Brokers, events.OrganizationOnboardedTopic, cfg.Kafka.ConsumerGroup)
	defer reader.Close()

	notifier := notification.New(cfg.Mail.SendGridAPIKey, cfg.Mail.From, cfg.Mail.FromName, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeOrganizationOnboarded(ctx, reader, notifier, cfg.App.OpsEmail, logger)

	log.Info("consumer shutting down")
	return nil
}
