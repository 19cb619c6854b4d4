package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/mmnete/bimasoft-backend/internal/config"
	"github.com/mmnete/bimasoft-backend/internal/messaging/kafka"
	"github.com/mmnete/bimasoft-backend/internal/messaging/kafka/producer"
	"github.com/mmnete/bimasoft-backend/internal/shared/connection"
	"go.uber.org/zap"
)

// RunWorker relays committed outbox rows to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), cfg.DB.MaxRetries, logger)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Brokers, cfg.DB.MaxRetries, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(sqlDB), kafkaWriter, logger, cfg.Kafka.PollInterval)

	log.Info("worker shutting down")
	return nil
}
