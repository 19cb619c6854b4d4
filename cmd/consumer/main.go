package main

import (
	"log"

	"github.com/mmnete/bimasoft-backend/internal/app"
	"github.com/mmnete/bimasoft-backend/internal/bootstrap"
	"github.com/mmnete/bimasoft-backend/internal/config"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := bootstrap.NewLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	apperror.Init()

	if err := app.RunConsumer(cfg, logger); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
