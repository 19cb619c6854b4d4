package main

import (
	"log"
	"time"

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

	a, err := app.BuildApp(cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer a.Close()

	if err := bootstrap.StartHTTPServer(
		a.Router,
		bootstrap.ServerConfig{
			Port:         cfg.App.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewZapLifecycleLogger(logger),
	); err != nil {
		logger.Error("http server failed", zap.Error(err))
	}
}
