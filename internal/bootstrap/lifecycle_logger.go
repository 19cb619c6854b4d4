package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ZapLifecycleLogger writes lifecycle events to the structured log.
type ZapLifecycleLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewZapLifecycleLogger(logger *zap.Logger) *ZapLifecycleLogger {
	return &ZapLifecycleLogger{logger: logger.Named("lifecycle"), now: time.Now}
}

func (l *ZapLifecycleLogger) Log(ctx context.Context, event LifecycleEvent) {
	l.logger.Info("lifecycle event",
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("action", event.Action),
		zap.String("message", event.Message),
		zap.Any("meta", event.Meta),
	)
}
