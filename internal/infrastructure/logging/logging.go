// Package logging builds the zap logger and adapts it to domain ports.
package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ersonp/timetable-sync/internal/infrastructure/config"
)

// New builds a logger from config. Both formats write to stderr.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	switch cfg.Format {
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.DisableStacktrace = true
	case "json", "":
		zapCfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q: must be console or json", cfg.Format)
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return logger, nil
}

// FailureObserver logs failures that the snapshot stores absorb.
type FailureObserver struct {
	logger *zap.Logger
}

// NewFailureObserver creates a FailureObserver. A nil logger discards everything.
func NewFailureObserver(logger *zap.Logger) *FailureObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FailureObserver{logger: logger}
}

// ObserveFailure implements ports.FailureObserver.
func (o *FailureObserver) ObserveFailure(_ context.Context, op, key string, err error) {
	o.logger.Warn("snapshot storage failure",
		zap.String("op", op),
		zap.String("key", key),
		zap.Error(err),
	)
}
