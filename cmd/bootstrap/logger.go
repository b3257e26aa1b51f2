package bootstrap

import (
	"log/slog"

	"procure-chef/internal/handler/middleware"
	"procure-chef/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log)
	return logger.GetSlogLogger()
}
