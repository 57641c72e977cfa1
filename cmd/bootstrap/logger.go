package bootstrap

import (
	"log/slog"

	"hotel-frontdesk/internal/handler/middleware"
	"hotel-frontdesk/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger builds the application logger from the log config: tint in
// debug mode, JSON in release. It also becomes the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
