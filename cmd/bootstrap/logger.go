package bootstrap

import (
	"log/slog"

	"villanest/internal/handler/middleware"
	"villanest/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger builds the process logger from LOG_* settings and installs it
// as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).Slog()
}
