package bootstrap

import (
	"log/slog"

	"lunchly/internal/handler/middleware"
	"lunchly/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		func(cfg config.Config) *slog.Logger { return middleware.NewLogger(cfg.Log) },
	),
)

// FxLogger routes fx's own lifecycle events through the application logger.
func FxLogger(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
	l.UseLogLevel(slog.LevelDebug)
	return l
}
