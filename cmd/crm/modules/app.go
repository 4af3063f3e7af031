// Package modules wires the CRM server with fx.
package modules

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Options returns every module the server needs, reading config from path.
func Options(path string) fx.Option {
	return fx.Options(
		fx.Supply(ConfigPath(path)),
		InfraModule,
		DomainModule,
		HandlersModule,
		ServerModule,
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			l := &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
			l.UseLogLevel(slog.LevelDebug)
			return l
		}),
	)
}
