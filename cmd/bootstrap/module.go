package bootstrap

import (
	"lunchly/cmd/bootstrap/components"
	"lunchly/internal/pkg/config"

	"go.uber.org/fx"
)

// Module is the whole application graph except the gin engine and the HTTP server.
var Module = fx.Module("lunchly",
	fx.Provide(config.LoadConfig),
	LoggerModule,
	DBModule,
	MetricsModule,
	components.PersistenceModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
