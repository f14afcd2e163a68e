package components

import (
	"lunchly/internal/infra/query"
	"lunchly/internal/infra/readstore"
	"lunchly/internal/infra/repository"
	"lunchly/internal/pkg/config"
	"lunchly/internal/pkg/metrics"
	"lunchly/internal/usecase/commands"
	"lunchly/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(repository.ReservationFinder)),
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(commands.ReservationStore)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(queries.CustomerReadStore)),
			fx.As(new(commands.CustomerStore)),
			fx.As(new(readstore.RecentReservationFinder)),
		),
		NewRecentReservationLoader,
	),
)

// NewRecentReservationLoader picks the lookup strategy named in the config.
func NewRecentReservationLoader(
	cfg config.Config,
	finder readstore.RecentReservationFinder,
	latest readstore.LatestReservationQueries,
	db query.DBTX,
	m *metrics.Metrics,
) queries.RecentReservationLoader {
	strategy := cfg.Reservation.PreloadStrategy
	if strategy == config.PreloadBatch {
		return readstore.NewInstrumentedRecentReservationStore(
			readstore.NewBatchRecentReservationStore(latest, db), strategy, true, m)
	}
	return readstore.NewInstrumentedRecentReservationStore(
		readstore.NewPerRowRecentReservationStore(finder), config.PreloadPerRow, false, m)
}
