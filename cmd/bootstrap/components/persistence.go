package components

import (
	"lunchly/internal/infra/query"
	"lunchly/internal/infra/readstore"
	"lunchly/internal/infra/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		fx.Annotate(
			asQueries,
			fx.As(new(repository.CustomerQueries)),
			fx.As(new(repository.ReservationQueries)),
			fx.As(new(readstore.LatestReservationQueries)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

func asQueries(q *query.Queries) *query.Queries {
	return q
}
