package components

import (
	"lunchly/internal/handler"
	"lunchly/internal/handler/api"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCustomerHandler,
		api.NewReservationHandler,
		fx.Annotate(
			func(pool *pgxpool.Pool) *pgxpool.Pool { return pool },
			fx.As(new(api.Pinger)),
		),
		api.NewHealthHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(c *api.CustomerHandler, r *api.ReservationHandler, h *api.HealthHandler) handler.Handlers {
	return handler.Handlers{Customer: c, Reservation: r, Health: h}
}
