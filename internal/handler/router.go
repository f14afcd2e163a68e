package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lunchly/internal/handler/api"
	"lunchly/internal/handler/middleware"
	"lunchly/internal/pkg/config"
	"lunchly/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Customer    *api.CustomerHandler
	Reservation *api.ReservationHandler
	Health      *api.HealthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics, h Handlers) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, h Handlers) {
	engine.GET("/health", h.Health.Check)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// static segments are registered next to /:id; gin prefers them
		customers := apiGroup.Group("/customers")
		addRoutes(customers, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
			{Method: http.MethodPost, Path: "", Handler: h.Customer.Create},
			{Method: http.MethodGet, Path: "/new", Handler: h.Customer.NewForm},
			{Method: http.MethodGet, Path: "/search", Handler: h.Customer.Search},
			{Method: http.MethodGet, Path: "/best", Handler: h.Customer.Best},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get},
			{Method: http.MethodGet, Path: "/:id/edit", Handler: h.Customer.EditForm},
			{Method: http.MethodPost, Path: "/:id/edit", Handler: h.Customer.Update},
			{Method: http.MethodPost, Path: "/:id/reservations", Handler: h.Customer.AddReservation},
		})

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "/:id/edit", Handler: h.Reservation.EditForm},
			{Method: http.MethodPost, Path: "/:id/edit", Handler: h.Reservation.Update},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
