package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"property-rental/internal/handler/api"
	"property-rental/internal/handler/middleware"
	"property-rental/internal/pkg/config"
	"property-rental/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation *api.ReservationHandler
	Property    *api.PropertyHandler
	Financial   *api.FinancialHandler
	Owner       *api.OwnerHandler
	Host        *api.HostHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, reg *prometheus.Registry, h Handlers) error {
	if err := middleware.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, reg, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.MetricsMiddleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, reg *prometheus.Registry, h Handlers) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled && reg != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler(reg)))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// one bucket shared by every write endpoint
	limit := []gin.HandlerFunc{middleware.RateLimit(cfg.RateLimit)}

	apiGroup := engine.Group("/api")
	{
		owners := apiGroup.Group("/owners")
		addRoutes(owners, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Owner.Create, Mw: limit},
			{Method: http.MethodGet, Path: "", Handler: h.Owner.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Owner.Get},
		})

		hosts := apiGroup.Group("/hosts")
		addRoutes(hosts, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Host.Create, Mw: limit},
			{Method: http.MethodGet, Path: "", Handler: h.Host.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Host.Get},
		})

		properties := apiGroup.Group("/properties")
		addRoutes(properties, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Property.Create, Mw: limit},
			{Method: http.MethodGet, Path: "", Handler: h.Property.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Property.Get},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Property.Availability},
		})

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: limit},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
		})

		financial := apiGroup.Group("/financial")
		addRoutes(financial, []route{
			{Method: http.MethodGet, Path: "/commissions", Handler: h.Financial.Aggregate},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
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

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
