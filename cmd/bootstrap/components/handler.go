package components

import (
	"property-rental/internal/handler"
	"property-rental/internal/handler/api"
	"property-rental/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOwnerHandler,
		api.NewHostHandler,
		api.NewPropertyHandler,
		api.NewReservationHandler,
		api.NewFinancialHandler,
	),
	fx.Invoke(registerRoutes),
)

type routerParams struct {
	fx.In

	Engine      *gin.Engine
	Config      config.Config
	Registry    *prometheus.Registry
	Owner       *api.OwnerHandler
	Host        *api.HostHandler
	Property    *api.PropertyHandler
	Reservation *api.ReservationHandler
	Financial   *api.FinancialHandler
}

func registerRoutes(p routerParams) error {
	return handler.NewRouter(p.Engine, p.Config, p.Registry, handler.Handlers{
		Reservation: p.Reservation,
		Property:    p.Property,
		Financial:   p.Financial,
		Owner:       p.Owner,
		Host:        p.Host,
	})
}
