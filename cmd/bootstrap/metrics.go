package bootstrap

import (
	"property-rental/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.InitRegistry,
	),
)
