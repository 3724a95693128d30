package bootstrap

import (
	"camp-pricing/internal/handler/middleware"
	"camp-pricing/internal/infra/metrics"
	"camp-pricing/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			NewMetrics,
			fx.As(new(shared.Metrics)),
			fx.As(new(middleware.RequestObserver)),
		),
	),
)

// NewMetrics registers on the default registry, which /metrics serves.
func NewMetrics() *metrics.Prometheus {
	return metrics.New(prometheus.DefaultRegisterer)
}
