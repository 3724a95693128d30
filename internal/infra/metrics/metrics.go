package metrics

import (
	"strconv"
	"time"

	"camp-pricing/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus implements shared.Metrics and the HTTP request counters.
type Prometheus struct {
	quotesTotal       *prometheus.CounterVec
	reservationsTotal *prometheus.CounterVec
	conflictRetries   prometheus.Counter

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)
	return &Prometheus{
		quotesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "camp_pricing_quotes_total",
				Help: "Total number of quotes served",
			},
			[]string{"clamped"},
		),
		reservationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "camp_pricing_reservations_total",
				Help: "Total number of reservation attempts by outcome",
			},
			[]string{"outcome"},
		),
		conflictRetries: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "camp_pricing_ledger_conflict_retries_total",
				Help: "Total number of ledger writes retried after a version conflict",
			},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
	}
}

func (p *Prometheus) QuoteServed(clamped bool) {
	p.quotesTotal.WithLabelValues(strconv.FormatBool(clamped)).Inc()
}

func (p *Prometheus) ReservationFinished(outcome shared.ReservationOutcome) {
	p.reservationsTotal.WithLabelValues(string(outcome)).Inc()
}

func (p *Prometheus) ConflictRetried() {
	p.conflictRetries.Inc()
}

func (p *Prometheus) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	p.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	p.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
