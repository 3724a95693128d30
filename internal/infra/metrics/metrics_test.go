//go:build unit

package metrics_test

import (
	"strings"
	"testing"
	"time"

	"camp-pricing/internal/infra/metrics"
	"camp-pricing/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.QuoteServed(false)
	m.QuoteServed(true)
	m.QuoteServed(true)
	m.ReservationFinished(shared.OutcomeReserved)
	m.ReservationFinished(shared.OutcomeCapacityExceeded)
	m.ConflictRetried()
	m.ObserveRequest("POST", "/api/quotes", 200, 15*time.Millisecond)

	expected := `
# HELP camp_pricing_quotes_total Total number of quotes served
# TYPE camp_pricing_quotes_total counter
camp_pricing_quotes_total{clamped="false"} 1
camp_pricing_quotes_total{clamped="true"} 2
# HELP camp_pricing_reservations_total Total number of reservation attempts by outcome
# TYPE camp_pricing_reservations_total counter
camp_pricing_reservations_total{outcome="capacity_exceeded"} 1
camp_pricing_reservations_total{outcome="reserved"} 1
# HELP camp_pricing_ledger_conflict_retries_total Total number of ledger writes retried after a version conflict
# TYPE camp_pricing_ledger_conflict_retries_total counter
camp_pricing_ledger_conflict_retries_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"camp_pricing_quotes_total",
		"camp_pricing_reservations_total",
		"camp_pricing_ledger_conflict_retries_total",
	))

	count, err := testutil.GatherAndCount(reg, "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
