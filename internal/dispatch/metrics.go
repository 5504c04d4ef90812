package dispatch

import (
	"errors"
	"soilgate/internal/types"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.MustRegister(upstreamCallsCounter)
	prometheus.MustRegister(readingsStoredCounter)
	prometheus.MustRegister(voiceIntentsCounter)
}

var upstreamCallsCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "soilgate_upstream_calls_total",
		Help: "Total number of calls made to the sensor and voice services",
	},
	[]string{"peer", "operation", "outcome"},
)

var readingsStoredCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "soilgate_readings_stored_total",
		Help: "Total number of moisture readings stored",
	},
)

var voiceIntentsCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "soilgate_voice_intents_total",
		Help: "Total number of voice transcripts by resolved intent",
	},
	[]string{"intent"},
)

func recordUpstreamCall(peer, operation string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, types.ErrorUpstreamUnavailable):
		outcome = "unavailable"
	default:
		outcome = "error"
	}
	upstreamCallsCounter.WithLabelValues(peer, operation, outcome).Inc()
}
