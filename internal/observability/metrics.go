package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Connection states reported through mullvad_rpc_connection_state.
var connectionStates = []string{"disconnected", "connecting", "connected", "closed"}

// Metrics holds the Prometheus registry and the daemon client meters.
type Metrics struct {
	Registry            *prometheus.Registry
	ConnectionState     *prometheus.GaugeVec
	ReconnectAttempts   prometheus.Counter
	CallDuration        *prometheus.HistogramVec
	CallsTotal          *prometheus.CounterVec
	ActiveSubscriptions *prometheus.GaugeVec
	EventsTotal         *prometheus.CounterVec
	DecodeErrors        *prometheus.CounterVec
}

// NewMetrics creates a custom Prometheus registry with the client metrics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	connState := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "mullvad_rpc_connection_state",
		Help: "Current daemon connection state (1 for the active state).",
	}, []string{"state"})

	reconnects := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mullvad_rpc_reconnect_attempts_total",
		Help: "Total number of connect attempts made after a failure or disconnect.",
	})

	callDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mullvad_rpc_call_duration_seconds",
		Help:    "Duration of daemon calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "code"})

	callsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mullvad_rpc_calls_total",
		Help: "Total number of daemon calls.",
	}, []string{"method", "code"})

	activeSubs := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "mullvad_rpc_active_subscriptions",
		Help: "Number of open event subscriptions.",
	}, []string{"feed"})

	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mullvad_rpc_events_total",
		Help: "Total number of events delivered to listeners.",
	}, []string{"feed", "kind"})

	decodeErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mullvad_rpc_decode_errors_total",
		Help: "Total number of stream messages that failed to decode.",
	}, []string{"feed"})

	reg.MustRegister(connState, reconnects, callDuration, callsTotal, activeSubs, events, decodeErrors)

	return &Metrics{
		Registry:            reg,
		ConnectionState:     connState,
		ReconnectAttempts:   reconnects,
		CallDuration:        callDuration,
		CallsTotal:          callsTotal,
		ActiveSubscriptions: activeSubs,
		EventsTotal:         events,
		DecodeErrors:        decodeErrors,
	}
}

// SetConnectionState marks state as the active connection state.
func (m *Metrics) SetConnectionState(state string) {
	if m == nil {
		return
	}
	for _, s := range connectionStates {
		v := 0.0
		if s == state {
			v = 1
		}
		m.ConnectionState.WithLabelValues(s).Set(v)
	}
}
