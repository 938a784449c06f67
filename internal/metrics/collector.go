// Package metrics exposes the gateway's Prometheus instrumentation:
// connection gauges and packet/error counters observed by the
// connection driver and listener.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "mcgateway"
	subsystem = "conn"
)

// Label names used across gateway metrics.
const (
	labelState = "state"
	labelKind  = "kind"
)

// Collector holds all gateway Prometheus metrics.
type Collector struct {
	// ConnectionsActive tracks the number of currently open connections.
	ConnectionsActive prometheus.Gauge

	// ConnectionsTotal counts connections accepted since startup.
	ConnectionsTotal prometheus.Counter

	// PacketsReceived counts decoded inbound packets, labeled by the
	// ProtocolState they were dispatched in.
	PacketsReceived *prometheus.CounterVec

	// PacketsSent counts encoded outbound packets, labeled by the
	// ProtocolState they were sent in.
	PacketsSent *prometheus.CounterVec

	// ConnectionErrors counts connection teardowns caused by an error,
	// labeled by a coarse error kind (e.g. "dispatch", "codec", "io").
	ConnectionErrors *prometheus.CounterVec

	// LoginVerifyTokenMismatches counts Login Key exchanges whose
	// decrypted verify token did not match the one issued in
	// ServerHello (spec.md §4.8's non-terminal disconnect path).
	LoginVerifyTokenMismatches prometheus.Counter
}

// NewCollector creates a Collector with all gateway metrics registered
// against reg. If reg is nil, prometheus.DefaultRegisterer is used.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := newMetrics()

	reg.MustRegister(
		c.ConnectionsActive,
		c.ConnectionsTotal,
		c.PacketsReceived,
		c.PacketsSent,
		c.ConnectionErrors,
		c.LoginVerifyTokenMismatches,
	)

	return c
}

func newMetrics() *Collector {
	return &Collector{
		ConnectionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "active",
			Help:      "Number of currently open connections.",
		}),
		ConnectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "accepted_total",
			Help:      "Total connections accepted since startup.",
		}),
		PacketsReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "packets_received_total",
			Help:      "Total decoded inbound packets, by protocol state.",
		}, []string{labelState}),
		PacketsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "packets_sent_total",
			Help:      "Total encoded outbound packets, by protocol state.",
		}, []string{labelState}),
		ConnectionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "errors_total",
			Help:      "Connection teardowns caused by an error, by error kind.",
		}, []string{labelKind}),
		LoginVerifyTokenMismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "login_verify_token_mismatches_total",
			Help:      "Login Key exchanges whose verify token did not match.",
		}),
	}
}
