package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-mclib/gateway/internal/gateway"
	"github.com/go-mclib/gateway/internal/metrics"
	"github.com/go-mclib/gateway/internal/proto"
)

// TestCollectorSatisfiesMetricsReporter confirms Collector's method set
// matches gateway.MetricsReporter structurally, which is how the CLI
// wires a Collector into a Listener without internal/metrics importing
// internal/gateway.
func TestCollectorSatisfiesMetricsReporter(t *testing.T) {
	c := metrics.NewCollector(prometheus.NewRegistry())
	var _ gateway.MetricsReporter = c
}

func TestCollectorRecordsEvents(t *testing.T) {
	c := metrics.NewCollector(prometheus.NewRegistry())
	c.ConnectionOpened()
	c.PacketReceived(proto.StateStatus)
	c.PacketSent(proto.StateStatus)
	c.ConnectionError("io")
	c.VerifyTokenMismatch()
	c.ConnectionClosed()
}
