package metrics

import "github.com/go-mclib/gateway/internal/proto"

// The methods below give Collector the shape of gateway.MetricsReporter
// (matched structurally — internal/metrics does not import
// internal/gateway to avoid a dependency cycle, since gateway wires a
// Collector in by interface at construction time).

func (c *Collector) ConnectionOpened() {
	c.ConnectionsActive.Inc()
	c.ConnectionsTotal.Inc()
}

func (c *Collector) ConnectionClosed() {
	c.ConnectionsActive.Dec()
}

func (c *Collector) PacketReceived(state proto.State) {
	c.PacketsReceived.WithLabelValues(state.String()).Inc()
}

func (c *Collector) PacketSent(state proto.State) {
	c.PacketsSent.WithLabelValues(state.String()).Inc()
}

func (c *Collector) ConnectionError(kind string) {
	c.ConnectionErrors.WithLabelValues(kind).Inc()
}

func (c *Collector) VerifyTokenMismatch() {
	c.LoginVerifyTokenMismatches.Inc()
}
