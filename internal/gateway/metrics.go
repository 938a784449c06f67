package gateway

import "github.com/go-mclib/gateway/internal/proto"

// MetricsReporter receives the events a Driver and Listener observe over
// a connection's lifetime. Optional: Listener and Driver use noopMetrics
// when none is configured, so metrics wiring can be introduced without
// touching the hot path's call sites.
type MetricsReporter interface {
	ConnectionOpened()
	ConnectionClosed()
	PacketReceived(state proto.State)
	PacketSent(state proto.State)
	ConnectionError(kind string)
	VerifyTokenMismatch()
}

type noopMetrics struct{}

func (noopMetrics) ConnectionOpened()          {}
func (noopMetrics) ConnectionClosed()          {}
func (noopMetrics) PacketReceived(proto.State) {}
func (noopMetrics) PacketSent(proto.State)     {}
func (noopMetrics) ConnectionError(string)     {}
func (noopMetrics) VerifyTokenMismatch()       {}
