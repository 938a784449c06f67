// Package gateway composes the codec and dispatch layers into a
// per-connection driver loop and a TCP listener that spawns one driver
// per accepted connection.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/go-mclib/gateway/internal/codec"
	"github.com/go-mclib/gateway/internal/dispatch"
	"github.com/go-mclib/gateway/internal/proto"
)

// readBufferSize is the chunk size read from the socket on each pass
// through the driver loop.
const readBufferSize = 4096

// Driver owns one connection end to end: it reads raw bytes, hands
// decoded RawPackets to the active dispatcher, and realizes the
// dispatcher's emitted Actions against its own codec or the socket.
// Not safe for concurrent use; one Driver runs on one goroutine for the
// lifetime of one connection, matching the single-threaded-per-session
// scheduling model.
type Driver struct {
	conn    net.Conn
	codec   *codec.Codec
	table   dispatch.Table
	logger  *slog.Logger
	metrics MetricsReporter

	state      proto.State
	version    int32
	dispatcher dispatch.Dispatcher
}

// DriverOption configures optional Driver parameters.
type DriverOption func(*Driver)

// WithDriverMetrics attaches a MetricsReporter to the driver. If mr is
// nil, the no-op reporter is kept.
func WithDriverMetrics(mr MetricsReporter) DriverOption {
	return func(d *Driver) {
		if mr != nil {
			d.metrics = mr
		}
	}
}

// NewDriver wraps conn in a fresh Codec and starts the connection in
// StateHandshake, version 0, per spec.md §4.9.
func NewDriver(conn net.Conn, table dispatch.Table, logger *slog.Logger, opts ...DriverOption) *Driver {
	d := &Driver{
		conn:       conn,
		codec:      codec.New(),
		table:      table,
		logger:     logger,
		metrics:    noopMetrics{},
		state:      proto.StateHandshake,
		version:    0,
		dispatcher: dispatch.HandshakeDispatcher{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run drives the connection until ctx is cancelled, the client closes
// the socket, or an unrecoverable error occurs. It always closes the
// underlying connection before returning.
//
// There is no suspension within a single dispatch call — only the three
// points named in spec.md §5: reading the next chunk of bytes, writing a
// packet, and observing ctx. A read in progress cannot be interrupted by
// ctx.Done() on a plain net.Conn, so Run closes the connection as soon
// as cancellation fires, which unblocks the in-flight Read with an
// error the loop treats as graceful shutdown.
func (d *Driver) Run(ctx context.Context) error {
	defer d.conn.Close()
	d.metrics.ConnectionOpened()
	defer d.metrics.ConnectionClosed()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			d.conn.Close()
		case <-done:
		}
	}()

	buf := make([]byte, readBufferSize)
	for {
		n, err := d.conn.Read(buf)
		if n > 0 {
			d.codec.Feed(buf[:n])
			if err := d.drainPackets(); err != nil {
				return err
			}
		}
		if err != nil {
			// ctx.Err() != nil means this read error is the direct
			// result of the cancellation goroutine closing the
			// connection, not a genuine transport failure — treat it as
			// graceful shutdown regardless of the concrete error value
			// a given net.Conn implementation returns on Close.
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				return nil
			}
			d.metrics.ConnectionError("io")
			return fmt.Errorf("gateway: read: %w", err)
		}
	}
}

// drainPackets pulls every complete RawPacket currently buffered in the
// codec and processes each in wire order before returning.
func (d *Driver) drainPackets() error {
	for {
		raw, ok, err := d.codec.Next()
		if err != nil {
			return fmt.Errorf("gateway: decode: %w", err)
		}
		if !ok {
			return nil
		}
		if err := d.process(raw); err != nil {
			return err
		}
	}
}

// process dispatches one decoded packet and realizes every Action it
// produces, in emission order, before pulling the next packet.
func (d *Driver) process(raw proto.RawPacket) error {
	d.metrics.PacketReceived(d.state)
	actions, err := d.dispatcher.Dispatch(raw)
	if err != nil {
		d.metrics.ConnectionError("dispatch")
		return fmt.Errorf("gateway: dispatch: %w", err)
	}

	if d.state == proto.StateLogin {
		d.reportVerifyTokenMismatch(actions)
	}

	stateChanged := false
	for _, action := range actions {
		changed, err := d.apply(action)
		if err != nil {
			return err
		}
		stateChanged = stateChanged || changed
	}

	if stateChanged {
		next, err := d.table.Lookup(d.state, d.version)
		if err != nil {
			return fmt.Errorf("gateway: %w", err)
		}
		d.dispatcher = next
	}
	return nil
}

// reportVerifyTokenMismatch recognizes the one-action "LoginDisconnect
// only" shape handleKey emits on a verify-token mismatch (login.go's
// non-terminal disconnect path) and records it, without the dispatch
// package itself needing any metrics dependency.
func (d *Driver) reportVerifyTokenMismatch(actions []dispatch.Action) {
	if len(actions) != 1 {
		return
	}
	send, ok := actions[0].(dispatch.SendPacket)
	if !ok {
		return
	}
	disconnectID, err := proto.PacketIDOf(proto.StateLogin, proto.Clientbound, d.version, &proto.LoginDisconnect{})
	if err != nil {
		return
	}
	if int32(send.Packet.ID) == disconnectID {
		d.metrics.VerifyTokenMismatch()
	}
}

// apply realizes one Action against the codec or socket, reporting
// whether it changed the (state, version) pair the active dispatcher is
// selected by.
func (d *Driver) apply(action dispatch.Action) (bool, error) {
	switch a := action.(type) {
	case dispatch.EnableEncryption:
		if err := d.codec.EnableEncryption(a.SharedSecret); err != nil {
			return false, fmt.Errorf("gateway: apply EnableEncryption: %w", err)
		}
		return false, nil

	case dispatch.EnableCompression:
		d.codec.EnableCompression(a.Threshold)
		return false, nil

	case dispatch.ProtocolVersion:
		d.version = a.Version
		return true, nil

	case dispatch.ProtocolState:
		d.state = a.State
		return true, nil

	case dispatch.SendPacket:
		framed, err := d.codec.Encode(a.Packet)
		if err != nil {
			return false, fmt.Errorf("gateway: encode outbound packet: %w", err)
		}
		if _, err := d.conn.Write(framed); err != nil {
			return false, fmt.Errorf("gateway: write: %w", err)
		}
		d.metrics.PacketSent(d.state)
		return false, nil

	default:
		return false, fmt.Errorf("gateway: unrecognized action %T", action)
	}
}
