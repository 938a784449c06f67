package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/go-mclib/gateway/internal/dispatch"
)

// Listener binds one TCP address and spawns one Driver per accepted
// connection, tracking every in-flight driver so Run can wait for
// all of them to finish (spec.md §4.10).
type Listener struct {
	ln      net.Listener
	table   dispatch.Table
	logger  *slog.Logger
	metrics MetricsReporter

	wg sync.WaitGroup
}

// ListenerOption configures optional Listener parameters.
type ListenerOption func(*Listener)

// WithListenerMetrics attaches a MetricsReporter to the listener and
// every Driver it spawns. If mr is nil, the no-op reporter is kept.
func WithListenerMetrics(mr MetricsReporter) ListenerOption {
	return func(l *Listener) {
		if mr != nil {
			l.metrics = mr
		}
	}
}

// NewListener binds addr and returns a Listener ready to Run. table is
// shared read-only across every connection's driver — dispatch.Table
// itself carries no mutable state beyond the CompressionThreshold and
// Description fields, which the caller is expected not to mutate
// concurrently with Run.
func NewListener(addr string, table dispatch.Table, logger *slog.Logger, opts ...ListenerOption) (*Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("gateway: listen on %s: %w", addr, err)
	}
	l := &Listener{ln: ln, table: table, logger: logger, metrics: noopMetrics{}}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Addr returns the address the listener is bound to. Useful in tests
// that bind to ":0" and need the ephemeral port chosen by the OS.
func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// Run accepts connections until ctx is cancelled or the listener's
// socket is closed. Each accepted connection gets its own Driver
// goroutine. Run stops accepting and waits for every in-flight driver to
// return before it itself returns, per spec.md's listener cancellation
// semantics: no forced kill, every driver observes cancellation at its
// own next suspension point.
func (l *Listener) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			l.ln.Close()
		case <-done:
		}
	}()

	var acceptErr error
	for {
		conn, err := l.ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				acceptErr = nil
			} else {
				acceptErr = fmt.Errorf("gateway: accept: %w", err)
			}
			break
		}
		l.spawn(ctx, conn)
	}

	l.wg.Wait()
	return acceptErr
}

// spawn starts one Driver goroutine for an accepted connection.
func (l *Listener) spawn(ctx context.Context, conn net.Conn) {
	remote := conn.RemoteAddr()
	driver := NewDriver(conn, l.table, l.logger, WithDriverMetrics(l.metrics))

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		if err := driver.Run(ctx); err != nil {
			l.logger.Warn("connection closed with error",
				slog.String("remote", remote.String()),
				slog.String("error", err.Error()),
			)
			return
		}
		l.logger.Debug("connection closed", slog.String("remote", remote.String()))
	}()
}

// Close closes the listener's socket directly, without waiting for
// in-flight drivers. Run's own ctx-driven shutdown path is preferred;
// Close exists for callers that need to stop accepting without a
// context (e.g. test cleanup).
func (l *Listener) Close() error {
	return l.ln.Close()
}
