package dispatch

import (
	"fmt"

	"github.com/go-mclib/gateway/internal/proto"
)

// Table resolves (state, version) to a fresh Dispatcher. It is the
// "framework permits per-version overrides" extension point: a new
// protocol version needing different behavior gets its own row instead
// of a change to an existing dispatcher.
type Table struct {
	CompressionThreshold int32
	Description          Description
}

// MinVersion is the lowest protocol version this table's rows serve.
// Per spec.md's open question on version gating, the table is an
// open-ended "version >= MinVersion" row rather than a closed range, so
// newer client versions are served by the same V=773 packet family
// until a more specific override is registered.
const MinVersion = 773

// Lookup returns the dispatcher for a connection currently in state at
// protocol version, or an error if no dispatcher serves that
// combination — a fatal "no dispatcher found" condition per spec.md
// §4.8.
func (t Table) Lookup(state proto.State, version int32) (Dispatcher, error) {
	switch state {
	case proto.StateHandshake:
		return HandshakeDispatcher{}, nil
	case proto.StateStatus:
		if version < MinVersion {
			return nil, fmt.Errorf("dispatch: no dispatcher for state=%s version=%d", state, version)
		}
		return StatusDispatcher{Version: version, Description: t.Description}, nil
	case proto.StateLogin:
		if version < MinVersion {
			return nil, fmt.Errorf("dispatch: no dispatcher for state=%s version=%d", state, version)
		}
		return NewLoginDispatcher(version, t.CompressionThreshold)
	default:
		return nil, fmt.Errorf("dispatch: no dispatcher for state=%s version=%d", state, version)
	}
}
