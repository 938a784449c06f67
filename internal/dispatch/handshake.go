package dispatch

import (
	"errors"
	"fmt"

	"github.com/go-mclib/gateway/internal/proto"
)

// ErrUnimplementedTransfer is returned when a client declares the
// Transfer intent. The reference implementation leaves this path
// unimplemented; until an authoritative target-server handoff behavior
// is specified, the gateway treats it as fatal rather than guessing.
var ErrUnimplementedTransfer = errors.New("dispatch: transfer intent not implemented")

// HandshakeDispatcher is the sole dispatcher for proto.StateHandshake.
// It is stateless: a connection's entire handshake is one Intention
// packet.
type HandshakeDispatcher struct{}

func (HandshakeDispatcher) Dispatch(raw proto.RawPacket) ([]Action, error) {
	if raw.ID != 0x00 {
		return []Action{}, nil
	}

	var intention proto.Intention
	if _, err := proto.Unmarshal(raw.Data, &intention); err != nil {
		return nil, fmt.Errorf("dispatch: unmarshal Intention: %w", err)
	}

	var nextState proto.State
	switch proto.Intent(intention.Intent) {
	case proto.IntentStatus:
		nextState = proto.StateStatus
	case proto.IntentLogin:
		nextState = proto.StateLogin
	case proto.IntentTransfer:
		return nil, ErrUnimplementedTransfer
	default:
		return nil, fmt.Errorf("dispatch: unrecognized intent %d", intention.Intent)
	}

	return []Action{
		ProtocolVersion{Version: int32(intention.ProtocolVersion)},
		ProtocolState{State: nextState},
	}, nil
}
