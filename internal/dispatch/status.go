package dispatch

import (
	"fmt"

	"github.com/go-mclib/gateway/internal/proto"
	"github.com/go-mclib/gateway/internal/wire"
)

// Description is a read-only snapshot interface for the status JSON the
// gateway advertises. Implementations must be cheap and race-free (e.g.
// an atomic pointer swap); the dispatcher calls it once per
// StatusRequest, on its hot path.
type Description interface {
	// StatusJSON returns the current status-response payload, already
	// serialized to the JSON the client expects as StatusResponse.Payload.
	StatusJSON() string
}

// StatusDispatcher serves the V >= 773 Status state: a status ping
// followed by an echo-timestamp ping/pong.
type StatusDispatcher struct {
	Version     int32
	Description Description
}

func (d StatusDispatcher) Dispatch(raw proto.RawPacket) ([]Action, error) {
	switch raw.ID {
	case 0x00:
		pkt, err := encodePacket(proto.StateStatus, d.Version, proto.StatusResponse{
			Payload: wire.String(d.Description.StatusJSON()),
		})
		if err != nil {
			return nil, fmt.Errorf("dispatch: encode StatusResponse: %w", err)
		}
		return []Action{SendPacket{Packet: pkt}}, nil

	case 0x01:
		var ping proto.PingRequest
		if _, err := proto.Unmarshal(raw.Data, &ping); err != nil {
			return nil, fmt.Errorf("dispatch: unmarshal PingRequest: %w", err)
		}
		pkt, err := encodePacket(proto.StateStatus, d.Version, proto.PongResponse{Timestamp: ping.Timestamp})
		if err != nil {
			return nil, fmt.Errorf("dispatch: encode PongResponse: %w", err)
		}
		return []Action{SendPacket{Packet: pkt}}, nil

	default:
		return []Action{}, nil
	}
}
