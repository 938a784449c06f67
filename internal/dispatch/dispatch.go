package dispatch

import (
	"fmt"

	"github.com/go-mclib/gateway/internal/proto"
	"github.com/go-mclib/gateway/internal/wire"
)

// Dispatcher decodes one RawPacket and returns the Actions it produces.
// Unrecognized packet ids are not an error: dispatchers silently ignore
// them and return an empty, non-nil Action slice, per the protocol's
// tolerance for forward-compatible unknown packets within a state.
type Dispatcher interface {
	Dispatch(raw proto.RawPacket) ([]Action, error)
}

// encodePacket marshals a typed outbound packet and looks up its wire id
// for (state, version), producing the RawPacket a SendPacket Action
// carries.
func encodePacket(state proto.State, version int32, packet any) (proto.RawPacket, error) {
	id, err := proto.PacketIDOf(state, proto.Clientbound, version, packet)
	if err != nil {
		return proto.RawPacket{}, err
	}
	data, err := proto.Marshal(packet)
	if err != nil {
		return proto.RawPacket{}, fmt.Errorf("dispatch: marshal %T: %w", packet, err)
	}
	return proto.RawPacket{ID: wire.VarInt(id), Data: data}, nil
}
