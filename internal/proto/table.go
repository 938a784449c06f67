package proto

import (
	"fmt"
	"reflect"
)

// Direction distinguishes server-bound from client-bound packets, since
// the same (state, id) pair names different types depending on which way
// the packet travels.
type Direction int

const (
	Serverbound Direction = iota
	Clientbound
)

// versionRange is inclusive-lower, exclusive-upper: a row applies when
// Min <= version < Max (Max == 0 means "no upper bound").
type versionRange struct {
	Min, Max int32
}

func (r versionRange) contains(version int32) bool {
	if version < r.Min {
		return false
	}
	return r.Max == 0 || version < r.Max
}

// Packet ids are plain int32 in the table regardless of how they travel
// on the wire (they are VarInt-encoded only as part of RawPacket).
type varIntAlias = int32

var table = []struct {
	state     State
	direction Direction
	id        varIntAlias
	versions  versionRange
	typ       reflect.Type
}{
	{StateHandshake, Serverbound, 0x00, versionRange{773, 0}, reflect.TypeOf(Intention{})},

	{StateStatus, Serverbound, 0x00, versionRange{773, 0}, reflect.TypeOf(StatusRequest{})},
	{StateStatus, Serverbound, 0x01, versionRange{773, 0}, reflect.TypeOf(PingRequest{})},
	{StateStatus, Clientbound, 0x00, versionRange{773, 0}, reflect.TypeOf(StatusResponse{})},
	{StateStatus, Clientbound, 0x01, versionRange{773, 0}, reflect.TypeOf(PongResponse{})},

	{StateLogin, Serverbound, 0x00, versionRange{773, 0}, reflect.TypeOf(Hello{})},
	{StateLogin, Serverbound, 0x01, versionRange{773, 0}, reflect.TypeOf(Key{})},
	{StateLogin, Serverbound, 0x02, versionRange{773, 0}, reflect.TypeOf(CustomQueryAnswer{})},
	{StateLogin, Serverbound, 0x03, versionRange{773, 0}, reflect.TypeOf(LoginAcknowledged{})},
	{StateLogin, Serverbound, 0x04, versionRange{773, 0}, reflect.TypeOf(CookieResponse{})},

	{StateLogin, Clientbound, 0x00, versionRange{773, 0}, reflect.TypeOf(LoginDisconnect{})},
	{StateLogin, Clientbound, 0x01, versionRange{773, 0}, reflect.TypeOf(ServerHello{})},
	{StateLogin, Clientbound, 0x02, versionRange{773, 0}, reflect.TypeOf(LoginFinished{})},
	{StateLogin, Clientbound, 0x03, versionRange{773, 0}, reflect.TypeOf(LoginCompression{})},
	{StateLogin, Clientbound, 0x04, versionRange{773, 0}, reflect.TypeOf(CustomQuery{})},
	{StateLogin, Clientbound, 0x05, versionRange{773, 0}, reflect.TypeOf(CookieRequest{})},
}

// PacketIDOf reports the wire packet id a given packet type is registered
// under for (state, direction, version). It is used by encoders, which
// start from a Go value and need the id to prepend.
func PacketIDOf(state State, direction Direction, version int32, packet any) (int32, error) {
	typ := reflect.TypeOf(packet)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	for _, e := range table {
		if e.state == state && e.direction == direction && e.versions.contains(version) && e.typ == typ {
			return e.id, nil
		}
	}
	return 0, fmt.Errorf("proto: %s has no registered packet id in state %s for version %d", typ, state, version)
}

// NewPacket allocates a zero-valued instance of the packet type
// registered for (state, direction, version, id), or ErrUnknownPacket if
// none matches. Callers type-assert the result to the concrete type they
// expect, or use Unmarshal directly against the returned pointer.
func NewPacket(state State, direction Direction, version int32, id int32) (any, error) {
	for _, e := range table {
		if e.state == state && e.direction == direction && e.versions.contains(version) && e.id == id {
			return reflect.New(e.typ).Interface(), nil
		}
	}
	return nil, fmt.Errorf("%w: state=%s id=%#x version=%d", ErrUnknownPacket, state, id, version)
}
