// Package dispatch implements the per-state dispatchers that turn decoded
// packets into declarative Actions, and the (state, version) table the
// connection driver uses to select a dispatcher.
package dispatch

import "github.com/go-mclib/gateway/internal/proto"

// Action is one declarative effect a dispatcher wants applied. Only the
// driver (internal/gateway.Driver) realizes an Action against the socket
// or codec; a dispatcher never touches either directly, which keeps
// dispatch a pure, suspension-free data transform.
type Action interface {
	isAction()
}

// EnableEncryption tells the driver to install CFB-8 sessions on its
// codec keyed by SharedSecret (which must be exactly 16 bytes).
type EnableEncryption struct {
	SharedSecret []byte
}

func (EnableEncryption) isAction() {}

// EnableCompression tells the driver to set its codec's compression
// threshold.
type EnableCompression struct {
	Threshold int32
}

func (EnableCompression) isAction() {}

// ProtocolState tells the driver the connection has moved to a new
// state; the driver must look up a new dispatcher before processing the
// next packet.
type ProtocolState struct {
	State proto.State
}

func (ProtocolState) isAction() {}

// ProtocolVersion tells the driver the client's declared protocol
// version, which (together with State) selects the active dispatcher.
type ProtocolVersion struct {
	Version int32
}

func (ProtocolVersion) isAction() {}

// SendPacket tells the driver to encode and transmit pkt. Actions from a
// single dispatch call are realized strictly in emission order, so a
// SendPacket following an EnableEncryption is encrypted under the new
// key, and one following an EnableCompression is framed under the new
// threshold.
type SendPacket struct {
	Packet proto.RawPacket
}

func (SendPacket) isAction() {}
