package proto

import "github.com/go-mclib/gateway/internal/wire"

// Packet inventory for the V = 773 family, per the protocol's handshake,
// status, login, and configuration-entry phases. Field order matches
// declaration order, which is also wire order: Marshal/Unmarshal rely on
// that via reflection, so do not reorder fields casually.

// Intention is the sole Handshake → server packet (id 0x00). It carries
// the client's declared protocol version and its intended next state.
type Intention struct {
	ProtocolVersion wire.VarInt
	ServerAddress   wire.String
	ServerPort      wire.Uint16
	Intent          wire.VarInt
}

// StatusRequest is a unit Status → server packet (id 0x00).
type StatusRequest struct{}

// PingRequest is a Status → server packet (id 0x01).
type PingRequest struct {
	Timestamp wire.Int64
}

// StatusResponse is a Status → client packet (id 0x00) carrying a JSON
// status payload.
type StatusResponse struct {
	Payload wire.String
}

// PongResponse is a Status → client packet (id 0x01), echoing the
// timestamp from a PingRequest.
type PongResponse struct {
	Timestamp wire.Int64
}

// Hello is a Login → server packet (id 0x00): the client's claimed
// username and (offline-mode) UUID.
type Hello struct {
	Name wire.String
	UUID wire.UUID
}

// Key is a Login → server packet (id 0x01): the RSA-encrypted shared
// secret and verify token.
type Key struct {
	SharedSecret wire.PrefixedBytes
	VerifyToken  wire.PrefixedBytes
}

// CustomQueryAnswer is a Login → server packet (id 0x02).
type CustomQueryAnswer struct {
	MessageID wire.VarInt
	Data      wire.Optional[wire.Bytes]
}

// LoginAcknowledged is a unit Login → server packet (id 0x03): the
// client's signal to proceed to Configuration.
type LoginAcknowledged struct{}

// CookieResponse is a Login → server packet (id 0x04).
type CookieResponse struct {
	Key  wire.String
	Data wire.Optional[wire.Bytes]
}

// LoginDisconnect is a Login → client packet (id 0x00): a JSON-text
// disconnect reason sent before encryption is established.
type LoginDisconnect struct {
	Reason wire.String
}

// ServerHello is a Login → client packet (id 0x01): the RSA public key
// and verify token that begins the encryption handshake.
type ServerHello struct {
	ServerID           wire.String
	PublicKey          wire.PrefixedBytes
	VerifyToken        wire.FixedArray[wire.Uint8] `mc:"length:32"`
	ShouldAuthenticate wire.Boolean
}

// ProfileProperty is one entry of a GameProfile's property list (e.g. the
// "textures" skin property).
type ProfileProperty struct {
	Name      wire.String
	Value     wire.String
	Signature wire.Optional[wire.String]
}

// ToBytes encodes the property field by field, so a wire.Vector of
// properties can encode its elements.
func (p ProfileProperty) ToBytes() ([]byte, error) { return Marshal(p) }

// FromBytes decodes the property field by field, so a wire.Vector of
// properties can decode its elements.
func (p *ProfileProperty) FromBytes(data []byte) (int, error) { return Unmarshal(data, p) }

// GameProfile identifies the player the gateway is about to hand off to
// Configuration.
type GameProfile struct {
	UUID       wire.UUID
	Username   wire.String
	Properties wire.Vector[ProfileProperty]
}

// LoginFinished is a Login → client packet (id 0x02): completes the
// login handshake with the negotiated profile.
type LoginFinished struct {
	Profile GameProfile
}

// LoginCompression is a Login → client packet (id 0x03): announces the
// compression threshold all subsequent frames must honor.
type LoginCompression struct {
	Threshold wire.VarInt
}

// CustomQuery is a Login → client packet (id 0x04): a server-specific
// plugin query the gateway does not itself originate but the schema
// still needs to express for completeness.
type CustomQuery struct {
	MessageID wire.VarInt
	Channel   wire.String
	Data      wire.Bytes
}

// CookieRequest is a Login → client packet (id 0x05).
type CookieRequest struct {
	Key wire.String
}
