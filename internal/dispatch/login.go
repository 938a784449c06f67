package dispatch

import (
	"fmt"

	"github.com/go-mclib/gateway/internal/mccrypto"
	"github.com/go-mclib/gateway/internal/proto"
	"github.com/go-mclib/gateway/internal/wire"
)

// DefaultCompressionThreshold is the default value the gateway announces
// via LoginCompression once a login completes. The value actually used is
// the LoginDispatcher's CompressionThreshold field, which Table fills from
// its own CompressionThreshold (internal/config supplies it in the CLI).
const DefaultCompressionThreshold = 256

// LoginDispatcher is stateful across the Login state's packet sequence:
// Hello, then Key, then LoginAcknowledged. One instance is constructed
// per connection (NewLoginDispatcher), generating a fresh RSA keypair
// and verify token so no two concurrent logins share key material.
type LoginDispatcher struct {
	Version              int32
	CompressionThreshold int32

	keyPair     *mccrypto.KeyPair
	verifyToken []byte

	name string
	uuid wire.UUID
}

// NewLoginDispatcher generates a fresh 1024-bit RSA keypair and 32-byte
// verify token for one connection's login handshake.
func NewLoginDispatcher(version int32, compressionThreshold int32) (*LoginDispatcher, error) {
	keyPair, err := mccrypto.GenerateKeyPair()
	if err != nil {
		return nil, fmt.Errorf("dispatch: generate login keypair: %w", err)
	}
	token, err := mccrypto.GenerateVerifyToken()
	if err != nil {
		return nil, fmt.Errorf("dispatch: generate verify token: %w", err)
	}
	return &LoginDispatcher{
		Version:              version,
		CompressionThreshold: compressionThreshold,
		keyPair:              keyPair,
		verifyToken:          token,
	}, nil
}

func (d *LoginDispatcher) Dispatch(raw proto.RawPacket) ([]Action, error) {
	switch raw.ID {
	case 0x00:
		return d.handleHello(raw)
	case 0x01:
		return d.handleKey(raw)
	case 0x03:
		return []Action{ProtocolState{State: proto.StateConfiguration}}, nil
	default:
		return []Action{}, nil
	}
}

func (d *LoginDispatcher) handleHello(raw proto.RawPacket) ([]Action, error) {
	var hello proto.Hello
	if _, err := proto.Unmarshal(raw.Data, &hello); err != nil {
		return nil, fmt.Errorf("dispatch: unmarshal Hello: %w", err)
	}
	d.name = string(hello.Name)
	d.uuid = hello.UUID

	verifyTokenField := wire.FixedArray[wire.Uint8]{N: len(d.verifyToken)}
	verifyTokenField.Items = make([]wire.Uint8, len(d.verifyToken))
	for i, b := range d.verifyToken {
		verifyTokenField.Items[i] = wire.Uint8(b)
	}

	pkt, err := encodePacket(proto.StateLogin, d.Version, proto.ServerHello{
		ServerID:           "",
		PublicKey:          wire.PrefixedBytes(d.keyPair.PublicDER),
		VerifyToken:        verifyTokenField,
		ShouldAuthenticate: true,
	})
	if err != nil {
		return nil, fmt.Errorf("dispatch: encode ServerHello: %w", err)
	}
	return []Action{SendPacket{Packet: pkt}}, nil
}

func (d *LoginDispatcher) handleKey(raw proto.RawPacket) ([]Action, error) {
	var key proto.Key
	if _, err := proto.Unmarshal(raw.Data, &key); err != nil {
		return nil, fmt.Errorf("dispatch: unmarshal Key: %w", err)
	}

	sharedSecret, err := d.keyPair.Decrypt(key.SharedSecret)
	if err != nil {
		return nil, fmt.Errorf("dispatch: decrypt shared secret: %w", err)
	}
	receivedToken, err := d.keyPair.Decrypt(key.VerifyToken)
	if err != nil {
		return nil, fmt.Errorf("dispatch: decrypt verify token: %w", err)
	}

	// Open Question (spec.md §9): on mismatch, the reference sends a
	// disconnect but does not itself sever the connection — the driver
	// keeps reading. This preserves that behavior literally rather than
	// introducing early termination the reference does not specify.
	if !mccrypto.VerifyTokenMatches(d.verifyToken, receivedToken) {
		pkt, err := encodePacket(proto.StateLogin, d.Version, proto.LoginDisconnect{
			Reason: `{"text":"Unsecure connection."}`,
		})
		if err != nil {
			return nil, fmt.Errorf("dispatch: encode LoginDisconnect: %w", err)
		}
		return []Action{SendPacket{Packet: pkt}}, nil
	}

	if len(sharedSecret) != 16 {
		return nil, fmt.Errorf("dispatch: shared secret is %d bytes, want 16", len(sharedSecret))
	}

	compressionPkt, err := encodePacket(proto.StateLogin, d.Version, proto.LoginCompression{
		Threshold: wire.VarInt(d.CompressionThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("dispatch: encode LoginCompression: %w", err)
	}

	finishedPkt, err := encodePacket(proto.StateLogin, d.Version, proto.LoginFinished{
		Profile: proto.GameProfile{
			UUID:       d.uuid,
			Username:   wire.String(d.name),
			Properties: nil,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("dispatch: encode LoginFinished: %w", err)
	}

	// Ordering is load-bearing: EnableEncryption must land before any
	// action that transmits bytes meant to be encrypted under the new
	// key, and the reference encrypts its own LoginCompression packet —
	// so EnableCompression must not precede SendPacket(LoginCompression).
	return []Action{
		EnableEncryption{SharedSecret: sharedSecret},
		SendPacket{Packet: compressionPkt},
		EnableCompression{Threshold: d.CompressionThreshold},
		SendPacket{Packet: finishedPkt},
	}, nil
}
