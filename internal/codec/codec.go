// Package codec composes the cipher, frame, and compression layers into
// a single bidirectional packet codec over one connection's byte stream.
package codec

import (
	"fmt"

	"github.com/go-mclib/gateway/internal/compress"
	"github.com/go-mclib/gateway/internal/frame"
	"github.com/go-mclib/gateway/internal/mccrypto"
	"github.com/go-mclib/gateway/internal/proto"
	"github.com/go-mclib/gateway/internal/wire"
)

// Codec holds one connection's independent inbound and outbound state:
// one cipher session with separate inbound and outbound streams (nil
// until encryption is enabled), one shared
// compression threshold, and one frame assembly buffer. Not safe for
// concurrent use — a connection's driver is the sole owner.
type Codec struct {
	session      *mccrypto.Session
	threshold    compress.Threshold
	frameDecoder *frame.Decoder

	// pending holds bytes fed since the last Next() drained them into
	// frameDecoder. cipherCursor counts how many leading bytes of
	// pending have already passed through the decrypt stream, so a byte
	// already decrypted is never decrypted again even if Feed is called
	// several times before Next runs. Every Next() call flushes pending
	// into frameDecoder's own retry buffer and resets the cursor to
	// zero — frameDecoder, not Codec, is responsible for holding bytes
	// across an incomplete frame, so the cursor never needs to shrink
	// mid-buffer the way a single shared cipher+frame buffer would.
	pending      []byte
	cipherCursor int
}

// New returns a Codec with compression disabled and no encryption.
func New() *Codec {
	return &Codec{
		threshold:    compress.Threshold(-1),
		frameDecoder: frame.NewDecoder(),
	}
}

// EnableEncryption installs CFB-8 sessions derived from sharedSecret.
// From this call onward, Feed treats all newly-arrived bytes as
// ciphertext and Encode encrypts its output.
func (c *Codec) EnableEncryption(sharedSecret []byte) error {
	session, err := mccrypto.NewSession(sharedSecret)
	if err != nil {
		return fmt.Errorf("codec: enable encryption: %w", err)
	}
	c.session = session
	return nil
}

// EnableCompression sets the threshold applied to subsequent frames in
// both directions.
func (c *Codec) EnableCompression(threshold int32) {
	c.threshold = compress.Threshold(threshold)
}

// Feed appends newly-arrived bytes from the socket to the codec's
// pending buffer, decrypting the suffix that has not yet been decrypted.
// Decryption runs over each byte exactly once even across repeated Feed
// calls, per the cipher's self-synchronizing, order-sensitive nature.
func (c *Codec) Feed(data []byte) {
	c.pending = append(c.pending, data...)
	if c.session == nil {
		return
	}
	undecrypted := c.pending[c.cipherCursor:]
	c.session.DecryptInto(undecrypted, undecrypted)
	c.cipherCursor = len(c.pending)
}

// Next extracts the next complete, decompressed RawPacket from the
// codec's buffered bytes, if one is available. ok=false with a nil error
// means more bytes are needed.
func (c *Codec) Next() (pkt proto.RawPacket, ok bool, err error) {
	c.frameDecoder.Feed(c.pending)
	c.pending = c.pending[:0]
	// cipherCursor no longer refers to any byte still sitting in
	// pending, which is now empty; the frame decoder owns everything
	// that was fed to it, already fully decrypted.
	c.cipherCursor = 0

	body, ok, err := c.frameDecoder.Next()
	if err != nil || !ok {
		return proto.RawPacket{}, false, err
	}

	raw, err := compress.Decode(c.threshold, body)
	if err != nil {
		return proto.RawPacket{}, false, fmt.Errorf("codec: decompress: %w", err)
	}

	var id wire.VarInt
	n, err := id.FromBytes(raw)
	if err != nil {
		return proto.RawPacket{}, false, fmt.Errorf("codec: read packet id: %w", err)
	}
	return proto.RawPacket{ID: id, Data: raw[n:]}, true, nil
}

// Encode serializes pkt's id and data into a framed, compressed (if
// enabled), encrypted byte sequence ready to write to the socket.
func (c *Codec) Encode(pkt proto.RawPacket) ([]byte, error) {
	idBytes, err := pkt.ID.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("codec: encode packet id: %w", err)
	}
	body := append(idBytes, pkt.Data...)

	compressed, err := compress.Encode(c.threshold, body)
	if err != nil {
		return nil, fmt.Errorf("codec: compress: %w", err)
	}

	framed, err := frame.Encode(compressed)
	if err != nil {
		return nil, fmt.Errorf("codec: frame: %w", err)
	}

	if c.session == nil {
		return framed, nil
	}
	out := make([]byte, len(framed))
	c.session.EncryptInto(out, framed)
	return out, nil
}
