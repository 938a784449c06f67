// Package frame splits a decrypted byte stream into length-prefixed frame
// bodies, buffering partial reads until a complete frame is available.
package frame

import (
	"errors"
	"fmt"

	"github.com/go-mclib/gateway/internal/wire"
)

// ErrFrameTooLarge is returned when a declared frame length is larger than
// Decoder will ever buffer, guarding against a malicious or corrupt peer
// claiming a multi-gigabyte frame.
var ErrFrameTooLarge = errors.New("frame: declared length exceeds maximum")

// MaxFrameLength bounds the largest frame body a Decoder accepts. The
// reference protocol's largest legitimate packet is well under 2 MiB; a
// multiple of that leaves headroom without letting a hostile peer force
// unbounded buffering.
const MaxFrameLength = 2 * 1024 * 1024

// Decoder accumulates bytes and emits complete frame bodies as they
// become available. It is not safe for concurrent use; each connection
// owns exactly one Decoder for its inbound direction.
type Decoder struct {
	buf            []byte
	pendingLength  int
	hasPendingLen  bool
}

// NewDecoder returns an empty Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends newly-arrived (already decrypted) bytes to the internal
// buffer. It never fails: parsing happens lazily in Next.
func (d *Decoder) Feed(data []byte) {
	d.buf = append(d.buf, data...)
}

// Next extracts the next complete frame body from the buffer, if one is
// available. It returns ok=false (with a nil error) when more bytes are
// needed; callers should Feed more data and call Next again. A non-nil
// error is terminal: the caller should tear down the connection.
//
// Next may be called repeatedly after a single Feed to drain every frame
// that has become complete.
func (d *Decoder) Next() (frame []byte, ok bool, err error) {
	if !d.hasPendingLen {
		var length wire.VarInt
		n, err := length.FromBytes(d.buf)
		if err != nil {
			if errors.Is(err, wire.ErrUnexpectedEOF) {
				return nil, false, nil
			}
			return nil, false, fmt.Errorf("frame: read length prefix: %w", err)
		}
		if length < 0 {
			return nil, false, fmt.Errorf("frame: negative frame length %d", length)
		}
		if int(length) > MaxFrameLength {
			return nil, false, ErrFrameTooLarge
		}
		// Consume the length prefix now; it is never part of the frame
		// body or re-read on a subsequent call.
		d.buf = d.buf[n:]
		d.pendingLength = int(length)
		d.hasPendingLen = true
	}

	if len(d.buf) < d.pendingLength {
		return nil, false, nil
	}

	body := make([]byte, d.pendingLength)
	copy(body, d.buf[:d.pendingLength])
	d.buf = d.buf[d.pendingLength:]
	d.hasPendingLen = false
	d.pendingLength = 0
	return body, true, nil
}

// Buffered reports how many undecoded bytes the decoder currently holds.
func (d *Decoder) Buffered() int { return len(d.buf) }

// Encode prepends a VarInt length prefix to body, producing one complete
// frame ready for encryption and transmission.
func Encode(body []byte) ([]byte, error) {
	prefix, err := wire.VarInt(len(body)).ToBytes()
	if err != nil {
		return nil, err
	}
	return append(prefix, body...), nil
}
