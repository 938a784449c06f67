// Package compress implements the threshold-based Zlib compression layer
// applied to frame bodies once a login has negotiated a compression
// threshold.
package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/go-mclib/gateway/internal/wire"
)

// Threshold controls whether an outbound packet body gets Zlib-compressed.
// A negative threshold means compression is disabled entirely (C6 is
// transparent: frame bodies are raw packets directly).
type Threshold int32

// Disabled reports whether this threshold value turns compression off.
func (t Threshold) Disabled() bool { return t < 0 }

// Encode applies C6's outbound transform to a serialized packet body.
// When the threshold is disabled, it returns body unchanged. Otherwise it
// prefixes a VarInt "data length": the body's own length (compressed),
// or 0 (uncompressed, body below threshold).
func Encode(threshold Threshold, body []byte) ([]byte, error) {
	if threshold.Disabled() {
		return body, nil
	}

	if len(body) < int(threshold) {
		prefix, err := wire.VarInt(0).ToBytes()
		if err != nil {
			return nil, err
		}
		return append(prefix, body...), nil
	}

	var compressed bytes.Buffer
	w := zlib.NewWriter(&compressed)
	if _, err := w.Write(body); err != nil {
		return nil, fmt.Errorf("compress: zlib write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: zlib close: %w", err)
	}

	prefix, err := wire.VarInt(len(body)).ToBytes()
	if err != nil {
		return nil, err
	}
	return append(prefix, compressed.Bytes()...), nil
}

// Decode applies C6's inbound transform to a post-framing frame body,
// returning the raw (uncompressed) packet bytes. When the threshold is
// disabled, frame is returned unchanged.
func Decode(threshold Threshold, frameBody []byte) ([]byte, error) {
	if threshold.Disabled() {
		return frameBody, nil
	}

	var dataLength wire.VarInt
	n, err := dataLength.FromBytes(frameBody)
	if err != nil {
		return nil, fmt.Errorf("compress: read data length: %w", err)
	}
	rest := frameBody[n:]

	if dataLength == 0 {
		return rest, nil
	}

	r, err := zlib.NewReader(bytes.NewReader(rest))
	if err != nil {
		return nil, fmt.Errorf("compress: zlib reader: %w", err)
	}
	defer r.Close()

	out := make([]byte, dataLength)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("compress: zlib read: %w", err)
	}
	return out, nil
}
