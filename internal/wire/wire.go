// Package wire implements the primitive binary encodings used by the Java
// Edition protocol: variable-width integers, fixed-width big-endian
// numbers, length-prefixed strings and byte sequences, UUIDs, and the
// optional/vector/fixed-array combinators built on top of them.
//
// Every type follows the same closed convention: ToBytes encodes the
// value, and FromBytes decodes a value from the front of a byte slice and
// reports how many bytes it consumed. FromBytes never consumes input on
// failure, so callers can buffer more bytes and retry.
package wire

import "errors"

// Sentinel errors shared by every wire type. Wrap with fmt.Errorf("...: %w")
// at call sites rather than constructing new error values.
var (
	// ErrUnexpectedEOF indicates fewer bytes were available than needed to
	// complete a value. It is not terminal at the frame decoder, which
	// treats it as "need more bytes".
	ErrUnexpectedEOF = errors.New("wire: unexpected end of data")

	// ErrOverflow indicates a VarInt/VarLong would need more continuation
	// bytes than its type allows.
	ErrOverflow = errors.New("wire: varint overflow")

	// ErrUTF8 indicates a string field contained invalid UTF-8.
	ErrUTF8 = errors.New("wire: invalid utf-8")

	// ErrNegativeLength indicates a length-prefixed field decoded a
	// negative length.
	ErrNegativeLength = errors.New("wire: negative length prefix")

	// ErrInvalidBoolean indicates a boolean field held a byte other than
	// 0x00 or 0x01.
	ErrInvalidBoolean = errors.New("wire: invalid boolean byte")
)

// Encoder is implemented by every wire type.
type Encoder interface {
	ToBytes() ([]byte, error)
}

// Decoder is implemented by every wire type via a pointer receiver.
type Decoder interface {
	FromBytes(data []byte) (int, error)
}
