package wire

import (
	"encoding/binary"
	"math"
)

// Boolean is a single byte: 0x01 decodes to true, 0x00 to false. Any other
// byte value is rejected rather than treated as a truthy nonzero, matching
// the reference server's stricter-than-necessary decoding.
type Boolean bool

func (b Boolean) ToBytes() ([]byte, error) {
	if b {
		return []byte{0x01}, nil
	}
	return []byte{0x00}, nil
}

func (b *Boolean) FromBytes(data []byte) (int, error) {
	if len(data) < 1 {
		return 0, ErrUnexpectedEOF
	}
	switch data[0] {
	case 0x01:
		*b = true
	case 0x00:
		*b = false
	default:
		return 0, ErrInvalidBoolean
	}
	return 1, nil
}

// Int8 is a signed 8-bit integer.
type Int8 int8

func (v Int8) ToBytes() ([]byte, error) { return []byte{byte(v)}, nil }

func (v *Int8) FromBytes(data []byte) (int, error) {
	if len(data) < 1 {
		return 0, ErrUnexpectedEOF
	}
	*v = Int8(data[0])
	return 1, nil
}

// Uint8 is an unsigned 8-bit integer.
type Uint8 uint8

func (v Uint8) ToBytes() ([]byte, error) { return []byte{byte(v)}, nil }

func (v *Uint8) FromBytes(data []byte) (int, error) {
	if len(data) < 1 {
		return 0, ErrUnexpectedEOF
	}
	*v = Uint8(data[0])
	return 1, nil
}

// Int16 is a big-endian signed 16-bit integer.
type Int16 int16

func (v Int16) ToBytes() ([]byte, error) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	return b[:], nil
}

func (v *Int16) FromBytes(data []byte) (int, error) {
	if len(data) < 2 {
		return 0, ErrUnexpectedEOF
	}
	*v = Int16(binary.BigEndian.Uint16(data))
	return 2, nil
}

// Uint16 is a big-endian unsigned 16-bit integer.
type Uint16 uint16

func (v Uint16) ToBytes() ([]byte, error) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	return b[:], nil
}

func (v *Uint16) FromBytes(data []byte) (int, error) {
	if len(data) < 2 {
		return 0, ErrUnexpectedEOF
	}
	*v = Uint16(binary.BigEndian.Uint16(data))
	return 2, nil
}

// Int32 is a big-endian signed 32-bit integer.
type Int32 int32

func (v Int32) ToBytes() ([]byte, error) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return b[:], nil
}

func (v *Int32) FromBytes(data []byte) (int, error) {
	if len(data) < 4 {
		return 0, ErrUnexpectedEOF
	}
	*v = Int32(binary.BigEndian.Uint32(data))
	return 4, nil
}

// Int64 is a big-endian signed 64-bit integer.
type Int64 int64

func (v Int64) ToBytes() ([]byte, error) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return b[:], nil
}

func (v *Int64) FromBytes(data []byte) (int, error) {
	if len(data) < 8 {
		return 0, ErrUnexpectedEOF
	}
	*v = Int64(binary.BigEndian.Uint64(data))
	return 8, nil
}

// Float32 is a big-endian IEEE-754 single-precision float.
type Float32 float32

func (v Float32) ToBytes() ([]byte, error) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], math.Float32bits(float32(v)))
	return b[:], nil
}

func (v *Float32) FromBytes(data []byte) (int, error) {
	if len(data) < 4 {
		return 0, ErrUnexpectedEOF
	}
	*v = Float32(math.Float32frombits(binary.BigEndian.Uint32(data)))
	return 4, nil
}

// Float64 is a big-endian IEEE-754 double-precision float.
type Float64 float64

func (v Float64) ToBytes() ([]byte, error) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(float64(v)))
	return b[:], nil
}

func (v *Float64) FromBytes(data []byte) (int, error) {
	if len(data) < 8 {
		return 0, ErrUnexpectedEOF
	}
	*v = Float64(math.Float64frombits(binary.BigEndian.Uint64(data)))
	return 8, nil
}
