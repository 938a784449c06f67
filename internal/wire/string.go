package wire

import "unicode/utf8"

// String is a UTF-8 string with a VarInt byte-length prefix (not a
// code-point count). An empty string encodes as a single 0x00 byte.
type String string

func (s String) ToBytes() ([]byte, error) {
	raw := []byte(s)
	prefix, err := VarInt(len(raw)).ToBytes()
	if err != nil {
		return nil, err
	}
	return append(prefix, raw...), nil
}

// FromBytes decodes a length-prefixed string. Invalid UTF-8 fails with
// ErrUTF8.
func (s *String) FromBytes(data []byte) (int, error) {
	var length VarInt
	n, err := length.FromBytes(data)
	if err != nil {
		return 0, err
	}
	if length < 0 {
		return 0, ErrNegativeLength
	}
	end := n + int(length)
	if end > len(data) {
		return 0, ErrUnexpectedEOF
	}
	raw := data[n:end]
	if !utf8.Valid(raw) {
		return 0, ErrUTF8
	}
	*s = String(raw)
	return end, nil
}
