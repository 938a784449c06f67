package wire

// Bytes is an unprefixed byte sequence. FromBytes consumes everything
// passed to it, so callers must slice the data down to exactly the
// intended span first (e.g. "the rest of this frame").
type Bytes []byte

func (b Bytes) ToBytes() ([]byte, error) {
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (b *Bytes) FromBytes(data []byte) (int, error) {
	out := make([]byte, len(data))
	copy(out, data)
	*b = out
	return len(data), nil
}

// PrefixedBytes is a byte sequence with a VarInt length prefix.
type PrefixedBytes []byte

func (b PrefixedBytes) ToBytes() ([]byte, error) {
	prefix, err := VarInt(len(b)).ToBytes()
	if err != nil {
		return nil, err
	}
	return append(prefix, b...), nil
}

func (b *PrefixedBytes) FromBytes(data []byte) (int, error) {
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
	out := make([]byte, length)
	copy(out, data[n:end])
	*b = out
	return end, nil
}
