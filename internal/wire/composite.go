package wire

import "fmt"

type marshaler interface {
	ToBytes() ([]byte, error)
}

type unmarshaler interface {
	FromBytes(data []byte) (int, error)
}

// Optional is a value preceded by a single boolean presence byte.
//
//	optional<T> ::= bool present, present ? T : ε
type Optional[T any] struct {
	Present bool
	Value   T
}

func (o Optional[T]) ToBytes() ([]byte, error) {
	presentByte, err := Boolean(o.Present).ToBytes()
	if err != nil {
		return nil, err
	}
	if !o.Present {
		return presentByte, nil
	}
	m, ok := any(o.Value).(marshaler)
	if !ok {
		return nil, fmt.Errorf("wire: %T does not implement ToBytes", o.Value)
	}
	valueBytes, err := m.ToBytes()
	if err != nil {
		return nil, err
	}
	return append(presentByte, valueBytes...), nil
}

func (o *Optional[T]) FromBytes(data []byte) (int, error) {
	var present Boolean
	n, err := present.FromBytes(data)
	if err != nil {
		return 0, err
	}
	o.Present = bool(present)
	if !o.Present {
		return n, nil
	}
	u, ok := any(&o.Value).(unmarshaler)
	if !ok {
		return 0, fmt.Errorf("wire: %T does not implement FromBytes", o.Value)
	}
	consumed, err := u.FromBytes(data[n:])
	if err != nil {
		return 0, err
	}
	return n + consumed, nil
}

// Vector is a VarInt length-prefixed sequence of elements.
//
//	vector<T> ::= VarInt length, T × length
type Vector[T any] []T

func (v Vector[T]) ToBytes() ([]byte, error) {
	prefix, err := VarInt(len(v)).ToBytes()
	if err != nil {
		return nil, err
	}
	out := prefix
	for i, elem := range v {
		m, ok := any(elem).(marshaler)
		if !ok {
			return nil, fmt.Errorf("wire: element %d of type %T does not implement ToBytes", i, elem)
		}
		b, err := m.ToBytes()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// FromBytes decodes the vector. To guard against resource-amplification
// attacks from a tiny frame declaring a huge element count, it rejects a
// length that could not possibly fit in the remaining data (each element
// must occupy at least one byte).
func (v *Vector[T]) FromBytes(data []byte) (int, error) {
	var length VarInt
	n, err := length.FromBytes(data)
	if err != nil {
		return 0, err
	}
	if length < 0 {
		return 0, ErrNegativeLength
	}
	if int(length) > len(data)-n {
		return 0, ErrUnexpectedEOF
	}
	out := make([]T, length)
	offset := n
	for i := range out {
		u, ok := any(&out[i]).(unmarshaler)
		if !ok {
			return 0, fmt.Errorf("wire: element %d of type %T does not implement FromBytes", i, out[i])
		}
		consumed, err := u.FromBytes(data[offset:])
		if err != nil {
			return 0, err
		}
		offset += consumed
	}
	*v = out
	return offset, nil
}

// FixedArray is an unprefixed sequence of exactly N elements, where N is
// supplied by the caller (schema fields set it via a struct tag; see
// internal/proto).
type FixedArray[T any] struct {
	N     int
	Items []T
}

func (a FixedArray[T]) ToBytes() ([]byte, error) {
	var out []byte
	for i, elem := range a.Items {
		m, ok := any(elem).(marshaler)
		if !ok {
			return nil, fmt.Errorf("wire: element %d of type %T does not implement ToBytes", i, elem)
		}
		b, err := m.ToBytes()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func (a *FixedArray[T]) FromBytes(data []byte) (int, error) {
	out := make([]T, a.N)
	offset := 0
	for i := range out {
		u, ok := any(&out[i]).(unmarshaler)
		if !ok {
			return 0, fmt.Errorf("wire: element %d of type %T does not implement FromBytes", i, out[i])
		}
		consumed, err := u.FromBytes(data[offset:])
		if err != nil {
			return 0, err
		}
		offset += consumed
	}
	a.Items = out
	return offset, nil
}
