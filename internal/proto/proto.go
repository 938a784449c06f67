// Package proto implements the Java Edition packet schema: declarative
// struct definitions paired with a struct-tag-driven reflection engine
// that marshals and unmarshals them field by field, and the
// (state, version, packet id) dispatch table that resolves a RawPacket to
// its typed Go representation.
package proto

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-mclib/gateway/internal/wire"
)

// ErrUnknownPacket is returned when no schema entry matches a given
// (state, version, packet id) triple.
var ErrUnknownPacket = errors.New("proto: unknown packet")

// RawPacket is an undecoded inbound or outbound packet: a VarInt packet
// id followed by an opaque payload. It is the unit C5/C6 hand off to C7,
// and what C7 hands to a dispatcher for typed decoding.
type RawPacket struct {
	ID   wire.VarInt
	Data []byte
}

// field tag grammar: mc:"-" skips a field entirely (it carries no wire
// representation, e.g. a Go-only bookkeeping field); mc:"length:N" gives
// a FixedArray its element count before FromBytes runs.
type fieldTag struct {
	skip   bool
	length int
}

func parseFieldTag(tag string) fieldTag {
	if tag == "-" {
		return fieldTag{skip: true}
	}
	var ft fieldTag
	if tag == "" {
		return ft
	}
	const prefix = "length:"
	if len(tag) > len(prefix) && tag[:len(prefix)] == prefix {
		if n, err := strconv.Atoi(tag[len(prefix):]); err == nil {
			ft.length = n
		}
	}
	return ft
}

// Marshal encodes a packet struct field by field, in declaration order,
// using each field's ToBytes method. Fields tagged mc:"-" are skipped.
func Marshal(packet any) ([]byte, error) {
	val := reflect.ValueOf(packet)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("proto: cannot marshal non-struct %T", packet)
	}
	return marshalStruct(val)
}

func marshalStruct(val reflect.Value) ([]byte, error) {
	typ := val.Type()
	var out []byte
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		sf := typ.Field(i)
		if !field.CanInterface() {
			continue
		}
		if parseFieldTag(sf.Tag.Get("mc")).skip {
			continue
		}
		b, err := marshalField(field)
		if err != nil {
			return nil, fmt.Errorf("proto: field %s: %w", sf.Name, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

func marshalField(field reflect.Value) ([]byte, error) {
	if field.Kind() == reflect.Struct && field.Type().Kind() == reflect.Struct {
		if enc, ok := addressableInterface(field).(interface{ ToBytes() ([]byte, error) }); ok {
			return enc.ToBytes()
		}
		// nested plain struct (e.g. GameProfile embedded inline): recurse.
		return marshalStruct(field)
	}
	if enc, ok := addressableInterface(field).(interface{ ToBytes() ([]byte, error) }); ok {
		return enc.ToBytes()
	}
	return nil, fmt.Errorf("type %s does not implement ToBytes", field.Type())
}

func addressableInterface(field reflect.Value) any {
	if field.CanAddr() {
		return field.Addr().Interface()
	}
	return field.Interface()
}

// Unmarshal decodes data into packet field by field, in declaration
// order, using each field's FromBytes method, and returns the number of
// bytes consumed. Fields tagged mc:"-" are skipped. A field tagged
// mc:"length:N" has its FixedArray N set from the tag before decoding.
func Unmarshal(data []byte, packet any) (int, error) {
	val := reflect.ValueOf(packet)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return 0, fmt.Errorf("proto: unmarshal requires a non-nil pointer, got %T", packet)
	}
	elem := val.Elem()
	if elem.Kind() != reflect.Struct {
		return 0, fmt.Errorf("proto: cannot unmarshal into non-struct %T", packet)
	}
	return unmarshalStruct(elem, data)
}

func unmarshalStruct(val reflect.Value, data []byte) (int, error) {
	typ := val.Type()
	offset := 0
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		sf := typ.Field(i)
		if !field.CanSet() {
			continue
		}
		ft := parseFieldTag(sf.Tag.Get("mc"))
		if ft.skip {
			continue
		}
		if ft.length > 0 {
			if nField := field.FieldByName("N"); nField.IsValid() && nField.CanSet() {
				nField.SetInt(int64(ft.length))
			}
		}
		n, err := unmarshalField(field, data[offset:])
		if err != nil {
			return offset, fmt.Errorf("proto: field %s at offset %d: %w", sf.Name, offset, err)
		}
		offset += n
	}
	return offset, nil
}

func unmarshalField(field reflect.Value, data []byte) (int, error) {
	if !field.CanAddr() {
		return 0, fmt.Errorf("type %s is not addressable", field.Type())
	}
	addr := field.Addr().Interface()
	if dec, ok := addr.(interface{ FromBytes([]byte) (int, error) }); ok {
		return dec.FromBytes(data)
	}
	if field.Kind() == reflect.Struct {
		return unmarshalStruct(field, data)
	}
	return 0, fmt.Errorf("type %s does not implement FromBytes", field.Type())
}
