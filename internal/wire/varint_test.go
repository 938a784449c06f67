package wire

import (
	"bytes"
	"testing"
)

func TestVarIntCanonical(t *testing.T) {
	tests := []struct {
		value VarInt
		bytes []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{25565, []byte{0xdd, 0xc7, 0x01}},
		{2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{-1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{-2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}

	for _, tt := range tests {
		got, err := tt.value.ToBytes()
		if err != nil {
			t.Fatalf("ToBytes(%d): %v", tt.value, err)
		}
		if !bytes.Equal(got, tt.bytes) {
			t.Errorf("ToBytes(%d) = % x, want % x", tt.value, got, tt.bytes)
		}

		var decoded VarInt
		n, err := decoded.FromBytes(tt.bytes)
		if err != nil {
			t.Fatalf("FromBytes(% x): %v", tt.bytes, err)
		}
		if n != len(tt.bytes) {
			t.Errorf("FromBytes(% x) consumed %d bytes, want %d", tt.bytes, n, len(tt.bytes))
		}
		if decoded != tt.value {
			t.Errorf("FromBytes(% x) = %d, want %d", tt.bytes, decoded, tt.value)
		}
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	values := []VarInt{0, 1, -1, 127, 128, 300, -300, 1 << 20, -(1 << 20), 2147483647, -2147483648}
	for _, v := range values {
		encoded, err := v.ToBytes()
		if err != nil {
			t.Fatalf("ToBytes(%d): %v", v, err)
		}
		if l := v.Len(); l != len(encoded) {
			t.Errorf("Len(%d) = %d, want %d", v, l, len(encoded))
		}
		var decoded VarInt
		n, err := decoded.FromBytes(encoded)
		if err != nil {
			t.Fatalf("FromBytes round trip of %d: %v", v, err)
		}
		if n != len(encoded) || decoded != v {
			t.Errorf("round trip of %d produced (%d, %d bytes), want (%d, %d bytes)", v, decoded, n, v, len(encoded))
		}
	}
}

func TestVarIntNeedsMoreBytes(t *testing.T) {
	// A truncated two-byte encoding of 128 must fail without consuming.
	var v VarInt
	n, err := v.FromBytes([]byte{0x80})
	if err != ErrUnexpectedEOF {
		t.Fatalf("FromBytes(truncated) = (%d, %v), want ErrUnexpectedEOF", n, err)
	}
	if n != 0 {
		t.Fatalf("FromBytes(truncated) consumed %d bytes on failure, want 0", n)
	}
}

func TestVarIntOverflow(t *testing.T) {
	// Five continuation bytes followed by a sixth byte is one too many
	// for a 32-bit VarInt.
	data := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	var v VarInt
	if _, err := v.FromBytes(data); err != ErrOverflow {
		t.Fatalf("FromBytes(6 bytes) = %v, want ErrOverflow", err)
	}
}

func TestVarIntDoesNotOverreadBuffer(t *testing.T) {
	// A complete VarInt followed by trailing bytes consumes only its own bytes.
	data := []byte{0xdd, 0xc7, 0x01, 0xaa, 0xbb}
	var v VarInt
	n, err := v.FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if n != 3 || v != 25565 {
		t.Fatalf("FromBytes = (%d, %d), want (3, 25565)", n, v)
	}
}
