package wire

import (
	"bytes"
	"testing"
)

func TestVarLongCanonical(t *testing.T) {
	tests := []struct {
		value VarLong
		bytes []byte
	}{
		{0, []byte{0x00}},
		{9223372036854775807, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
		{-1, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}

	for _, tt := range tests {
		got, err := tt.value.ToBytes()
		if err != nil {
			t.Fatalf("ToBytes(%d): %v", tt.value, err)
		}
		if !bytes.Equal(got, tt.bytes) {
			t.Errorf("ToBytes(%d) = % x, want % x", tt.value, got, tt.bytes)
		}

		var decoded VarLong
		n, err := decoded.FromBytes(tt.bytes)
		if err != nil {
			t.Fatalf("FromBytes(% x): %v", tt.bytes, err)
		}
		if n != len(tt.bytes) || decoded != tt.value {
			t.Errorf("FromBytes(% x) = (%d, %d bytes), want (%d, %d bytes)", tt.bytes, decoded, n, tt.value, len(tt.bytes))
		}
	}
}

func TestVarLongOverflow(t *testing.T) {
	data := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	var v VarLong
	if _, err := v.FromBytes(data); err != ErrOverflow {
		t.Fatalf("FromBytes(11 bytes) = %v, want ErrOverflow", err)
	}
}

func TestVarLongNeedsMoreBytes(t *testing.T) {
	var v VarLong
	n, err := v.FromBytes([]byte{0x80, 0x80})
	if err != ErrUnexpectedEOF || n != 0 {
		t.Fatalf("FromBytes(truncated) = (%d, %v), want (0, ErrUnexpectedEOF)", n, err)
	}
}
