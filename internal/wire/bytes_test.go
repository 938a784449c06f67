package wire

import "bytes"

import "testing"

func TestPrefixedBytesRoundTrip(t *testing.T) {
	v := PrefixedBytes{0x01, 0x02, 0x03}
	encoded, err := v.ToBytes()
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	if !bytes.Equal(encoded, []byte{0x03, 0x01, 0x02, 0x03}) {
		t.Fatalf("ToBytes = % x, want [03 01 02 03]", encoded)
	}
	var decoded PrefixedBytes
	n, err := decoded.FromBytes(encoded)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if n != len(encoded) || !bytes.Equal(decoded, v) {
		t.Fatalf("FromBytes = (% x, %d), want (% x, %d)", decoded, n, v, len(encoded))
	}
}

func TestPrefixedBytesTruncated(t *testing.T) {
	data := []byte{0x05, 0x01, 0x02}
	var v PrefixedBytes
	if _, err := v.FromBytes(data); err != ErrUnexpectedEOF {
		t.Fatalf("FromBytes(truncated) = %v, want ErrUnexpectedEOF", err)
	}
}

func TestBytesConsumesEverythingGiven(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	var b Bytes
	n, err := b.FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if n != len(data) || !bytes.Equal(b, data) {
		t.Fatalf("FromBytes = (% x, %d), want (% x, %d)", b, n, data, len(data))
	}
}
