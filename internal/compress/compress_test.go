package compress

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisabledThresholdIsTransparent(t *testing.T) {
	body := []byte{0x01, 0x02, 0x03}
	encoded, err := Encode(Threshold(-1), body)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(encoded, body) {
		t.Fatalf("Encode(disabled) = % x, want % x unchanged", encoded, body)
	}
	decoded, err := Decode(Threshold(-1), encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, body) {
		t.Fatalf("Decode(disabled) = % x, want % x unchanged", decoded, body)
	}
}

func TestBelowThresholdIsMarkedUncompressed(t *testing.T) {
	body := []byte{0x01, 0x02, 0x03}
	encoded, err := Encode(Threshold(256), body)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if encoded[0] != 0x00 {
		t.Fatalf("Encode(below threshold)[0] = %#x, want 0x00 marker", encoded[0])
	}
	if !bytes.Equal(encoded[1:], body) {
		t.Fatalf("Encode(below threshold) body = % x, want % x", encoded[1:], body)
	}
}

func TestAboveThresholdRoundTrips(t *testing.T) {
	body := []byte(strings.Repeat("minecraft protocol gateway payload ", 50))
	encoded, err := Encode(Threshold(16), body)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if encoded[0] == 0x00 {
		t.Fatalf("Encode(above threshold) used the uncompressed marker")
	}
	decoded, err := Decode(Threshold(16), encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, body) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(decoded), len(body))
	}
}

func TestEmptyBodyBelowThreshold(t *testing.T) {
	encoded, err := Encode(Threshold(256), nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(Threshold(256), encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("Decode(empty) = % x, want empty", decoded)
	}
}
