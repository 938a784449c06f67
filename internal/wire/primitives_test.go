package wire

import "testing"

func TestBooleanRoundTrip(t *testing.T) {
	for _, v := range []Boolean{true, false} {
		encoded, err := v.ToBytes()
		if err != nil {
			t.Fatalf("ToBytes(%v): %v", v, err)
		}
		var decoded Boolean
		n, err := decoded.FromBytes(encoded)
		if err != nil || n != 1 || decoded != v {
			t.Fatalf("round trip of %v = (%v, %d, %v)", v, decoded, n, err)
		}
	}
}

func TestBooleanRejectsOtherBytes(t *testing.T) {
	var b Boolean
	if _, err := b.FromBytes([]byte{0x42}); err != ErrInvalidBoolean {
		t.Fatalf("FromBytes(0x42) = %v, want ErrInvalidBoolean", err)
	}
}

func TestFixedWidthIntegersRoundTrip(t *testing.T) {
	i16 := Int16(-12345)
	b, _ := i16.ToBytes()
	var di16 Int16
	if _, err := di16.FromBytes(b); err != nil || di16 != i16 {
		t.Fatalf("Int16 round trip = %v, err=%v", di16, err)
	}

	i32 := Int32(-2147483648)
	b, _ = i32.ToBytes()
	var di32 Int32
	if _, err := di32.FromBytes(b); err != nil || di32 != i32 {
		t.Fatalf("Int32 round trip = %v, err=%v", di32, err)
	}

	i64 := Int64(9223372036854775807)
	b, _ = i64.ToBytes()
	var di64 Int64
	if _, err := di64.FromBytes(b); err != nil || di64 != i64 {
		t.Fatalf("Int64 round trip = %v, err=%v", di64, err)
	}
}

func TestFloatsRoundTrip(t *testing.T) {
	f32 := Float32(3.14159)
	b, _ := f32.ToBytes()
	var df32 Float32
	if _, err := df32.FromBytes(b); err != nil || df32 != f32 {
		t.Fatalf("Float32 round trip = %v, err=%v", df32, err)
	}

	f64 := Float64(2.718281828459045)
	b, _ = f64.ToBytes()
	var df64 Float64
	if _, err := df64.FromBytes(b); err != nil || df64 != f64 {
		t.Fatalf("Float64 round trip = %v, err=%v", df64, err)
	}
}

func TestFixedWidthTruncated(t *testing.T) {
	var i16 Int16
	if _, err := i16.FromBytes([]byte{0x01}); err != ErrUnexpectedEOF {
		t.Fatalf("Int16.FromBytes(1 byte) = %v, want ErrUnexpectedEOF", err)
	}
	var i64 Int64
	if _, err := i64.FromBytes(make([]byte, 7)); err != ErrUnexpectedEOF {
		t.Fatalf("Int64.FromBytes(7 bytes) = %v, want ErrUnexpectedEOF", err)
	}
}
