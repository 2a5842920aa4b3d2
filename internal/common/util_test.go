package common

import (
	"bytes"
	"testing"
)

func TestGenerateRandByteArray_Length(t *testing.T) {
	for _, n := range []int{0, 1, 16, 32} {
		b := GenerateRandByteArray(n)
		if len(b) != n {
			t.Fatalf("expected %d bytes, got %d", n, len(b))
		}
	}
}

func TestGenerateRandByteArray_EntropyHint(t *testing.T) {
	a := GenerateRandByteArray(32)
	b := GenerateRandByteArray(32)
	if bytes.Equal(a, b) {
		t.Fatalf("two random 32-byte arrays are identical; extremely unlikely")
	}
}

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil) // must not panic
}
