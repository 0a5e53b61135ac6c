package common

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestMakeRandHexString(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"zero", 0},
		{"sixteen", 16},
		{"forty", 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := MakeRandHexString(tt.size)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(s) != tt.size*2 {
				t.Fatalf("expected length %d, got %d", tt.size*2, len(s))
			}
			if _, err := hex.DecodeString(s); err != nil {
				t.Fatalf("not valid hex: %v", err)
			}
		})
	}
}

func TestGenerateRandByteArray(t *testing.T) {
	a := GenerateRandByteArray(32)
	b := GenerateRandByteArray(32)
	if len(a) != 32 || len(b) != 32 {
		t.Fatalf("unexpected lengths: %d, %d", len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Logf("warning: two 32-byte random arrays are identical")
	}
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte("Testpass123")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}

	WipeByteArray(nil)
}
