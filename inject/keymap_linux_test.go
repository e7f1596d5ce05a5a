//go:build linux

package inject

import "testing"

func TestCharToKey(t *testing.T) {
	tests := []struct {
		c     byte
		code  uint16
		shift bool
		ok    bool
	}{
		{'a', 30, false, true},
		{'z', 44, false, true},
		{'A', 30, true, true},
		{'Q', 16, true, true},
		{'0', 11, false, true},
		{'9', 10, false, true},
		{' ', 57, false, true},
		{'\n', 28, false, true},
		{'.', 52, false, true},
		{'?', 53, true, true},
		{'!', 2, true, true},
		{0x80, 0, false, false},
	}
	for _, tt := range tests {
		code, shift, ok := charToKey(tt.c)
		if code != tt.code || shift != tt.shift || ok != tt.ok {
			t.Errorf("charToKey(%q) = (%d, %v, %v), want (%d, %v, %v)",
				tt.c, code, shift, ok, tt.code, tt.shift, tt.ok)
		}
	}
}

func TestCharToKeyCoversTypicalTranscript(t *testing.T) {
	for _, c := range []byte("Hello, world. It's 42 degrees outside!") {
		if _, _, ok := charToKey(c); !ok {
			t.Errorf("charToKey(%q) not mapped", c)
		}
	}
}
