package sbox

import "testing"

func TestNewKnownEntries(t *testing.T) {
	sb := New()

	// FIPS-197 Figure 7 fixes a handful of well-known entries.
	cases := map[byte]byte{
		0x00: 0x63,
		0x01: 0x7c,
		0x53: 0xed,
		0xff: 0x16,
	}
	for in, want := range cases {
		if got := sb[in]; got != want {
			t.Errorf("sb[%#02x] = %#02x, want %#02x", in, got, want)
		}
	}
}

func TestInversePermutation(t *testing.T) {
	sb := New()
	isb := NewInverse(sb)

	for i := 0; i < 256; i++ {
		if got := isb[sb[i]]; got != byte(i) {
			t.Errorf("isb[sb[%d]] = %d, want %d", i, got, i)
		}
	}
}

func TestIsPermutation(t *testing.T) {
	sb := New()
	seen := make(map[byte]bool)
	for i := 0; i < 256; i++ {
		if seen[sb[i]] {
			t.Fatalf("sb[%d] = %#02x duplicates an earlier entry", i, sb[i])
		}
		seen[sb[i]] = true
	}
}
