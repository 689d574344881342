package galois

import "testing"

func TestAdd(t *testing.T) {
	if got := Add(0x57, 0x83); got != 0xd4 {
		t.Errorf("Add(0x57, 0x83) = %#02x, want 0xd4", got)
	}
	if got := Add(0x00, 0x00); got != 0x00 {
		t.Errorf("Add(0, 0) = %#02x, want 0", got)
	}
}

func TestMul(t *testing.T) {
	// FIPS-197 example: 0x57 . 0x83 = 0xc1 under GF(2^8).
	if got := Mul(0x57, 0x83); got != 0xc1 {
		t.Errorf("Mul(0x57, 0x83) = %#02x, want 0xc1", got)
	}

	for _, a := range []byte{0x00, 0x01, 0x57, 0xff} {
		if got := Mul(a, 0x00); got != 0x00 {
			t.Errorf("Mul(%#02x, 0) = %#02x, want 0", a, got)
		}
		if got := Mul(a, 0x01); got != a {
			t.Errorf("Mul(%#02x, 1) = %#02x, want %#02x", a, got, a)
		}
	}
}

func TestXorBlock(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03, 0x04}
	b := []byte{0xff, 0x00, 0x0f, 0xf0}
	dst := make([]byte, 4)

	XorBlock(dst, a, b)

	want := []byte{0xfe, 0x02, 0x0c, 0xf4}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %#02x, want %#02x", i, dst[i], want[i])
		}
	}
}
