package key

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/opentrv/otaesgcm/internal/consts"
)

func TestRcon(t *testing.T) {
	want := []byte{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
	for i, w := range want {
		if got := Rcon(byte(i)); got != w {
			t.Errorf("Rcon(%d) = %#02x, want %#02x", i, got, w)
		}
	}
}

func TestExpandSize(t *testing.T) {
	xk, err := Expand(make([]byte, consts.KeySize))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(xk) != consts.RoundKeyBytes {
		t.Fatalf("len(xk) = %d, want %d", len(xk), consts.RoundKeyBytes)
	}
}

func TestExpandRejectsBadKeySize(t *testing.T) {
	if _, err := Expand(make([]byte, 10)); err == nil {
		t.Fatal("Expand accepted a 10 byte key")
	}
}

// FIPS-197 Appendix A.1: the first AES-128 round key is the key itself,
// and the last round key is the fixed value below.
func TestExpandFIPS197Vector(t *testing.T) {
	k, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	xk, err := Expand(k)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	if !bytes.Equal(xk[:consts.BlockSize], k) {
		t.Errorf("round key 0 = %x, want %x", xk[:consts.BlockSize], k)
	}

	wantLast, _ := hex.DecodeString("d014f9a8c9ee2589e13f0cc8b6630ca6")
	last := xk[consts.Nr*consts.BlockSize : (consts.Nr+1)*consts.BlockSize]
	if !bytes.Equal(last, wantLast) {
		t.Errorf("round key %d = %x, want %x", consts.Nr, last, wantLast)
	}
}

func TestExpandIntoMatchesExpand(t *testing.T) {
	k, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")

	want, err := Expand(k)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	var got ExpandedKey
	if err := ExpandInto(&got, k); err != nil {
		t.Fatalf("ExpandInto: %v", err)
	}

	if !bytes.Equal(got[:], want[:]) {
		t.Errorf("ExpandInto produced %x, want %x", got[:], want[:])
	}
}

func TestZero(t *testing.T) {
	xk, _ := Expand(make([]byte, consts.KeySize))
	xk.Zero()
	for i, b := range xk {
		if b != 0 {
			t.Fatalf("xk[%d] = %#02x after Zero, want 0", i, b)
		}
	}
}
