package ghash

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/opentrv/otaesgcm/internal/consts"
)

func toBlock(hexStr string) [consts.BlockSize]byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	var blk [consts.BlockSize]byte
	copy(blk[:], b)
	return blk
}

// NIST SP 800-38D Test Case 1: H = E_K(0) for K = 0, A = C = empty, so
// GHASH(H, empty) must be all zero.
func TestMultiplyByZeroIsZero(t *testing.T) {
	h := toBlock("66e94bd4ef8a2c3b884cfa59ca342b2e")
	var zero [consts.BlockSize]byte

	got := Multiply(&zero, &h)
	if got != zero {
		t.Errorf("Multiply(0, h) = %x, want all zero", got)
	}
}

func TestUpdateEmptyDataIsNoop(t *testing.T) {
	h := toBlock("66e94bd4ef8a2c3b884cfa59ca342b2e")
	var y [consts.BlockSize]byte

	Update(&y, &h, nil)

	var zero [consts.BlockSize]byte
	if y != zero {
		t.Errorf("Update with no data produced %x, want all zero", y)
	}
}

// NIST SP 800-38D Test Case 2: H as above, a single ciphertext block
// C = 0388dace60b6a392f328c2b971b2fe78; folding it into a zero
// accumulator gives X1 = C . H = 5e2ec746917062882c85b0685353deb7.
func TestUpdateSingleBlock(t *testing.T) {
	h := toBlock("66e94bd4ef8a2c3b884cfa59ca342b2e")
	var y [consts.BlockSize]byte

	c := toBlock("0388dace60b6a392f328c2b971b2fe78")
	Update(&y, &h, c[:])

	want := toBlock("5e2ec746917062882c85b0685353deb7")
	if y != want {
		t.Errorf("Update(single block) = %x, want %x", y, want)
	}
}

func TestUpdatePartialBlockIsZeroPadded(t *testing.T) {
	h := toBlock("66e94bd4ef8a2c3b884cfa59ca342b2e")

	var y1 [consts.BlockSize]byte
	Update(&y1, &h, []byte{0x01, 0x02, 0x03})

	var y2 [consts.BlockSize]byte
	padded := make([]byte, consts.BlockSize)
	copy(padded, []byte{0x01, 0x02, 0x03})
	Update(&y2, &h, padded)

	if !bytes.Equal(y1[:], y2[:]) {
		t.Errorf("partial-block Update diverges from zero-padded full block: %x vs %x", y1, y2)
	}
}
