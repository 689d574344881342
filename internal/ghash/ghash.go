// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package ghash implements GF(2^128) field multiplication and the GHASH
// polynomial hash GCM builds its authentication tag from. This is a
// different field and representation than package galois's GF(2^8),
// which AES's own MixColumns uses — the two must not be confused.
package ghash

import "github.com/opentrv/otaesgcm/internal/consts"

// r is the byte pattern of the GCM reducing polynomial
// x^128 + x^7 + x^2 + x + 1, placed in the top byte of a 128 bit value
// after a one-bit right shift.
const r = 0xe1

func shiftRight(v *[consts.BlockSize]byte) {
	carry := byte(0)
	for i := 0; i < consts.BlockSize; i++ {
		next := v[i] & 1
		v[i] = (v[i] >> 1) | (carry << 7)
		carry = next
	}
}

func xorBlock(dst, a, b *[consts.BlockSize]byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// Multiply computes z = x . y in GF(2^128) under the GCM reducing
// polynomial, walking the bits of x from MSB to LSB across bytes 0..15
// and folding y (repeatedly halved and reduced) into the accumulator.
func Multiply(x, y *[consts.BlockSize]byte) [consts.BlockSize]byte {
	var z [consts.BlockSize]byte
	v := *y

	for i := 0; i < consts.BlockSize; i++ {
		for bit := 7; bit >= 0; bit-- {
			if (x[i]>>uint(bit))&1 == 1 {
				xorBlock(&z, &z, &v)
			}

			lsb := v[consts.BlockSize-1] & 1
			shiftRight(&v)
			if lsb == 1 {
				v[0] ^= r
			}
		}
	}

	return z
}

// Update folds data into the running GHASH accumulator y under subkey h:
// y <- (y XOR block) . h for each BlockSize chunk, with a final trailing
// partial block zero-padded before folding. The caller composes a full
// GHASH(A, C, lengthFrame) by calling Update three times against the
// same accumulator, per spec.
func Update(y *[consts.BlockSize]byte, h *[consts.BlockSize]byte, data []byte) {
	for len(data) >= consts.BlockSize {
		var blk [consts.BlockSize]byte
		copy(blk[:], data[:consts.BlockSize])
		xorBlock(y, y, &blk)
		*y = Multiply(y, h)
		data = data[consts.BlockSize:]
	}

	if len(data) > 0 {
		var blk [consts.BlockSize]byte
		copy(blk[:], data)
		xorBlock(y, y, &blk)
		*y = Multiply(y, h)
	}
}
