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

// Package sbox builds the AES substitution table and its inverse.
//
// On a Harvard-architecture microcontroller this table would live in
// program flash rather than RAM; the accessor here is a plain array
// index either way; the generation logic is identical, the only thing
// that would change on such a platform is where SBox's backing array is
// placed, which is outside what Go's memory model lets a library decide
// for the caller.
package sbox

// SBox is the 256 entry AES S-box.
type SBox [256]byte

func rotL8(x byte, shift byte) byte {
	return byte((x << shift) | (x >> (8 - shift)))
}

// New computes the AES S-box from its affine-transform definition rather
// than embedding the table as a literal.
func New() *SBox {
	sb := new(SBox)

	var p byte = 1
	var q byte = 1

	for {
		if p&0x80 != 0 {
			p = p ^ (p << 1) ^ 0x1b
		} else {
			p = p ^ (p << 1)
		}

		q ^= q << 1
		q ^= q << 2
		q ^= q << 4

		if q&0x80 != 0 {
			q ^= 0x09
		}

		xformed := q ^ rotL8(q, 1) ^ rotL8(q, 2) ^ rotL8(q, 3) ^ rotL8(q, 4)
		sb[p] = xformed ^ 0x63

		if p == 1 {
			break
		}
	}

	sb[0] = 0x63
	return sb
}

// NewInverse builds the inverse S-box from a forward S-box.
func NewInverse(sb *SBox) *SBox {
	inv := new(SBox)
	for i := 0; i < len(sb); i++ {
		inv[sb[i]] = byte(i)
	}
	return inv
}
