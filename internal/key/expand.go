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

// This package follows the same RotWord/SubWord/Rcon schedule laid out in
// Sam Trenholme's key-schedule walkthrough:
// https://www.samiam.org/key-schedule.html

// Package key implements the AES-128 key schedule.
package key

import (
	"errors"

	"github.com/opentrv/otaesgcm/internal/consts"
	"github.com/opentrv/otaesgcm/internal/galois"
	"github.com/opentrv/otaesgcm/internal/sbox"
)

// ExpandedKey is the 176 byte AES-128 round-key schedule (11 round keys
// of 16 bytes each).
type ExpandedKey [consts.RoundKeyBytes]byte

// Rcon returns the idx'th round constant, computed rather than tabulated.
func Rcon(idx byte) byte {
	if idx == 0 {
		return 0
	}

	var rcon byte = 1
	for idx != 1 {
		rcon = galois.Mul(rcon, 2)
		idx--
	}

	return rcon
}

func rotWord(word [consts.WordSize]byte) [consts.WordSize]byte {
	var rotated [consts.WordSize]byte
	for i := 0; i < consts.WordSize-1; i++ {
		rotated[i] = word[i+1]
	}
	rotated[consts.WordSize-1] = word[0]
	return rotated
}

func subWord(word [consts.WordSize]byte, sb *sbox.SBox) [consts.WordSize]byte {
	var subw [consts.WordSize]byte
	for i := 0; i < consts.WordSize; i++ {
		subw[i] = sb[word[i]]
	}
	return subw
}

func scheduleCore(word [consts.WordSize]byte, idx byte, sb *sbox.SBox) [consts.WordSize]byte {
	word = rotWord(word)
	word = subWord(word, sb)
	word[0] ^= Rcon(idx)
	return word
}

// ExpandInto computes the round-key schedule for a 16 byte AES-128 key
// directly into the caller-supplied xKey, performing no allocation of
// its own — the destination is typically a view over a workspace slice
// so the schedule never exists anywhere but the caller's memory.
func ExpandInto(xKey *ExpandedKey, k []byte) error {
	if len(k) != consts.KeySize {
		return errors.New("key: invalid key size")
	}

	copy(xKey[:consts.KeySize], k)

	sb := sbox.New()
	var tmpKey [consts.WordSize]byte
	var c byte = consts.KeySize
	var idx byte = 1
	var a byte

	for int(c) < consts.RoundKeyBytes {
		for a = 0; a < consts.WordSize; a++ {
			tmpKey[a] = xKey[int(a)+int(c)-consts.WordSize]
		}

		if c%consts.KeySize == 0 {
			tmpKey = scheduleCore(tmpKey, idx, sb)
			idx++
		}

		for a = 0; a < consts.WordSize; a++ {
			xKey[c] = xKey[int(c)-consts.KeySize] ^ tmpKey[a]
			c++
		}
	}

	return nil
}

// Expand computes the round-key schedule for a 16 byte AES-128 key,
// allocating a new ExpandedKey for callers that are not supplying their
// own workspace.
func Expand(k []byte) (*ExpandedKey, error) {
	var xKey ExpandedKey
	if err := ExpandInto(&xKey, k); err != nil {
		return nil, err
	}
	return &xKey, nil
}

// Zero overwrites every byte of the schedule, for workspace hygiene.
func (xk *ExpandedKey) Zero() {
	for i := range xk {
		xk[i] = 0
	}
}
