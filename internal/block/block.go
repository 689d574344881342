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

// Package block implements the AES-128 block cipher: key expansion and
// single-block encryption (FIPS-197). Decryption is carried only as a
// test utility — GCM never calls it, matching the design note that the
// block-decrypt capability is optional in this implementation.
package block

import (
	"errors"

	"github.com/opentrv/otaesgcm/internal/consts"
	"github.com/opentrv/otaesgcm/internal/galois"
	"github.com/opentrv/otaesgcm/internal/key"
	"github.com/opentrv/otaesgcm/internal/sbox"
)

// ErrWorkspaceTooSmall is returned by New when the caller-supplied
// workspace cannot hold a round-key schedule.
var ErrWorkspaceTooSmall = errors.New("block: workspace smaller than RoundKeyBytes")

// Cipher holds the round-key schedule for one AES-128 key, expanded into
// caller-supplied scratch. Besides the schedule it holds the S-box and,
// once DecryptBlock has been called, a cached inverse S-box.
type Cipher struct {
	xk  *key.ExpandedKey
	sb  *sbox.SBox
	isb *sbox.SBox
}

// New expands k into the first RoundKeyBytes of ws and returns a Cipher
// that uses it. ws must be at least consts.RoundKeyBytes long; if it is
// not, New reports ErrWorkspaceTooSmall and performs no crypto work —
// this is the "null workspace pointer" failure mode of spec.md §4.1,
// rendered as a Go error instead of a null return.
func New(ws []byte, k []byte) (*Cipher, error) {
	if len(ws) < consts.RoundKeyBytes {
		return nil, ErrWorkspaceTooSmall
	}

	view := (*key.ExpandedKey)(ws[:consts.RoundKeyBytes])
	if err := key.ExpandInto(view, k); err != nil {
		return nil, err
	}

	return &Cipher{
		xk:  view,
		sb:  sbox.New(),
		isb: nil,
	}, nil
}

// Zero overwrites the round-key schedule this Cipher uses.
func (c *Cipher) Zero() {
	c.xk.Zero()
}

func addRoundKey(state *[consts.BlockSize]byte, xk *key.ExpandedKey, round int) {
	rk := xk[round*consts.BlockSize : (round+1)*consts.BlockSize]
	for i := range state {
		state[i] = galois.Add(state[i], rk[i])
	}
}

func subBytes(state *[consts.BlockSize]byte, sb *sbox.SBox) {
	for i := range state {
		state[i] = sb[state[i]]
	}
}

func invSubBytes(state *[consts.BlockSize]byte, isb *sbox.SBox) {
	for i := range state {
		state[i] = isb[state[i]]
	}
}

func shiftRows(state *[consts.BlockSize]byte) {
	orig := *state
	for i := 1; i < 4; i++ {
		for col := 0; col < 4; col++ {
			state[i+4*col] = orig[i+4*((i+col)%4)]
		}
	}
}

func invShiftRows(state *[consts.BlockSize]byte) {
	orig := *state
	for i := 1; i < 4; i++ {
		j := 4 - i
		for col := 0; col < 4; col++ {
			state[i+4*col] = orig[i+4*((j+col)%4)]
		}
	}
}

func mixColumns(state *[consts.BlockSize]byte) {
	orig := *state
	for i := 0; i < 4; i++ {
		state[4*i+0] = galois.Mul(0x02, orig[4*i+0]) ^ galois.Mul(0x03, orig[4*i+1]) ^ orig[4*i+2] ^ orig[4*i+3]
		state[4*i+1] = orig[4*i+0] ^ galois.Mul(0x02, orig[4*i+1]) ^ galois.Mul(0x03, orig[4*i+2]) ^ orig[4*i+3]
		state[4*i+2] = orig[4*i+0] ^ orig[4*i+1] ^ galois.Mul(0x02, orig[4*i+2]) ^ galois.Mul(0x03, orig[4*i+3])
		state[4*i+3] = galois.Mul(0x03, orig[4*i+0]) ^ orig[4*i+1] ^ orig[4*i+2] ^ galois.Mul(0x02, orig[4*i+3])
	}
}

func invMixColumns(state *[consts.BlockSize]byte) {
	orig := *state
	for i := 0; i < 4; i++ {
		state[4*i+0] = galois.Mul(0x0e, orig[4*i+0]) ^ galois.Mul(0x0b, orig[4*i+1]) ^ galois.Mul(0x0d, orig[4*i+2]) ^ galois.Mul(0x09, orig[4*i+3])
		state[4*i+1] = galois.Mul(0x09, orig[4*i+0]) ^ galois.Mul(0x0e, orig[4*i+1]) ^ galois.Mul(0x0b, orig[4*i+2]) ^ galois.Mul(0x0d, orig[4*i+3])
		state[4*i+2] = galois.Mul(0x0d, orig[4*i+0]) ^ galois.Mul(0x09, orig[4*i+1]) ^ galois.Mul(0x0e, orig[4*i+2]) ^ galois.Mul(0x0b, orig[4*i+3])
		state[4*i+3] = galois.Mul(0x0b, orig[4*i+0]) ^ galois.Mul(0x0d, orig[4*i+1]) ^ galois.Mul(0x09, orig[4*i+2]) ^ galois.Mul(0x0e, orig[4*i+3])
	}
}

// EncryptBlock copies src into dst and encrypts dst in place under this
// Cipher's key. src and dst must each be consts.BlockSize bytes; they
// may alias only if they are the same slice.
func (c *Cipher) EncryptBlock(dst, src []byte) error {
	if len(src) != consts.BlockSize || len(dst) != consts.BlockSize {
		return errors.New("block: state size not matching the block size")
	}

	var state [consts.BlockSize]byte
	copy(state[:], src)

	addRoundKey(&state, c.xk, 0)

	for round := 1; round < consts.Nr; round++ {
		subBytes(&state, c.sb)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, c.xk, round)
	}

	subBytes(&state, c.sb)
	shiftRows(&state)
	addRoundKey(&state, c.xk, consts.Nr)

	copy(dst, state[:])
	return nil
}

// DecryptBlock is the inverse of EncryptBlock. It is never called by the
// GCM path; it exists so the block cipher's own correctness can be
// round-trip tested independently of GHASH/GCTR.
func (c *Cipher) DecryptBlock(dst, src []byte) error {
	if len(src) != consts.BlockSize || len(dst) != consts.BlockSize {
		return errors.New("block: state size not matching the block size")
	}

	if c.isb == nil {
		c.isb = sbox.NewInverse(c.sb)
	}

	var state [consts.BlockSize]byte
	copy(state[:], src)

	addRoundKey(&state, c.xk, consts.Nr)

	for round := consts.Nr - 1; round > 0; round-- {
		invShiftRows(&state)
		invSubBytes(&state, c.isb)
		addRoundKey(&state, c.xk, round)
		invMixColumns(&state)
	}

	invShiftRows(&state)
	invSubBytes(&state, c.isb)
	addRoundKey(&state, c.xk, 0)

	copy(dst, state[:])
	return nil
}
