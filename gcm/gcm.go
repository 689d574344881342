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

// Package gcm implements the GCM composition over an AES-128 block
// cipher: authentication subkey derivation, initial counter block
// derivation, the GCTR keystream function, tag generation, and the
// three top-level AEAD entry points. The round keys, stored subkey and
// ICB, counter blocks and length frame live in the workspace slice the
// caller passes in, so this is the layer an embedded caller with a
// static buffer talks to directly. It is not free of heap allocation:
// each call allocates the block.Cipher and its S-box tables. The subkey
// H, the ICB, the GHASH accumulator and per-block temporaries are also
// held in stack-local arrays, which are not part of the workspace and
// are not zeroed on return. Package workspace builds the
// allocating/fixed-shape conveniences on top of it.
package gcm

import (
	"crypto/subtle"
	"encoding/binary"

	"github.com/opentrv/otaesgcm/internal/block"
	"github.com/opentrv/otaesgcm/internal/consts"
	"github.com/opentrv/otaesgcm/internal/ghash"
	"github.com/opentrv/otaesgcm/gcmerr"
)

func paddedLen(n int) int {
	return (n + consts.BlockSize - 1) &^ (consts.BlockSize - 1)
}

func incrementCounter(ctr []byte) {
	for i := consts.BlockSize - 1; i >= consts.BlockSize-4; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			break
		}
	}
}

func deriveH(c *block.Cipher, out *[consts.BlockSize]byte) error {
	var zero [consts.BlockSize]byte
	return c.EncryptBlock(out[:], zero[:])
}

func deriveICB(iv []byte, out *[consts.BlockSize]byte) {
	copy(out[:consts.NonceSize], iv)
	out[consts.NonceSize] = 0
	out[consts.NonceSize+1] = 0
	out[consts.NonceSize+2] = 0
	out[consts.NonceSize+3] = 1
}

// gctr is the general GCTR keystream function: it supports a trailing
// partial block and needs a one-block tmp in addition to the
// persistent counter block, matching GCTRWorkspace = ctrBlock | tmp.
// Like gctrPadded it snapshots each full input block on the stack
// before overwriting output, so input and output may be the same slice.
func gctr(c *block.Cipher, icb [consts.BlockSize]byte, input, output, ctrBlock, tmp []byte) error {
	if len(input) == 0 {
		return nil
	}

	copy(ctrBlock, icb[:])

	full := len(input) - len(input)%consts.BlockSize
	for i := 0; i < full; i += consts.BlockSize {
		var saved [consts.BlockSize]byte
		copy(saved[:], input[i:i+consts.BlockSize])

		if err := c.EncryptBlock(output[i:i+consts.BlockSize], ctrBlock); err != nil {
			return err
		}
		for j := 0; j < consts.BlockSize; j++ {
			output[i+j] ^= saved[j]
		}
		incrementCounter(ctrBlock)
	}

	if rem := len(input) - full; rem > 0 {
		if err := c.EncryptBlock(tmp, ctrBlock); err != nil {
			return err
		}
		for j := 0; j < rem; j++ {
			output[full+j] = input[full+j] ^ tmp[j]
		}
	}

	return nil
}

// gctrPadded is the reduced GCTR used when the caller guarantees
// block-aligned input, matching GCTRPaddedWorkspace = ctrBlock only: it
// has no spare byte to stage a keystream block in, so it snapshots the
// plaintext block on the stack (outside the caller's workspace budget,
// the same way block.Cipher.EncryptBlock keeps its own state off the
// caller's buffers) before overwriting output with the keystream.
func gctrPadded(c *block.Cipher, icb [consts.BlockSize]byte, input, output, ctrBlock []byte) error {
	if len(input) == 0 {
		return nil
	}

	copy(ctrBlock, icb[:])

	for i := 0; i < len(input); i += consts.BlockSize {
		var saved [consts.BlockSize]byte
		copy(saved[:], input[i:i+consts.BlockSize])

		if err := c.EncryptBlock(output[i:i+consts.BlockSize], ctrBlock); err != nil {
			return err
		}
		for j := 0; j < consts.BlockSize; j++ {
			output[i+j] ^= saved[j]
		}
		incrementCounter(ctrBlock)
	}

	return nil
}

// generateTag computes the GCM authentication tag over aad and
// ciphertext, using cdataBitLen as the length(C) field of the length
// frame (the padded length in bits — see the spec's "CDATAlength fix").
// ws must be at least generateTagSize bytes: S[16] | ghashTmp[16] |
// gFieldMultiplyTmp[16] | union(lengthBuffer[16], ctrBlock[16]).
func generateTag(c *block.Cipher, h, icb [consts.BlockSize]byte, aad, ciphertext []byte, cdataBitLen int, ws []byte, tagOut []byte) error {
	var sArr [consts.BlockSize]byte

	ghash.Update(&sArr, &h, aad)
	ghash.Update(&sArr, &h, ciphertext)

	lengthFrame := ws[3*consts.BlockSize : 4*consts.BlockSize]
	binary.BigEndian.PutUint64(lengthFrame[0:8], uint64(len(aad))*8)
	binary.BigEndian.PutUint64(lengthFrame[8:16], uint64(cdataBitLen))
	ghash.Update(&sArr, &h, lengthFrame)

	ctrBlock := ws[3*consts.BlockSize : 4*consts.BlockSize]
	return gctrPadded(c, icb, sArr[:], tagOut, ctrBlock)
}

// Encrypt is the unpadded AEAD encrypt entry point: plaintext need not
// be block-aligned. ws must be at least RequiredEnc bytes; ciphertextOut
// must be at least paddedLen(len(plaintext)) bytes long even though only
// len(plaintext) bytes of it are meaningful ciphertext (Invariant 3).
func Encrypt(ws []byte, key, iv, plaintext, aad, ciphertextOut, tagOut []byte) error {
	if len(plaintext) == 0 && len(aad) == 0 {
		return gcmerr.ErrEmptyInput
	}
	if len(plaintext) > consts.MaxDataLen-consts.BlockSize {
		return gcmerr.ErrSizeOverflow
	}
	if len(aad) > consts.MaxDataLen {
		return gcmerr.ErrSizeOverflow
	}
	if tagOut == nil || key == nil || iv == nil {
		return gcmerr.ErrBadArgument
	}
	if len(ws) < RequiredEnc {
		return gcmerr.ErrBadArgument
	}
	if len(ciphertextOut) < paddedLen(len(plaintext)) || len(tagOut) < consts.TagSize {
		return gcmerr.ErrBadArgument
	}

	c, err := block.New(ws[:consts.RoundKeyBytes], key)
	if err != nil {
		return err
	}
	defer c.Zero()
	gcmScratch := ws[consts.RoundKeyBytes:]
	defer zero(gcmScratch)

	var h, icb [consts.BlockSize]byte
	if err := deriveH(c, &h); err != nil {
		return err
	}
	deriveICB(iv, &icb)

	authKey := gcmScratch[0:consts.BlockSize]
	copy(authKey, h[:])
	icbRegion := gcmScratch[consts.BlockSize : 2*consts.BlockSize]
	copy(icbRegion, icb[:])

	union := gcmScratch[2*consts.BlockSize:]

	startCtr := icb
	incrementCounter(startCtr[:])
	ctrBlock := union[0:consts.BlockSize]
	tmp := union[2*consts.BlockSize : 3*consts.BlockSize]
	if err := gctr(c, startCtr, plaintext, ciphertextOut[:len(plaintext)], ctrBlock, tmp); err != nil {
		return err
	}

	return generateTag(c, h, icb, aad, ciphertextOut[:len(plaintext)], paddedLen(len(plaintext))*8, union, tagOut[:consts.TagSize])
}

// EncryptPadded is identical to Encrypt except plaintextPadded is
// asserted by the caller to already be a block multiple, letting the
// implementation take the reduced GCTRPaddedWorkspace path.
func EncryptPadded(ws []byte, key, iv, plaintextPadded, aad, ciphertextOut, tagOut []byte) error {
	if len(plaintextPadded) == 0 && len(aad) == 0 {
		return gcmerr.ErrEmptyInput
	}
	if len(plaintextPadded) > consts.MaxDataLen-consts.BlockSize {
		return gcmerr.ErrSizeOverflow
	}
	if len(aad) > consts.MaxDataLen {
		return gcmerr.ErrSizeOverflow
	}
	if tagOut == nil || key == nil || iv == nil {
		return gcmerr.ErrBadArgument
	}
	if len(ws) < RequiredEncPadded {
		return gcmerr.ErrBadArgument
	}
	if len(ciphertextOut) < len(plaintextPadded) || len(tagOut) < consts.TagSize {
		return gcmerr.ErrBadArgument
	}

	c, err := block.New(ws[:consts.RoundKeyBytes], key)
	if err != nil {
		return err
	}
	defer c.Zero()
	gcmScratch := ws[consts.RoundKeyBytes:]
	defer zero(gcmScratch)

	var h, icb [consts.BlockSize]byte
	if err := deriveH(c, &h); err != nil {
		return err
	}
	deriveICB(iv, &icb)

	union := gcmScratch[2*consts.BlockSize:]

	startCtr := icb
	incrementCounter(startCtr[:])
	ctrBlock := union[0:consts.BlockSize]
	if err := gctrPadded(c, startCtr, plaintextPadded, ciphertextOut[:len(plaintextPadded)], ctrBlock); err != nil {
		return err
	}

	return generateTag(c, h, icb, aad, ciphertextOut[:len(plaintextPadded)], len(plaintextPadded)*8, union, tagOut[:consts.TagSize])
}

// Decrypt verifies tag against the recomputed tag in constant time and,
// only on a match, writes plaintextOut. ciphertext must already be
// block-aligned (Invariant 2) — it is the caller's job to have stored
// the padded ciphertext Encrypt produced.
func Decrypt(ws []byte, key, iv, ciphertext, aad, tag, plaintextOut []byte) error {
	if len(ciphertext) == 0 && len(aad) == 0 {
		return gcmerr.ErrEmptyInput
	}
	if len(ciphertext)%consts.BlockSize != 0 {
		return gcmerr.ErrBadAlignment
	}
	if len(ciphertext) > consts.MaxDataLen-consts.BlockSize {
		return gcmerr.ErrSizeOverflow
	}
	if len(aad) > consts.MaxDataLen {
		return gcmerr.ErrSizeOverflow
	}
	if key == nil || iv == nil || tag == nil || len(tag) < consts.TagSize {
		return gcmerr.ErrBadArgument
	}
	if len(ws) < RequiredDec {
		return gcmerr.ErrBadArgument
	}
	if len(ciphertext) > 0 && len(plaintextOut) < len(ciphertext) {
		return gcmerr.ErrBadArgument
	}

	c, err := block.New(ws[:consts.RoundKeyBytes], key)
	if err != nil {
		return err
	}
	defer c.Zero()
	gcmScratch := ws[consts.RoundKeyBytes:]
	defer zero(gcmScratch)

	var h, icb [consts.BlockSize]byte
	if err := deriveH(c, &h); err != nil {
		return err
	}
	deriveICB(iv, &icb)

	calculatedTag := gcmScratch[2*consts.BlockSize : 3*consts.BlockSize]
	union := gcmScratch[3*consts.BlockSize:]

	if err := generateTag(c, h, icb, aad, ciphertext, len(ciphertext)*8, union, calculatedTag); err != nil {
		return err
	}

	if subtle.ConstantTimeCompare(calculatedTag, tag[:consts.TagSize]) != 1 {
		return gcmerr.ErrAuthFailure
	}

	startCtr := icb
	incrementCounter(startCtr[:])
	ctrBlock := union[0:consts.BlockSize]
	if len(ciphertext) > 0 {
		if err := gctrPadded(c, startCtr, ciphertext, plaintextOut[:len(ciphertext)], ctrBlock); err != nil {
			return err
		}
	}

	return nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
