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

// Package consts defines the fixed sizes used by the AES-128-GCM
// implementation. Unlike a general-purpose AES library, every size here
// is pinned to the single variant this package supports.
package consts

const (
	// BlockSize is both the AES block size and the GCM block size.
	BlockSize = 16

	// KeySize is the AES-128 key size.
	KeySize = 16

	// WordSize is the size of a key-schedule word.
	WordSize = 4

	// Nk is the number of 32 bit words in the key.
	Nk = 4

	// Nr is the number of AES-128 rounds.
	Nr = 10

	// Nb is the number of words processed per key-schedule step.
	Nb = 4

	// RoundKeys is the number of derived round keys, Nr+1.
	RoundKeys = Nr + 1

	// RoundKeyBytes is the total size of the expanded key schedule.
	RoundKeyBytes = BlockSize * RoundKeys

	// NonceSize is the only IV length this package accepts (96 bits).
	NonceSize = 12

	// CounterSize is the size of the portion of a counter block that
	// the low-order counter occupies (the remaining BlockSize-CounterSize
	// bytes hold the nonce).
	CounterSize = BlockSize - NonceSize

	// TagSize is the size of a GCM authentication tag.
	TagSize = 16

	// MaxDataLen is the largest plaintext/ciphertext/AAD length this
	// package accepts, matching the 8 bit length fields of the source
	// this spec was distilled from.
	MaxDataLen = 255

	// FixedPlaintextSize is the plaintext size used by the fixed-shape
	// convenience adapters in package workspace.
	FixedPlaintextSize = 32
)
