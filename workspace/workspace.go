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

// Package workspace is the convenience facade over package gcm. It comes
// in two shapes: a "stateless" shape that allocates its own scratch
// buffer per call (for ordinary Go callers who don't care), and a
// caller-supplied-scratch ("bring your own buffer") shape for callers
// that want to own and reuse the scratch buffer (package gcm still
// allocates its cipher state on the heap in both shapes).
// RequiredEnc/RequiredEncPadded/RequiredDec/RequiredMax let
// an embedded caller size a static buffer once, at compile or init
// time, instead of probing.
package workspace

import (
	"github.com/opentrv/otaesgcm/gcm"
	"github.com/opentrv/otaesgcm/gcmerr"
	"github.com/opentrv/otaesgcm/internal/consts"
)

// RequiredEnc returns the workspace size Encrypt needs.
func RequiredEnc() int { return gcm.RequiredEnc }

// RequiredEncPadded returns the workspace size EncryptPadded needs.
func RequiredEncPadded() int { return gcm.RequiredEncPadded }

// RequiredDec returns the workspace size Decrypt needs.
func RequiredDec() int { return gcm.RequiredDec }

// RequiredMax returns the largest workspace any operation in this
// package needs, for a caller that wants one static buffer sized once
// and reused across encrypt and decrypt calls.
func RequiredMax() int { return gcm.RequiredMax }

// IsSufficientEnc reports whether ws is large enough for Encrypt.
func IsSufficientEnc(ws []byte) bool { return len(ws) >= gcm.RequiredEnc }

// IsSufficientEncPadded reports whether ws is large enough for
// EncryptPadded.
func IsSufficientEncPadded(ws []byte) bool { return len(ws) >= gcm.RequiredEncPadded }

// IsSufficientDec reports whether ws is large enough for Decrypt.
func IsSufficientDec(ws []byte) bool { return len(ws) >= gcm.RequiredDec }

// Encrypt is the stateless unpadded AEAD encrypt entry point: it
// allocates its own scratch workspace, sized exactly to RequiredEnc,
// zeroes it on return, and delegates to gcm.Encrypt. Use
// EncryptWithWorkspace instead when the allocation is unwanted.
func Encrypt(key, iv, plaintext, aad, ciphertextOut, tagOut []byte) error {
	ws := make([]byte, gcm.RequiredEnc)
	return gcm.Encrypt(ws, key, iv, plaintext, aad, ciphertextOut, tagOut)
}

// EncryptPadded is the stateless block-aligned AEAD encrypt entry
// point. See Encrypt.
func EncryptPadded(key, iv, plaintextPadded, aad, ciphertextOut, tagOut []byte) error {
	ws := make([]byte, gcm.RequiredEncPadded)
	return gcm.EncryptPadded(ws, key, iv, plaintextPadded, aad, ciphertextOut, tagOut)
}

// Decrypt is the stateless AEAD decrypt/verify entry point. See
// Encrypt.
func Decrypt(key, iv, ciphertext, aad, tag, plaintextOut []byte) error {
	ws := make([]byte, gcm.RequiredDec)
	return gcm.Decrypt(ws, key, iv, ciphertext, aad, tag, plaintextOut)
}

// EncryptWithWorkspace is Encrypt with a caller-supplied workspace, for
// callers avoiding heap allocation. It reports gcmerr.ErrBadArgument,
// via gcm.Encrypt, if ws is undersized rather than allocating a
// replacement.
func EncryptWithWorkspace(ws []byte, key, iv, plaintext, aad, ciphertextOut, tagOut []byte) error {
	return gcm.Encrypt(ws, key, iv, plaintext, aad, ciphertextOut, tagOut)
}

// EncryptPaddedWithWorkspace is EncryptPadded with a caller-supplied
// workspace.
func EncryptPaddedWithWorkspace(ws []byte, key, iv, plaintextPadded, aad, ciphertextOut, tagOut []byte) error {
	return gcm.EncryptPadded(ws, key, iv, plaintextPadded, aad, ciphertextOut, tagOut)
}

// DecryptWithWorkspace is Decrypt with a caller-supplied workspace.
func DecryptWithWorkspace(ws []byte, key, iv, ciphertext, aad, tag, plaintextOut []byte) error {
	return gcm.Decrypt(ws, key, iv, ciphertext, aad, tag, plaintextOut)
}

// EncryptFixed is the fixed-shape convenience adapter: plaintext is
// either nil/absent or exactly consts.FixedPlaintextSize bytes, iv is
// exactly consts.NonceSize bytes, and ciphertextOut/tagOut are sized to
// match. This mirrors the original library's single most common calling
// pattern (a fixed-size telemetry frame under one authentication tag)
// without forcing every caller through the general unpadded path.
func EncryptFixed(key, iv, aad, plaintext, ciphertextOut, tagOut []byte) error {
	if err := checkFixed(iv, plaintext); err != nil {
		return err
	}
	return EncryptPadded(key, iv, plaintext, aad, ciphertextOut, tagOut)
}

// DecryptFixed is the inverse of EncryptFixed.
func DecryptFixed(key, iv, aad, ciphertext, tag, plaintextOut []byte) error {
	if err := checkFixed(iv, ciphertext); err != nil {
		return err
	}
	return Decrypt(key, iv, ciphertext, aad, tag, plaintextOut)
}

// EncryptFixedWithWorkspace is EncryptFixed with a caller-supplied
// workspace.
func EncryptFixedWithWorkspace(ws []byte, key, iv, aad, plaintext, ciphertextOut, tagOut []byte) error {
	if err := checkFixed(iv, plaintext); err != nil {
		return err
	}
	return gcm.EncryptPadded(ws, key, iv, plaintext, aad, ciphertextOut, tagOut)
}

// DecryptFixedWithWorkspace is DecryptFixed with a caller-supplied
// workspace.
func DecryptFixedWithWorkspace(ws []byte, key, iv, aad, ciphertext, tag, plaintextOut []byte) error {
	if err := checkFixed(iv, ciphertext); err != nil {
		return err
	}
	return gcm.Decrypt(ws, key, iv, ciphertext, aad, tag, plaintextOut)
}

// checkFixed enforces the fixed-shape adapters' narrower precondition:
// data, if present at all, must be exactly FixedPlaintextSize bytes —
// nil/zero-length data is the legal "AAD only" case (scenario S5) and
// passes through unchanged.
func checkFixed(iv, data []byte) error {
	if len(iv) != consts.NonceSize {
		return gcmerr.ErrBadArgument
	}
	if len(data) != 0 && len(data) != consts.FixedPlaintextSize {
		return gcmerr.ErrBadArgument
	}
	return nil
}
