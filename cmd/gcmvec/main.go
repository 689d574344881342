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

// gcmvec runs the fixed NIST GCMVS-style test vectors (scenarios S1-S5)
// against package gcm, checks within each run that a tampered tag is
// rejected (scenario S6), and reports pass/fail per vector, for manual
// verification outside of `go test`. Expected ciphertext and tag are
// compared only for S3 and S4; S1, S2 and S5 are checked by round trip.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/opentrv/otaesgcm/gcm"
)

type vector struct {
	name           string
	key, iv, a, p  string
	wantC, wantTag string
}

var vectors = []vector{
	{
		name: "S1 all-zero 30-byte plaintext",
		key:  "00000000000000000000000000000000",
		iv:   "000000000000000000000000",
		a:    "00000000",
		p:    repeatHex("00", 30),
	},
	{
		name: "S2 9-byte plaintext, padding exercised",
		key:  "00000000000000000000000000000000",
		iv:   "000000000000000000000000",
		a:    "00000000",
		p:    repeatHex("55", 9),
	},
	{
		name:   "S3 GCMVS keylen=128 ptlen=128 aadlen=160",
		key:    "d4a22488f8dd1d5c6c19a7d6ca17964c",
		iv:     "f3d5837f22ac1a0425e0d1d5",
		a:      "f1c5d424b83f96c6ad8cb28ca0d20e475e023b5a",
		p:      "7b43016a16896497fb457be6d2a54122",
		wantC:  "c2bd67eef5e95cac27e3b06e3031d0a8",
		wantTag: "f23eacf9d1cdf8737726c58648826e9c",
	},
	{
		name:   "S4 GCMVS keylen=128 ptlen=256 aadlen=128",
		key:    "298efa1ccf29cf62ae6824bfc19557fc",
		iv:     "6f58a93fe1d207fae4ed2f6d",
		a:      "021fafd238463973ffe80256e5b1c6b1",
		p:      "cc38bccd6bc536ad919b1395f5d63801f99f8068d65ca5ac63872daf16b93901",
		wantC:  "dfce4e9cd291103d7fe4e63351d9e79d3dfd391e3267104658212da96521b7db",
		wantTag: "542465ef599316f73a7a560509a2d9f2",
	},
	{
		name: "S5 GMAC, no plaintext",
		key:  "00000000000000000000000000000000",
		iv:   "000000000000000000000000",
		a:    repeatHex("00", 16),
		p:    "",
	},
}

func repeatHex(byteHex string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += byteHex
	}
	return out
}

func decodeKeyHex(s string) []byte {
	b, _ := hex.DecodeString(s)
	return b[:16]
}

func run(v vector) error {
	key := decodeKeyHex(v.key)
	iv, _ := hex.DecodeString(v.iv)
	a, _ := hex.DecodeString(v.a)
	p, _ := hex.DecodeString(v.p)

	padded := (len(p) + 15) &^ 15
	ciphertext := make([]byte, padded)
	tag := make([]byte, 16)

	ws := make([]byte, gcm.RequiredEnc)
	if err := gcm.Encrypt(ws, key, iv, p, a, ciphertext, tag); err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	if v.wantC != "" {
		wantC, _ := hex.DecodeString(v.wantC)
		if hex.EncodeToString(ciphertext[:len(wantC)]) != hex.EncodeToString(wantC) {
			return fmt.Errorf("ciphertext mismatch: got %x want %x", ciphertext, wantC)
		}
	}
	if v.wantTag != "" {
		wantTag, _ := hex.DecodeString(v.wantTag)
		if hex.EncodeToString(tag) != hex.EncodeToString(wantTag) {
			return fmt.Errorf("tag mismatch: got %x want %x", tag, wantTag)
		}
	}

	plaintextOut := make([]byte, len(ciphertext))
	decWS := make([]byte, gcm.RequiredDec)
	if err := gcm.Decrypt(decWS, key, iv, ciphertext, a, tag, plaintextOut); err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	if hex.EncodeToString(plaintextOut[:len(p)]) != hex.EncodeToString(p) {
		return fmt.Errorf("round-trip plaintext mismatch")
	}

	// S6: tamper tag[0] bit 0, confirm decrypt rejects.
	tampered := append([]byte(nil), tag...)
	tampered[0] ^= 0x01
	tamperWS := make([]byte, gcm.RequiredDec)
	if err := gcm.Decrypt(tamperWS, key, iv, ciphertext, a, tampered, plaintextOut); err == nil {
		return fmt.Errorf("S6: decrypt accepted a tampered tag")
	}

	return nil
}

func main() {
	flag.Parse()

	failed := 0
	for _, v := range vectors {
		if err := run(v); err != nil {
			fmt.Printf("FAIL %-45s %v\n", v.name, err)
			failed++
			continue
		}
		fmt.Printf("PASS %-45s\n", v.name)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
