package gcm

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opentrv/otaesgcm/gcmerr"
	"github.com/opentrv/otaesgcm/internal/consts"
)

func decode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestEncryptS1AllZero30BytePlaintext(t *testing.T) {
	key := decode(t, "00000000000000000000000000000000")
	iv := decode(t, "000000000000000000000000")
	aad := decode(t, "00000000")
	plaintext := make([]byte, 30)

	ciphertext := make([]byte, paddedLen(len(plaintext)))
	tag := make([]byte, consts.TagSize)
	ws := make([]byte, RequiredEnc)

	require.NoError(t, Encrypt(ws, key, iv, plaintext, aad, ciphertext, tag))
	require.Equal(t, []byte{0x03, 0x88}, ciphertext[:2])
	require.Equal(t, byte(0x8b), ciphertext[29])
	require.Equal(t, byte(0xb6), tag[0])
	require.Equal(t, byte(0x18), tag[15])
}

func TestEncryptS2NineBytePlaintextPaddingExercised(t *testing.T) {
	key := decode(t, "000000000000000000000000000000")
	iv := decode(t, "000000000000000000000000")
	aad := decode(t, "00000000")
	plaintext := make([]byte, 9)
	for i := range plaintext {
		plaintext[i] = 0x55
	}

	ciphertext := make([]byte, paddedLen(len(plaintext)))
	tag := make([]byte, consts.TagSize)
	ws := make([]byte, RequiredEnc)

	require.NoError(t, Encrypt(ws, key, iv, plaintext, aad, ciphertext, tag))
	require.Equal(t, []byte{0x56, 0xdd}, ciphertext[:2])
	require.Equal(t, byte(0xa6), ciphertext[8])
	require.Equal(t, byte(0x9b), tag[0])
	require.Equal(t, byte(0x75), tag[15])
}

func TestEncryptS3GCMVSVector(t *testing.T) {
	key := decode(t, "d4a22488f8dd1d5c6c19a7d6ca17964c")
	iv := decode(t, "f3d5837f22ac1a0425e0d1d5")
	aad := decode(t, "f1c5d424b83f96c6ad8cb28ca0d20e475e023b5a")
	plaintext := decode(t, "7b43016a16896497fb457be6d2a54122")
	wantC := decode(t, "c2bd67eef5e95cac27e3b06e3031d0a8")
	wantT := decode(t, "f23eacf9d1cdf8737726c58648826e9c")

	ciphertext := make([]byte, paddedLen(len(plaintext)))
	tag := make([]byte, consts.TagSize)
	ws := make([]byte, RequiredEnc)

	require.NoError(t, Encrypt(ws, key, iv, plaintext, aad, ciphertext, tag))
	require.Equal(t, wantC, ciphertext)
	require.Equal(t, wantT, tag)
}

func TestEncryptS4GCMVSVector(t *testing.T) {
	key := decode(t, "298efa1ccf29cf62ae6824bfc19557fc")
	iv := decode(t, "6f58a93fe1d207fae4ed2f6d")
	aad := decode(t, "021fafd238463973ffe80256e5b1c6b1")
	plaintext := decode(t, "cc38bccd6bc536ad919b1395f5d63801f99f8068d65ca5ac63872daf16b93901")
	wantC := decode(t, "dfce4e9cd291103d7fe4e63351d9e79d3dfd391e3267104658212da96521b7db")
	wantT := decode(t, "542465ef599316f73a7a560509a2d9f2")

	ciphertext := make([]byte, paddedLen(len(plaintext)))
	tag := make([]byte, consts.TagSize)
	ws := make([]byte, RequiredEnc)

	require.NoError(t, Encrypt(ws, key, iv, plaintext, aad, ciphertext, tag))
	require.Equal(t, wantC, ciphertext)
	require.Equal(t, wantT, tag)

	t.Run("S6 tampered tag is rejected and plaintext is withheld", func(t *testing.T) {
		tampered := append([]byte(nil), tag...)
		tampered[0] ^= 0x01

		plaintextOut := make([]byte, len(ciphertext))
		for i := range plaintextOut {
			plaintextOut[i] = 0xAA
		}
		decWS := make([]byte, RequiredDec)

		err := Decrypt(decWS, key, iv, ciphertext, aad, tampered, plaintextOut)
		require.ErrorIs(t, err, gcmerr.ErrAuthFailure)

		for i, b := range plaintextOut {
			require.Equalf(t, byte(0xAA), b, "plaintextOut[%d] was overwritten on auth failure", i)
		}
	})
}

func TestS5GMACNoPlaintext(t *testing.T) {
	key := make([]byte, consts.KeySize)
	iv := make([]byte, consts.NonceSize)
	aad := make([]byte, 16)

	tag := make([]byte, consts.TagSize)
	ws := make([]byte, RequiredEnc)

	require.NoError(t, Encrypt(ws, key, iv, nil, aad, nil, tag))

	decWS := make([]byte, RequiredDec)
	require.NoError(t, Decrypt(decWS, key, iv, nil, aad, tag, nil))
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := decode(t, "298efa1ccf29cf62ae6824bfc19557fc")
	iv := decode(t, "6f58a93fe1d207fae4ed2f6d")
	aad := decode(t, "021fafd238463973ffe80256e5b1c6b1")
	plaintext := decode(t, "cc38bccd6bc536ad919b1395f5d63801f99f8068d65ca5ac63872daf16b93901")

	ciphertext := make([]byte, paddedLen(len(plaintext)))
	tag := make([]byte, consts.TagSize)
	ws := make([]byte, RequiredEnc)
	require.NoError(t, Encrypt(ws, key, iv, plaintext, aad, ciphertext, tag))

	plaintextOut := make([]byte, len(ciphertext))
	decWS := make([]byte, RequiredDec)
	require.NoError(t, Decrypt(decWS, key, iv, ciphertext, aad, tag, plaintextOut))
	require.Equal(t, plaintext, plaintextOut[:len(plaintext)])
}

func TestEncryptPaddedMatchesEncryptOnBlockAlignedInput(t *testing.T) {
	key := decode(t, "d4a22488f8dd1d5c6c19a7d6ca17964c")
	iv := decode(t, "f3d5837f22ac1a0425e0d1d5")
	aad := decode(t, "f1c5d424b83f96c6ad8cb28ca0d20e475e023b5a")
	plaintext := make([]byte, 32)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}

	c1 := make([]byte, len(plaintext))
	tag1 := make([]byte, consts.TagSize)
	require.NoError(t, Encrypt(make([]byte, RequiredEnc), key, iv, plaintext, aad, c1, tag1))

	c2 := make([]byte, len(plaintext))
	tag2 := make([]byte, consts.TagSize)
	require.NoError(t, EncryptPadded(make([]byte, RequiredEncPadded), key, iv, plaintext, aad, c2, tag2))

	require.Equal(t, c1, c2)
	require.Equal(t, tag1, tag2)
}

func TestDecryptDetectsCiphertextTamper(t *testing.T) {
	key := decode(t, "d4a22488f8dd1d5c6c19a7d6ca17964c")
	iv := decode(t, "f3d5837f22ac1a0425e0d1d5")
	aad := decode(t, "f1c5d424b83f96c6ad8cb28ca0d20e475e023b5a")
	plaintext := decode(t, "7b43016a16896497fb457be6d2a54122")

	ciphertext := make([]byte, paddedLen(len(plaintext)))
	tag := make([]byte, consts.TagSize)
	require.NoError(t, Encrypt(make([]byte, RequiredEnc), key, iv, plaintext, aad, ciphertext, tag))

	ciphertext[0] ^= 0x01
	plaintextOut := make([]byte, len(ciphertext))
	err := Decrypt(make([]byte, RequiredDec), key, iv, ciphertext, aad, tag, plaintextOut)
	require.ErrorIs(t, err, gcmerr.ErrAuthFailure)
}

func TestDecryptDetectsAADTamper(t *testing.T) {
	key := decode(t, "d4a22488f8dd1d5c6c19a7d6ca17964c")
	iv := decode(t, "f3d5837f22ac1a0425e0d1d5")
	aad := decode(t, "f1c5d424b83f96c6ad8cb28ca0d20e475e023b5a")
	plaintext := decode(t, "7b43016a16896497fb457be6d2a54122")

	ciphertext := make([]byte, paddedLen(len(plaintext)))
	tag := make([]byte, consts.TagSize)
	require.NoError(t, Encrypt(make([]byte, RequiredEnc), key, iv, plaintext, aad, ciphertext, tag))

	aad[0] ^= 0x01
	plaintextOut := make([]byte, len(ciphertext))
	err := Decrypt(make([]byte, RequiredDec), key, iv, ciphertext, aad, tag, plaintextOut)
	require.ErrorIs(t, err, gcmerr.ErrAuthFailure)
}

func TestEncryptRejectsBothEmpty(t *testing.T) {
	err := Encrypt(make([]byte, RequiredEnc), make([]byte, consts.KeySize), make([]byte, consts.NonceSize), nil, nil, nil, make([]byte, consts.TagSize))
	require.ErrorIs(t, err, gcmerr.ErrEmptyInput)
}

func TestDecryptRejectsMisalignedCiphertext(t *testing.T) {
	err := Decrypt(make([]byte, RequiredDec), make([]byte, consts.KeySize), make([]byte, consts.NonceSize), make([]byte, 5), []byte{0x01}, make([]byte, consts.TagSize), make([]byte, 5))
	require.ErrorIs(t, err, gcmerr.ErrBadAlignment)
}

func TestEncryptRejectsOversizedAAD(t *testing.T) {
	plaintext := make([]byte, 16)
	aad := make([]byte, consts.MaxDataLen+1)
	err := Encrypt(make([]byte, RequiredEnc), make([]byte, consts.KeySize), make([]byte, consts.NonceSize), plaintext, aad, make([]byte, 16), make([]byte, consts.TagSize))
	require.ErrorIs(t, err, gcmerr.ErrSizeOverflow)
}

func TestDecryptRejectsOversizedAAD(t *testing.T) {
	ciphertext := make([]byte, 16)
	aad := make([]byte, consts.MaxDataLen+1)
	err := Decrypt(make([]byte, RequiredDec), make([]byte, consts.KeySize), make([]byte, consts.NonceSize), ciphertext, aad, make([]byte, consts.TagSize), make([]byte, 16))
	require.ErrorIs(t, err, gcmerr.ErrSizeOverflow)
}

func TestEncryptRejectsUndersizedWorkspace(t *testing.T) {
	plaintext := make([]byte, 16)
	err := Encrypt(make([]byte, RequiredEnc-1), make([]byte, consts.KeySize), make([]byte, consts.NonceSize), plaintext, nil, make([]byte, 16), make([]byte, consts.TagSize))
	require.ErrorIs(t, err, gcmerr.ErrBadArgument)
}

func TestEncryptAcceptsOversizedWorkspace(t *testing.T) {
	plaintext := make([]byte, 16)
	err := Encrypt(make([]byte, RequiredEnc+64), make([]byte, consts.KeySize), make([]byte, consts.NonceSize), plaintext, nil, make([]byte, 16), make([]byte, consts.TagSize))
	require.NoError(t, err)
}

func TestWorkspaceIsZeroedAfterEncrypt(t *testing.T) {
	key := make([]byte, consts.KeySize)
	iv := make([]byte, consts.NonceSize)
	plaintext := make([]byte, 16)
	ws := make([]byte, RequiredEnc)

	require.NoError(t, Encrypt(ws, key, iv, plaintext, nil, make([]byte, 16), make([]byte, consts.TagSize)))

	for i, b := range ws[consts.RoundKeyBytes:] {
		require.Equalf(t, byte(0), b, "gcm scratch byte %d not zeroed after Encrypt", i)
	}
}
