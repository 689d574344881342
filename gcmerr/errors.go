// Package gcmerr defines the sentinel errors every precondition violation
// and authentication outcome in this module is reported through. Every
// precondition check in package gcm returns one of these (or nil on
// success) instead of the boolean-plus-out-of-band-reason-code
// convention of the C library this package's algorithms are drawn
// from. A key that is not 16 bytes long is not one of those checks: the
// key schedule rejects it with its own error, which is not a sentinel.
package gcmerr

import "errors"

var (
	// ErrBadArgument covers a nil key/IV/tag, a nil ciphertext buffer
	// where encrypt requires one, or a nil/undersized workspace.
	ErrBadArgument = errors.New("aes128gcm: bad argument")

	// ErrSizeOverflow is returned when a plaintext or ciphertext is
	// longer than the 255 byte length-field ceiling minus one block
	// (239 bytes), or the associated data is longer than 255 bytes.
	ErrSizeOverflow = errors.New("aes128gcm: length would overflow padded length field")

	// ErrBadAlignment is returned when Decrypt is called with a
	// ciphertext length that is not a multiple of the block size.
	ErrBadAlignment = errors.New("aes128gcm: ciphertext length not a multiple of the block size")

	// ErrEmptyInput is returned when both the plaintext/ciphertext and
	// the associated data are zero length — nothing would be
	// authenticated.
	ErrEmptyInput = errors.New("aes128gcm: plaintext and associated data both empty")

	// ErrAuthFailure is returned by Decrypt when the computed tag does
	// not match the supplied tag.
	ErrAuthFailure = errors.New("aes128gcm: authentication tag mismatch")
)
