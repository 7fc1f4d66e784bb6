// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/gif

package gif

import "errors"

// Package errors. A nil error from Decode means terminal success.
// ErrShortRead and ErrShortWrite are suspensions: feed more input or free
// output space and call Decode again on the same decoder. Every other
// error is fatal and pins the decoder until Init is called again.
var (
	// Suspensions (recoverable, never pinned).
	ErrShortRead  = errors.New("short read")
	ErrShortWrite = errors.New("short write")

	// Contract violations (caller bugs, not malformed input).
	ErrBadReceiver          = errors.New("bad receiver")
	ErrBadArgument          = errors.New("bad argument")
	ErrInitializerNotCalled = errors.New("initializer not called")
	ErrInvalidIO            = errors.New("invalid I/O operation")
	ErrClosedForWrites      = errors.New("closed for writes")

	// Malformed or truncated input.
	ErrUnexpectedEOF     = errors.New("unexpected EOF")
	ErrBadHeader         = errors.New("bad GIF header")
	ErrBadBlock          = errors.New("bad GIF block")
	ErrBadExtensionLabel = errors.New("bad GIF extension label")

	// Unsupported feature (explicit refusal, not silent misdecoding).
	ErrUnsupportedLocalColorTable = errors.New("unsupported local color table")

	// Corrupt compressed data.
	ErrBadLiteralWidth     = errors.New("bad LZW literal width")
	ErrCodeOutOfRange      = errors.New("LZW code is out of range")
	ErrCyclicalPrefixChain = errors.New("LZW prefix chain is cyclical")

	// Internal consistency check; unreachable with correct block framing.
	ErrInternalInconsistentLimitedRead = errors.New("internal error: inconsistent limited read")
)

// IsSuspension reports whether err is a recoverable suspension: the caller
// should append source bytes (ErrShortRead) or free destination space
// (ErrShortWrite) and call Decode again.
func IsSuspension(err error) bool {
	return errors.Is(err, ErrShortRead) || errors.Is(err, ErrShortWrite)
}

// IsFatal reports whether err is a terminal decode failure. Fatal errors
// pin the decoder: further Decode calls return the same error until Init.
func IsFatal(err error) bool {
	return err != nil && !IsSuspension(err)
}
