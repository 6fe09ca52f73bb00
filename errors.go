// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz10

package lz10

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrInputTooLarge      = errors.New("input exceeds 24-bit size field")
	ErrAllocationFailure  = errors.New("output buffer exceeds maximum compressed size")
	ErrInputTooShort      = errors.New("not enough data for header")
	ErrBadMagic           = errors.New("not an lz10 stream")
	ErrUnexpectedEOF      = errors.New("unexpected end of input while reading flags")
	ErrUnexpectedEOFToken = errors.New("unexpected end of input inside flags block")
	ErrLookBehindUnderrun = errors.New("back-reference before start of output")
	ErrOutputOverrun      = errors.New("back-reference past decompressed size")
	ErrTrailingData       = errors.New("trailing bytes after lz10 stream")
	ErrNilReader          = errors.New("reader is nil")
)
