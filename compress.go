// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2011 CUE, 2017 Dorkmaster Flek, 2026 WoozyMasta
// Source: github.com/woozymasta/lz10

package lz10

import "fmt"

// CompressBound returns the largest output Compress can produce for n input
// bytes: header, every byte as a literal, one flag byte per 8 literals.
func CompressBound(n int) int {
	return HeaderSize + n + (n+FlagBits-1)/FlagBits
}

// Compress compresses src into a new LZ10 stream.
// Output is identical to the reference GBA/DS tools for the same input.
// Compress is safe for concurrent use.
func Compress(src []byte) ([]byte, error) {
	if len(src) > MaxInputSize {
		return nil, fmt.Errorf("%w: len=%d max=%d", ErrInputTooLarge, len(src), MaxInputSize)
	}

	bound := CompressBound(len(src))
	if bound > MaxCompressedSize {
		return nil, fmt.Errorf("%w: bound=%d", ErrAllocationFailure, bound)
	}

	out, err := AppendHeader(make([]byte, 0, bound), len(src))
	if err != nil {
		return nil, err
	}
	if len(src) == 0 {
		return out, nil
	}

	t := acquireMatchTree()
	defer releaseMatchTree(t)

	return t.pack(out, src), nil
}

// pack appends the flag blocks for src to out. src must not be empty.
func (t *matchTree) pack(out, src []byte) []byte {
	// remaining counts lookahead bytes at the cursor that exist in src.
	remaining := min(len(src), MaxMatch)

	// r is the cursor, s the oldest window slot, next the first unread src byte.
	r := WindowSize - remaining
	s := 0
	next := copy(t.ring[r:], src[:remaining])
	t.insert(r)

	flagPos := 0
	var mask byte
	for remaining > 0 {
		if mask >>= 1; mask == 0 {
			flagPos = len(out)
			out = append(out, 0)
			mask = flagMask
		}

		length := min(t.matchLen, remaining)
		if length > Threshold {
			out[flagPos] |= mask
			dist := ((r - t.matchPos) & ringMask) - 1
			out = append(out, byte((length-MinMatch)<<4|dist>>8), byte(dist))
		} else {
			length = 1
			out = append(out, t.ring[r])
		}

		i := 0
		for ; i < length && next < len(src); i++ {
			t.remove(s)
			c := src[next]
			next++
			t.ring[s] = c
			if s < MaxMatch-1 {
				t.ring[s+WindowSize] = c
			}

			s = (s + 1) & ringMask
			r = (r + 1) & ringMask
			t.insert(r)
		}

		// Input exhausted: the lookahead shrinks and nothing new is indexed.
		for ; i < length; i++ {
			t.remove(s)
			s = (s + 1) & ringMask
			r = (r + 1) & ringMask
			remaining--
			if remaining > 0 {
				t.insert(r)
			}
		}
	}

	return out
}
