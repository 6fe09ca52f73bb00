package lz10

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Decompress decompresses the LZ10 stream in src.
// Options nil means DefaultOptions. Bytes after the last token are an error.
func Decompress(src []byte, opts *Options) ([]byte, error) {
	out, consumed, err := DecompressBlock(src, opts)
	if err != nil {
		return nil, err
	}

	if consumed != len(src) {
		return nil, fmt.Errorf("%w: consumed=%d input=%d", ErrTrailingData, consumed, len(src))
	}

	return out, nil
}

// DecompressBlock decompresses one LZ10 stream from the beginning of src.
// It returns decompressed bytes and the number of consumed bytes (header included).
// Unlike Decompress, this function ignores trailing bytes such as archive padding.
func DecompressBlock(src []byte, opts *Options) ([]byte, int, error) {
	if len(src) < HeaderSize {
		return nil, 0, ErrInputTooShort
	}

	reader := &streamReader{base: bytes.NewReader(src)}
	out, err := decompressStream(reader, opts)

	return out, int(reader.count), err
}

// DecompressFromReader decompresses one LZ10 stream from r and returns consumed bytes.
// Decoding stops right after the token that completes the output. If r is not an
// io.ByteReader it is wrapped in a bufio.Reader, which may buffer bytes past the stream.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	byteReader, ok := r.(io.ByteReader)
	if !ok {
		byteReader = bufio.NewReader(r)
	}

	reader := &streamReader{base: byteReader}
	out, err := decompressStream(reader, opts)
	if err != nil {
		return nil, reader.count, err
	}

	return out, reader.count, nil
}

// decompressStream decodes header and flag blocks from r.
func decompressStream(r *streamReader, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	h, err := r.header()
	if err != nil {
		return nil, err
	}

	if limit := opts.sizeLimit(); h.Size > limit {
		return nil, fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, h.Size, limit)
	}

	bias := opts.distanceBias()
	out := make([]byte, h.Size)
	pos := 0

	for pos < len(out) {
		flags, err := r.next(ErrUnexpectedEOF)
		if err != nil {
			return nil, err
		}

		// Tokens run from the most significant bit; unused low bits are padding.
		for mask := byte(flagMask); mask != 0 && pos < len(out); mask >>= 1 {
			if flags&mask == 0 {
				b, err := r.next(ErrUnexpectedEOFToken)
				if err != nil {
					return nil, err
				}

				out[pos] = b
				pos++
				continue
			}

			hi, err := r.next(ErrUnexpectedEOFToken)
			if err != nil {
				return nil, err
			}
			lo, err := r.next(ErrUnexpectedEOFToken)
			if err != nil {
				return nil, err
			}

			// Reference: big-endian 16-bit = [(length-3)<<12 | (distance-bias)].
			length := int(hi>>4) + MinMatch
			dist := (int(hi&0x0F)<<8 | int(lo)) + bias
			if dist > pos {
				return nil, fmt.Errorf("%w: distance=%d pos=%d", ErrLookBehindUnderrun, dist, pos)
			}
			if pos+length > len(out) {
				return nil, fmt.Errorf("%w: length=%d pos=%d size=%d", ErrOutputOverrun, length, pos, len(out))
			}

			// Byte-by-byte so overlapping references (dist < length) repeat the run.
			for end := pos + length; pos < end; pos++ {
				out[pos] = out[pos-dist]
			}
		}
	}

	return out, nil
}
