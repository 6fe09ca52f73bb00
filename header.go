package lz10

import (
	"encoding/binary"
	"fmt"
)

// Header is the fixed 4-byte prefix of an LZ10 stream.
type Header struct {
	Size int // Decompressed size in bytes.
}

// ParseHeader reads the stream header from the beginning of src.
func ParseHeader(src []byte) (Header, error) {
	if len(src) < HeaderSize {
		return Header{}, ErrInputTooShort
	}

	return decodeHeader(src[:HeaderSize])
}

// DecompressedSize returns the decompressed size announced by the header of src.
func DecompressedSize(src []byte) (int, error) {
	h, err := ParseHeader(src)
	if err != nil {
		return 0, err
	}

	return h.Size, nil
}

// AppendHeader appends the header for a stream of size decompressed bytes.
func AppendHeader(dst []byte, size int) ([]byte, error) {
	if size < 0 || size > MaxInputSize {
		return dst, fmt.Errorf("%w: size=%d", ErrInputTooLarge, size)
	}

	return binary.LittleEndian.AppendUint32(dst, Magic|uint32(size)<<8), nil // #nosec G115 -- size checked above
}

// decodeHeader decodes exactly HeaderSize bytes.
func decodeHeader(b []byte) (Header, error) {
	if b[0] != Magic {
		return Header{}, fmt.Errorf("%w: magic=0x%02x", ErrBadMagic, b[0])
	}

	word := binary.LittleEndian.Uint32(b)
	return Header{Size: int(word >> 8)}, nil
}
