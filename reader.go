package lz10

import (
	"errors"
	"io"
)

// streamReader reads stream bytes, counts them and turns EOF into a
// position-specific error.
type streamReader struct {
	base  io.ByteReader // The byte source.
	count int64         // Bytes consumed so far.
}

// next reads one byte. EOF is reported as eofErr, other errors pass through.
func (r *streamReader) next(eofErr error) (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, eofErr
		}

		return 0, err
	}

	r.count++

	return b, nil
}

// header reads and decodes the 4-byte stream header.
func (r *streamReader) header() (Header, error) {
	var buf [HeaderSize]byte
	for i := range buf {
		b, err := r.next(ErrInputTooShort)
		if err != nil {
			return Header{}, err
		}
		buf[i] = b
	}

	return decodeHeader(buf[:])
}
