/*
Package lz10 implements LZ10 (LZSS type 0x10) compression and decompression, the
format used by Nintendo GBA, DS and 3DS game data (BIOS LZ77UnComp, DARC/BCLYT assets).

Format: 4-byte header, magic 0x10 plus decompressed size as 24-bit little endian.
Then one flag byte per 8 tokens, most significant bit first; bit 0 = literal (1 byte),
bit 1 = back-reference (2 bytes). Reference: big-endian 16-bit word, high nibble is
length-3 (3..18 bytes), low 12 bits are distance-1 (1..4096 bytes back).
There is no terminator: decoding stops when the announced size is reached.

The compressor is a greedy longest-match encoder over a 4096-byte window indexed
by one binary search tree per first byte. Its output is byte-identical to the
reference GBA/DS tools. Input is limited to MaxInputSize (16 MiB - 1).

Use Compress(src) to build a stream; it is safe for concurrent use.
Use Decompress(src, opts) with nil for default options.
Use DecompressBlock(src, opts) to decode from the beginning of src and get consumed bytes.
Use DecompressFromReader(r, opts) to decode one stream from an io.Reader.
Use ParseHeader or DecompressedSize to inspect a stream without decoding it.

# Examples

Round-trip compress and decompress:

	enc, err := lz10.Compress(data)
	if err != nil {
		return err
	}
	dec, err := lz10.Decompress(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Decompress one stream from an archive entry padded to 4 bytes:

	out, consumed, err := lz10.DecompressBlock(entry, nil)
	if err != nil {
		return err
	}
	_ = consumed

Decompress an overlay stream (distance stored minus 3) with a size cap:

	out, err := lz10.Decompress(src, &lz10.Options{Overlay: true, MaxOutputSize: 1 << 20})
*/
package lz10
