package lz10

// LZ10 format constants.
const (
	Magic         = 0x10 // First header byte of an LZ10 stream.
	HeaderSize    = 4    // Magic byte plus 24-bit little-endian decompressed size.
	WindowSize    = 4096 // Sliding window size (ring buffer), maximum back-reference distance.
	Threshold     = 2    // Longest match that is still stored as literals.
	MinMatch      = Threshold + 1
	MaxMatch      = 16 + Threshold // Maximum back-reference length (encoded as 3..18).
	FlagBits      = 8              // Tokens per flag byte.
	flagMask      = 0x80           // First token of a block is the most significant bit.
	overlayOffset = 3              // Distance bias of overlay streams (plain streams use 1).
)

// Size limits of the container.
const (
	MaxInputSize      = 0x00FFFFFF // Largest size the 24-bit header can carry.
	MaxCompressedSize = 0x01400000 // Worst case for MaxInputSize (header, data, flags) padded to 20 MiB.
)
