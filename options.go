package lz10

// Options configures decompression.
type Options struct {
	// Overlay selects the overlay variant of the format, where back-reference
	// distances are stored minus 3 instead of minus 1.
	Overlay bool
	// MaxOutputSize rejects streams whose header announces more bytes (0 = MaxInputSize).
	MaxOutputSize int
}

// DefaultOptions returns options for plain LZ10 streams of any valid size.
func DefaultOptions() *Options {
	return &Options{
		MaxOutputSize: MaxInputSize,
	}
}

// distanceBias returns the value added to a stored distance field.
func (o *Options) distanceBias() int {
	if o.Overlay {
		return overlayOffset
	}

	return 1
}

// sizeLimit returns the effective output size limit.
func (o *Options) sizeLimit() int {
	if o.MaxOutputSize <= 0 || o.MaxOutputSize > MaxInputSize {
		return MaxInputSize
	}

	return o.MaxOutputSize
}
