package zx0

// CompressionResult is the outcome of a single compression run: the
// encoded bytes, the original input length, and the delta safety margin
// a decompressor must keep between its output and input cursors to
// decompress in place.
type CompressionResult struct {
	Output       []byte
	Delta        int
	OriginalSize int
}

// Compressor configures one compression run. The zero value is valid and
// matches the package-level Compress shortcut: no skip, default window,
// v2 offset encoding, no progress reporting.
//
// A Compressor holds no mutable state once configured, so it is safe to
// reuse across any number of calls to Compress, including concurrently
// from separate goroutines.
type Compressor struct {
	skip             int
	quickMode        bool
	backwardsMode    bool
	classicMode      bool
	progressCallback ProgressFunc
}

// NewCompressor returns a Compressor with default settings.
func NewCompressor() *Compressor {
	return &Compressor{}
}

// SkipBytes sets the number of leading input bytes to copy past
// uncompressed, excluded from the optimal parse. n must be smaller than
// the eventual input length.
func (c *Compressor) SkipBytes(n int) *Compressor {
	c.skip = n
	return c
}

// QuickMode trades compression ratio for a smaller search window,
// shrinking the maximum back-reference offset from 32640 to 2176.
func (c *Compressor) QuickMode(enabled bool) *Compressor {
	c.quickMode = enabled
	return c
}

// BackwardsMode compresses input as if it were reversed, for streams
// that are meant to be decompressed from their end backwards. It also
// reverses the final output byte order.
func (c *Compressor) BackwardsMode(enabled bool) *Compressor {
	c.backwardsMode = enabled
	return c
}

// ClassicMode emits the original (v1) bitstream polarity for the
// offset's high byte instead of the current (v2) default, for
// compatibility with decompressors that predate v2.
func (c *Compressor) ClassicMode(enabled bool) *Compressor {
	c.classicMode = enabled
	return c
}

// ProgressCallback registers a function invoked periodically during the
// optimizer sweep with the fraction of input processed so far. Pass nil
// to disable progress reporting.
func (c *Compressor) ProgressCallback(fn ProgressFunc) *Compressor {
	c.progressCallback = fn
	return c
}

// Compress runs the optimal parse and bit emitter over input and returns
// the compressed result. Compress is safe to call concurrently on the
// same Compressor, and repeatedly on a single goroutine: it mutates
// nothing but its own stack.
func (c *Compressor) Compress(input []byte) (CompressionResult, error) {
	if len(input) == 0 {
		return CompressionResult{}, ErrEmptyInput
	}
	if c.skip >= len(input) {
		return CompressionResult{}, ErrSkipOutOfRange
	}

	maxOffset := maxOffsetDefault
	if c.quickMode {
		maxOffset = maxOffsetQuick
	}

	work := input
	if c.backwardsMode {
		work = reverseBytes(input)
	}

	a, terminal := optimize(work, c.skip, maxOffset, c.progressCallback)
	ops := backtrack(a, terminal)

	invert := !c.classicMode && !c.backwardsMode
	output, delta := emit(ops, work, c.skip, c.backwardsMode, invert)

	if c.backwardsMode {
		output = reverseBytes(output)
	}

	return CompressionResult{
		Output:       output,
		Delta:        delta,
		OriginalSize: len(input),
	}, nil
}

// reverseBytes returns a new slice holding v's bytes in reverse order.
func reverseBytes(v []byte) []byte {
	out := make([]byte, len(v))
	for i, b := range v {
		out[len(v)-1-i] = b
	}
	return out
}

// Compress encodes input with default settings: no skip, the full
// 32640-byte search window, and v2 offset encoding. It is equivalent to
// NewCompressor().Compress(input), discarding everything but the
// compressed bytes.
func Compress(input []byte) ([]byte, error) {
	result, err := NewCompressor().Compress(input)
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}
