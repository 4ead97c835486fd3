package zx0

import "errors"

// ErrEmptyInput is returned when Compress is called with a zero-length
// input. ZX0 has no representation for an empty stream.
var ErrEmptyInput = errors.New("zx0: input must not be empty")

// ErrSkipOutOfRange is returned when the configured skip count is not
// smaller than the input length, leaving no bytes for the compressor to
// actually encode.
var ErrSkipOutOfRange = errors.New("zx0: skip must be less than input length")

// internalInconsistency panics with a diagnostic message. It marks the
// small set of conditions that are bugs in the arena or backtracking
// logic and should never be reachable from valid input, as opposed to
// ordinary input-validation failures.
func internalInconsistency(msg string) {
	panic("zx0: internal inconsistency: " + msg)
}
