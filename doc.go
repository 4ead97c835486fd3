// Package zx0 implements the core of an optimal-parse compressor for the
// ZX0 format: a byte-aligned LZ77-family compression scheme designed by
// Einar Saukas for fast decompression on 8-bit machines.
//
// Unlike a greedy LZ77 compressor, zx0 searches for the encoding with the
// minimum total bit length over the whole input using a dynamic-programming
// sweep (see optimize in optimizer.go), then backtracks through the
// resulting graph (see backtrack in backtrack.go) and emits the chosen parse as an interlaced-Elias-gamma
// bitstream (see the bitWriter type in emitter.go).
//
// Two entry points are provided: the Compressor builder, for configuring
// skip/backwards/quick/classic modes and a progress callback, and the
// Compress shortcut for default settings.
//
//	out, err := zx0.Compress(data)
//
//	c := zx0.NewCompressor().QuickMode(true)
//	result, err := c.Compress(data)
//
// zx0 does not decompress. It carries no process-wide mutable state, so a
// Compressor may be reused, and concurrent calls to Compress from separate
// goroutines never interfere with each other.
package zx0
