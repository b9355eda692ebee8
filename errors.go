// SPDX-License-Identifier: MIT

package wk

import "errors"

// Sentinel errors for codec construction, compression, and decompression.
var (
	// ErrInvalidConfig is returned by New when DictSize is not a power of two,
	// NumLowBits is out of range, or WordSizeBytes is not a supported word size.
	ErrInvalidConfig = errors.New("wk: invalid configuration")
	// ErrInvalidInput is returned by Compress when the source length is not a
	// multiple of the configured word size.
	ErrInvalidInput = errors.New("wk: input length is not a multiple of word size")
	// ErrCorruptFrame is returned by Decompress when the header is malformed,
	// offsets are non-monotonic, the frame is truncated, or a side array is
	// exhausted before num_words words have been produced.
	ErrCorruptFrame = errors.New("wk: corrupt frame")
	// ErrFormatError is returned by the bit packer when a precondition is
	// violated: width is not positive or exceeds the packing-word bit
	// budget, a symbol does not fit in width bits, packed input length is
	// not a multiple of the packing-word size, or packed input holds fewer
	// symbols than requested.
	ErrFormatError = errors.New("wk: bit packer format error")
)
