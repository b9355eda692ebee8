// SPDX-License-Identifier: MIT

package huffman

import "errors"

// Sentinel errors returned by Compress and Decompress.
var (
	// ErrCorruptFrame is returned by Decompress when the frame is shorter
	// than the fixed header, or the declared bit count exceeds the
	// available payload bits.
	ErrCorruptFrame = errors.New("huffman: corrupt frame")
	// ErrInvalidCode is returned by Decompress when a run of bits does not
	// match any code in the length table's canonical codebook.
	ErrInvalidCode = errors.New("huffman: invalid code in bitstream")
)
