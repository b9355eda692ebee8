// SPDX-License-Identifier: MIT

/*
Package wk implements the WK word-oriented, dictionary-based page
compressor: a word classifier backed by a bounded recency dictionary,
a partial-match high/low-bit split, and a packed binary container.

The codec is configured once and then used to compress or decompress
many independent buffers; each call is stateless with respect to the
others (no dictionary persists between calls).

# Compress

	c, err := wk.New(wk.DefaultConfig())
	if err != nil {
		// invalid configuration
	}
	frame, err := c.Compress(page)

# Decompress

The same Config used to compress must be supplied to decompress — the
frame does not carry its own parameters:

	page, err := c.Decompress(frame)

# Configuration

	cfg := wk.Config{
		WordSizeBytes:    8,
		PackingWordBytes: 8,
		DictSize:         16,
		NumLowBits:       10,
	}
	c, err := wk.New(cfg)

DictSize must be a power of two; NumLowBits must be less than
8*WordSizeBytes. New returns ErrInvalidConfig otherwise.

# Layering Huffman on top

The sibling package wk/huffman is a canonical Huffman byte coder that can
compress a WK frame's output as a second stage:

	frame, _ := c.Compress(page)
	encoded, _ := huffman.Compress(frame)
	decoded, _ := huffman.Decompress(encoded)
	page, _ = c.Decompress(decoded)
*/
package wk
