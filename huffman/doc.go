// SPDX-License-Identifier: MIT

/*
Package huffman implements a canonical Huffman byte coder with a compact
length-only header, suitable as an optional second compression stage
over another codec's output.

# Compress

	encoded, err := huffman.Compress(data)

# Decompress

	decoded, err := huffman.Decompress(encoded)

The codebook is derived entirely from the 128-byte length table carried
in the header (two 4-bit lengths per byte); no frequency table or tree
is transmitted. Code lengths are limited to 15 bits so they fit the
4-bit field.
*/
package huffman
