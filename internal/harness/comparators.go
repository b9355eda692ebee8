// SPDX-License-Identifier: MIT

package harness

import (
	"bytes"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zlib"
	"github.com/ulikunitz/xz/lzma"

	"github.com/wkpage/wk"
	"github.com/wkpage/wk/huffman"
)

// wkAlgorithm wraps a configured wk.Codec as an Algorithm for the
// "wk" driver algorithm name.
type wkAlgorithm struct {
	codec *wk.Codec
}

// NewWKAlgorithm adapts codec to the Algorithm interface.
func NewWKAlgorithm(codec *wk.Codec) Algorithm {
	return wkAlgorithm{codec: codec}
}

func (a wkAlgorithm) Name() string { return "wk" }

func (a wkAlgorithm) Compress(page []byte) ([]byte, error) {
	return a.codec.Compress(page)
}

// Codec exposes the underlying *wk.Codec, e.g. so a caller can inspect
// Config().Debug to decide its own logging verbosity.
func (a wkAlgorithm) Codec() *wk.Codec { return a.codec }

// wkHuffmanAlgorithm layers the canonical Huffman byte coder on top of a
// WK frame, for the "wk-huffman" driver algorithm name.
type wkHuffmanAlgorithm struct {
	codec *wk.Codec
}

// NewWKHuffmanAlgorithm adapts codec, followed by huffman.Compress, to
// the Algorithm interface.
func NewWKHuffmanAlgorithm(codec *wk.Codec) Algorithm {
	return wkHuffmanAlgorithm{codec: codec}
}

func (a wkHuffmanAlgorithm) Name() string { return "wk-huffman" }

func (a wkHuffmanAlgorithm) Compress(page []byte) ([]byte, error) {
	frame, err := a.codec.Compress(page)
	if err != nil {
		return nil, err
	}
	return huffman.Compress(frame)
}

// Codec exposes the underlying *wk.Codec, e.g. so a caller can inspect
// Config().Debug to decide its own logging verbosity.
func (a wkHuffmanAlgorithm) Codec() *wk.Codec { return a.codec }

// The remaining Algorithm implementations wrap general-purpose
// compressors as opaque byte-in/byte-out collaborators: the driver never
// inspects their internals, only the size of what they return.

type zlibAlgorithm struct{}

// NewZlibAlgorithm constructs the "zlib" comparison Algorithm.
func NewZlibAlgorithm() Algorithm { return zlibAlgorithm{} }

func (zlibAlgorithm) Name() string { return "zlib" }

func (zlibAlgorithm) Compress(page []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(page); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type lzmaAlgorithm struct{}

// NewLZMAAlgorithm constructs the "lzma" comparison Algorithm.
func NewLZMAAlgorithm() Algorithm { return lzmaAlgorithm{} }

func (lzmaAlgorithm) Name() string { return "lzma" }

func (lzmaAlgorithm) Compress(page []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(page); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type bzip2Algorithm struct{}

// NewBzip2Algorithm constructs the "bzip" comparison Algorithm.
func NewBzip2Algorithm() Algorithm { return bzip2Algorithm{} }

func (bzip2Algorithm) Name() string { return "bzip2" }

func (bzip2Algorithm) Compress(page []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := bzip2.NewWriter(&buf)
	if _, err := w.Write(page); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
