// SPDX-License-Identifier: MIT

package wk

import "math/bits"

// Config configures a Codec. A Config is validated once at New and is
// immutable afterwards; it carries no per-call state.
type Config struct {
	// WordSizeBytes (W) is the word width used for classification and MISS
	// serialization. Supported values: 4, 8.
	WordSizeBytes int
	// PackingWordBytes (K) is the granularity of packed side-array output.
	PackingWordBytes int
	// DictSize (D) is the capacity of the recency dictionary. Must be a
	// power of two.
	DictSize int
	// NumLowBits (L) is the low-bit count for the PARTIAL split.
	// Must satisfy 1 <= NumLowBits < 8*WordSizeBytes.
	NumLowBits int
	// Debug has no effect on the wire format or on Explain, which is
	// always available regardless of this flag. It is a hint callers may
	// read via Config to decide their own logging verbosity; cmd/wkdriver
	// sets it from its --debug flag, which also selects a debug-level zap
	// logger.
	Debug bool
}

// DefaultConfig returns the configuration used by the reference corpus:
// 8-byte words, 8-byte packing words, a 16-entry dictionary, and 10 low bits.
func DefaultConfig() Config {
	return Config{
		WordSizeBytes:    8,
		PackingWordBytes: 8,
		DictSize:         16,
		NumLowBits:       10,
	}
}

// Codec is a configured, immutable WK codec instance. A Codec holds no
// per-call state and may be shared freely across goroutines.
type Codec struct {
	cfg            Config
	dictIndexBits  int
	lowBitMask     uint64
	highBitMask    uint64
	wordBits       int
	bufPool        *scratchPool
}

// New validates cfg and returns a ready-to-use Codec.
//
// Returns ErrInvalidConfig if DictSize is not a power of two, NumLowBits is
// not in [1, 8*WordSizeBytes), or WordSizeBytes is not 4 or 8.
func New(cfg Config) (*Codec, error) {
	if cfg.WordSizeBytes != 4 && cfg.WordSizeBytes != 8 {
		return nil, ErrInvalidConfig
	}
	if cfg.PackingWordBytes <= 0 || cfg.PackingWordBytes > 8 {
		return nil, ErrInvalidConfig
	}
	if cfg.DictSize <= 0 || cfg.DictSize&(cfg.DictSize-1) != 0 {
		return nil, ErrInvalidConfig
	}
	wordBits := cfg.WordSizeBytes * 8
	if cfg.NumLowBits < 1 || cfg.NumLowBits >= wordBits {
		return nil, ErrInvalidConfig
	}

	dictIndexBits := bits.Len(uint(cfg.DictSize - 1))
	if cfg.DictSize == 1 {
		dictIndexBits = 1
	}

	lowMask := uint64(1)<<uint(cfg.NumLowBits) - 1

	c := &Codec{
		cfg:           cfg,
		dictIndexBits: dictIndexBits,
		lowBitMask:    lowMask,
		highBitMask:   ^lowMask,
		wordBits:      wordBits,
	}
	c.bufPool = newScratchPool(c)
	return c, nil
}

// Config returns the codec's configuration.
func (c *Codec) Config() Config {
	return c.cfg
}
