// SPDX-License-Identifier: MIT

package wk

import "sync"

// scratchPool holds reusable per-call scratch slices for Compress: tag
// symbols, full words, dict indices and low bits. Slices start empty and
// grow by append; a pooled scratch keeps the capacity of its largest
// earlier use, so repeated calls on same-sized pages avoid reallocating.
type scratchPool struct {
	pool sync.Pool
}

type scratch struct {
	tags        []uint64
	fullWords   []byte
	dictIndices []uint64
	lowBits     []uint64
}

func newScratchPool(c *Codec) *scratchPool {
	return &scratchPool{
		pool: sync.Pool{
			New: func() any {
				return &scratch{}
			},
		},
	}
}

func (p *scratchPool) get() *scratch {
	s := p.pool.Get().(*scratch)
	s.tags = s.tags[:0]
	s.fullWords = s.fullWords[:0]
	s.dictIndices = s.dictIndices[:0]
	s.lowBits = s.lowBits[:0]
	return s
}

func (p *scratchPool) put(s *scratch) {
	p.pool.Put(s)
}
