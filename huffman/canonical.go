// SPDX-License-Identifier: MIT

package huffman

import (
	"container/heap"
	"sort"
)

// maxCodeLength is the widest code length the 4-bit length-table field
// can carry (spec: a length of 0 means "absent", so 1..15 are usable).
const maxCodeLength = 15

// huffNode is a node of the working Huffman tree. seq is a monotonically
// increasing insertion-order tiebreaker so the heap's popping order is
// fully deterministic regardless of Go's map/heap iteration order.
type huffNode struct {
	weight      uint64
	seq         int
	symbol      int
	left, right *huffNode
}

type nodeHeap []*huffNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*huffNode)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// buildLengths constructs a deterministic Huffman tree over the present
// symbols in freq and returns one code length per symbol, 0 for absent
// symbols, with every length bounded by maxCodeLength.
func buildLengths(freq *[256]uint64) [256]int {
	var lengths [256]int

	seq := 0
	present := 0
	onlySymbol := -1
	h := &nodeHeap{}
	for sym, w := range freq {
		if w == 0 {
			continue
		}
		heap.Push(h, &huffNode{weight: w, seq: seq, symbol: sym})
		seq++
		present++
		onlySymbol = sym
	}

	switch present {
	case 0:
		return lengths
	case 1:
		// A single distinct byte has no natural code; promote it to
		// length 1 so "0" is a well-defined codeword.
		lengths[onlySymbol] = 1
		return lengths
	}

	for h.Len() > 1 {
		a := heap.Pop(h).(*huffNode)
		b := heap.Pop(h).(*huffNode)
		parent := &huffNode{weight: a.weight + b.weight, seq: seq, left: a, right: b}
		seq++
		heap.Push(h, parent)
	}
	root := heap.Pop(h).(*huffNode)

	var walk func(n *huffNode, depth int)
	walk = func(n *huffNode, depth int) {
		if n.left == nil && n.right == nil {
			lengths[n.symbol] = depth
			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(root, 0)

	limitLengths(lengths[:], maxCodeLength)
	return lengths
}

// limitLengths rebounds any code length exceeding maxLen using the
// classic bit-length histogram rebalance from the JPEG standard's
// Huffman table generation (Annex K.3): code-length mass is moved down
// from the overflowing lengths while preserving the Kraft inequality,
// then lengths are reassigned to symbols in original-length order so
// symbols that started with the shortest codes tend to keep them.
func limitLengths(lengths []int, maxLen int) {
	maxNatural := 0
	present := 0
	for _, l := range lengths {
		if l > maxNatural {
			maxNatural = l
		}
		if l > 0 {
			present++
		}
	}
	if maxNatural <= maxLen {
		return
	}

	bits := make([]int, maxNatural+1)
	for _, l := range lengths {
		if l > 0 {
			bits[l]++
		}
	}

	for i := maxNatural; i > maxLen; i-- {
		for bits[i] > 0 {
			j := i - 2
			for bits[j] == 0 {
				j--
			}
			bits[i] -= 2
			bits[i-1]++
			bits[j+1] += 2
			bits[j]--
		}
	}

	type origOrder struct {
		symbol int
		length int
	}
	ordered := make([]origOrder, 0, present)
	for sym, l := range lengths {
		if l > 0 {
			ordered = append(ordered, origOrder{symbol: sym, length: l})
		}
	}
	sort.SliceStable(ordered, func(a, b int) bool {
		if ordered[a].length != ordered[b].length {
			return ordered[a].length < ordered[b].length
		}
		return ordered[a].symbol < ordered[b].symbol
	})

	idx := 0
	for l := 1; l <= maxLen; l++ {
		for c := 0; c < bits[l]; c++ {
			lengths[ordered[idx].symbol] = l
			idx++
		}
	}
}

// canonicalEntry is one symbol's canonical code: a bit string of Length
// bits, MSB-first, whose numeric value is Code.
type canonicalEntry struct {
	symbol int
	length int
	code   uint32
}

// canonicalCodes assigns canonical codes from a length table: sort
// (length, symbol) ascending, code 0 to the first, and for each
// subsequent symbol new_code = (prev_code + 1) << (new_length -
// prev_length).
func canonicalCodes(lengths [256]int) []canonicalEntry {
	var entries []canonicalEntry
	for sym, l := range lengths {
		if l > 0 {
			entries = append(entries, canonicalEntry{symbol: sym, length: l})
		}
	}
	if len(entries) == 0 {
		return entries
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].length != entries[j].length {
			return entries[i].length < entries[j].length
		}
		return entries[i].symbol < entries[j].symbol
	})

	code := uint32(0)
	length := entries[0].length
	for i := range entries {
		if entries[i].length > length {
			code <<= uint(entries[i].length - length)
			length = entries[i].length
		}
		entries[i].code = code
		code++
	}
	return entries
}
