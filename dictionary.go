// SPDX-License-Identifier: MIT

package wk

// dictionary is the recency-ordered set of recently seen words: position 0
// is most-recently-used. The zero value is not usable; newDictionary
// constructs one in the seeded initial state [0].
//
// Linear scans over entries are acceptable at the dictionary sizes this
// codec targets (D <= 1024); a hash index is an optional optimization this
// implementation forgoes, since correctness of the exact MRU reordering
// rules matters far more than shaving an O(D) scan.
type dictionary struct {
	entries []uint64
	cap     int
}

// newDictionary returns a dictionary seeded with the single element 0. The
// seed occupies one of the D slots from the start so inserts and evictions
// share one code path; it is evicted like any other entry once the
// dictionary fills and a new distinct word arrives.
func newDictionary(dictSize int) *dictionary {
	d := &dictionary{
		entries: make([]uint64, 1, dictSize),
		cap:     dictSize,
	}
	d.entries[0] = 0
	return d
}

// reset restores the dictionary to its initial seeded state, reusing the
// backing array.
func (d *dictionary) reset() {
	d.entries = d.entries[:1]
	d.entries[0] = 0
}

// findFull returns the first index whose stored word equals w, or -1.
func (d *dictionary) findFull(w uint64) int {
	for i, e := range d.entries {
		if e == w {
			return i
		}
	}
	return -1
}

// findHigh returns the first index whose stored word's high bits (under
// the codec's configured split) equal high(w), or -1. Callers must test
// findFull first: if both a full and a high-only match exist for the
// same word, the full match must win.
func (d *dictionary) findHigh(w, highMask uint64) int {
	highW := w & highMask
	for i, e := range d.entries {
		if e&highMask == highW {
			return i
		}
	}
	return -1
}

// touchFull promotes the entry at i to the front, preserving the relative
// order of all other entries. No-op if i == 0.
func (d *dictionary) touchFull(i int) {
	if i <= 0 {
		return
	}
	w := d.entries[i]
	copy(d.entries[1:i+1], d.entries[0:i])
	d.entries[0] = w
}

// replacePartial implements the PARTIAL reconstruction rule: at index 0
// the entry is overwritten in place (dictionary size and order
// unchanged); at any other index it is removed and the reconstructed
// word reinserted at the front.
func (d *dictionary) replacePartial(i int, wNew uint64) {
	if i == 0 {
		d.entries[0] = wNew
		return
	}
	copy(d.entries[1:i+1], d.entries[0:i])
	d.entries[0] = wNew
}

// insertMiss inserts a newly seen word at the front, evicting the
// least-recently-used (tail) entry once the dictionary is at capacity.
func (d *dictionary) insertMiss(w uint64) {
	if len(d.entries) < d.cap {
		d.entries = append(d.entries, 0)
	}
	copy(d.entries[1:], d.entries[0:len(d.entries)-1])
	d.entries[0] = w
}

// at returns the word stored at index i.
func (d *dictionary) at(i int) uint64 {
	return d.entries[i]
}

// len returns the current number of entries, including the seed.
func (d *dictionary) len() int {
	return len(d.entries)
}

// snapshot returns a copy of the current dictionary contents, MRU first.
func (d *dictionary) snapshot() []uint64 {
	out := make([]uint64, len(d.entries))
	copy(out, d.entries)
	return out
}
