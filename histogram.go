// SPDX-License-Identifier: MIT

package wk

// histogram.go provides diagnostic helpers for inspecting dictionary
// reference patterns and decoded indices without re-running a full
// decode.

// DictIndexHistogram computes, from a frame's packed dict-indices section
// (without replaying the dictionary), how many times each dictionary slot
// was referenced by a HIT or PARTIAL tag. The returned slice has length
// DictSize.
func (c *Codec) DictIndexHistogram(frame []byte) ([]uint32, error) {
	indices, err := c.DecodedDictIndices(frame)
	if err != nil {
		return nil, err
	}
	histogram := make([]uint32, c.cfg.DictSize)
	for _, i := range indices {
		if i < 0 || i >= len(histogram) {
			return nil, ErrCorruptFrame
		}
		histogram[i]++
	}
	return histogram, nil
}

// DecodedDictIndices returns the raw sequence of dictionary indices
// referenced by a frame's HIT and PARTIAL tags, in word order. Computed
// from the header, the packed tags (to count HIT and PARTIAL words), and
// the packed dict-indices section, without replaying the dictionary.
func (c *Codec) DecodedDictIndices(frame []byte) ([]int, error) {
	hdr, err := parseHeader(frame)
	if err != nil {
		return nil, err
	}

	k := c.cfg.PackingWordBytes
	tagsAreaSize := tagsAreaSizeBytes(hdr.numWords, k)
	if headerSizeBytes+tagsAreaSize > hdr.dictIndicesOffset {
		return nil, ErrCorruptFrame
	}

	packedTags := frame[headerSizeBytes : headerSizeBytes+tagsAreaSize]
	tags, err := unpackWidth(packedTags, tagBits, k, hdr.numWords)
	if err != nil {
		return nil, ErrCorruptFrame
	}

	numDictIdx := 0
	for _, t := range tags {
		if Tag(t) == TagHit || Tag(t) == TagPartial {
			numDictIdx++
		}
	}

	packedDictIndices := frame[hdr.dictIndicesOffset:hdr.lowBitsOffset]
	raw, err := unpackWidth(packedDictIndices, c.dictIndexBits, k, numDictIdx)
	if err != nil {
		return nil, ErrCorruptFrame
	}

	out := make([]int, len(raw))
	for i, v := range raw {
		out[i] = int(v)
	}
	return out, nil
}

// explainWordLimit bounds the number of leading word classifications
// ExplainResult carries, matching the first-ten-words scope of a debug
// dump rather than the full per-word tag stream.
const explainWordLimit = 10

// ExplainResult is a structural snapshot of a decoded frame: header
// contents, the final dictionary state, and the classification of the
// first few words.
type ExplainResult struct {
	NumWords          int
	DictIndicesOffset int
	LowBitsOffset     int
	EndOfFrameOffset  int
	FinalDictionary   []uint64
	// WordTags holds the Tag of the first min(10, NumWords) words.
	WordTags []Tag
}

// Explain decodes frame and returns a structural summary useful for
// debugging, rather than printing to stdout, which is not idiomatic for
// a library function.
func (c *Codec) Explain(frame []byte) (ExplainResult, error) {
	hdr, err := parseHeader(frame)
	if err != nil {
		return ExplainResult{}, err
	}
	_, tags, finalDict, err := c.decodeFrame(frame)
	if err != nil {
		return ExplainResult{}, err
	}

	n := explainWordLimit
	if n > len(tags) {
		n = len(tags)
	}
	wordTags := make([]Tag, n)
	for i := 0; i < n; i++ {
		wordTags[i] = Tag(tags[i])
	}

	return ExplainResult{
		NumWords:          hdr.numWords,
		DictIndicesOffset: hdr.dictIndicesOffset,
		LowBitsOffset:     hdr.lowBitsOffset,
		EndOfFrameOffset:  hdr.endOfFrameOffset,
		FinalDictionary:   finalDict,
		WordTags:          wordTags,
	}, nil
}
