// SPDX-License-Identifier: MIT

package wk

const headerSizeBytes = 16

// Compress encodes src into a WK frame: a 16-byte header of offsets
// followed by the packed tags, full words, dict indices, and low bits.
//
// len(src) must be a multiple of the codec's configured WordSizeBytes;
// otherwise Compress returns ErrInvalidInput.
func (c *Codec) Compress(src []byte) ([]byte, error) {
	w := c.cfg.WordSizeBytes
	if len(src)%w != 0 {
		return nil, ErrInvalidInput
	}
	numWords := len(src) / w

	s := c.bufPool.get()
	defer c.bufPool.put(s)

	dict := newDictionary(c.cfg.DictSize)

	for pos := 0; pos < len(src); pos += w {
		word := getBigEndian(src[pos:pos+w], w)

		if word == 0 {
			s.tags = append(s.tags, uint64(TagZero))
			continue
		}

		if i := dict.findFull(word); i != -1 {
			s.tags = append(s.tags, uint64(TagHit))
			s.dictIndices = append(s.dictIndices, uint64(i))
			dict.touchFull(i)
			continue
		}

		if i := dict.findHigh(word, c.highBitMask); i != -1 {
			s.tags = append(s.tags, uint64(TagPartial))
			s.dictIndices = append(s.dictIndices, uint64(i))
			s.lowBits = append(s.lowBits, word&c.lowBitMask)
			dict.replacePartial(i, word)
			continue
		}

		s.tags = append(s.tags, uint64(TagMiss))
		s.fullWords = appendBigEndian(s.fullWords, word, w)
		dict.insertMiss(word)
	}

	k := c.cfg.PackingWordBytes
	packedTags, err := packWidth(s.tags, tagBits, k)
	if err != nil {
		return nil, err
	}
	packedDictIndices, err := packWidth(s.dictIndices, c.dictIndexBits, k)
	if err != nil {
		return nil, err
	}
	packedLowBits, err := packWidth(s.lowBits, c.cfg.NumLowBits, k)
	if err != nil {
		return nil, err
	}

	dictIndicesOffset := headerSizeBytes + len(packedTags) + len(s.fullWords)
	lowBitsOffset := dictIndicesOffset + len(packedDictIndices)
	endOfFrameOffset := lowBitsOffset + len(packedLowBits)

	frame := make([]byte, endOfFrameOffset)
	putBigEndian(frame[0:4], uint64(numWords), 4)
	putBigEndian(frame[4:8], uint64(dictIndicesOffset), 4)
	putBigEndian(frame[8:12], uint64(lowBitsOffset), 4)
	putBigEndian(frame[12:16], uint64(endOfFrameOffset), 4)

	off := headerSizeBytes
	off += copy(frame[off:], packedTags)
	off += copy(frame[off:], s.fullWords)
	off += copy(frame[off:], packedDictIndices)
	off += copy(frame[off:], packedLowBits)

	return frame, nil
}

// Decompress decodes a WK frame produced by a codec with the same
// configuration. The frame does not carry its own parameters: callers
// must supply a Codec configured identically to the one that produced
// the frame.
func (c *Codec) Decompress(frame []byte) ([]byte, error) {
	out, _, _, err := c.decodeFrame(frame)
	return out, err
}

// decodeFrame is the shared decode path for Decompress and Explain: it
// returns the reconstructed bytes, the per-word tags, and the
// dictionary's final state.
func (c *Codec) decodeFrame(frame []byte) ([]byte, []uint64, []uint64, error) {
	hdr, err := parseHeader(frame)
	if err != nil {
		return nil, nil, nil, err
	}

	w := c.cfg.WordSizeBytes
	k := c.cfg.PackingWordBytes

	tagsAreaSize := tagsAreaSizeBytes(hdr.numWords, k)
	if headerSizeBytes+tagsAreaSize > hdr.dictIndicesOffset {
		return nil, nil, nil, ErrCorruptFrame
	}

	packedTags := frame[headerSizeBytes : headerSizeBytes+tagsAreaSize]
	fullWords := frame[headerSizeBytes+tagsAreaSize : hdr.dictIndicesOffset]
	packedDictIndices := frame[hdr.dictIndicesOffset:hdr.lowBitsOffset]
	packedLowBits := frame[hdr.lowBitsOffset:hdr.endOfFrameOffset]

	tags, err := unpackWidth(packedTags, tagBits, k, hdr.numWords)
	if err != nil {
		return nil, nil, nil, ErrCorruptFrame
	}

	numDictIdx, numLow, numFull := 0, 0, 0
	for _, t := range tags {
		switch Tag(t) {
		case TagHit, TagPartial:
			numDictIdx++
		}
		if Tag(t) == TagPartial {
			numLow++
		}
		if Tag(t) == TagMiss {
			numFull++
		}
	}
	if numFull*w > len(fullWords) {
		return nil, nil, nil, ErrCorruptFrame
	}

	dictIndices, err := unpackWidth(packedDictIndices, c.dictIndexBits, k, numDictIdx)
	if err != nil {
		return nil, nil, nil, ErrCorruptFrame
	}
	lowBits, err := unpackWidth(packedLowBits, c.cfg.NumLowBits, k, numLow)
	if err != nil {
		return nil, nil, nil, ErrCorruptFrame
	}

	out := make([]byte, 0, hdr.numWords*w)
	dict := newDictionary(c.cfg.DictSize)

	fullCursor, dictCursor, lowCursor := 0, 0, 0
	for _, t := range tags {
		switch Tag(t) {
		case TagZero:
			out = append(out, make([]byte, w)...)

		case TagPartial:
			i := int(dictIndices[dictCursor])
			dictCursor++
			if i < 0 || i >= dict.len() {
				return nil, nil, nil, ErrCorruptFrame
			}
			low := lowBits[lowCursor]
			lowCursor++
			word := (dict.at(i) & c.highBitMask) | low
			dict.replacePartial(i, word)
			out = appendBigEndian(out, word, w)

		case TagMiss:
			if fullCursor+w > len(fullWords) {
				return nil, nil, nil, ErrCorruptFrame
			}
			word := getBigEndian(fullWords[fullCursor:fullCursor+w], w)
			fullCursor += w
			dict.insertMiss(word)
			out = appendBigEndian(out, word, w)

		case TagHit:
			i := int(dictIndices[dictCursor])
			dictCursor++
			if i < 0 || i >= dict.len() {
				return nil, nil, nil, ErrCorruptFrame
			}
			word := dict.at(i)
			dict.touchFull(i)
			out = appendBigEndian(out, word, w)

		default:
			return nil, nil, nil, ErrCorruptFrame
		}
	}

	return out, tags, dict.snapshot(), nil
}

type frameHeader struct {
	numWords          int
	dictIndicesOffset int
	lowBitsOffset     int
	endOfFrameOffset  int
}

func parseHeader(frame []byte) (frameHeader, error) {
	if len(frame) < headerSizeBytes {
		return frameHeader{}, ErrCorruptFrame
	}
	hdr := frameHeader{
		numWords:          int(getBigEndian(frame[0:4], 4)),
		dictIndicesOffset: int(getBigEndian(frame[4:8], 4)),
		lowBitsOffset:     int(getBigEndian(frame[8:12], 4)),
		endOfFrameOffset:  int(getBigEndian(frame[12:16], 4)),
	}
	if hdr.dictIndicesOffset < headerSizeBytes ||
		hdr.dictIndicesOffset > hdr.lowBitsOffset ||
		hdr.lowBitsOffset > hdr.endOfFrameOffset ||
		hdr.endOfFrameOffset != len(frame) {
		return frameHeader{}, ErrCorruptFrame
	}
	return hdr, nil
}

// tagsAreaSizeBytes computes the packed tags area length from numWords
// alone: the decoder must not derive it from a fixed page size, since
// full_words sits between the tags area and dict_indices_offset with no
// explicit offset of its own.
func tagsAreaSizeBytes(numWords, packingWordBytes int) int {
	tagsPerPackingWord := (packingWordBytes * 8) / tagBits
	numPackingWords := (numWords + tagsPerPackingWord - 1) / tagsPerPackingWord
	return numPackingWords * packingWordBytes
}

func appendBigEndian(dst []byte, v uint64, n int) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, n)...)
	putBigEndian(dst[start:start+n], v, n)
	return dst
}
