package wk

import "testing"

func TestDictionaryInitialState(t *testing.T) {
	d := newDictionary(16)
	if d.len() != 1 {
		t.Fatalf("expected initial length 1, got %d", d.len())
	}
	if d.at(0) != 0 {
		t.Fatalf("expected seed entry 0, got %#x", d.at(0))
	}
}

func TestDictionaryFindFull(t *testing.T) {
	d := newDictionary(4)
	d.insertMiss(0x10)
	d.insertMiss(0x20)

	if i := d.findFull(0x20); i != 0 {
		t.Fatalf("expected index 0 for MRU entry, got %d", i)
	}
	if i := d.findFull(0x10); i != 1 {
		t.Fatalf("expected index 1, got %d", i)
	}
	if i := d.findFull(0x99); i != -1 {
		t.Fatalf("expected no match, got %d", i)
	}
}

func TestDictionaryFindHigh(t *testing.T) {
	d := newDictionary(4)
	d.insertMiss(0x12345678)

	highMask := ^uint64(0xFF) // low 8 bits are "low"
	if i := d.findHigh(0x123456AA, highMask); i != 0 {
		t.Fatalf("expected high-bit match at 0, got %d", i)
	}
	if i := d.findHigh(0xFFFFFFFF, highMask); i != -1 {
		t.Fatalf("expected no high-bit match, got %d", i)
	}
}

// TestDictionaryEviction hand-traces: W=4, D=2, L=4, input
// 0x10, 0x20, 0x30, 0x10 evicts 0x10 then re-inserts it, leaving
// [0x10, 0x30].
func TestDictionaryEviction(t *testing.T) {
	d := newDictionary(2)
	d.insertMiss(0x10)
	d.insertMiss(0x20)
	d.insertMiss(0x30) // evicts 0x10
	if i := d.findFull(0x10); i != -1 {
		t.Fatalf("expected 0x10 evicted, found at %d", i)
	}
	d.insertMiss(0x10)

	snap := d.snapshot()
	want := []uint64{0x10, 0x30}
	if len(snap) != len(want) || snap[0] != want[0] || snap[1] != want[1] {
		t.Fatalf("unexpected final dictionary: %v, want %v", snap, want)
	}
}

// TestDictionaryMRUPromotion hand-traces D=4: 0xA, 0xB, 0xC inserted as
// misses, then 0xA found at index 2 and promoted. Afterwards dict order is
// [0xA, 0xC, 0xB, 0].
func TestDictionaryMRUPromotion(t *testing.T) {
	d := newDictionary(4)
	d.insertMiss(0xA)
	d.insertMiss(0xB)
	d.insertMiss(0xC)

	i := d.findFull(0xA)
	if i != 2 {
		t.Fatalf("expected 0xA at index 2 before promotion, got %d", i)
	}
	d.touchFull(i)

	snap := d.snapshot()
	want := []uint64{0xA, 0xC, 0xB, 0}
	if len(snap) != len(want) {
		t.Fatalf("unexpected dictionary length: %v", snap)
	}
	for idx := range want {
		if snap[idx] != want[idx] {
			t.Fatalf("unexpected dictionary: %v, want %v", snap, want)
		}
	}
}

func TestDictionaryTouchFullNoopAtZero(t *testing.T) {
	d := newDictionary(4)
	d.insertMiss(0x1)
	before := d.snapshot()
	d.touchFull(0)
	after := d.snapshot()
	if before[0] != after[0] {
		t.Fatalf("touchFull(0) mutated dictionary: before=%v after=%v", before, after)
	}
}

func TestDictionaryReplacePartialAtZero(t *testing.T) {
	d := newDictionary(4)
	d.insertMiss(0x1234) // entries: [0x1234, 0]
	d.replacePartial(0, 0x1299)
	if d.at(0) != 0x1299 {
		t.Fatalf("expected in-place replacement, got %#x", d.at(0))
	}
	if d.len() != 2 {
		t.Fatalf("replacePartial(0, ...) must not change dictionary size, got len=%d", d.len())
	}
}

func TestDictionaryReplacePartialAtNonZero(t *testing.T) {
	d := newDictionary(4)
	d.insertMiss(0x1)
	d.insertMiss(0x2)
	d.insertMiss(0x3) // entries: [0x3, 0x2, 0x1, 0]

	d.replacePartial(2, 0x199)

	snap := d.snapshot()
	want := []uint64{0x199, 0x3, 0x2, 0}
	for idx := range want {
		if snap[idx] != want[idx] {
			t.Fatalf("unexpected dictionary: %v, want %v", snap, want)
		}
	}
}

func TestDictionaryBoundedByCapacity(t *testing.T) {
	d := newDictionary(8)
	for i := uint64(1); i <= 100; i++ {
		d.insertMiss(i)
		if d.len() > 8 {
			t.Fatalf("dictionary exceeded capacity: len=%d after inserting %d entries", d.len(), i)
		}
	}
}
