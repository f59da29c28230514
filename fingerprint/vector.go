package fingerprint

import "sort"

// Vector is the raw result of a fingerprint calculation, before any
// normalization. A hashed fingerprint has a fixed Width; an unhashed one
// reports Width 0 and its identifiers live in an unbounded space.
type Vector interface {
	// Width returns the fixed length of the vector, or 0 if the
	// identifier space is unbounded.
	Width() int
	// Nonzero returns the identifiers with a nonzero count, ascending.
	Nonzero() []int
	// Count returns the count stored for the given identifier.
	Count(id int) int
}

// Bits is a fixed-width indicator vector: every set position counts as 1.
type Bits struct {
	width int
	on    map[int]bool
}

func NewBits(width int) *Bits {
	return &Bits{width: width, on: make(map[int]bool)}
}

// Set turns on the bit for id, reduced modulo the width.
func (B *Bits) Set(id int) {
	B.on[id%B.width] = true
}

func (B *Bits) Width() int {
	return B.width
}

func (B *Bits) Nonzero() []int {
	ids := make([]int, 0, len(B.on))
	for id := range B.on {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (B *Bits) Count(id int) int {
	if B.on[id] {
		return 1
	}
	return 0
}

// Counts is a sparse count vector. With a nonzero width, identifiers are
// reduced modulo the width as they are added; with width 0 they are kept
// as-is.
type Counts struct {
	width  int
	counts map[int]int
}

func NewCounts(width int) *Counts {
	return &Counts{width: width, counts: make(map[int]int)}
}

// Add increases the count for id by n.
func (C *Counts) Add(id, n int) {
	if C.width > 0 {
		id %= C.width
	}
	C.counts[id] += n
}

func (C *Counts) Width() int {
	return C.width
}

func (C *Counts) Nonzero() []int {
	ids := make([]int, 0, len(C.counts))
	for id := range C.counts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (C *Counts) Count(id int) int {
	return C.counts[id]
}

// ToArray returns v as a dense count slice. A fixed-width vector keeps
// its own width; an unbounded one is folded modulo fold.
func ToArray(v Vector, fold int) []int {
	w := v.Width()
	if w == 0 {
		w = fold
	}
	out := make([]int, w)
	for _, id := range v.Nonzero() {
		out[id%w] += v.Count(id)
	}
	return out
}

// ToMap returns v as an identifier-to-count mapping, zero counts omitted.
func ToMap(v Vector) map[int]int {
	out := make(map[int]int, len(v.Nonzero()))
	for _, id := range v.Nonzero() {
		out[id] = v.Count(id)
	}
	return out
}
