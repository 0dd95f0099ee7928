package surrogates

import (
	"slices"
	"sort"
	"unicode/utf16"
)

// Index records the positions of UTF-16 surrogate pairs in a document which is
// being edited. It converts code-unit offsets into code-point offsets.
//
// The index follows the host's selection: edits always replace or remove the
// selection reported last by UpdateSelection. Entries of pairs left of the
// selection's end are stored as absolute unit offsets, entries right of it
// relative to the end of the document (i.e., as negative numbers).
//
// An Index is not safe for concurrent use. The zero value is an index for an
// empty document with a caret at 0.
type Index struct {
	entries  []int // sorted surrogate pair positions, gap-encoded
	gapStart int   // first entry inside the selection
	gapEnd   int   // first entry right of the selection; encoding boundary
	selStart int   // selection start in code units
	selEnd   int   // selection end in code units
	length   int   // document length in code units
}

// New creates an index for an empty document.
func New() *Index {
	return &Index{entries: make([]int, 0, 16)}
}

// Len returns the length of the document in UTF-16 code units.
func (ix *Index) Len() int {
	return ix.length
}

// Pairs returns the number of surrogate pairs in the document.
func (ix *Index) Pairs() int {
	return len(ix.entries)
}

// PointLen returns the length of the document in code points.
func (ix *Index) PointLen() int {
	return ix.length - len(ix.entries)
}

// Gap returns the entry indices delimiting the pairs inside the current
// selection.
func (ix *Index) Gap() (start, end int) {
	return ix.gapStart, ix.gapEnd
}

// UpdateSelection moves the gap to a new selection, given in code units, and
// returns the selection in code points.
//
// Only entries between the old and the new end of the selection are re-encoded.
// UpdateSelection panics if the range is inverted or outside of [0, Len()].
func (ix *Index) UpdateSelection(start, end int) (startPoint, endPoint int) {
	assert(start >= 0 && start <= end && end <= ix.length,
		"surrogates.UpdateSelection: selection out of range")
	before := ix.Locate(start)
	after := ix.Locate(end)
	ix.moveGap(after)
	ix.gapStart = before
	ix.selStart, ix.selEnd = start, end
	return ix.toPoint(start, before), ix.toPoint(end, after)
}

// Insert replaces the current selection with text. Afterwards the selection is
// collapsed to a caret right after the inserted text. Insert returns the
// (collapsed) gap indices.
//
// Text is not required to be well-formed UTF-16: an unpaired surrogate counts
// as a single code point.
func (ix *Index) Insert(text []uint16) (gapStart, gapEnd int) {
	pairs := ScanPairs(text, ix.selStart)
	ix.entries = slices.Replace(ix.entries, ix.gapStart, ix.gapEnd, pairs...)
	ix.length += len(text) - (ix.selEnd - ix.selStart)
	caret := ix.gapStart + len(pairs)
	ix.gapStart, ix.gapEnd = caret, caret
	ix.selStart += len(text)
	ix.selEnd = ix.selStart
	T().Debugf("surrogates: inserted %d units with %d pairs, length=%d", len(text), len(pairs), ix.length)
	return ix.gapStart, ix.gapEnd
}

// InsertString is like Insert, but for Go strings. s is encoded to UTF-16
// first, replacing invalid UTF-8 by U+FFFD.
func (ix *Index) InsertString(s string) (gapStart, gapEnd int) {
	return ix.Insert(utf16.Encode([]rune(s)))
}

// Delete removes the current selection from the document. Returns the
// (collapsed) gap indices.
func (ix *Index) Delete() (gapStart, gapEnd int) {
	ix.entries = slices.Delete(ix.entries, ix.gapStart, ix.gapEnd)
	ix.length -= ix.selEnd - ix.selStart
	ix.gapEnd = ix.gapStart
	ix.selEnd = ix.selStart
	T().Debugf("surrogates: deleted selection, length=%d", ix.length)
	return ix.gapStart, ix.gapEnd
}

// Locate returns the number of surrogate pairs starting before unit.
//
// Entries are compared in their stored encoding, i.e. relative entries are
// tested against unit−Len().
func (ix *Index) Locate(unit int) int {
	assert(unit >= 0 && unit <= ix.length, "surrogates.Locate: offset out of range")
	rel := unit - ix.length
	return sort.Search(len(ix.entries), func(i int) bool {
		e := ix.entries[i]
		if e >= 0 {
			return e >= unit
		}
		return e >= rel
	})
}

// PointOffset converts a code-unit offset into a code-point offset without
// touching the selection.
func (ix *Index) PointOffset(unit int) int {
	return ix.toPoint(unit, ix.Locate(unit))
}

// Surrogates returns the absolute unit offsets of all surrogate pairs.
func (ix *Index) Surrogates() []int {
	offsets := make([]int, len(ix.entries))
	for i, e := range ix.entries {
		offsets[i] = ix.decode(e)
	}
	return offsets
}

// toPoint converts unit to a code-point offset. position has to be
// Locate(unit). If there is no entry at position, no pair can straddle unit.
func (ix *Index) toPoint(unit, position int) int {
	if position < len(ix.entries) && ix.decode(ix.entries[position]) < unit {
		return unit - position - 1
	}
	return unit - position
}

func (ix *Index) decode(e int) int {
	if e < 0 {
		return e + ix.length
	}
	return e
}

// moveGap re-encodes the entries between the current gap end and to.
func (ix *Index) moveGap(to int) {
	moved := 0
	if to < ix.gapEnd {
		for i := to; i < ix.gapEnd; i++ {
			ix.entries[i] -= ix.length
		}
		moved = ix.gapEnd - to
	} else {
		for i := ix.gapEnd; i < to; i++ {
			ix.entries[i] += ix.length
		}
		moved = to - ix.gapEnd
	}
	if moved > 0 {
		T().Debugf("surrogates: gap %d → %d, re-encoded %d entries", ix.gapEnd, to, moved)
	}
	ix.gapEnd = to
}
