package surrogates

import "fmt"

// Check validates the invariants of the index.
//
// If text is non-nil, it is taken to be the document the index has been
// tracking. Check will then verify that the recorded pairs are exactly the
// surrogate pairs of text. Check is meant for tests and debugging; it
// decodes every entry.
func (ix *Index) Check(text []uint16) error {
	if ix == nil {
		return fmt.Errorf("%w: nil index", ErrIllegalArguments)
	}
	n := len(ix.entries)
	if ix.gapStart < 0 || ix.gapStart > ix.gapEnd || ix.gapEnd > n {
		return fmt.Errorf("%w: gap [%d,%d) invalid for %d entries", ErrCorrupted, ix.gapStart, ix.gapEnd, n)
	}
	if ix.length < 0 {
		return fmt.Errorf("%w: negative length %d", ErrCorrupted, ix.length)
	}
	if ix.selStart < 0 || ix.selStart > ix.selEnd || ix.selEnd > ix.length {
		return fmt.Errorf("%w: selection [%d,%d) invalid for length %d", ErrCorrupted,
			ix.selStart, ix.selEnd, ix.length)
	}
	prev := -2
	for i, e := range ix.entries {
		if i < ix.gapEnd && e < 0 {
			return fmt.Errorf("%w: entry #%d left of gap is relative (%d)", ErrCorrupted, i, e)
		}
		if i >= ix.gapEnd && e >= 0 {
			return fmt.Errorf("%w: entry #%d right of gap is absolute (%d)", ErrCorrupted, i, e)
		}
		abs := ix.decode(e)
		if abs < prev+2 {
			return fmt.Errorf("%w: entry #%d at %d overlaps predecessor at %d", ErrCorrupted, i, abs, prev)
		}
		if abs+2 > ix.length {
			return fmt.Errorf("%w: entry #%d at %d exceeds length %d", ErrCorrupted, i, abs, ix.length)
		}
		prev = abs
	}
	if text == nil {
		return nil
	}
	if len(text) != ix.length {
		return fmt.Errorf("%w: text has %d units, index tracks %d", ErrCorrupted, len(text), ix.length)
	}
	want := ScanPairs(text, 0)
	if len(want) != n {
		return fmt.Errorf("%w: text has %d surrogate pairs, index tracks %d", ErrCorrupted, len(want), n)
	}
	for i, e := range ix.entries {
		if abs := ix.decode(e); abs != want[i] {
			return fmt.Errorf("%w: entry #%d at %d, text has pair at %d", ErrCorrupted, i, abs, want[i])
		}
	}
	return nil
}
