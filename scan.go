package surrogates

import (
	"unicode/utf16"
	"unicode/utf8"
)

// ScanPairs returns the offsets of all surrogate pairs in text, shifted by base.
//
// A pair is a leading surrogate immediately followed by a trailing surrogate.
// Unpaired surrogates are treated like any other single code unit.
func ScanPairs(text []uint16, base int) []int {
	var pairs []int
	for i := 0; i < len(text); i++ {
		if isPairAt(text, i) {
			pairs = append(pairs, base+i)
			i++
		}
	}
	return pairs
}

// isPairAt is true if a surrogate pair starts at text[i].
func isPairAt(text []uint16, i int) bool {
	if i+1 >= len(text) || !utf16.IsSurrogate(rune(text[i])) {
		return false
	}
	return utf16.DecodeRune(rune(text[i]), rune(text[i+1])) != utf8.RuneError
}

// SplitsPair is true if unit lies between the two halves of a surrogate
// pair in text.
func SplitsPair(text []uint16, unit int) bool {
	if unit <= 0 || unit >= len(text) {
		return false
	}
	return isPairAt(text, unit-1)
}
