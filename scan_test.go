package surrogates

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScanPairs(t *testing.T) {
	cases := []struct {
		name string
		text []uint16
		base int
		want []int
	}{
		{"empty", nil, 0, nil},
		{"bmp", utf16.Encode([]rune("Hello")), 0, nil},
		{"one pair", utf16.Encode([]rune("a😀b")), 0, []int{1}},
		{"shifted", utf16.Encode([]rune("😀😀")), 10, []int{10, 12}},
		{"lone leading", []uint16{0xD83D}, 0, nil},
		{"lone trailing then pair", []uint16{0xDE00, 0xD83D, 0xDE00}, 0, []int{1}},
		{"two leading", []uint16{0xD83D, 0xD83D, 0xDE00}, 0, []int{1}},
		{"swapped halves", []uint16{0xDE00, 0xD83D}, 0, nil},
	}
	for _, c := range cases {
		if got := ScanPairs(c.text, c.base); !slices.Equal(got, c.want) {
			t.Errorf("%s: ScanPairs = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSplitsPair(t *testing.T) {
	text := utf16.Encode([]rune("a😀"))
	for u, want := range []bool{false, false, true, false} {
		if got := SplitsPair(text, u); got != want {
			t.Errorf("SplitsPair(%d) = %v, want %v", u, got, want)
		}
	}
}

func TestLoneSurrogatesCountAsPoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "surrogates")
	defer teardown()
	//
	ix := New()
	ix.UpdateSelection(0, 0)
	ix.Insert([]uint16{'a', 0xD83D, 'b', 0xDE00})
	if ix.Pairs() != 0 {
		t.Errorf("lone surrogates recorded as %d pairs", ix.Pairs())
	}
	if _, ep := ix.UpdateSelection(0, 4); ep != 4 {
		t.Errorf("point length = %d, want 4", ep)
	}
}

func TestCheckDetectsMismatch(t *testing.T) {
	ix := New()
	ix.UpdateSelection(0, 0)
	ix.InsertString("a😀b")
	if err := ix.Check(utf16.Encode([]rune("ab😀"))); err == nil {
		t.Errorf("expected Check to fail for different text")
	}
	ix.entries[0] = -1 // absolute region must not hold relative entries
	if err := ix.Check(nil); err == nil {
		t.Errorf("expected Check to fail for mis-encoded entry")
	}
}

func TestIndexString(t *testing.T) {
	ix := New()
	ix.UpdateSelection(0, 0)
	ix.InsertString("😀a😀b😀") // pairs at 0, 3, 6
	ix.UpdateSelection(3, 5)
	if s := ix.String(); s != "[0 | 3 | -2]" {
		t.Errorf("String() = %q", s)
	}
	var buf bytes.Buffer
	Index2Dot(ix, &buf)
	dot := buf.String()
	if !strings.HasPrefix(dot, "strict digraph {") || strings.Count(dot, "->") != 3 {
		t.Errorf("unexpected DOT output:\n%s", dot)
	}
}
