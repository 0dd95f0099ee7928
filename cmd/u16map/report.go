package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf16"

	"github.com/fatih/color"
	"github.com/npillmayer/surrogates"
	"github.com/npillmayer/surrogates/session"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// contextUnits is the number of code units shown on either side of a pair.
const contextUnits = 6

// reporter prints coordinate tables for a session.
type reporter struct {
	w       io.Writer
	width   int // line width in en-cells, 0 for no limit
	head    *color.Color
	pair    *color.Color
	plain   *color.Color
	context *uax11.Context
}

func newReporter(w io.Writer, colored bool, width int) *reporter {
	grapheme.SetupGraphemeClasses()
	rep := &reporter{
		w:       w,
		width:   width,
		head:    color.New(color.Bold),
		pair:    color.New(color.FgRed, color.Bold),
		plain:   color.New(color.FgBlue),
		context: uax11.ContextFromEnvironment(),
	}
	if !colored {
		rep.head.DisableColor()
		rep.pair.DisableColor()
		rep.plain.DisableColor()
	}
	return rep
}

// Summary prints document lengths.
func (rep *reporter) Summary(s *session.Session) {
	rep.head.Fprintf(rep.w, "units: %d  points: %d  surrogate pairs: %d\n",
		s.Len(), s.PointLen(), s.Index().Pairs())
}

// Selection prints a converted selection.
func (rep *reporter) Selection(start, end int, span session.Span) {
	rep.head.Fprintf(rep.w, "selection: units [%d,%d) = points [%d,%d)\n", start, end, span.Start, span.End)
}

// Pairs prints one line per surrogate pair: unit offset, point offset, the
// character and some surrounding text with the pair highlighted.
func (rep *reporter) Pairs(s *session.Session) {
	units := s.Units()
	pairs := s.Index().Surrogates()
	if len(pairs) == 0 {
		return
	}
	rep.head.Fprintf(rep.w, "%8s %8s  %-4s %s\n", "unit", "point", "char", "context")
	for _, u := range pairs {
		p, err := s.PointOffset(u)
		if err != nil {
			tracer().Errorf("u16map: %v", err)
			continue
		}
		char := string(utf16.Decode(units[u : u+2]))
		prefix := fmt.Sprintf("%8d %8d  %s ", u, p, rep.pad(char, 4))
		before, after := excerpt(units, u)
		line := rep.fit([]string{before, char, after}, rep.width-rep.cells(prefix))
		fmt.Fprint(rep.w, prefix)
		rep.plain.Fprint(rep.w, line[0])
		rep.pair.Fprint(rep.w, line[1])
		rep.plain.Fprint(rep.w, line[2])
		fmt.Fprintln(rep.w)
	}
}

// cells returns the display width of s in en-cells.
func (rep *reporter) cells(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), rep.context)
}

// pad appends spaces to s until it is n cells wide.
func (rep *reporter) pad(s string, n int) string {
	if w := rep.cells(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

// fit shortens the trailing parts of a line until it fits into limit cells.
// limit ≤ 0 means no limit.
func (rep *reporter) fit(parts []string, limit int) []string {
	if limit <= 0 {
		return parts
	}
	for i := len(parts) - 1; i >= 0; i-- {
		for rep.cells(strings.Join(parts, "")) > limit && parts[i] != "" {
			r := []rune(parts[i])
			parts[i] = string(r[:len(r)-1])
		}
	}
	return parts
}

// excerpt returns the text before and after the pair at unit u, with control
// characters made visible.
func excerpt(units []uint16, u int) (before, after string) {
	from, to := max(0, u-contextUnits), min(len(units), u+2+contextUnits)
	if surrogates.SplitsPair(units, from) {
		from--
	}
	if surrogates.SplitsPair(units, to) {
		to++
	}
	before = visible(string(utf16.Decode(units[from:u])))
	after = visible(string(utf16.Decode(units[u+2 : to])))
	return
}

var visibleReplacer = strings.NewReplacer("\n", "⏎", "\t", "⇥", "\r", "␍")

func visible(s string) string {
	return visibleReplacer.Replace(s)
}
