package session

import (
	"context"
	"fmt"
	"slices"
	"unicode/utf16"

	"github.com/guiguan/caster"
	"github.com/npillmayer/surrogates"
)

// Span is a selection in code points.
type Span struct {
	Start, End int
}

// EventKind tells what triggered an Event.
type EventKind int8

// Kinds of events
const (
	SelectionChanged EventKind = iota
	TextReplaced
	TextDeleted
)

func (k EventKind) String() string {
	switch k {
	case SelectionChanged:
		return "selection"
	case TextReplaced:
		return "replace"
	case TextDeleted:
		return "delete"
	}
	return "unknown"
}

// Event is published to subscribers of a session after selection changes
// and edits.
type Event struct {
	Kind      EventKind
	StartUnit int  // selection start in code units, after the operation
	EndUnit   int  // selection end in code units, after the operation
	Points    Span // selection in code points, after the operation
	Length    int  // document length in code units
}

// Session is a document being edited. It holds the UTF-16 text and a
// surrogate index tracking it.
//
// A Session is not safe for concurrent use; subscribers receive events
// on their own goroutines.
type Session struct {
	text   []uint16
	index  *surrogates.Index
	start  int // selection start in code units
	end    int // selection end in code units
	points Span
	cast   *caster.Caster
}

// New creates a session for an empty document.
func New() *Session {
	s := &Session{
		index: surrogates.New(),
		cast:  caster.New(context.Background()),
	}
	s.index.UpdateSelection(0, 0)
	return s
}

// FromString creates a session for a document with initial text str.
// The caret is positioned at the end of the text.
func FromString(str string) *Session {
	s := New()
	s.Append(str)
	return s
}

// Len returns the length of the document in code units.
func (s *Session) Len() int {
	return len(s.text)
}

// PointLen returns the length of the document in code points.
func (s *Session) PointLen() int {
	return s.index.PointLen()
}

// Text returns the document as a Go string.
func (s *Session) Text() string {
	return string(utf16.Decode(s.text))
}

// Units returns a copy of the document's code units.
func (s *Session) Units() []uint16 {
	return slices.Clone(s.text)
}

// Selection returns the current selection in code units.
func (s *Session) Selection() (start, end int) {
	return s.start, s.end
}

// Points returns the current selection in code points.
func (s *Session) Points() Span {
	return s.points
}

// Index gives read access to the surrogate index of the session.
// Clients must not edit the document through it.
func (s *Session) Index() *surrogates.Index {
	return s.index
}

// PointOffset converts a code-unit offset into a code-point offset.
func (s *Session) PointOffset(unit int) (int, error) {
	if err := s.checkOffset(unit); err != nil {
		return 0, err
	}
	return s.index.PointOffset(unit), nil
}

// Select changes the selection to [start, end), given in code units, and
// returns it in code points.
//
// It is an error to select a range which splits a surrogate pair.
func (s *Session) Select(start, end int) (Span, error) {
	if err := s.checkRange(start, end); err != nil {
		tracer().Errorf("session: cannot select [%d,%d): %v", start, end, err)
		return s.points, err
	}
	s.selectUnits(start, end)
	s.publish(SelectionChanged)
	return s.points, nil
}

// Replace replaces the current selection with text. The selection collapses to
// a caret behind the inserted text. Replace returns the caret in code points.
func (s *Session) Replace(text string) Span {
	units := utf16.Encode([]rune(text))
	s.text = slices.Replace(s.text, s.start, s.end, units...)
	s.index.Insert(units)
	s.selectUnits(s.start+len(units), s.start+len(units))
	s.publish(TextReplaced)
	return s.points
}

// Remove deletes the current selection. Returns the caret in code points.
func (s *Session) Remove() Span {
	s.text = slices.Delete(s.text, s.start, s.end)
	s.index.Delete()
	s.selectUnits(s.start, s.start)
	s.publish(TextDeleted)
	return s.points
}

// InsertText replaces the range [start, end) with text.
func (s *Session) InsertText(start, end int, text string) (Span, error) {
	if _, err := s.Select(start, end); err != nil {
		return s.points, err
	}
	return s.Replace(text), nil
}

// DeleteText deletes the range [start, end).
func (s *Session) DeleteText(start, end int) (Span, error) {
	if _, err := s.Select(start, end); err != nil {
		return s.points, err
	}
	return s.Remove(), nil
}

// Append moves the caret to the end of the document and inserts text there.
func (s *Session) Append(text string) {
	s.selectUnits(len(s.text), len(s.text))
	s.Replace(text)
}

// Check verifies that the surrogate index matches the text of the session.
func (s *Session) Check() error {
	return s.index.Check(s.text)
}

// selectUnits moves the index's gap. Arguments have to be valid.
func (s *Session) selectUnits(start, end int) {
	s.start, s.end = start, end
	s.points.Start, s.points.End = s.index.UpdateSelection(start, end)
}

func (s *Session) checkOffset(unit int) error {
	if unit < 0 || unit > len(s.text) {
		return fmt.Errorf("%w: offset %d, length %d", surrogates.ErrIndexOutOfBounds, unit, len(s.text))
	}
	return nil
}

func (s *Session) checkRange(start, end int) error {
	if err := s.checkOffset(start); err != nil {
		return err
	}
	if err := s.checkOffset(end); err != nil {
		return err
	}
	if start > end {
		return fmt.Errorf("%w: inverted range [%d,%d)", surrogates.ErrIllegalArguments, start, end)
	}
	if surrogates.SplitsPair(s.text, start) || surrogates.SplitsPair(s.text, end) {
		return fmt.Errorf("%w: range [%d,%d) splits a surrogate pair", surrogates.ErrIllegalPosition, start, end)
	}
	return nil
}
