package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/surrogates"
	"golang.org/x/net/html"
)

func TestTextFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "surrogates")
	defer teardown()
	//
	input := `<p>Hello <b>😀 World</b>!<script>var x = "🎉";</script> &#x1F431;</p>`
	s, err := TextFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if s.Text() != "Hello 😀 World! 🐱" {
		t.Errorf("text = %q", s.Text())
	}
	if s.Index().Pairs() != 2 {
		t.Errorf("expected 2 surrogate pairs, have %d", s.Index().Pairs())
	}
	span, err := s.Select(6, 8) // the smiley
	if err != nil {
		t.Fatal(err)
	}
	if span.Start != 6 || span.End != 7 {
		t.Errorf("smiley selection = %v, want {6 7}", span)
	}
	if err := s.Check(); err != nil {
		t.Error(err)
	}
}

func TestInnerText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><div>a<i>😀</i>b</div></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	s, err := InnerText(doc)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if s.Text() != "a😀b" || s.Len() != 4 || s.PointLen() != 3 {
		t.Errorf("inner text = %q, %d units, %d points", s.Text(), s.Len(), s.PointLen())
	}
	if _, err := InnerText(nil); !errors.Is(err, surrogates.ErrIllegalArguments) {
		t.Errorf("expected illegal arguments for nil node, got %v", err)
	}
}
