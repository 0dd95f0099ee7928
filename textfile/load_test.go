package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/surrogates"
)

func TestLoad(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	content := strings.Repeat("Lorem 😀 ipsum dolor 🎉 sit amet.\n", 100)
	name := filepath.Join(t.TempDir(), "lorem.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(name, 0)
	if err != nil {
		t.Fatal(err.Error())
	}
	defer s.Close()
	if s.Text() != content {
		t.Errorf("loaded text differs from file content")
	}
	if s.Index().Pairs() != 200 {
		t.Errorf("expected 200 surrogate pairs, have %d", s.Index().Pairs())
	}
	if err := s.Check(); err != nil {
		t.Error(err)
	}
}

func TestLoadSmallFragments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "surrogates")
	defer teardown()
	//
	content := "😀😀😀ab😀"
	for _, size := range []int64{1, 2, 3, 5, 100} {
		s, err := LoadReader(strings.NewReader(content), size)
		if err != nil {
			t.Fatal(err)
		}
		if s.Text() != content || s.PointLen() != 6 {
			t.Errorf("fragment size %d: text=%q points=%d", size, s.Text(), s.PointLen())
		}
		if err := s.Check(); err != nil {
			t.Errorf("fragment size %d: %v", size, err)
		}
		s.Close()
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	_, err := Load(t.TempDir(), 0)
	if !errors.Is(err, surrogates.ErrIllegalArguments) {
		t.Errorf("expected illegal arguments error, got %v", err)
	}
}

func TestFragmentSize(t *testing.T) {
	cases := []struct {
		size, frag int64
	}{
		{0, 1}, {10, 10}, {100, 64}, {5000, 256}, {50000, 512}, {1040000, twoKb}, {5 * oneMb, sixKb},
	}
	for _, c := range cases {
		if f := fragmentSize(c.size); f != c.frag {
			t.Errorf("fragmentSize(%d) = %d, want %d", c.size, f, c.frag)
		}
	}
}
