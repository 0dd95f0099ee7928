/*
U16map loads a text document and shows how its UTF-16 code-unit offsets map to
code-point offsets.

Usage:

	u16map [flags] [file]

Without a file argument, the document is read from stdin.

Flags:

	--html            treat input as HTML and use its text content
	--select a:b      convert the code-unit selection [a,b) to code points
	--dot             print the surrogate index in Graphviz DOT format
	--trace level     trace level: error, info or debug
	--no-color        disable colored output

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/surrogates"
	"github.com/npillmayer/surrogates/html"
	"github.com/npillmayer/surrogates/session"
	"github.com/npillmayer/surrogates/textfile"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	htmlInput  bool
	selection  string
	dotOutput  bool
	traceLevel string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "u16map [file]",
	Short: "Map UTF-16 code-unit offsets of a document to code-point offsets",
	Long: `u16map loads a UTF-8 text (or HTML) document, indexes its surrogate pairs
and prints the code-unit and code-point offsets of every pair.

Examples:
  u16map notes.txt                 # table of surrogate pairs
  u16map --select 10:20 notes.txt  # convert a selection to code points
  u16map --html --dot page.html    # dump the index as a Graphviz graph`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runMap,
}

func init() {
	rootCmd.Flags().BoolVar(&htmlInput, "html", false, "Treat input as HTML and use its text content")
	rootCmd.Flags().StringVarP(&selection, "select", "s", "", "Code-unit selection a:b to convert to code points")
	rootCmd.Flags().BoolVar(&dotOutput, "dot", false, "Print the surrogate index in Graphviz DOT format")
	rootCmd.Flags().StringVarP(&traceLevel, "trace", "t", "error", "Trace level (error, info, debug)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMap(cmd *cobra.Command, args []string) error {
	level, err := parseTraceLevel(traceLevel)
	if err != nil {
		return err
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	//
	s, err := loadSession(args)
	if err != nil {
		return err
	}
	defer s.Close()
	out := cmd.OutOrStdout()
	if dotOutput {
		surrogates.Index2Dot(s.Index(), out)
		return nil
	}
	colored, width := false, 0
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) && out == os.Stdout {
		colored = !noColor
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	rep := newReporter(out, colored, width)
	rep.Summary(s)
	if selection != "" {
		start, end, err := parseSelection(selection)
		if err != nil {
			return err
		}
		span, err := s.Select(start, end)
		if err != nil {
			return err
		}
		rep.Selection(start, end, span)
	}
	rep.Pairs(s)
	return nil
}

func loadSession(args []string) (*session.Session, error) {
	var r io.Reader = os.Stdin
	if len(args) > 0 {
		if !htmlInput {
			return textfile.Load(args[0], 0)
		}
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if htmlInput {
		return html.TextFromHTML(r)
	}
	return textfile.LoadReader(r, 0)
}

// parseSelection parses a selection of the form "a:b" or "a" (a caret).
func parseSelection(sel string) (start, end int, err error) {
	from, to, found := strings.Cut(sel, ":")
	if start, err = strconv.Atoi(strings.TrimSpace(from)); err != nil {
		return 0, 0, fmt.Errorf("%w: selection %q", surrogates.ErrIllegalArguments, sel)
	}
	if !found {
		return start, start, nil
	}
	if end, err = strconv.Atoi(strings.TrimSpace(to)); err != nil {
		return 0, 0, fmt.Errorf("%w: selection %q", surrogates.ErrIllegalArguments, sel)
	}
	return start, end, nil
}

func parseTraceLevel(level string) (tracing.TraceLevel, error) {
	switch strings.ToLower(level) {
	case "error", "":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("%w: unknown trace level %q", surrogates.ErrIllegalArguments, level)
}
