package surrogates

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Index2Dot outputs the internal structure of an Index in Graphviz DOT format
// (for debugging purposes).
//
// Every entry becomes a node labeled with its stored value and its decoded
// unit offset. Entries inside the current selection are highlighted, relative
// entries are drawn in a different color.
func Index2Dot(ix *Index, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	nodelist += fmt.Sprintf("\"doc\" [label=\"len=%d\\nsel=[%d,%d)\" %s];\n",
		ix.length, ix.selStart, ix.selEnd, docDotStyles())
	prev := "doc"
	for i, e := range ix.entries {
		ID := fmt.Sprintf("e%d", i)
		label := fmt.Sprintf("#%d: %d\\n@%d", i, e, ix.decode(e))
		styles := entryDotStyles(e < 0, i >= ix.gapStart && i < ix.gapEnd)
		nodelist += fmt.Sprintf("\"%s\" [label=\"%s\" %s];\n", ID, label, styles)
		edgelist += fmt.Sprintf("\"%s\" -> \"%s\";\n", prev, ID)
		prev = ID
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func docDotStyles() string {
	return ",style=filled,color=black,fillcolor=white,shape=note"
}

func entryDotStyles(relative bool, inGap bool) string {
	s := ",style=filled,shape=box"
	if inGap {
		return s + fmt.Sprintf(",fillcolor=\"%s\"", hlcolor)
	}
	if relative {
		return s + fmt.Sprintf(",fillcolor=\"%s\"", relcolor)
	}
	return s + fmt.Sprintf(",fillcolor=\"%s\"", abscolor)
}

const (
	abscolor = "#CCDDFF"
	relcolor = "#88BBFF"
	hlcolor  = "#FFBB88"
)

// String returns the entries of an index in stored encoding, in three groups
// delimited by bars: absolute entries, entries inside the selection, relative
// entries. E.g., "[1 5 | 9 | -4 -2]".
func (ix *Index) String() string {
	groups := []string{
		joinEntries(ix.entries[:ix.gapStart]),
		joinEntries(ix.entries[ix.gapStart:ix.gapEnd]),
		joinEntries(ix.entries[ix.gapEnd:]),
	}
	return "[" + strings.Join(groups, " | ") + "]"
}

func joinEntries(entries []int) string {
	s := make([]string, len(entries))
	for i, e := range entries {
		s[i] = strconv.Itoa(e)
	}
	return strings.Join(s, " ")
}
