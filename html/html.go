// Package html creates editing sessions from the text content of HTML.
//
// Browser-based hosts (contenteditable elements) report selections in UTF-16
// code units of the element's text. The sessions created here index the same
// text.
package html

import (
	"io"

	"github.com/npillmayer/surrogates"
	"github.com/npillmayer/surrogates/session"
	"golang.org/x/net/html"
)

// InnerText creates a session for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n *html.Node) (*session.Session, error) {
	if n == nil {
		return nil, surrogates.ErrIllegalArguments
	}
	s := session.New()
	collectText(n, s)
	return s, nil
}

// TextFromHTML parses an HTML fragment and creates a session for its text.
func TextFromHTML(input io.Reader) (*session.Session, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	s := session.New()
	for _, n := range nodes {
		collectText(n, s)
	}
	return s, nil
}

func collectText(n *html.Node, s *session.Session) {
	if n.Type == html.TextNode {
		s.Append(n.Data)
	} else if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, s)
	}
}
