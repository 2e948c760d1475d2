package wordlist

import (
	"io"
	"strings"

	"github.com/npillmayer/seek"
	"golang.org/x/net/html"
)

// FromHTML creates a word list from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure
// text, resembling
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, and tokenizes it. Word order follows document order.
func FromHTML(input io.Reader) (*List, error) {
	if input == nil {
		return nil, seek.ErrIllegalArguments
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return FromString(b.String()), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ') // keep text of adjacent elements apart
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
