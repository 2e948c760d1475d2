package wordlist

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// tokenize yields the words of r one by one, in order of appearance.
//
// Segmentation follows UAX#14 line-wrap opportunities, which for running
// text coincide with word boundaries; surrounding whitespace is stripped
// from every segment and empty segments are dropped.
func tokenize(r io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		linewrap := uax14.NewLineWrap()
		segmenter := segment.NewSegmenter(linewrap)
		segmenter.Init(bufio.NewReader(r))
		for segmenter.Next() {
			frag := strings.TrimSpace(string(segmenter.Bytes()))
			if frag == "" {
				continue
			}
			if !yield(frag) {
				return
			}
		}
	}
}

// tokens collects all words of r into a slice.
func tokens(r io.Reader) []string {
	words := make([]string, 0, 64)
	for word := range tokenize(r) {
		words = append(words, word)
	}
	return words
}
