/*
Package wordlist turns text input into searchable word sequences.

Words are the tokens of a text, produced by a Unicode-aware segmenter.
Lists retain the order of appearance, so positional searches over them are
meaningful, and hand out an ascending-sorted view on demand for presence
searches.

Loading of files may be done asynchronously, but this is transparent to
the client: accessors synchronize with the loader in the background.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package wordlist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'seek'
func tracer() tracing.Trace {
	return tracing.Select("seek")
}
