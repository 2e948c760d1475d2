package wordlist

import "errors"

var (
	// ErrNotRegularFile signals a path which does not name a regular file.
	ErrNotRegularFile = errors.New("wordlist: not a regular file")
	// ErrIncompleteLoad signals that the background loader could not read
	// the whole input.
	ErrIncompleteLoad = errors.New("wordlist: input not completely loaded")
)
