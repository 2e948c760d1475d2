package wordlist

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/seek"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Some constants for word-batch size defaults
const (
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// List is an ordered sequence of words, possibly still being loaded in the
// background. Accessors synchronize with the loader; a List obtained from
// any of the constructors is valid for use right away.
type List struct {
	words     []string       // words in order of appearance
	sorted    []string       // ascending view, built lazily
	done      chan struct{}  // closed when loading has finished
	cast      *caster.Caster // broadcaster for word batches during loading
	sortOnce  sync.Once
	lastError error // remember last I/O error
}

// wordFile represents an OS file which will be loaded as a word list.
type wordFile struct {
	path string      // file name
	info os.FileInfo // result from Stat(path)
	file *os.File    // file handle
}

// Load reads a file, which must be a text file, and loads it as a word list.
//
// Loading of large files is done asynchronously, but this is transparent to
// the client. The list can be used right away and synchronisation will happen
// correctly in the background. Opening of the file is always done
// synchronously.
func Load(name string) (*List, error) {
	wf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	batch := tenKb / 64 // number of words to collect before broadcasting
	switch {
	case wf.info.Size() < tenKb:
		batch = 32
	case wf.info.Size() < hundredKb:
		batch = 256
	case wf.info.Size() < oneMb:
		batch = 1024
	}
	list := &List{
		done: make(chan struct{}),
		cast: caster.New(nil), // we will broadcast word batches as they arrive
	}
	go loadAllWords(wf, list, batch)
	return list, nil
}

// FromString creates a completed word list from an in-memory string.
func FromString(s string) *List {
	list := &List{done: make(chan struct{})}
	list.words = tokens(strings.NewReader(s))
	close(list.done)
	return list
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*wordFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, ErrNotRegularFile
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &wordFile{path: name, info: fi, file: file}, nil
}

// loadAllWords is the background loader.
func loadAllWords(wf *wordFile, list *List, batchSize int) {
	defer func() {
		if err := wf.file.Close(); err != nil && list.lastError == nil {
			list.lastError = fmt.Errorf("%w: %v", ErrIncompleteLoad, err)
		}
		list.cast.Close()
		close(list.done) // all loader writes happen before this
	}()
	tracer().Debugf("loading word list from %s, batch size %d", wf.path, batchSize)
	list.readAll(&errReader{r: wf.file}, batchSize)
	tracer().Debugf("word list %s loaded, %d words", wf.path, len(list.words))
}

// errReader records the first failure of the underlying reader. The
// segmenter ends its loop on any read error, so without this record a
// mid-stream failure would be indistinguishable from a clean end of input.
type errReader struct {
	r   io.Reader
	err error
}

func (er *errReader) Read(p []byte) (int, error) {
	n, err := er.r.Read(p)
	if err != nil && err != io.EOF && er.err == nil {
		er.err = err
	}
	return n, err
}

// readAll streams in through the segmenter, appends words batch-wise and
// publishes every batch to subscribers. Publishing happens strictly before
// the batch becomes visible through Words. A read failure ends the stream;
// the words seen so far are kept and the failure is recorded as
// ErrIncompleteLoad.
func (l *List) readAll(in *errReader, batchSize int) {
	batch := make([]string, 0, batchSize)
	for word := range tokenize(in) {
		batch = append(batch, word)
		if len(batch) == batchSize {
			l.publish(batch)
			batch = make([]string, 0, batchSize)
		}
	}
	if len(batch) > 0 {
		l.publish(batch)
	}
	if in.err != nil && l.lastError == nil {
		l.lastError = fmt.Errorf("%w: %v", ErrIncompleteLoad, in.err)
	}
}

func (l *List) publish(batch []string) {
	if l.cast != nil {
		l.cast.Pub(batch)
	}
	l.words = append(l.words, batch...)
}

// Subscribe returns a channel onto which the loader broadcasts every batch
// of words as it arrives, as a []string. The channel is closed when loading
// has finished or ctx is cancelled. Subscribing to an already completed list
// yields a closed channel.
func (l *List) Subscribe(ctx context.Context) <-chan interface{} {
	if l.cast != nil {
		if ch, ok := l.cast.Sub(ctx, 1); ok {
			return ch
		}
	}
	ch := make(chan interface{}) // no loader running (anymore)
	close(ch)
	return ch
}

// Words returns the words of the list in order of appearance, waiting for a
// background loader to finish if necessary. The returned slice is shared and
// must be treated as read-only.
func (l *List) Words() []string {
	<-l.done
	return l.words
}

// Sorted returns an ascending-sorted view of the list. The original order of
// appearance is not touched. The returned slice is shared and must be
// treated as read-only.
func (l *List) Sorted() []string {
	<-l.done
	l.sortOnce.Do(func() {
		l.sorted = slices.Clone(l.words)
		slices.Sort(l.sorted)
	})
	return l.sorted
}

// Err returns the last error the background loader encountered, if any.
// Err waits for loading to finish.
func (l *List) Err() error {
	<-l.done
	return l.lastError
}

// Search looks for a word in the list. Presence queries run as a binary
// search over the sorted view; position queries run over the order of
// appearance, which is what makes the reported index meaningful.
//
// With sorted set, the caller asserts that the order of appearance is
// already ascending: presence queries then skip the sorting step and
// position queries may stop scanning early. As with seek.Linear, the
// assertion is not validated.
func (l *List) Search(word string, kind seek.Kind, sorted bool) seek.Result {
	if kind == seek.CheckPresence {
		if sorted {
			return seek.Search(word, l.Words(), seek.CheckPresence, true)
		}
		return seek.Search(word, l.Sorted(), seek.CheckPresence, true)
	}
	return seek.Search(word, l.Words(), seek.FindIndex, sorted)
}
