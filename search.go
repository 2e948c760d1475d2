package seek

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"slices"
)

// NotFound is the index reported when no element of a sequence matches the
// item searched for. It is distinct from every valid index.
const NotFound = -1

// Kind selects which question Search answers.
type Kind int8

const (
	// CheckPresence asks whether an item is contained in a sequence at all.
	CheckPresence Kind = iota
	// FindIndex asks for the position of an item's first occurrence.
	FindIndex
)

// Result is the outcome of a call to Search.
//
// Found reports presence. Index is the position of the first occurrence for
// FindIndex queries and NotFound otherwise; CheckPresence queries never
// report a position, as the underlying binary search does not track one.
type Result struct {
	Found bool
	Index int
}

// Linear scans list front to back and returns the index of the first element
// equal to item, or NotFound if no element matches.
//
// With sorted set, the caller asserts that list is in ascending order; the
// scan then stops as soon as an element greater than item is seen, since no
// later element can match. The assertion is not validated; asserting sorted
// for an unordered list silently yields wrong results.
//
// Runs in O(n), or O(k) on sorted input, where k is the position of the
// first element not less than item.
func Linear[T cmp.Ordered](item T, list []T, sorted bool) int {
	for i, el := range list {
		if el == item {
			return i
		}
		if sorted && item < el {
			break
		}
	}
	return NotFound
}

// Binary reports whether item is contained in list, which must be sorted in
// ascending order. Binary answers presence only and does not report a
// position.
//
// Runs in O(log n).
func Binary[T cmp.Ordered](item T, list []T) bool {
	lo, hi := 0, len(list)
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case item == list[mid]:
			return true
		case item < list[mid]:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return false
}

// Search looks for item in list, routing to one of the two search
// algorithms depending on kind.
//
// For CheckPresence queries, Search guarantees binary search a sorted view
// of list: unless the caller asserts sortedness, a copy is sorted first.
// The caller's slice is never reordered.
//
// For FindIndex queries, Search delegates to Linear on the sequence as
// given, since sorting would change the meaning of “first occurrence”.
// The sorted assertion is passed through unchecked.
func Search[E cmp.Ordered](item E, list []E, kind Kind, sorted bool) Result {
	if kind == CheckPresence {
		if !sorted {
			T().Debugf("sorting a copy of %d items for a presence query", len(list))
			list = slices.Clone(list)
			slices.Sort(list)
		}
		return Result{Found: Binary(item, list), Index: NotFound}
	}
	i := Linear(item, list, sorted)
	return Result{Found: i != NotFound, Index: i}
}
