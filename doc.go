// Package biglist provides a segmented, in-memory list with 64-bit indices.
//
// A List holds its elements in bounded segments instead of one contiguous
// buffer, so it can grow past the size of a single allocation while keeping
// the contract of a dynamic array: indexed get and set, insertion, removal,
// search, sort and reversal.
//
// # Quick Start
//
//	l, _ := biglist.NewOrdered[int]()
//	_ = l.AddRange([]int{5, 3, 9})
//	_ = l.Insert(0, 1)
//	_ = l.Sort(nil)
//	i, _ := l.BinarySearch(9, nil) // 3
//
// Types without == equality use NewFunc:
//
//	l, _ := biglist.NewFunc(func(a, b []byte) bool { return bytes.Equal(a, b) })
//
// # Segments
//
// Segments start small and double until they reach MaxSegmentCapacity
// (65536 elements by default). A full segment at the limit splits at the
// insertion point; a segment that shrinks below a quarter of the limit merges
// with a neighbour. TrimExcess compacts in place, shrinking only the last segment.
//
//	l, _ := biglist.New[string](biglist.WithMaxSegmentCapacity(4096))
//
// # Edge-Case Policy
//
// PolicyConsistent (the default) validates every explicit start/count pair
// against [0, Count), including on an empty list. PolicyLegacy reproduces the
// historical behaviour where ranged backward searches on an empty list return
// -1 instead of failing. The process default comes from BIGLIST_POLICY,
// BIGLIST_MAX_SEGMENT_CAPACITY and an optional HuJSON file named by
// BIGLIST_CONFIG; ActiveConfig reports it.
//
// # Iteration
//
// Iterators capture the list's version and fail with an error wrapping
// ErrInvalidState once the list is structurally modified. Overwriting an
// element with Set is not a structural change.
//
//	it := l.Iterator()
//	for it.Next() {
//	    fmt.Println(it.Index(), it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
//
// # Concurrency
//
// A List is not safe for concurrent use. Callbacks passed to Sort, Find*,
// BinarySearch and friends must not modify the list they are called on;
// doing so fails the call with ErrInvalidState.
//
// # Memory Budget
//
// WithMemoryLimit caps the bytes held by segment buffers. An insert that would
// exceed the budget fails with ErrCapacity and leaves the list unchanged.
package biglist
