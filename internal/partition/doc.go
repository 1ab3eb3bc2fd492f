// Package partition implements the engine behind biglist: a sequence of
// bounded segments addressed by 64-bit global indices.
//
// # Layout
//
// A Partition owns an ordered slice of segments. Non-empty segments always
// form a prefix; empty segments only exist at the tail, where they hold
// capacity reserved through SetCapacity. A segment that becomes empty through
// removal is unlinked and released immediately.
//
// # Index Translation
//
// Segment lengths are kept in a Fenwick tree (bounds), so resolving a global
// index to (segment, offset) is a binary search over cumulative boundaries in
// O(log S). Changing one segment's length is also O(log S); adding or
// removing a segment rebuilds the tree in O(S). A locator caches the last
// resolved segment so sequential and nearby access is O(1).
//
// # Growth, Split and Merge
//
//   - New segments start small and double up to MaxSegmentCapacity.
//   - A full segment below the maximum is reallocated at twice its capacity.
//   - A full segment at the maximum splits at the insertion point, clamped so
//     that both halves keep at least a quarter of the maximum.
//   - After removal, a segment shorter than a quarter of the maximum merges
//     with its shorter neighbour when the result fits in three quarters.
//
// # Versioning
//
// Every structural change (insert, remove, clear, capacity change, sort,
// reverse, trim) increments Version. Overwriting a value does not. Iterators
// and user callbacks (predicates, comparers, sources) are checked against the
// version and fail with ErrInvalidState when the partition changed under them.
//
// A Partition is not safe for concurrent use.
package partition
