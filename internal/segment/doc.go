// Package segment implements the bounded contiguous buffer that stores one run
// of a partitioned sequence.
//
// A Segment never resizes implicitly: inserting into a full segment fails with
// ErrFull and the owner decides whether to grow or split it. All indices are
// local to the segment.
package segment
