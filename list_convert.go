package biglist

import (
	"context"
	"fmt"
	"iter"

	"github.com/dustin/go-humanize"

	"github.com/hupe1980/biglist/internal/conv"
	"github.com/hupe1980/biglist/internal/partition"
)

// ConvertAll returns a new list holding convert applied to every element of l,
// in order. The new list shares l's options. It has no equality function, so
// value searches on it fail with ErrNilArgument; predicate searches work.
func ConvertAll[T, U any](l *List[T], convert func(T) U) (*List[U], error) {
	if convert == nil {
		return nil, ErrNilArgument
	}
	out, err := newListFrom[U](nil, nil, l.opts)
	if err != nil {
		return nil, err
	}

	var addErr error
	err = l.p.Scan(0, l.p.Count(), func(_ int64, v T) bool {
		addErr = out.Add(convert(v))
		return addErr == nil
	})
	if err == nil {
		err = addErr
	}
	l.log.LogBulk(context.Background(), "convert", out.Count(), err)
	if err != nil {
		out.Clear()
		return nil, err
	}
	return out, nil
}

// GetRange returns a new list holding a copy of the forward range
// (start, count).
func (l *List[T]) GetRange(start, count int64) (*List[T], error) {
	p, err := l.p.Clone(start, count, l.opts.partitionConfig())
	if err != nil {
		return nil, err
	}
	return wrap(l, p), nil
}

// CopyTo copies the whole list into dst starting at dst[dstIndex]. It fails
// with ErrCapacity if dst cannot hold Count elements from dstIndex on.
func (l *List[T]) CopyTo(dst []T, dstIndex int) error {
	n, err := conv.Int64ToInt(l.p.Count())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCapacity, err)
	}
	return l.CopyRangeTo(0, dst, dstIndex, n)
}

// CopyRangeTo copies count elements starting at index start into dst
// starting at dst[dstIndex].
func (l *List[T]) CopyRangeTo(start int64, dst []T, dstIndex, count int) error {
	if dstIndex < 0 || count < 0 {
		return &RangeError{Start: int64(dstIndex), Count: int64(count), Len: int64(len(dst))}
	}
	if dstIndex > len(dst) || len(dst)-dstIndex < count {
		return fmt.Errorf("%w: destination holds %d elements from index %d, need %d",
			ErrCapacity, max(len(dst)-dstIndex, 0), dstIndex, count)
	}
	return l.p.CopyTo(start, dst[dstIndex:dstIndex+count])
}

// ToSlice returns the elements in a new slice. It fails with ErrCapacity if
// Count does not fit in an int.
func (l *List[T]) ToSlice() ([]T, error) {
	n, err := conv.Int64ToInt(l.p.Count())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCapacity, err)
	}
	out := make([]T, n)
	if err := l.p.CopyTo(0, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Iterator walks a list front to back. It fails fast with an error wrapping
// ErrInvalidState once the list is structurally modified.
type Iterator[T any] struct {
	it *partition.Iterator[T]
}

// Next advances to the next element and reports whether one exists.
func (it *Iterator[T]) Next() bool { return it.it.Next() }

// Value returns the current element.
func (it *Iterator[T]) Value() T { return it.it.Value() }

// Index returns the index of the current element.
func (it *Iterator[T]) Index() int64 { return it.it.Index() }

// Err returns the error that stopped the iteration, if any.
func (it *Iterator[T]) Err() error { return it.it.Err() }

// Iterator returns an iterator positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{it: l.p.Iter()}
}

// All returns an iterator over index/value pairs for range-over-func.
// It panics with an error wrapping ErrInvalidState if the list is
// structurally modified during the loop; use Iterator to get the error
// returned instead.
func (l *List[T]) All() iter.Seq2[int64, T] {
	return func(yield func(int64, T) bool) {
		it := l.p.Iter()
		for it.Next() {
			if !yield(it.Index(), it.Value()) {
				return
			}
		}
		if err := it.Err(); err != nil {
			panic(err)
		}
	}
}

// Values returns an iterator over the elements for range-over-func. It
// panics like All.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Stats describes a list's segment layout.
type Stats struct {
	Count              int64
	Capacity           int64
	Segments           int
	EmptySegments      int
	MinSegmentLen      int
	MaxSegmentLen      int
	MaxSegmentCapacity int
	Version            uint64
	Policy             Policy

	// MemoryUsed, MemoryPeak and MemoryLimit report the memory controller,
	// which may be shared between lists. All are 0 without one.
	MemoryUsed  int64
	MemoryPeak  int64
	MemoryLimit int64
}

// Stats returns a snapshot of the segment layout.
func (l *List[T]) Stats() Stats {
	st := l.p.Stats()
	return Stats{
		Count:              st.Count,
		Capacity:           st.Capacity,
		Segments:           st.Segments,
		EmptySegments:      st.EmptySegments,
		MinSegmentLen:      st.MinSegmentLen,
		MaxSegmentLen:      st.MaxSegmentLen,
		MaxSegmentCapacity: st.MaxSegmentCap,
		Version:            st.Version,
		Policy:             l.opts.policy,
		MemoryUsed:         l.opts.memory.MemoryUsage(),
		MemoryPeak:         l.opts.memory.PeakMemoryUsage(),
		MemoryLimit:        l.opts.memory.MemoryLimit(),
	}
}

// String formats the stats for humans.
func (s Stats) String() string {
	out := fmt.Sprintf("count=%s capacity=%s segments=%s (empty %d, len %d..%d, max %s) policy=%s",
		humanize.Comma(s.Count),
		humanize.Comma(s.Capacity),
		humanize.Comma(int64(s.Segments)),
		s.EmptySegments,
		s.MinSegmentLen,
		s.MaxSegmentLen,
		humanize.Comma(int64(s.MaxSegmentCapacity)),
		s.Policy,
	)
	if s.MemoryLimit > 0 {
		out += fmt.Sprintf(" memory=%s/%s", humanize.IBytes(uint64(s.MemoryUsed)), humanize.IBytes(uint64(s.MemoryLimit))) //nolint:gosec // non-negative
	} else if s.MemoryUsed > 0 {
		out += " memory=" + humanize.IBytes(uint64(s.MemoryUsed)) //nolint:gosec // non-negative
	}
	if s.MemoryPeak > 0 {
		out += " peak=" + humanize.IBytes(uint64(s.MemoryPeak)) //nolint:gosec // non-negative
	}
	return out
}
