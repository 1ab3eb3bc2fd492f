package biglist

import (
	"cmp"
	"context"
	"fmt"
	"iter"

	"github.com/hupe1980/biglist/internal/partition"
)

// List is a segmented sequence of T with 64-bit indices.
//
// The zero value is not usable; create lists with New, NewOrdered, NewFunc,
// FromSlice or FromSeq.
type List[T any] struct {
	p       *partition.Partition[T]
	equal   func(a, b T) bool
	compare func(a, b T) int
	opts    options
	log     *Logger
}

// New creates an empty list whose searches use ==.
func New[T comparable](opts ...Option) (*List[T], error) {
	return newList[T](equalOf[T], nil, opts)
}

// NewOrdered creates an empty list whose searches use == and whose Sort and
// BinarySearch default to cmp.Compare.
func NewOrdered[T cmp.Ordered](opts ...Option) (*List[T], error) {
	return newList[T](equalOf[T], cmp.Compare[T], opts)
}

// NewFunc creates an empty list whose searches use equal.
func NewFunc[T any](equal func(a, b T) bool, opts ...Option) (*List[T], error) {
	if equal == nil {
		return nil, fmt.Errorf("%w: equality function", ErrNilArgument)
	}
	return newList[T](equal, nil, opts)
}

// FromSlice creates a list holding a copy of vs.
func FromSlice[T comparable](vs []T, opts ...Option) (*List[T], error) {
	l, err := New[T](opts...)
	if err != nil {
		return nil, err
	}
	if err := l.AddRange(vs); err != nil {
		return nil, err
	}
	return l, nil
}

// FromSeq creates a list holding every value produced by seq.
func FromSeq[T comparable](seq iter.Seq[T], opts ...Option) (*List[T], error) {
	l, err := New[T](opts...)
	if err != nil {
		return nil, err
	}
	if err := l.AddSeq(seq); err != nil {
		return nil, err
	}
	return l, nil
}

func equalOf[T comparable](a, b T) bool { return a == b }

func newList[T any](equal func(a, b T) bool, compare func(a, b T) int, optFns []Option) (*List[T], error) {
	o := applyOptions(optFns)
	if o.policy != PolicyConsistent && o.policy != PolicyLegacy {
		return nil, fmt.Errorf("%w: unknown policy %d", ErrInvalidConfig, int(o.policy))
	}
	return newListFrom(equal, compare, o)
}

func newListFrom[T any](equal func(a, b T) bool, compare func(a, b T) int, o options) (*List[T], error) {
	p, err := partition.New[T](o.partitionConfig())
	if err != nil {
		return nil, err
	}
	l := &List[T]{
		p:       p,
		equal:   equal,
		compare: compare,
		opts:    o,
		log:     o.logger,
	}
	l.log.LogCreated(context.Background(), o.policy, p.MaxSegmentCapacity())
	return l, nil
}

// wrap creates a list around an existing partition with the same settings as l.
func wrap[T any](l *List[T], p *partition.Partition[T]) *List[T] {
	return &List[T]{p: p, equal: l.equal, compare: l.compare, opts: l.opts, log: l.log}
}

// Count returns the number of elements.
func (l *List[T]) Count() int64 { return l.p.Count() }

// Capacity returns the number of elements the allocated segments can hold.
func (l *List[T]) Capacity() int64 { return l.p.Capacity() }

// SetCapacity reallocates segments so that Capacity equals c. It fails with
// ErrInvalidState if c is below Count.
func (l *List[T]) SetCapacity(c int64) error { return l.p.SetCapacity(c) }

// Policy returns the edge-case policy the list was created with.
func (l *List[T]) Policy() Policy { return l.opts.policy }

// MaxSegmentCapacity returns the segment size limit.
func (l *List[T]) MaxSegmentCapacity() int { return l.p.MaxSegmentCapacity() }

// Get returns the element at index i.
func (l *List[T]) Get(i int64) (T, error) { return l.p.Get(i) }

// Set replaces the element at index i. It is not a structural change and
// does not invalidate iterators.
func (l *List[T]) Set(i int64, v T) error { return l.p.Set(i, v) }

// Add appends v.
func (l *List[T]) Add(v T) error { return l.p.Insert(l.p.Count(), v) }

// AddRange appends every element of vs.
func (l *List[T]) AddRange(vs []T) error { return l.p.InsertSlice(l.p.Count(), vs) }

// AddSeq appends every value produced by seq. seq may iterate this list.
func (l *List[T]) AddSeq(seq iter.Seq[T]) error { return l.InsertSeq(l.p.Count(), seq) }

// Insert inserts v at index i, 0 <= i <= Count.
func (l *List[T]) Insert(i int64, v T) error { return l.p.Insert(i, v) }

// InsertRange inserts every element of vs so that vs[0] lands at index i.
func (l *List[T]) InsertRange(i int64, vs []T) error { return l.p.InsertSlice(i, vs) }

// InsertSeq inserts every value produced by seq starting at index i. seq may
// iterate this list; the values are collected before the list changes.
func (l *List[T]) InsertSeq(i int64, seq iter.Seq[T]) error {
	before := l.p.Count()
	err := l.p.InsertSeq(i, seq)
	l.log.LogBulk(context.Background(), "insert sequence", l.p.Count()-before, err)
	return err
}

// RemoveAt removes and returns the element at index i.
func (l *List[T]) RemoveAt(i int64) (T, error) { return l.p.RemoveAt(i) }

// Remove removes the first element equal to v and reports whether one was
// found.
func (l *List[T]) Remove(v T) (bool, error) {
	i, err := l.IndexOf(v)
	if err != nil || i < 0 {
		return false, err
	}
	if _, err := l.p.RemoveAt(i); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveRange removes count elements starting at index i.
func (l *List[T]) RemoveRange(i, count int64) error { return l.p.RemoveRange(i, count) }

// RemoveAll removes every element matching match and returns how many were
// removed. match sees every element once, in order, before anything moves.
func (l *List[T]) RemoveAll(match func(T) bool) (int64, error) {
	n, err := l.p.RemoveWhere(match)
	l.log.LogBulk(context.Background(), "remove all", n, err)
	return n, err
}

// Clear removes every element and releases every segment.
func (l *List[T]) Clear() { l.p.Clear() }

// TrimExcess releases unused capacity. It never changes Count or order.
func (l *List[T]) TrimExcess() error { return l.p.TrimExcess() }

// Sort sorts the list. A nil cmp uses the list's default comparer, which
// only lists created by NewOrdered have. The sort is not stable.
func (l *List[T]) Sort(cmp func(a, b T) int) error {
	return l.SortRange(0, l.p.Count(), cmp)
}

// SortRange sorts count elements starting at index start.
func (l *List[T]) SortRange(start, count int64, cmp func(a, b T) int) error {
	c, err := l.comparer(cmp)
	if err != nil {
		return err
	}
	return l.p.Sort(start, count, c)
}

// Reverse reverses the order of the list.
func (l *List[T]) Reverse() error { return l.p.Reverse(0, l.p.Count()) }

// ReverseRange reverses count elements starting at index start.
func (l *List[T]) ReverseRange(start, count int64) error { return l.p.Reverse(start, count) }

func (l *List[T]) comparer(cmp func(a, b T) int) (func(a, b T) int, error) {
	if cmp != nil {
		return cmp, nil
	}
	if l.compare == nil {
		return nil, errNoOrdering
	}
	return l.compare, nil
}
