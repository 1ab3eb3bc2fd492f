package segment

import (
	"errors"
	"fmt"
)

var (
	// ErrIndex is returned when a local index is outside the segment.
	ErrIndex = errors.New("segment: index out of range")
	// ErrFull is returned when an operation would exceed the allocated capacity.
	ErrFull = errors.New("segment: capacity exceeded")
)

// Segment is a fixed-capacity run of items.
type Segment[T any] struct {
	items []T
}

// New allocates an empty segment able to hold capacity items.
func New[T any](capacity int) *Segment[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Segment[T]{items: make([]T, 0, capacity)}
}

// Len returns the number of items held.
func (s *Segment[T]) Len() int {
	return len(s.items)
}

// Cap returns the allocated capacity.
func (s *Segment[T]) Cap() int {
	return cap(s.items)
}

// Free returns the number of unused slots.
func (s *Segment[T]) Free() int {
	return cap(s.items) - len(s.items)
}

// Items exposes the used portion of the buffer. Callers must not retain it
// across structural changes.
func (s *Segment[T]) Items() []T {
	return s.items
}

// Append adds v at the end.
func (s *Segment[T]) Append(v T) error {
	if len(s.items) == cap(s.items) {
		return ErrFull
	}
	s.items = append(s.items, v)
	return nil
}

// AppendSlice appends as many items of vs as fit and returns how many were
// taken.
func (s *Segment[T]) AppendSlice(vs []T) int {
	n := min(len(vs), cap(s.items)-len(s.items))
	s.items = append(s.items, vs[:n]...)
	return n
}

// InsertAt inserts v at local index i, shifting later items up by one.
func (s *Segment[T]) InsertAt(i int, v T) error {
	n := len(s.items)
	if i < 0 || i > n {
		return fmt.Errorf("%w: %d (len %d)", ErrIndex, i, n)
	}
	if n == cap(s.items) {
		return ErrFull
	}
	s.items = s.items[:n+1]
	copy(s.items[i+1:], s.items[i:n])
	s.items[i] = v
	return nil
}

// InsertSlice inserts vs at local index i.
func (s *Segment[T]) InsertSlice(i int, vs []T) error {
	n := len(s.items)
	if i < 0 || i > n {
		return fmt.Errorf("%w: %d (len %d)", ErrIndex, i, n)
	}
	if n+len(vs) > cap(s.items) {
		return ErrFull
	}
	s.items = s.items[:n+len(vs)]
	copy(s.items[i+len(vs):], s.items[i:n])
	copy(s.items[i:], vs)
	return nil
}

// RemoveAt removes the item at local index i and returns it.
func (s *Segment[T]) RemoveAt(i int) (T, error) {
	n := len(s.items)
	if i < 0 || i >= n {
		var zero T
		return zero, fmt.Errorf("%w: %d (len %d)", ErrIndex, i, n)
	}
	v := s.items[i]
	copy(s.items[i:], s.items[i+1:])
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, nil
}

// RemoveRange removes count items starting at local index i.
func (s *Segment[T]) RemoveRange(i, count int) error {
	n := len(s.items)
	if i < 0 || count < 0 || i+count > n {
		return fmt.Errorf("%w: [%d,%d) (len %d)", ErrIndex, i, i+count, n)
	}
	if count == 0 {
		return nil
	}
	copy(s.items[i:], s.items[i+count:])
	clear(s.items[n-count : n])
	s.items = s.items[:n-count]
	return nil
}

// Truncate drops every item from local index i onwards.
func (s *Segment[T]) Truncate(i int) error {
	return s.RemoveRange(i, len(s.items)-i)
}

// SplitAt moves items [i, Len) into a new segment with the given capacity and
// keeps [0, i) in s. The concatenation of s and the result equals the
// original content.
func (s *Segment[T]) SplitAt(i, rightCap int) (*Segment[T], error) {
	n := len(s.items)
	if i < 0 || i > n {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndex, i, n)
	}
	if rightCap < n-i {
		return nil, ErrFull
	}
	right := New[T](rightCap)
	right.items = append(right.items, s.items[i:]...)
	clear(s.items[i:n])
	s.items = s.items[:i]
	return right, nil
}

// MergeWith appends every item of other to s and empties other. The combined
// length must not exceed maxCap; s is reallocated when its own capacity is
// too small.
func (s *Segment[T]) MergeWith(other *Segment[T], maxCap int) error {
	total := len(s.items) + len(other.items)
	if total > maxCap {
		return fmt.Errorf("%w: merged length %d exceeds %d", ErrFull, total, maxCap)
	}
	if total > cap(s.items) {
		s.Grow(total)
	}
	s.items = append(s.items, other.items...)
	other.Release()
	return nil
}

// Grow reallocates the buffer so it can hold at least newCap items.
func (s *Segment[T]) Grow(newCap int) {
	if newCap <= cap(s.items) {
		return
	}
	buf := make([]T, len(s.items), newCap)
	copy(buf, s.items)
	s.items = buf
}

// Shrink reallocates the buffer to exactly Len items.
func (s *Segment[T]) Shrink() {
	if len(s.items) == cap(s.items) {
		return
	}
	buf := make([]T, len(s.items))
	copy(buf, s.items)
	clear(s.items)
	s.items = buf
}

// Release drops the buffer so referenced values can be collected.
func (s *Segment[T]) Release() {
	clear(s.items)
	s.items = nil
}
