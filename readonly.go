package biglist

import "iter"

// ReadOnlyList is a non-owning view of a List that forwards every read and
// rejects every write. It reflects later changes made through the List.
type ReadOnlyList[T any] struct {
	l *List[T]
}

var _ Store[int] = (*ReadOnlyList[int])(nil)

// AsReadOnly returns a read-only view of l.
func (l *List[T]) AsReadOnly() *ReadOnlyList[T] {
	return &ReadOnlyList[T]{l: l}
}

func (r *ReadOnlyList[T]) Count() int64            { return r.l.Count() }
func (r *ReadOnlyList[T]) Capacity() int64         { return r.l.Capacity() }
func (r *ReadOnlyList[T]) Policy() Policy          { return r.l.Policy() }
func (r *ReadOnlyList[T]) MaxSegmentCapacity() int { return r.l.MaxSegmentCapacity() }
func (r *ReadOnlyList[T]) Stats() Stats            { return r.l.Stats() }
func (r *ReadOnlyList[T]) Get(i int64) (T, error)  { return r.l.Get(i) }

func (r *ReadOnlyList[T]) Contains(v T) (bool, error)     { return r.l.Contains(v) }
func (r *ReadOnlyList[T]) IndexOf(v T) (int64, error)     { return r.l.IndexOf(v) }
func (r *ReadOnlyList[T]) LastIndexOf(v T) (int64, error) { return r.l.LastIndexOf(v) }

func (r *ReadOnlyList[T]) IndexOfFrom(v T, start int64) (int64, error) {
	return r.l.IndexOfFrom(v, start)
}

func (r *ReadOnlyList[T]) IndexOfRange(v T, start, count int64) (int64, error) {
	return r.l.IndexOfRange(v, start, count)
}

func (r *ReadOnlyList[T]) LastIndexOfFrom(v T, start int64) (int64, error) {
	return r.l.LastIndexOfFrom(v, start)
}

func (r *ReadOnlyList[T]) LastIndexOfRange(v T, start, count int64) (int64, error) {
	return r.l.LastIndexOfRange(v, start, count)
}

func (r *ReadOnlyList[T]) Find(match func(T) bool) (T, bool, error) { return r.l.Find(match) }
func (r *ReadOnlyList[T]) FindLast(match func(T) bool) (T, bool, error) {
	return r.l.FindLast(match)
}

func (r *ReadOnlyList[T]) FindIndex(match func(T) bool) (int64, error) {
	return r.l.FindIndex(match)
}

func (r *ReadOnlyList[T]) FindIndexFrom(start int64, match func(T) bool) (int64, error) {
	return r.l.FindIndexFrom(start, match)
}

func (r *ReadOnlyList[T]) FindIndexRange(start, count int64, match func(T) bool) (int64, error) {
	return r.l.FindIndexRange(start, count, match)
}

func (r *ReadOnlyList[T]) FindLastIndex(match func(T) bool) (int64, error) {
	return r.l.FindLastIndex(match)
}

func (r *ReadOnlyList[T]) FindLastIndexFrom(start int64, match func(T) bool) (int64, error) {
	return r.l.FindLastIndexFrom(start, match)
}

func (r *ReadOnlyList[T]) FindLastIndexRange(start, count int64, match func(T) bool) (int64, error) {
	return r.l.FindLastIndexRange(start, count, match)
}

func (r *ReadOnlyList[T]) FindAll(match func(T) bool) (*List[T], error) {
	return r.l.FindAll(match)
}

func (r *ReadOnlyList[T]) Exists(match func(T) bool) (bool, error) { return r.l.Exists(match) }

func (r *ReadOnlyList[T]) TrueForAll(match func(T) bool) (bool, error) {
	return r.l.TrueForAll(match)
}

func (r *ReadOnlyList[T]) ForEach(action func(T)) error { return r.l.ForEach(action) }

func (r *ReadOnlyList[T]) BinarySearch(v T, cmp func(a, b T) int) (int64, error) {
	return r.l.BinarySearch(v, cmp)
}

func (r *ReadOnlyList[T]) BinarySearchRange(start, count int64, v T, cmp func(a, b T) int) (int64, error) {
	return r.l.BinarySearchRange(start, count, v, cmp)
}

func (r *ReadOnlyList[T]) GetRange(start, count int64) (*List[T], error) {
	return r.l.GetRange(start, count)
}

func (r *ReadOnlyList[T]) CopyTo(dst []T, dstIndex int) error { return r.l.CopyTo(dst, dstIndex) }

func (r *ReadOnlyList[T]) CopyRangeTo(start int64, dst []T, dstIndex, count int) error {
	return r.l.CopyRangeTo(start, dst, dstIndex, count)
}

func (r *ReadOnlyList[T]) ToSlice() ([]T, error)    { return r.l.ToSlice() }
func (r *ReadOnlyList[T]) Iterator() *Iterator[T]   { return r.l.Iterator() }
func (r *ReadOnlyList[T]) All() iter.Seq2[int64, T] { return r.l.All() }
func (r *ReadOnlyList[T]) Values() iter.Seq[T]      { return r.l.Values() }

// Len implements Store.
func (r *ReadOnlyList[T]) Len() int64 { return r.l.Count() }

// GetItem implements Store.
func (r *ReadOnlyList[T]) GetItem(i int64) (T, error) { return r.l.Get(i) }

// SetItem implements Store and always fails with ErrReadOnly.
func (r *ReadOnlyList[T]) SetItem(int64, T) error { return ErrReadOnly }

// InsertItem implements Store and always fails with ErrReadOnly.
func (r *ReadOnlyList[T]) InsertItem(int64, T) error { return ErrReadOnly }

// RemoveItem implements Store and always fails with ErrReadOnly.
func (r *ReadOnlyList[T]) RemoveItem(int64) error { return ErrReadOnly }

// ClearItems implements Store and always fails with ErrReadOnly.
func (r *ReadOnlyList[T]) ClearItems() error { return ErrReadOnly }
