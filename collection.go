package biglist

import (
	"fmt"
	"iter"
)

// Store is the set of primitive hooks a Collection is built on. Replacing
// the store redirects every Collection operation.
//
// Indices passed to the hooks have already been validated against Len.
type Store[T any] interface {
	Len() int64
	GetItem(i int64) (T, error)
	SetItem(i int64, v T) error
	InsertItem(i int64, v T) error
	RemoveItem(i int64) error
	ClearItems() error
}

// ListStore is the default Store, backed by a List. Embed it and override a
// single hook to customize one behaviour:
//
//	type auditStore struct {
//	    *biglist.ListStore[string]
//	    inserted int
//	}
//
//	func (s *auditStore) InsertItem(i int64, v string) error {
//	    s.inserted++
//	    return s.ListStore.InsertItem(i, v)
//	}
type ListStore[T any] struct {
	List *List[T]
}

var _ Store[int] = (*ListStore[int])(nil)

// NewListStore returns a store backed by l.
func NewListStore[T any](l *List[T]) *ListStore[T] {
	return &ListStore[T]{List: l}
}

func (s *ListStore[T]) Len() int64                    { return s.List.Count() }
func (s *ListStore[T]) GetItem(i int64) (T, error)    { return s.List.Get(i) }
func (s *ListStore[T]) SetItem(i int64, v T) error    { return s.List.Set(i, v) }
func (s *ListStore[T]) InsertItem(i int64, v T) error { return s.List.Insert(i, v) }

func (s *ListStore[T]) RemoveItem(i int64) error {
	_, err := s.List.RemoveAt(i)
	return err
}

func (s *ListStore[T]) ClearItems() error {
	s.List.Clear()
	return nil
}

// Collection is a thin sequence whose every operation is composed from the
// hooks of its Store.
type Collection[T any] struct {
	store Store[T]
	equal func(a, b T) bool
}

// NewCollection creates an empty collection backed by a new List.
func NewCollection[T comparable](opts ...Option) (*Collection[T], error) {
	l, err := New[T](opts...)
	if err != nil {
		return nil, err
	}
	return &Collection[T]{store: NewListStore(l), equal: equalOf[T]}, nil
}

// NewCollectionWithStore creates a collection over store.
func NewCollectionWithStore[T comparable](store Store[T]) (*Collection[T], error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store", ErrNilArgument)
	}
	return &Collection[T]{store: store, equal: equalOf[T]}, nil
}

// Store returns the backing store.
func (c *Collection[T]) Store() Store[T] { return c.store }

// Count returns the number of elements.
func (c *Collection[T]) Count() int64 { return c.store.Len() }

// Get returns the element at index i.
func (c *Collection[T]) Get(i int64) (T, error) {
	if err := c.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return c.store.GetItem(i)
}

// Set replaces the element at index i.
func (c *Collection[T]) Set(i int64, v T) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	return c.store.SetItem(i, v)
}

// Add appends v.
func (c *Collection[T]) Add(v T) error {
	return c.store.InsertItem(c.store.Len(), v)
}

// Insert inserts v at index i, 0 <= i <= Count.
func (c *Collection[T]) Insert(i int64, v T) error {
	if n := c.store.Len(); i < 0 || i > n {
		return &IndexError{Index: i, Count: n}
	}
	return c.store.InsertItem(i, v)
}

// RemoveAt removes the element at index i.
func (c *Collection[T]) RemoveAt(i int64) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	return c.store.RemoveItem(i)
}

// Remove removes the first element equal to v and reports whether one was
// found.
func (c *Collection[T]) Remove(v T) (bool, error) {
	i, err := c.IndexOf(v)
	if err != nil || i < 0 {
		return false, err
	}
	if err := c.store.RemoveItem(i); err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes every element.
func (c *Collection[T]) Clear() error {
	return c.store.ClearItems()
}

// Contains reports whether an element equal to v exists.
func (c *Collection[T]) Contains(v T) (bool, error) {
	i, err := c.IndexOf(v)
	return i >= 0, err
}

// IndexOf returns the index of the first element equal to v, or -1.
func (c *Collection[T]) IndexOf(v T) (int64, error) {
	n := c.store.Len()
	for i := int64(0); i < n; i++ {
		x, err := c.store.GetItem(i)
		if err != nil {
			return -1, err
		}
		if c.equal(x, v) {
			return i, nil
		}
	}
	return -1, nil
}

// CopyTo copies every element into dst starting at dst[dstIndex].
func (c *Collection[T]) CopyTo(dst []T, dstIndex int) error {
	n := c.store.Len()
	if dstIndex < 0 {
		return &RangeError{Start: int64(dstIndex), Count: n, Len: int64(len(dst))}
	}
	if dstIndex > len(dst) || int64(len(dst)-dstIndex) < n {
		return fmt.Errorf("%w: destination holds %d elements from index %d, need %d",
			ErrCapacity, max(len(dst)-dstIndex, 0), dstIndex, n)
	}
	for i := int64(0); i < n; i++ {
		v, err := c.store.GetItem(i)
		if err != nil {
			return err
		}
		dst[dstIndex+int(i)] = v
	}
	return nil
}

// All returns an iterator over index/value pairs for range-over-func. The
// store exposes no version, so a change of Len during the loop is what
// panics with an error wrapping ErrInvalidState.
func (c *Collection[T]) All() iter.Seq2[int64, T] {
	return func(yield func(int64, T) bool) {
		n := c.store.Len()
		for i := int64(0); i < n; i++ {
			if c.store.Len() != n {
				panic(fmt.Errorf("%w: collection was modified during iteration", ErrInvalidState))
			}
			v, err := c.store.GetItem(i)
			if err != nil {
				panic(err)
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

func (c *Collection[T]) checkIndex(i int64) error {
	if n := c.store.Len(); i < 0 || i >= n {
		return &IndexError{Index: i, Count: n}
	}
	return nil
}
