package partition

// Iterator walks a partition front to back. It fails fast with an error
// wrapping ErrInvalidState once the partition's structure changes.
type Iterator[T any] struct {
	p       *Partition[T]
	version uint64
	seg     int
	off     int
	index   int64
	cur     T
	err     error
}

// Iter returns an iterator positioned before the first element.
func (p *Partition[T]) Iter() *Iterator[T] {
	return &Iterator[T]{p: p, version: p.version, off: -1, index: -1}
}

// Next advances to the next element and reports whether one exists.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	p := it.p
	if p.version != it.version {
		it.err = errModified
		var zero T
		it.cur = zero
		return false
	}
	if it.index+1 >= p.count {
		it.index = p.count
		var zero T
		it.cur = zero
		return false
	}

	it.off++
	for it.off >= p.segs[it.seg].Len() {
		it.seg++
		it.off = 0
	}
	it.index++
	it.cur = p.segs[it.seg].Items()[it.off]
	return true
}

// Value returns the current element.
func (it *Iterator[T]) Value() T { return it.cur }

// Index returns the global index of the current element.
func (it *Iterator[T]) Index() int64 { return it.index }

// Err returns the error that stopped iteration, if any.
func (it *Iterator[T]) Err() error { return it.err }
