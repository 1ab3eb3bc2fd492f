package partition

import "fmt"

// checkRange validates a forward range [start, start+count).
func (p *Partition[T]) checkRange(start, count int64) error {
	if start < 0 || count < 0 || start > p.count-count {
		return &RangeError{Start: start, Count: count, Len: p.count}
	}
	return nil
}

// checkBackward validates a backward range of count elements ending at
// start. An empty partition has no valid backward range.
func (p *Partition[T]) checkBackward(start, count int64) error {
	if start < 0 || start >= p.count || count < 0 || count > start+1 {
		return &RangeError{Start: start, Count: count, Len: p.count}
	}
	return nil
}

// Scan calls fn for every element of [start, start+count) in order until fn
// returns false.
func (p *Partition[T]) Scan(start, count int64, fn func(i int64, v T) bool) error {
	if fn == nil {
		return ErrNilArgument
	}
	if err := p.checkRange(start, count); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	v := p.version
	k, off := p.locate(start)
	idx, end := start, start+count
	for idx < end {
		items := p.segs[k].Items()
		for ; off < len(items) && idx < end; off++ {
			more := fn(idx, items[off])
			if p.version != v {
				return errModified
			}
			if !more {
				return nil
			}
			idx++
		}
		k++
		off = 0
	}
	return nil
}

// IndexFunc returns the first index in [start, start+count) whose element
// satisfies match, or -1.
func (p *Partition[T]) IndexFunc(start, count int64, match func(T) bool) (int64, error) {
	if match == nil {
		return -1, ErrNilArgument
	}
	found := int64(-1)
	err := p.Scan(start, count, func(i int64, v T) bool {
		if match(v) {
			found = i
			return false
		}
		return true
	})
	if err != nil {
		return -1, err
	}
	return found, nil
}

// LastIndexFunc searches backwards through count elements ending at start
// and returns the last index whose element satisfies match, or -1.
func (p *Partition[T]) LastIndexFunc(start, count int64, match func(T) bool) (int64, error) {
	if match == nil {
		return -1, ErrNilArgument
	}
	if err := p.checkBackward(start, count); err != nil {
		return -1, err
	}
	if count == 0 {
		return -1, nil
	}

	v := p.version
	k, off := p.locate(start)
	idx, end := start, start-count
	for idx > end {
		items := p.segs[k].Items()
		for ; off >= 0 && idx > end; off-- {
			hit := match(items[off])
			if p.version != v {
				return -1, errModified
			}
			if hit {
				return idx, nil
			}
			idx--
		}
		k--
		if k >= 0 {
			off = p.segs[k].Len() - 1
		}
	}
	return -1, nil
}

// BinarySearch searches the sorted range [start, start+count) for value.
// It returns the index of a matching element, or the bitwise complement of
// the index at which value would be inserted.
func (p *Partition[T]) BinarySearch(start, count int64, value T, cmp func(a, b T) int) (int64, error) {
	if cmp == nil {
		return -1, ErrNilArgument
	}
	if err := p.checkRange(start, count); err != nil {
		return -1, err
	}

	v := p.version
	lo, hi := start, start+count-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		k, off := p.locate(mid)
		c := cmp(p.segs[k].Items()[off], value)
		if p.version != v {
			return -1, errModified
		}
		switch {
		case c == 0:
			return mid, nil
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return ^lo, nil
}

// CopyTo copies len(dst) elements starting at global index start into dst.
func (p *Partition[T]) CopyTo(start int64, dst []T) error {
	if err := p.checkRange(start, int64(len(dst))); err != nil {
		return err
	}
	if len(dst) == 0 {
		return nil
	}
	k, off := p.locate(start)
	for w := 0; w < len(dst); k++ {
		w += copy(dst[w:], p.segs[k].Items()[off:])
		off = 0
	}
	return nil
}

// Clone copies [start, start+count) into a new partition configured by cfg.
func (p *Partition[T]) Clone(start, count int64, cfg Config) (*Partition[T], error) {
	if err := p.checkRange(start, count); err != nil {
		return nil, err
	}
	q, err := New[T](cfg)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return q, nil
	}

	b, err := q.newExactBuilder(count)
	if err != nil {
		return nil, err
	}
	k, off := p.locate(start)
	for rem := count; rem > 0; k++ {
		items := p.segs[k].Items()[off:]
		n := min(int64(len(items)), rem)
		if err := b.addSlice(items[:n]); err != nil {
			b.discard()
			return nil, fmt.Errorf("clone: %w", err)
		}
		rem -= n
		off = 0
	}
	b.finish()
	q.linkAt(0, b.segs...)
	q.count = count
	q.reindex()
	q.bump()
	return q, nil
}
