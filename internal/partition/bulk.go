package partition

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/biglist/internal/conv"
)

// InsertSlice inserts vs so that vs[0] ends up at global index i.
func (p *Partition[T]) InsertSlice(i int64, vs []T) error {
	if i < 0 || i > p.count {
		return &IndexError{Index: i, Count: p.count}
	}
	switch len(vs) {
	case 0:
		return nil
	case 1:
		return p.Insert(i, vs[0])
	}

	if k, off, ok := p.insertionPoint(i); ok && p.segs[k].Free() >= len(vs) {
		start := i - int64(off)
		if err := p.segs[k].InsertSlice(off, vs); err != nil {
			return translateError(err)
		}
		p.count += int64(len(vs))
		p.bounds.add(k, int64(len(vs)))
		p.bump()
		p.touch(k, start)
		return nil
	}

	b, err := p.newExactBuilder(int64(len(vs)))
	if err != nil {
		return err
	}
	if err := b.addSlice(vs); err != nil {
		b.discard()
		return err
	}
	b.finish()
	return p.splice(i, b)
}

// InsertSeq inserts every value produced by seq starting at global index i.
//
// The values are collected into new segments before the partition is
// touched, so seq may iterate this same partition.
func (p *Partition[T]) InsertSeq(i int64, seq iter.Seq[T]) error {
	if seq == nil {
		return ErrNilArgument
	}
	if i < 0 || i > p.count {
		return &IndexError{Index: i, Count: p.count}
	}

	v := p.version
	b := p.newGrowBuilder()
	linked := false
	defer func() {
		if !linked {
			b.discard()
		}
	}()

	var err error
	for x := range seq {
		if err = b.add(x); err != nil {
			break
		}
		if p.version != v {
			err = errModified
			break
		}
	}
	if err == nil && p.version != v {
		err = errModified
	}
	if err != nil || b.n == 0 {
		return err
	}
	linked = true
	return p.splice(i, b)
}

// insertionPoint returns the segment and offset an insert at i lands in.
func (p *Partition[T]) insertionPoint(i int64) (int, int, bool) {
	if i < p.count {
		k, off := p.locate(i)
		return k, off, true
	}
	k := p.lastUsed()
	if k < 0 {
		if len(p.segs) == 0 {
			return 0, 0, false
		}
		return 0, 0, true
	}
	return k, p.segs[k].Len(), true
}

// splice links the builder's segments so that its first element lands at i.
func (p *Partition[T]) splice(i int64, b *builder[T]) error {
	at := p.lastUsed() + 1
	if i < p.count {
		k, off := p.locate(i)
		at = k
		if off > 0 {
			s := p.segs[k]
			rightLen := s.Len() - off
			if err := p.reserveSegment(rightLen); err != nil {
				b.discard()
				return err
			}
			right, err := s.SplitAt(off, rightLen)
			if err != nil {
				p.releaseSegment(rightLen)
				b.discard()
				return translateError(err)
			}
			p.obs.SegmentSplit()
			p.linkAt(k+1, right)
			at = k + 1
		}
	}

	p.linkAt(at, b.segs...)
	p.count += b.n
	p.mergeIfSmall(at + len(b.segs) - 1)
	p.mergeIfSmall(at - 1)
	p.reindex()
	p.bump()
	return nil
}

// RemoveRange removes count elements starting at global index i.
func (p *Partition[T]) RemoveRange(i, count int64) error {
	if err := p.checkRange(i, count); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	k, off := p.locate(i)
	j := k
	for rem := count; rem > 0; j++ {
		s := p.segs[j]
		take := min(int64(s.Len()-off), rem)
		if err := s.RemoveRange(off, int(take)); err != nil {
			return translateError(err)
		}
		rem -= take
		off = 0
	}

	p.count -= count
	p.dropEmpty(k, j)
	p.mergeIfSmall(k)
	p.mergeIfSmall(k - 1)
	p.reindex()
	p.bump()
	return nil
}

// RemoveWhere removes every element matching match and returns how many were
// removed. All predicate calls happen before the first element moves.
func (p *Partition[T]) RemoveWhere(match func(T) bool) (int64, error) {
	if match == nil {
		return 0, ErrNilArgument
	}

	v := p.version
	marks := roaring64.New()
	var idx uint64
	for _, s := range p.segs {
		for _, x := range s.Items() {
			hit := match(x)
			if p.version != v {
				return 0, errModified
			}
			if hit {
				marks.Add(idx)
			}
			idx++
		}
	}

	removed, err := conv.Uint64ToInt64(marks.GetCardinality())
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		return 0, nil
	}

	it := marks.Iterator()
	next := it.Next()
	more := true
	idx = 0
	for _, s := range p.segs {
		items := s.Items()
		w := 0
		for r := range items {
			if more && idx == next {
				if it.HasNext() {
					next = it.Next()
				} else {
					more = false
				}
			} else {
				items[w] = items[r]
				w++
			}
			idx++
		}
		if err := s.Truncate(w); err != nil {
			return 0, translateError(err)
		}
	}

	p.count -= removed
	p.dropEmpty(0, len(p.segs))
	p.coalesce()
	p.reindex()
	p.bump()
	return removed, nil
}
