package partition

import "github.com/hupe1980/biglist/internal/segment"

// builder fills fresh, unlinked segments in order.
//
// An exact builder reserves its whole output up front and lays it out as
// full segments of MaxSegmentCapacity followed by one exact-fit tail. A
// growing builder reserves as it goes and doubles its first segment the same
// way append does.
type builder[T any] struct {
	p         *Partition[T]
	segs      []*segment.Segment[T]
	n         int64
	exact     bool
	total     int64
	allocated int64
}

func (p *Partition[T]) newExactBuilder(total int64) (*builder[T], error) {
	if err := p.reserve(total); err != nil {
		return nil, err
	}
	return &builder[T]{p: p, exact: true, total: total}, nil
}

func (p *Partition[T]) newGrowBuilder() *builder[T] {
	return &builder[T]{p: p}
}

func (b *builder[T]) room() (*segment.Segment[T], error) {
	var last *segment.Segment[T]
	if len(b.segs) > 0 {
		last = b.segs[len(b.segs)-1]
		if last.Free() > 0 {
			return last, nil
		}
	}

	p := b.p
	if b.exact {
		if b.allocated >= b.total {
			return nil, ErrCapacity
		}
		capacity := int(min(int64(p.maxSeg), b.total-b.allocated))
		p.obs.SegmentAllocated(capacity)
		return b.push(capacity), nil
	}

	if last != nil && last.Cap() < p.maxSeg {
		old := last.Cap()
		newCap := p.nextCap(old)
		if err := p.reserve(int64(newCap - old)); err != nil {
			return nil, err
		}
		p.obs.SegmentReleased(old)
		p.obs.SegmentAllocated(newCap)
		last.Grow(newCap)
		b.allocated += int64(newCap - old)
		return last, nil
	}

	capacity := p.maxSeg
	if last == nil {
		capacity = min(initialSegmentCapacity, p.maxSeg)
	}
	if err := p.reserveSegment(capacity); err != nil {
		return nil, err
	}
	return b.push(capacity), nil
}

func (b *builder[T]) push(capacity int) *segment.Segment[T] {
	s := segment.New[T](capacity)
	b.segs = append(b.segs, s)
	b.allocated += int64(capacity)
	return s
}

func (b *builder[T]) add(v T) error {
	s, err := b.room()
	if err != nil {
		return err
	}
	_ = s.Append(v)
	b.n++
	return nil
}

func (b *builder[T]) addSlice(vs []T) error {
	for len(vs) > 0 {
		s, err := b.room()
		if err != nil {
			return err
		}
		taken := s.AppendSlice(vs)
		vs = vs[taken:]
		b.n += int64(taken)
	}
	return nil
}

// finish returns any unused part of an exact reservation.
func (b *builder[T]) finish() {
	if b.exact && b.allocated < b.total {
		b.p.unreserve(b.total - b.allocated)
		b.total = b.allocated
	}
}

// discard releases everything the builder allocated or reserved.
func (b *builder[T]) discard() {
	for _, s := range b.segs {
		b.p.obs.SegmentReleased(s.Cap())
		s.Release()
	}
	if b.exact {
		b.p.unreserve(b.total)
	} else {
		b.p.unreserve(b.allocated)
	}
	b.segs = nil
	b.n = 0
	b.allocated = 0
	b.total = 0
}
