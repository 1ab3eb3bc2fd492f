package partition

import (
	"fmt"

	"github.com/hupe1980/biglist/internal/segment"
)

// Capacity returns the total allocated capacity across segments.
func (p *Partition[T]) Capacity() int64 {
	return p.capacity
}

// SetCapacity reallocates segments so that Capacity equals c.
//
// Shrinking first frees trailing reserve segments, then compacts in place.
// Growing reserves the whole extra amount before touching any segment.
func (p *Partition[T]) SetCapacity(c int64) error {
	if c < p.count {
		return fmt.Errorf("%w: capacity %d below count %d", ErrInvalidState, c, p.count)
	}
	if c == p.capacity {
		return nil
	}
	before := p.capacity

	if c < p.capacity {
		p.dropReserve(c)
		if c < p.capacity {
			p.compact()
		}
	}
	var err error
	if c > p.capacity {
		err = p.extend(c - p.capacity)
	}
	p.reindex()
	p.bump()
	if err != nil {
		return err
	}
	p.log.Debug("capacity changed", "from", before, "to", p.capacity, "count", p.count)
	return nil
}

// TrimExcess compacts the elements in place so that Capacity equals Count.
// It never changes Count or order, never increases Capacity, and needs at
// most one segment of transient memory.
func (p *Partition[T]) TrimExcess() error {
	if p.capacity == p.count {
		return nil
	}
	before := p.capacity
	segs := len(p.segs)
	p.compact()
	p.reindex()
	p.bump()
	p.log.Debug("trimmed excess capacity",
		"count", p.count,
		"capacity_before", before,
		"segments_before", segs,
		"segments_after", len(p.segs),
	)
	return nil
}

// dropReserve frees trailing empty segments while Capacity stays >= c.
func (p *Partition[T]) dropReserve(c int64) {
	for n := len(p.segs); n > 0; n = len(p.segs) {
		last := p.segs[n-1]
		if last.Len() > 0 || p.capacity-int64(last.Cap()) < c {
			return
		}
		p.unlink(n-1, n)
		p.freeSegment(last)
	}
}

// extend adds extra slots of capacity at the tail.
func (p *Partition[T]) extend(extra int64) error {
	if err := p.reserve(extra); err != nil {
		return err
	}
	rem := extra
	if n := len(p.segs); n > 0 {
		last := p.segs[n-1]
		if room := int64(p.maxSeg - last.Cap()); room > 0 {
			old := last.Cap()
			newCap := old + int(min(room, rem))
			p.obs.SegmentReleased(old)
			p.obs.SegmentAllocated(newCap)
			last.Grow(newCap)
			p.capacity += int64(newCap - old)
			rem -= int64(newCap - old)
		}
	}
	for rem > 0 {
		c := int(min(int64(p.maxSeg), rem))
		p.obs.SegmentAllocated(c)
		p.linkAt(len(p.segs), segment.New[T](c))
		rem -= int64(c)
	}
	return nil
}

// compact moves elements toward the front so that every segment but the
// last is filled to its capacity, frees the emptied segments and shrinks the
// last one to an exact fit. Afterwards Capacity equals Count. The caller
// reindexes.
func (p *Partition[T]) compact() {
	w := 0
	for r := 1; r < len(p.segs); r++ {
		src := p.segs[r]
		for src.Len() > 0 {
			for w < r && p.segs[w].Free() == 0 {
				w++
			}
			if w == r {
				break
			}
			dst := p.segs[w]
			n := dst.AppendSlice(src.Items())
			_ = src.RemoveRange(0, n)
		}
	}
	p.dropEmpty(0, len(p.segs))

	if n := len(p.segs); n > 0 {
		last := p.segs[n-1]
		if old := last.Cap(); last.Free() > 0 {
			last.Shrink()
			p.capacity -= int64(old - last.Cap())
			p.unreserve(int64(old - last.Cap()))
			p.obs.SegmentReleased(old)
			p.obs.SegmentAllocated(last.Cap())
		}
	}
}
