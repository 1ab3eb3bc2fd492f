package partition

import "fmt"

// Stats describes the segment layout.
type Stats struct {
	Count         int64
	Capacity      int64
	Segments      int
	EmptySegments int
	MinSegmentLen int
	MaxSegmentLen int
	MaxSegmentCap int
	Version       uint64
}

// Stats returns a snapshot of the segment layout.
func (p *Partition[T]) Stats() Stats {
	st := Stats{
		Count:         p.count,
		Capacity:      p.capacity,
		Segments:      len(p.segs),
		MaxSegmentCap: p.maxSeg,
		Version:       p.version,
		MinSegmentLen: -1,
	}
	for _, s := range p.segs {
		n := s.Len()
		if n == 0 {
			st.EmptySegments++
			continue
		}
		if st.MinSegmentLen < 0 || n < st.MinSegmentLen {
			st.MinSegmentLen = n
		}
		st.MaxSegmentLen = max(st.MaxSegmentLen, n)
	}
	if st.MinSegmentLen < 0 {
		st.MinSegmentLen = 0
	}
	return st
}

// Check verifies the structural invariants and returns the first violation.
func (p *Partition[T]) Check() error {
	var count, capacity int64
	seenEmpty := false
	for k, s := range p.segs {
		if s.Cap() > p.maxSeg {
			return fmt.Errorf("%w: segment %d capacity %d exceeds %d", ErrInvalidState, k, s.Cap(), p.maxSeg)
		}
		if s.Len() > s.Cap() {
			return fmt.Errorf("%w: segment %d length %d exceeds capacity %d", ErrInvalidState, k, s.Len(), s.Cap())
		}
		if s.Len() == 0 {
			seenEmpty = true
		} else if seenEmpty {
			return fmt.Errorf("%w: non-empty segment %d follows an empty one", ErrInvalidState, k)
		}
		if got := p.bounds.prefix(k); got != count {
			return fmt.Errorf("%w: segment %d starts at %d, index says %d", ErrInvalidState, k, count, got)
		}
		count += int64(s.Len())
		capacity += int64(s.Cap())
	}
	if count != p.count {
		return fmt.Errorf("%w: segments hold %d elements, count is %d", ErrInvalidState, count, p.count)
	}
	if capacity != p.capacity {
		return fmt.Errorf("%w: segments hold %d slots, capacity is %d", ErrInvalidState, capacity, p.capacity)
	}
	return nil
}
