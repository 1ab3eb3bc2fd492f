package partition

// locator caches the segment resolved by the previous lookup.
type locator struct {
	seg     int
	start   int64
	version uint64
	valid   bool
}

// locate resolves global index i (0 <= i < count) to a segment and offset.
func (p *Partition[T]) locate(i int64) (int, int) {
	l := &p.loc
	if l.valid && l.version == p.version {
		cur := int64(p.segs[l.seg].Len())
		switch {
		case i >= l.start && i-l.start < cur:
			return l.seg, int(i - l.start)
		case i >= l.start+cur && l.seg+1 < len(p.segs):
			next := l.start + cur
			if i-next < int64(p.segs[l.seg+1].Len()) {
				l.seg++
				l.start = next
				return l.seg, int(i - next)
			}
		case i < l.start && l.seg > 0:
			prev := l.start - int64(p.segs[l.seg-1].Len())
			if i >= prev {
				l.seg--
				l.start = prev
				return l.seg, int(i - prev)
			}
		}
	}
	seg, start := p.bounds.find(i)
	p.touch(seg, start)
	return seg, int(i - start)
}

// touch records that segment seg starts at global index start.
func (p *Partition[T]) touch(seg int, start int64) {
	p.loc = locator{seg: seg, start: start, version: p.version, valid: true}
}
