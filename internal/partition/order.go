package partition

import (
	"container/heap"
	"slices"
	"time"

	"github.com/hupe1980/biglist/internal/segment"
)

// sortAborted is panicked by a guarded comparer once the partition changed
// underneath the sort.
type sortAborted struct{}

// Sort orders [start, start+count) by cmp. The sort is not stable.
//
// Every segment's share of the range is sorted in place, so each one becomes
// a sorted run. The runs are then k-way merged into one scratch copy of the
// range and written back over the same positions, leaving the segment layout
// unchanged. When the memory budget refuses the scratch copy, the runs are
// merged in place by rotation instead, which needs no extra memory.
//
// Sorting stops with an error wrapping ErrInvalidState if cmp modifies the
// list. The range then holds the same elements in an unspecified order.
func (p *Partition[T]) Sort(start, count int64, cmp func(a, b T) int) error {
	if cmp == nil {
		return ErrNilArgument
	}
	if err := p.checkRange(start, count); err != nil {
		return err
	}
	if count < 2 {
		p.bump()
		return nil
	}

	began := time.Now()
	v := p.version
	less := func(a, b T) int {
		c := cmp(a, b)
		if p.version != v {
			panic(sortAborted{})
		}
		return c
	}

	k, off := p.locate(start)
	rs := p.runsOf(k, off, count, less)
	for _, r := range rs.parts {
		if err := sortRun(r, less); err != nil {
			return err
		}
	}

	inPlace := false
	if len(rs.parts) > 1 {
		out, err := p.newExactBuilder(count)
		if err == nil {
			defer out.discard()
			if err := mergeRuns(rs.parts, out, less); err != nil {
				return err
			}
			rs.fill(out.segs)
		} else {
			inPlace = true
			if err := guard(rs.mergeInPlace); err != nil {
				return err
			}
		}
	}
	p.bump()

	d := time.Since(began)
	p.obs.Sorted(count, len(rs.parts), d)
	p.log.Debug("sorted range",
		"start", start,
		"count", count,
		"runs", len(rs.parts),
		"in_place", inPlace,
		"duration", d,
	)
	return nil
}

// guard converts a sortAborted panic raised while fn runs into errModified.
func guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(sortAborted); ok {
				err = errModified
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

func sortRun[T any](items []T, less func(a, b T) int) error {
	return guard(func() { slices.SortFunc(items, less) })
}

// runs views a range that crosses segments as one sorted run per segment,
// addressed by position within the range.
type runs[T any] struct {
	parts [][]T
	ends  []int64
	cmp   func(a, b T) int
}

// runsOf collects the segment slices covering count elements starting at
// segment k, offset off.
func (p *Partition[T]) runsOf(k, off int, count int64, cmp func(a, b T) int) *runs[T] {
	rs := &runs[T]{cmp: cmp}
	var end int64
	for rem := count; rem > 0; k++ {
		items := p.segs[k].Items()[off:]
		n := min(int64(len(items)), rem)
		rs.parts = append(rs.parts, items[:n])
		end += n
		rs.ends = append(rs.ends, end)
		rem -= n
		off = 0
	}
	return rs
}

func (rs *runs[T]) ref(i int64) *T {
	j, _ := slices.BinarySearch(rs.ends, i+1)
	if j > 0 {
		i -= rs.ends[j-1]
	}
	return &rs.parts[j][i]
}

func (rs *runs[T]) less(i, j int64) bool {
	return rs.cmp(*rs.ref(i), *rs.ref(j)) < 0
}

func (rs *runs[T]) swap(i, j int64) {
	a, b := rs.ref(i), rs.ref(j)
	*a, *b = *b, *a
}

// fill writes src back over the range in order.
func (rs *runs[T]) fill(src []*segment.Segment[T]) {
	j, off := 0, 0
	for _, s := range src {
		from := s.Items()
		for len(from) > 0 {
			n := copy(rs.parts[j][off:], from)
			from = from[n:]
			if off += n; off == len(rs.parts[j]) {
				j++
				off = 0
			}
		}
	}
}

// mergeInPlace merges neighbouring runs pairwise until one run is left.
func (rs *runs[T]) mergeInPlace() {
	bounds := append([]int64{0}, rs.ends...)
	for len(bounds) > 2 {
		next := []int64{0}
		i := 0
		for ; i+2 < len(bounds); i += 2 {
			rs.symMerge(bounds[i], bounds[i+1], bounds[i+2])
			next = append(next, bounds[i+2])
		}
		if i+1 < len(bounds) {
			next = append(next, bounds[len(bounds)-1])
		}
		bounds = next
	}
}

// symMerge merges the sorted blocks [a, m) and [m, b) using binary searches
// and rotations only. Both blocks must be non-empty.
func (rs *runs[T]) symMerge(a, m, b int64) {
	if m-a == 1 {
		i, j := m, b
		for i < j {
			h := (i + j) / 2
			if rs.less(h, a) {
				i = h + 1
			} else {
				j = h
			}
		}
		for k := a; k < i-1; k++ {
			rs.swap(k, k+1)
		}
		return
	}
	if b-m == 1 {
		i, j := a, m
		for i < j {
			h := (i + j) / 2
			if !rs.less(m, h) {
				i = h + 1
			} else {
				j = h
			}
		}
		for k := m; k > i; k-- {
			rs.swap(k, k-1)
		}
		return
	}

	mid := (a + b) / 2
	n := mid + m
	var lo, hi int64
	if m > mid {
		lo, hi = n-b, mid
	} else {
		lo, hi = a, m
	}
	last := n - 1
	for lo < hi {
		c := (lo + hi) / 2
		if !rs.less(last-c, c) {
			lo = c + 1
		} else {
			hi = c
		}
	}
	end := n - lo
	if lo < m && m < end {
		rs.rotate(lo, m, end)
	}
	if a < lo && lo < mid {
		rs.symMerge(a, lo, mid)
	}
	if mid < end && end < b {
		rs.symMerge(mid, end, b)
	}
}

// rotate turns [a, m) [m, b) into [m, b) [a, m).
func (rs *runs[T]) rotate(a, m, b int64) {
	i, j := m-a, b-m
	for i != j {
		if i > j {
			rs.swapBlocks(m-i, m, j)
			i -= j
		} else {
			rs.swapBlocks(m-i, m+j-i, i)
			j -= i
		}
	}
	rs.swapBlocks(m-i, m, i)
}

func (rs *runs[T]) swapBlocks(a, b, n int64) {
	for i := range n {
		rs.swap(a+i, b+i)
	}
}

// runCursor is the read position within one sorted run.
type runCursor[T any] struct {
	items []T
	pos   int
	run   int
}

type mergeHeap[T any] struct {
	cursors []*runCursor[T]
	less    func(a, b T) int
}

func (h *mergeHeap[T]) Len() int { return len(h.cursors) }

func (h *mergeHeap[T]) Less(i, j int) bool {
	a, b := h.cursors[i], h.cursors[j]
	if c := h.less(a.items[a.pos], b.items[b.pos]); c != 0 {
		return c < 0
	}
	return a.run < b.run
}

func (h *mergeHeap[T]) Swap(i, j int) { h.cursors[i], h.cursors[j] = h.cursors[j], h.cursors[i] }

func (h *mergeHeap[T]) Push(x any) { h.cursors = append(h.cursors, x.(*runCursor[T])) }

func (h *mergeHeap[T]) Pop() any {
	old := h.cursors
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	h.cursors = old[:n-1]
	return c
}

// mergeRuns k-way merges the sorted runs into out.
func mergeRuns[T any](parts [][]T, out *builder[T], less func(a, b T) int) error {
	return guard(func() {
		h := &mergeHeap[T]{less: less}
		for i, r := range parts {
			if len(r) > 0 {
				h.cursors = append(h.cursors, &runCursor[T]{items: r, run: i})
			}
		}
		heap.Init(h)
		for h.Len() > 0 {
			c := h.cursors[0]
			// out was reserved for the whole range.
			_ = out.add(c.items[c.pos])
			c.pos++
			if c.pos == len(c.items) {
				heap.Pop(h)
			} else {
				heap.Fix(h, 0)
			}
		}
	})
}

// Reverse reverses the order of [start, start+count).
func (p *Partition[T]) Reverse(start, count int64) error {
	if err := p.checkRange(start, count); err != nil {
		return err
	}
	if count < 2 {
		p.bump()
		return nil
	}

	lk, loff := p.locate(start)
	rk, roff := p.locate(start + count - 1)
	for n := count / 2; n > 0; n-- {
		l, r := p.segs[lk].Items(), p.segs[rk].Items()
		l[loff], r[roff] = r[roff], l[loff]

		if loff++; loff == len(l) {
			lk++
			loff = 0
		}
		if roff--; roff < 0 {
			rk--
			if rk >= 0 {
				roff = p.segs[rk].Len() - 1
			}
		}
	}
	p.bump()
	return nil
}
