package partition

import "math/bits"

// bounds is a Fenwick tree over segment lengths.
type bounds struct {
	tree []int64 // 1-based
	step int     // highest power of two <= n
}

func (b *bounds) size() int {
	if len(b.tree) == 0 {
		return 0
	}
	return len(b.tree) - 1
}

// rebuild recomputes the tree for n segments in O(n).
func (b *bounds) rebuild(n int, length func(i int) int64) {
	if cap(b.tree) >= n+1 {
		b.tree = b.tree[:n+1]
		clear(b.tree)
	} else {
		b.tree = make([]int64, n+1)
	}
	for i := 1; i <= n; i++ {
		b.tree[i] += length(i - 1)
		if j := i + (i & -i); j <= n {
			b.tree[j] += b.tree[i]
		}
	}
	b.step = 0
	if n > 0 {
		b.step = 1 << (bits.Len(uint(n)) - 1)
	}
}

// add changes the length of segment i by delta.
func (b *bounds) add(i int, delta int64) {
	n := b.size()
	for j := i + 1; j <= n; j += j & -j {
		b.tree[j] += delta
	}
}

// prefix returns the combined length of segments [0, i).
func (b *bounds) prefix(i int) int64 {
	var sum int64
	for j := i; j > 0; j -= j & -j {
		sum += b.tree[j]
	}
	return sum
}

// find returns the segment holding global index target and the global index
// of that segment's first element. target must be below the total length.
func (b *bounds) find(target int64) (int, int64) {
	n := b.size()
	pos := 0
	rem := target
	for step := b.step; step > 0; step >>= 1 {
		if next := pos + step; next <= n && b.tree[next] <= rem {
			pos = next
			rem -= b.tree[next]
		}
	}
	return pos, target - rem
}
