package biglist

import (
	"fmt"
	"testing"

	"github.com/hupe1980/biglist/testutil"
)

func benchList(b *testing.B, n, maxSeg int) *List[int64] {
	b.Helper()
	l, err := NewOrdered[int64](WithMaxSegmentCapacity(maxSeg))
	if err != nil {
		b.Fatal(err)
	}
	rng := testutil.NewRNG(1)
	vs := make([]int64, n)
	for i := range vs {
		vs[i] = rng.Int63n(int64(n))
	}
	if err := l.AddRange(vs); err != nil {
		b.Fatal(err)
	}
	return l
}

func BenchmarkList_Get(b *testing.B) {
	for _, maxSeg := range []int{256, 4096, DefaultMaxSegmentCapacity} {
		b.Run(fmt.Sprintf("maxSeg=%d", maxSeg), func(b *testing.B) {
			const n = 1 << 20
			l := benchList(b, n, maxSeg)
			rng := testutil.NewRNG(2)
			b.ReportAllocs()

			var sink int64
			b.ResetTimer()
			for b.Loop() {
				v, err := l.Get(rng.Int63n(n))
				if err != nil {
					b.Fatal(err)
				}
				sink += v
			}
			_ = sink
		})
	}
}

func BenchmarkList_InsertRemoveMiddle(b *testing.B) {
	for _, maxSeg := range []int{256, 4096, DefaultMaxSegmentCapacity} {
		b.Run(fmt.Sprintf("maxSeg=%d", maxSeg), func(b *testing.B) {
			l := benchList(b, 1<<20, maxSeg)
			mid := l.Count() / 2
			b.ReportAllocs()

			b.ResetTimer()
			for b.Loop() {
				if err := l.Insert(mid, 1); err != nil {
					b.Fatal(err)
				}
				if _, err := l.RemoveAt(mid); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkList_Sort(b *testing.B) {
	const n = 1 << 18
	b.ReportAllocs()
	b.SetBytes(n * 8)

	for b.Loop() {
		b.StopTimer()
		l := benchList(b, n, 4096)
		b.StartTimer()
		if err := l.Sort(nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkList_Iterate(b *testing.B) {
	l := benchList(b, 1<<20, 4096)
	b.ReportAllocs()

	var sink int64
	b.ResetTimer()
	for b.Loop() {
		for _, v := range l.All() {
			sink += v
		}
	}
	_ = sink
}
