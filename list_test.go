package biglist

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/biglist/testutil"
)

func newInts(t *testing.T, n int, opts ...Option) *List[int] {
	t.Helper()
	l, err := NewOrdered[int](opts...)
	require.NoError(t, err)
	for i := range n {
		require.NoError(t, l.Add(i))
	}
	return l
}

func items[T any](t *testing.T, l *List[T]) []T {
	t.Helper()
	out, err := l.ToSlice()
	require.NoError(t, err)
	return out
}

func requirePanicsWithInvalidState(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, ErrInvalidState)
	}()
	fn()
}

func TestList_Scenario(t *testing.T) {
	l := newInts(t, 10, WithMaxSegmentCapacity(4))

	require.NoError(t, l.Insert(0, -1))
	assert.Equal(t, int64(11), l.Count())

	v, err := l.RemoveAt(5)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, int64(10), l.Count())

	want := []int{-1, 0, 1, 2, 3, 5, 6, 7, 8, 9}
	if diff := cmp.Diff(want, items(t, l)); diff != "" {
		t.Errorf("contents mismatch (-want +got):\n%s", diff)
	}

	i, err := l.BinarySearch(7, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), i)

	i, err = l.BinarySearch(4, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), ^i)
}

func TestList_InsertRemoveInverse(t *testing.T) {
	rng := testutil.NewRNG(4711)
	l := newInts(t, 200, WithMaxSegmentCapacity(8))
	before := items(t, l)

	for range 100 {
		i := rng.Int63n(l.Count() + 1)
		require.NoError(t, l.Insert(i, -7))
		got, err := l.Get(i)
		require.NoError(t, err)
		assert.Equal(t, -7, got)
		if i < l.Count()-1 {
			next, err := l.Get(i + 1)
			require.NoError(t, err)
			assert.Equal(t, before[i], next)
		}

		v, err := l.RemoveAt(i)
		require.NoError(t, err)
		assert.Equal(t, -7, v)
		require.Empty(t, cmp.Diff(before, items(t, l)))
	}
}

func TestList_RoundTrip(t *testing.T) {
	l := newInts(t, 1000, WithMaxSegmentCapacity(16))
	require.NoError(t, l.Reverse())

	buf := make([]int, l.Count())
	require.NoError(t, l.CopyTo(buf, 0))

	m, err := FromSlice(buf, WithMaxSegmentCapacity(64))
	require.NoError(t, err)
	assert.Equal(t, l.Count(), m.Count())
	if diff := cmp.Diff(items(t, l), items(t, m)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestList_CapacityInvariant(t *testing.T) {
	rng := testutil.NewRNG(1)
	l := newInts(t, 0, WithMaxSegmentCapacity(8))

	for step := range 500 {
		switch rng.Intn(4) {
		case 0, 1:
			require.NoError(t, l.Insert(rng.Int63n(l.Count()+1), step))
		case 2:
			if l.Count() > 0 {
				_, err := l.RemoveAt(rng.Int63n(l.Count()))
				require.NoError(t, err)
			}
		default:
			before := items(t, l)
			capacity := l.Capacity()
			require.NoError(t, l.TrimExcess())
			assert.LessOrEqual(t, l.Capacity(), capacity)
			require.Empty(t, cmp.Diff(before, items(t, l)))
		}
		require.GreaterOrEqual(t, l.Capacity(), l.Count())
	}

	assert.ErrorIs(t, l.SetCapacity(l.Count()-1), ErrInvalidState)
	require.NoError(t, l.SetCapacity(l.Count()+100))
	assert.Equal(t, l.Count()+100, l.Capacity())
}

func TestList_IteratorFailFast(t *testing.T) {
	mutations := map[string]func(l *List[int]){
		"insert": func(l *List[int]) { _ = l.Insert(1, 42) },
		"remove": func(l *List[int]) { _, _ = l.RemoveAt(0) },
		"clear":  func(l *List[int]) { l.Clear() },
		"sort":   func(l *List[int]) { _ = l.Sort(nil) },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			l := newInts(t, 10, WithMaxSegmentCapacity(4))
			it := l.Iterator()
			require.True(t, it.Next())
			assert.Equal(t, 0, it.Value())

			mutate(l)

			assert.False(t, it.Next())
			assert.ErrorIs(t, it.Err(), ErrInvalidState)
		})
	}
}

func TestList_IteratorSurvivesSet(t *testing.T) {
	l := newInts(t, 5)
	var got []int
	it := l.Iterator()
	for it.Next() {
		require.NoError(t, l.Set(it.Index(), it.Value()*10))
		got = append(got, it.Value())
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	assert.Equal(t, []int{0, 10, 20, 30, 40}, items(t, l))
}

func TestList_RangeOverFunc(t *testing.T) {
	l := newInts(t, 6, WithMaxSegmentCapacity(2))

	var sum int
	for i, v := range l.All() {
		assert.Equal(t, int64(v), i)
		sum += v
	}
	assert.Equal(t, 15, sum)

	var first []int
	for v := range l.Values() {
		if v == 3 {
			break
		}
		first = append(first, v)
	}
	assert.Equal(t, []int{0, 1, 2}, first)

	requirePanicsWithInvalidState(t, func() {
		for v := range l.Values() {
			if v == 2 {
				_ = l.Add(99)
			}
		}
	})
}

func TestList_Searches(t *testing.T) {
	l, err := FromSlice([]string{"a", "b", "c", "a", "b", "c"}, WithMaxSegmentCapacity(2))
	require.NoError(t, err)

	tests := []struct {
		name string
		fn   func() (int64, error)
		want int64
	}{
		{"IndexOf", func() (int64, error) { return l.IndexOf("b") }, 1},
		{"IndexOfFrom", func() (int64, error) { return l.IndexOfFrom("b", 2) }, 4},
		{"IndexOfRange miss", func() (int64, error) { return l.IndexOfRange("c", 3, 2) }, -1},
		{"IndexOfFrom end", func() (int64, error) { return l.IndexOfFrom("a", 6) }, -1},
		{"LastIndexOf", func() (int64, error) { return l.LastIndexOf("a") }, 3},
		{"LastIndexOfFrom", func() (int64, error) { return l.LastIndexOfFrom("c", 4) }, 2},
		{"LastIndexOfRange miss", func() (int64, error) { return l.LastIndexOfRange("a", 2, 2) }, -1},
		{"FindIndex", func() (int64, error) { return l.FindIndex(func(s string) bool { return s > "a" }) }, 1},
		{"FindIndexFrom", func() (int64, error) { return l.FindIndexFrom(3, func(s string) bool { return s == "c" }) }, 5},
		{"FindIndexRange", func() (int64, error) {
			return l.FindIndexRange(1, 2, func(s string) bool { return s == "a" })
		}, -1},
		{"FindLastIndex", func() (int64, error) { return l.FindLastIndex(func(s string) bool { return s == "b" }) }, 4},
		{"FindLastIndexFrom", func() (int64, error) {
			return l.FindLastIndexFrom(3, func(s string) bool { return s == "b" })
		}, 1},
		{"FindLastIndexRange", func() (int64, error) {
			return l.FindLastIndexRange(5, 2, func(s string) bool { return s == "a" })
		}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	ok, err := l.Contains("c")
	require.NoError(t, err)
	assert.True(t, ok)

	v, found, err := l.Find(func(s string) bool { return s > "b" })
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "c", v)

	_, found, err = l.FindLast(func(s string) bool { return s == "z" })
	require.NoError(t, err)
	assert.False(t, found)

	exists, err := l.Exists(func(s string) bool { return s == "c" })
	require.NoError(t, err)
	assert.True(t, exists)

	all, err := l.TrueForAll(func(s string) bool { return len(s) == 1 })
	require.NoError(t, err)
	assert.True(t, all)

	bs, err := l.FindAll(func(s string) bool { return s == "b" })
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "b"}, items(t, bs))
	assert.Equal(t, l.MaxSegmentCapacity(), bs.MaxSegmentCapacity())

	var joined string
	require.NoError(t, l.ForEach(func(s string) { joined += s }))
	assert.Equal(t, "abcabc", joined)
}

func TestList_SearchErrors(t *testing.T) {
	l := newInts(t, 5)

	_, err := l.IndexOfRange(1, 3, 3)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = l.IndexOfFrom(1, 6)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = l.LastIndexOfRange(1, 5, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = l.LastIndexOfRange(1, 2, 4)
	assert.ErrorIs(t, err, ErrInvalidRange)

	var re *RangeError
	_, err = l.FindIndexRange(-1, 2, func(int) bool { return true })
	require.ErrorAs(t, err, &re)
	assert.Equal(t, int64(-1), re.Start)
	assert.Equal(t, int64(5), re.Len)

	_, err = l.FindIndex(nil)
	assert.ErrorIs(t, err, ErrNilArgument)
	_, err = l.FindLastIndexRange(4, 5, nil)
	assert.ErrorIs(t, err, ErrNilArgument)
	_, err = l.TrueForAll(nil)
	assert.ErrorIs(t, err, ErrNilArgument)
	assert.ErrorIs(t, l.ForEach(nil), ErrNilArgument)
	_, err = l.FindAll(nil)
	assert.ErrorIs(t, err, ErrNilArgument)
}

func TestList_CallbackModifiesList(t *testing.T) {
	l := newInts(t, 20, WithMaxSegmentCapacity(4))

	err := l.ForEach(func(v int) {
		if v == 3 {
			_, _ = l.RemoveAt(0)
		}
	})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = l.FindIndex(func(v int) bool {
		_ = l.Add(v)
		return false
	})
	assert.ErrorIs(t, err, ErrInvalidState)

	err = l.Sort(func(a, b int) int {
		l.Clear()
		return a - b
	})
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Zero(t, l.Count())
}

func TestList_Policy(t *testing.T) {
	match := func(int) bool { return true }

	tests := []struct {
		name       string
		fn         func(l *List[int]) (int64, error)
		consistent error
		legacy     error
	}{
		{"LastIndexOf", func(l *List[int]) (int64, error) { return l.LastIndexOf(1) }, nil, nil},
		{"LastIndexOfRange(0,0)", func(l *List[int]) (int64, error) { return l.LastIndexOfRange(1, 0, 0) }, ErrInvalidRange, nil},
		{"LastIndexOfRange(5,3)", func(l *List[int]) (int64, error) { return l.LastIndexOfRange(1, 5, 3) }, ErrInvalidRange, nil},
		{"LastIndexOfFrom(0)", func(l *List[int]) (int64, error) { return l.LastIndexOfFrom(1, 0) }, ErrInvalidRange, ErrInvalidRange},
		{"LastIndexOfFrom(-1)", func(l *List[int]) (int64, error) { return l.LastIndexOfFrom(1, -1) }, ErrInvalidRange, nil},
		{"FindLastIndex", func(l *List[int]) (int64, error) { return l.FindLastIndex(match) }, nil, nil},
		{"FindLastIndexRange(-1,0)", func(l *List[int]) (int64, error) { return l.FindLastIndexRange(-1, 0, match) }, ErrInvalidRange, nil},
		{"FindLastIndexRange(0,0)", func(l *List[int]) (int64, error) { return l.FindLastIndexRange(0, 0, match) }, ErrInvalidRange, ErrInvalidRange},
		{"FindLastIndexFrom(-1)", func(l *List[int]) (int64, error) { return l.FindLastIndexFrom(-1, match) }, ErrInvalidRange, nil},
		{"IndexOfRange(0,0)", func(l *List[int]) (int64, error) { return l.IndexOfRange(1, 0, 0) }, nil, nil},
		{"IndexOfRange(1,0)", func(l *List[int]) (int64, error) { return l.IndexOfRange(1, 1, 0) }, ErrInvalidRange, ErrInvalidRange},
	}
	for _, policy := range []Policy{PolicyConsistent, PolicyLegacy} {
		for _, tt := range tests {
			t.Run(policy.String()+"/"+tt.name, func(t *testing.T) {
				l := newInts(t, 0, WithPolicy(policy))
				require.Equal(t, policy, l.Policy())

				want := tt.consistent
				if policy == PolicyLegacy {
					want = tt.legacy
				}
				got, err := tt.fn(l)
				if want == nil {
					require.NoError(t, err)
					assert.Equal(t, int64(-1), got)
				} else {
					assert.ErrorIs(t, err, want)
				}
			})
		}
	}
}

func TestList_PolicyOnlyAffectsEmptyLists(t *testing.T) {
	for _, policy := range []Policy{PolicyConsistent, PolicyLegacy} {
		l := newInts(t, 3, WithPolicy(policy))

		_, err := l.LastIndexOfRange(1, 5, 3)
		assert.ErrorIs(t, err, ErrInvalidRange, policy.String())
		_, err = l.FindLastIndexRange(-1, 0, func(int) bool { return true })
		assert.ErrorIs(t, err, ErrInvalidRange, policy.String())

		i, err := l.LastIndexOfFrom(1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), i)
	}
}

func TestList_RemoveAndRemoveAll(t *testing.T) {
	l := newInts(t, 30, WithMaxSegmentCapacity(4))

	ok, err := l.Remove(7)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = l.Remove(7)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := l.RemoveAll(func(v int) bool { return v >= 10 })
	require.NoError(t, err)
	assert.Equal(t, int64(20), n)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 8, 9}, items(t, l))

	require.NoError(t, l.RemoveRange(2, 3))
	assert.Equal(t, []int{0, 1, 5, 6, 8, 9}, items(t, l))
	assert.ErrorIs(t, l.RemoveRange(4, 3), ErrInvalidRange)
}

func TestList_InsertRangeAndSeq(t *testing.T) {
	l := newInts(t, 4, WithMaxSegmentCapacity(4))

	require.NoError(t, l.InsertRange(2, []int{10, 11, 12, 13, 14}))
	assert.Equal(t, []int{0, 1, 10, 11, 12, 13, 14, 2, 3}, items(t, l))

	require.NoError(t, l.AddSeq(l.Values()))
	assert.Equal(t, int64(18), l.Count())
	assert.Equal(t, []int{0, 1, 10, 11, 12, 13, 14, 2, 3, 0, 1, 10, 11, 12, 13, 14, 2, 3}, items(t, l))

	assert.ErrorIs(t, l.InsertSeq(0, nil), ErrNilArgument)
	assert.ErrorIs(t, l.InsertRange(19, []int{1}), ErrIndexOutOfRange)

	s, err := FromSeq(func(yield func(string) bool) {
		for i := range 3 {
			if !yield(strconv.Itoa(i)) {
				return
			}
		}
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, items(t, s))
}

func TestList_SortAndReverse(t *testing.T) {
	rng := testutil.NewRNG(99)
	l, err := NewOrdered[int](WithMaxSegmentCapacity(32))
	require.NoError(t, err)
	require.NoError(t, l.AddRange(rng.Perm(2000)))

	require.NoError(t, l.Sort(nil))
	got := items(t, l)
	for i, v := range got {
		require.Equal(t, i, v)
	}

	for _, x := range []int{0, 777, 1999} {
		i, err := l.BinarySearch(x, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(x), i)
	}
	i, err := l.BinarySearch(5000, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), ^i)

	require.NoError(t, l.ReverseRange(10, 5))
	v, err := l.Get(10)
	require.NoError(t, err)
	assert.Equal(t, 14, v)

	require.NoError(t, l.SortRange(0, 20, func(a, b int) int { return b - a }))
	v, err = l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 19, v)

	i, err = l.BinarySearchRange(100, 50, 120, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(120), i)
}

func TestList_SortNeedsComparer(t *testing.T) {
	l, err := New[string]()
	require.NoError(t, err)
	require.NoError(t, l.AddRange([]string{"b", "a"}))

	assert.ErrorIs(t, l.Sort(nil), ErrNilArgument)
	_, err = l.BinarySearch("a", nil)
	assert.ErrorIs(t, err, ErrNilArgument)

	require.NoError(t, l.Sort(func(a, b string) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}))
	assert.Equal(t, []string{"a", "b"}, items(t, l))
}

func TestList_NewFunc(t *testing.T) {
	_, err := NewFunc[[]byte](nil)
	assert.ErrorIs(t, err, ErrNilArgument)

	l, err := NewFunc(func(a, b []byte) bool { return string(a) == string(b) })
	require.NoError(t, err)
	require.NoError(t, l.Add([]byte("x")))
	require.NoError(t, l.Add([]byte("y")))

	i, err := l.IndexOf([]byte("y"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), i)
}

func TestList_InvalidOptions(t *testing.T) {
	_, err := New[int](WithMaxSegmentCapacity(1))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New[int](WithPolicy(Policy(7)))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	l, err := New[int](WithConfig(Config{Policy: PolicyLegacy, DefaultMaxSegmentCapacity: 128}))
	require.NoError(t, err)
	assert.Equal(t, PolicyLegacy, l.Policy())
	assert.Equal(t, 128, l.MaxSegmentCapacity())
}

func TestConvertAll(t *testing.T) {
	l := newInts(t, 5, WithMaxSegmentCapacity(2))

	s, err := ConvertAll(l, strconv.Itoa)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, items(t, s))
	assert.Equal(t, 2, s.MaxSegmentCapacity())

	_, err = s.IndexOf("3")
	assert.ErrorIs(t, err, ErrNilArgument)
	i, err := s.FindIndex(func(v string) bool { return v == "3" })
	require.NoError(t, err)
	assert.Equal(t, int64(3), i)

	_, err = ConvertAll[int, string](l, nil)
	assert.ErrorIs(t, err, ErrNilArgument)
}

func TestList_GetRangeAndCopy(t *testing.T) {
	l := newInts(t, 20, WithMaxSegmentCapacity(4))

	r, err := l.GetRange(5, 6)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10}, items(t, r))
	i, err := r.BinarySearch(8, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), i)

	_, err = l.GetRange(15, 6)
	assert.ErrorIs(t, err, ErrInvalidRange)

	dst := make([]int, 8)
	require.NoError(t, l.CopyRangeTo(10, dst, 2, 3))
	assert.Equal(t, []int{0, 0, 10, 11, 12, 0, 0, 0}, dst)

	assert.ErrorIs(t, l.CopyTo(dst, 0), ErrCapacity)
	assert.ErrorIs(t, l.CopyRangeTo(0, dst, 6, 3), ErrCapacity)
	assert.ErrorIs(t, l.CopyRangeTo(0, dst, -1, 3), ErrInvalidRange)
	assert.ErrorIs(t, l.CopyRangeTo(18, dst, 0, 3), ErrInvalidRange)

	big := make([]int, 25)
	require.NoError(t, l.CopyTo(big, 5))
	assert.Equal(t, 19, big[24])
}

func TestList_MemoryLimit(t *testing.T) {
	l, err := New[int64](WithMaxSegmentCapacity(8), WithMemoryLimit(16*8))
	require.NoError(t, err)

	for i := range int64(16) {
		require.NoError(t, l.Add(i))
	}
	err = l.Add(16)
	require.ErrorIs(t, err, ErrCapacity)

	err = l.InsertRange(0, []int64{1, 2, 3})
	require.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, int64(16), l.Count())

	st := l.Stats()
	assert.Equal(t, int64(16*8), st.MemoryUsed)
	assert.Equal(t, int64(16*8), st.MemoryLimit)
	assert.Equal(t, int64(16*8), st.MemoryPeak)
	assert.Contains(t, st.String(), "memory=128 B/128 B peak=128 B")

	l.Clear()
	assert.Zero(t, l.Stats().MemoryUsed)
	assert.Equal(t, int64(16*8), l.Stats().MemoryPeak)
}

func TestList_DerivedListsShareMemoryLimit(t *testing.T) {
	l, err := New[int64](WithMaxSegmentCapacity(8), WithMemoryLimit(32*8))
	require.NoError(t, err)
	for i := range int64(16) {
		require.NoError(t, l.Add(i))
	}
	require.Equal(t, int64(16*8), l.Stats().MemoryUsed)

	r, err := l.GetRange(0, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(24*8), l.Stats().MemoryUsed)
	assert.Equal(t, l.Stats().MemoryUsed, r.Stats().MemoryUsed)
	assert.Equal(t, l.Stats().MemoryLimit, r.Stats().MemoryLimit)

	small, err := l.FindAll(func(v int64) bool { return v < 8 })
	require.NoError(t, err)
	assert.Equal(t, int64(8), small.Count())
	assert.Equal(t, int64(32*8), l.Stats().MemoryUsed)

	// The shared budget is exhausted.
	_, err = ConvertAll(l, func(v int64) int64 { return v })
	require.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, int64(32*8), l.Stats().MemoryUsed)

	r.Clear()
	assert.Equal(t, int64(24*8), l.Stats().MemoryUsed)
}

func TestList_Metrics(t *testing.T) {
	mc := &BasicMetricsCollector{}
	l := newInts(t, 0, WithMaxSegmentCapacity(8), WithMetricsCollector(mc))

	rng := testutil.NewRNG(3)
	for range 300 {
		require.NoError(t, l.Insert(rng.Int63n(l.Count()+1), 1))
	}
	require.NoError(t, l.Sort(nil))

	l.Clear()
	require.NoError(t, l.AddRange(make([]int, 64)))
	require.NoError(t, l.RemoveRange(1, 61))

	stats := mc.GetStats()
	assert.Positive(t, stats.Splits)
	assert.Positive(t, stats.Merges)
	assert.Equal(t, int64(1), stats.SortCount)
	assert.Equal(t, int64(300), stats.SortedElements)
	assert.Equal(t, l.Capacity(), stats.LiveSlots)
}

func TestStats_String(t *testing.T) {
	st := Stats{
		Count:              1234567,
		Capacity:           1300000,
		Segments:           20,
		MinSegmentLen:      16384,
		MaxSegmentLen:      65536,
		MaxSegmentCapacity: 65536,
	}
	assert.Equal(t,
		"count=1,234,567 capacity=1,300,000 segments=20 (empty 0, len 16384..65536, max 65,536) policy=consistent",
		st.String())
}

func TestList_ErrorTypes(t *testing.T) {
	l := newInts(t, 2)

	_, err := l.Get(5)
	var ie *IndexError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, int64(5), ie.Index)
	assert.Equal(t, int64(2), ie.Count)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Equal(t, "index 5 out of range [0, 2)", err.Error())

	assert.ErrorIs(t, ErrReadOnly, ErrInvalidState)
	assert.Equal(t, "invalid state: read-only view", fmt.Sprint(ErrReadOnly))
}
