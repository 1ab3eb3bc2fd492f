package partition

import (
	"fmt"
	"log/slog"
	"slices"
	"time"
	"unsafe"

	"github.com/hupe1980/biglist/internal/conv"
	"github.com/hupe1980/biglist/internal/segment"
	"github.com/hupe1980/biglist/resource"
)

const (
	// DefaultMaxSegmentCapacity is the segment size limit used when none is configured.
	// 16 bits = 65536 items per segment.
	DefaultMaxSegmentCapacity = 1 << 16
	// MinMaxSegmentCapacity is the smallest accepted segment size limit.
	MinMaxSegmentCapacity = 2

	initialSegmentCapacity = 4
)

// Observer receives structural events. Implementations must be cheap; they
// are called on the mutation path.
type Observer interface {
	SegmentAllocated(capacity int)
	SegmentReleased(capacity int)
	SegmentSplit()
	SegmentsMerged()
	Sorted(n int64, runs int, d time.Duration)
}

type noopObserver struct{}

func (noopObserver) SegmentAllocated(int)             {}
func (noopObserver) SegmentReleased(int)              {}
func (noopObserver) SegmentSplit()                    {}
func (noopObserver) SegmentsMerged()                  {}
func (noopObserver) Sorted(int64, int, time.Duration) {}

// Config configures a Partition.
type Config struct {
	// MaxSegmentCapacity bounds the number of items per segment.
	// If 0, DefaultMaxSegmentCapacity is used.
	MaxSegmentCapacity int

	// Memory, if set, accounts every segment allocation.
	Memory *resource.Controller

	// Observer, if set, receives structural events.
	Observer Observer

	// Logger, if set, receives debug logs for bulk operations.
	Logger *slog.Logger
}

// Partition is an ordered sequence of segments with 64-bit indexing.
type Partition[T any] struct {
	segs     []*segment.Segment[T]
	bounds   bounds
	loc      locator
	count    int64
	capacity int64
	version  uint64

	maxSeg   int
	elemSize int64
	rc       *resource.Controller
	obs      Observer
	log      *slog.Logger
}

// New creates an empty partition.
func New[T any](cfg Config) (*Partition[T], error) {
	maxSeg := cfg.MaxSegmentCapacity
	if maxSeg == 0 {
		maxSeg = DefaultMaxSegmentCapacity
	}
	if maxSeg < MinMaxSegmentCapacity {
		return nil, fmt.Errorf("%w: max segment capacity %d below %d", ErrInvalidConfig, maxSeg, MinMaxSegmentCapacity)
	}

	var zero T
	p := &Partition[T]{
		maxSeg:   maxSeg,
		elemSize: int64(unsafe.Sizeof(zero)),
		rc:       cfg.Memory,
		obs:      cfg.Observer,
		log:      cfg.Logger,
	}
	if p.obs == nil {
		p.obs = noopObserver{}
	}
	if p.log == nil {
		p.log = slog.New(slog.DiscardHandler)
	}
	return p, nil
}

// Count returns the number of elements.
func (p *Partition[T]) Count() int64 {
	return p.count
}

// Version returns the structural version.
func (p *Partition[T]) Version() uint64 {
	return p.version
}

// MaxSegmentCapacity returns the configured segment size limit.
func (p *Partition[T]) MaxSegmentCapacity() int {
	return p.maxSeg
}

// Get returns the element at global index i.
func (p *Partition[T]) Get(i int64) (T, error) {
	if i < 0 || i >= p.count {
		var zero T
		return zero, &IndexError{Index: i, Count: p.count}
	}
	k, off := p.locate(i)
	return p.segs[k].Items()[off], nil
}

// Set overwrites the element at global index i. It does not change Version.
func (p *Partition[T]) Set(i int64, v T) error {
	if i < 0 || i >= p.count {
		return &IndexError{Index: i, Count: p.count}
	}
	k, off := p.locate(i)
	p.segs[k].Items()[off] = v
	return nil
}

// Insert inserts v so that it ends up at global index i (0 <= i <= Count).
func (p *Partition[T]) Insert(i int64, v T) error {
	if i < 0 || i > p.count {
		return &IndexError{Index: i, Count: p.count}
	}
	if i == p.count {
		return p.append(v)
	}

	k, off := p.locate(i)
	start := i - int64(off)

	// Appending to the previous segment avoids shifting this one.
	if off == 0 && k > 0 && p.segs[k-1].Free() > 0 {
		prev := p.segs[k-1]
		_ = prev.Append(v)
		p.committed(k-1, start-int64(prev.Len()-1))
		return nil
	}

	s := p.segs[k]
	if s.Free() == 0 {
		if s.Cap() >= p.maxSeg {
			return p.splitInsert(k, start, off, v)
		}
		if err := p.growLinked(k, p.nextCap(s.Cap())); err != nil {
			return err
		}
	}
	if err := s.InsertAt(off, v); err != nil {
		return translateError(err)
	}
	p.committed(k, start)
	return nil
}

// committed records a single-element insert into segment k starting at start.
func (p *Partition[T]) committed(k int, start int64) {
	p.count++
	p.bounds.add(k, 1)
	p.bump()
	p.touch(k, start)
}

func (p *Partition[T]) append(v T) error {
	k := p.lastUsed()
	switch {
	case k >= 0 && p.segs[k].Free() > 0:
	case k+1 < len(p.segs):
		k++
	case k >= 0 && p.segs[k].Cap() < p.maxSeg:
		if err := p.growLinked(k, p.nextCap(p.segs[k].Cap())); err != nil {
			return err
		}
	default:
		capacity := p.maxSeg
		if k < 0 {
			capacity = min(initialSegmentCapacity, p.maxSeg)
		}
		if err := p.reserveSegment(capacity); err != nil {
			return err
		}
		p.linkAt(len(p.segs), segment.New[T](capacity))
		p.reindex()
		k = len(p.segs) - 1
	}

	s := p.segs[k]
	if err := s.Append(v); err != nil {
		return translateError(err)
	}
	p.committed(k, p.count+1-int64(s.Len()))
	return nil
}

func (p *Partition[T]) splitInsert(k int, start int64, off int, v T) error {
	s := p.segs[k]
	lo := p.minFill()
	at := min(max(off, lo), s.Len()-lo)

	if err := p.reserveSegment(p.maxSeg); err != nil {
		return err
	}
	right, err := s.SplitAt(at, p.maxSeg)
	if err != nil {
		p.releaseSegment(p.maxSeg)
		return translateError(err)
	}
	p.obs.SegmentSplit()
	p.linkAt(k+1, right)

	target, local, tstart := k, off, start
	if off > at {
		target, local, tstart = k+1, off-at, start+int64(at)
	}
	if err := p.segs[target].InsertAt(local, v); err != nil {
		p.reindex()
		p.bump()
		return translateError(err)
	}
	p.count++
	p.reindex()
	p.bump()
	p.touch(target, tstart)
	return nil
}

// RemoveAt removes and returns the element at global index i.
func (p *Partition[T]) RemoveAt(i int64) (T, error) {
	if i < 0 || i >= p.count {
		var zero T
		return zero, &IndexError{Index: i, Count: p.count}
	}
	k, off := p.locate(i)
	start := i - int64(off)
	s := p.segs[k]
	v, err := s.RemoveAt(off)
	if err != nil {
		return v, translateError(err)
	}
	p.count--
	p.bump()

	switch {
	case s.Len() == 0:
		p.unlink(k, k+1)
		p.freeSegment(s)
		p.reindex()
	case s.Len() < p.minFill() && p.rebalance(k):
		p.reindex()
	default:
		p.bounds.add(k, -1)
		p.touch(k, start)
	}
	return v, nil
}

// Clear releases every segment.
func (p *Partition[T]) Clear() {
	for _, s := range p.segs {
		p.freeSegment(s)
	}
	p.log.Debug("partition cleared", "count", p.count, "segments", len(p.segs))
	p.segs = nil
	p.count = 0
	p.capacity = 0
	p.reindex()
	p.bump()
}

func (p *Partition[T]) bump() {
	p.version++
}

// reindex rebuilds the boundary index after the segment list changed.
func (p *Partition[T]) reindex() {
	p.bounds.rebuild(len(p.segs), func(i int) int64 {
		return int64(p.segs[i].Len())
	})
	p.loc.valid = false
}

// lastUsed returns the index of the last non-empty segment, or -1.
func (p *Partition[T]) lastUsed() int {
	if p.count == 0 {
		return -1
	}
	k, _ := p.locate(p.count - 1)
	return k
}

// minFill is the length below which a segment is considered undersized.
func (p *Partition[T]) minFill() int {
	return max(1, p.maxSeg/4)
}

// mergeLimit is the largest length a merge may produce.
func (p *Partition[T]) mergeLimit() int {
	return p.maxSeg - p.maxSeg/4
}

func (p *Partition[T]) nextCap(c int) int {
	return min(p.maxSeg, max(2*c, initialSegmentCapacity))
}

// linkAt inserts segs at position k and accounts their capacity.
func (p *Partition[T]) linkAt(k int, segs ...*segment.Segment[T]) {
	for _, s := range segs {
		p.capacity += int64(s.Cap())
	}
	p.segs = slices.Insert(p.segs, k, segs...)
}

// unlink removes segments [from, to) from the list without releasing them.
func (p *Partition[T]) unlink(from, to int) {
	for _, s := range p.segs[from:to] {
		p.capacity -= int64(s.Cap())
	}
	p.segs = slices.Delete(p.segs, from, to)
}

// dropEmpty unlinks and frees the empty segments in [from, to).
func (p *Partition[T]) dropEmpty(from, to int) {
	w := from
	for r := from; r < to; r++ {
		s := p.segs[r]
		if s.Len() == 0 {
			p.capacity -= int64(s.Cap())
			p.freeSegment(s)
			continue
		}
		p.segs[w] = s
		w++
	}
	if w < to {
		p.segs = slices.Delete(p.segs, w, to)
	}
}

// growLinked reallocates linked segment k to newCap.
func (p *Partition[T]) growLinked(k, newCap int) error {
	s := p.segs[k]
	old := s.Cap()
	if newCap <= old {
		return nil
	}
	if err := p.reserve(int64(newCap - old)); err != nil {
		return err
	}
	p.obs.SegmentReleased(old)
	p.obs.SegmentAllocated(newCap)
	s.Grow(newCap)
	p.capacity += int64(newCap - old)
	return nil
}

// rebalance merges undersized segment k into its shorter eligible neighbour.
func (p *Partition[T]) rebalance(k int) bool {
	n := p.segs[k].Len()
	limit := p.mergeLimit()
	left, right := -1, -1
	if k > 0 {
		left = p.segs[k-1].Len()
	}
	if k+1 < len(p.segs) && p.segs[k+1].Len() > 0 {
		right = p.segs[k+1].Len()
	}
	switch {
	case left >= 0 && n+left <= limit && (right < 0 || left <= right):
		return p.mergeAt(k - 1)
	case right >= 0 && n+right <= limit:
		return p.mergeAt(k)
	case left >= 0 && n+left <= limit:
		return p.mergeAt(k - 1)
	}
	return false
}

// mergeIfSmall merges segments j and j+1 when one of them is undersized and
// the result stays within the merge limit.
func (p *Partition[T]) mergeIfSmall(j int) bool {
	if j < 0 || j+1 >= len(p.segs) {
		return false
	}
	a, b := p.segs[j].Len(), p.segs[j+1].Len()
	if a == 0 || b == 0 {
		return false
	}
	lo := p.minFill()
	if (a >= lo && b >= lo) || a+b > p.mergeLimit() {
		return false
	}
	return p.mergeAt(j)
}

// coalesce merges every eligible adjacent pair.
func (p *Partition[T]) coalesce() {
	for j := 0; j+1 < len(p.segs); {
		if !p.mergeIfSmall(j) {
			j++
		}
	}
}

// mergeAt moves segment j+1 into segment j. The caller reindexes.
func (p *Partition[T]) mergeAt(j int) bool {
	a, b := p.segs[j], p.segs[j+1]
	total := a.Len() + b.Len()
	if total > p.maxSeg {
		return false
	}
	if total > a.Cap() {
		newCap := min(p.maxSeg, max(total, b.Cap()))
		if err := p.growLinked(j, newCap); err != nil {
			// Merging is opportunistic; keep both segments.
			return false
		}
	}
	bcap := b.Cap()
	if err := a.MergeWith(b, p.maxSeg); err != nil {
		return false
	}
	p.segs = slices.Delete(p.segs, j+1, j+2)
	p.capacity -= int64(bcap)
	p.releaseSegment(bcap)
	p.obs.SegmentsMerged()
	return true
}

func (p *Partition[T]) reserve(slots int64) error {
	if p.rc == nil || slots <= 0 || p.elemSize == 0 {
		return nil
	}
	bytes, err := conv.MulInt64(slots, p.elemSize)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCapacity, err)
	}
	if !p.rc.TryAcquireMemory(bytes) {
		p.log.Warn("memory reservation refused",
			"bytes", bytes,
			"used", p.rc.MemoryUsage(),
			"limit", p.rc.MemoryLimit(),
		)
		return fmt.Errorf("%w: %w", ErrCapacity, resource.ErrMemoryLimitExceeded)
	}
	return nil
}

func (p *Partition[T]) unreserve(slots int64) {
	if p.rc == nil || slots <= 0 || p.elemSize == 0 {
		return
	}
	p.rc.ReleaseMemory(slots * p.elemSize)
}

func (p *Partition[T]) reserveSegment(capacity int) error {
	if err := p.reserve(int64(capacity)); err != nil {
		return err
	}
	p.obs.SegmentAllocated(capacity)
	return nil
}

func (p *Partition[T]) releaseSegment(capacity int) {
	p.unreserve(int64(capacity))
	p.obs.SegmentReleased(capacity)
}

func (p *Partition[T]) freeSegment(s *segment.Segment[T]) {
	p.releaseSegment(s.Cap())
	s.Release()
}
