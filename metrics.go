package biglist

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/biglist/internal/partition"
)

// MetricsCollector defines an interface for collecting structural metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Methods are called synchronously on the mutation path and must be cheap.
type MetricsCollector interface {
	// RecordSegmentAllocated is called when a segment buffer of the given
	// capacity is allocated, including the new buffer of a grown segment.
	RecordSegmentAllocated(capacity int)

	// RecordSegmentReleased is called when a segment buffer is released.
	RecordSegmentReleased(capacity int)

	// RecordSplit is called when a full segment splits in two.
	RecordSplit()

	// RecordMerge is called when two adjacent segments merge.
	RecordMerge()

	// RecordSort is called after a sort over n elements in runs runs.
	RecordSort(n int64, runs int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSegmentAllocated(int)           {}
func (NoopMetricsCollector) RecordSegmentReleased(int)            {}
func (NoopMetricsCollector) RecordSplit()                         {}
func (NoopMetricsCollector) RecordMerge()                         {}
func (NoopMetricsCollector) RecordSort(int64, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SegmentsAllocated atomic.Int64
	SegmentsReleased  atomic.Int64
	SlotsAllocated    atomic.Int64
	SlotsReleased     atomic.Int64
	Splits            atomic.Int64
	Merges            atomic.Int64
	SortCount         atomic.Int64
	SortedElements    atomic.Int64
	SortTotalNanos    atomic.Int64
}

// RecordSegmentAllocated implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSegmentAllocated(capacity int) {
	b.SegmentsAllocated.Add(1)
	b.SlotsAllocated.Add(int64(capacity))
}

// RecordSegmentReleased implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSegmentReleased(capacity int) {
	b.SegmentsReleased.Add(1)
	b.SlotsReleased.Add(int64(capacity))
}

// RecordSplit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSplit() {
	b.Splits.Add(1)
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge() {
	b.Merges.Add(1)
}

// RecordSort implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSort(n int64, _ int, duration time.Duration) {
	b.SortCount.Add(1)
	b.SortedElements.Add(n)
	b.SortTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SegmentsAllocated: b.SegmentsAllocated.Load(),
		SegmentsReleased:  b.SegmentsReleased.Load(),
		LiveSlots:         b.SlotsAllocated.Load() - b.SlotsReleased.Load(),
		Splits:            b.Splits.Load(),
		Merges:            b.Merges.Load(),
		SortCount:         b.SortCount.Load(),
		SortedElements:    b.SortedElements.Load(),
		SortAvgNanos:      b.getAvgSortNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgSortNanos() int64 {
	count := b.SortCount.Load()
	if count == 0 {
		return 0
	}
	return b.SortTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SegmentsAllocated int64
	SegmentsReleased  int64
	// LiveSlots is the number of allocated element slots not yet released.
	LiveSlots      int64
	Splits         int64
	Merges         int64
	SortCount      int64
	SortedElements int64
	SortAvgNanos   int64
}

// observer adapts a MetricsCollector to the partition's structural events.
type observer struct {
	mc MetricsCollector
}

var _ partition.Observer = observer{}

func (o observer) SegmentAllocated(capacity int) { o.mc.RecordSegmentAllocated(capacity) }
func (o observer) SegmentReleased(capacity int)  { o.mc.RecordSegmentReleased(capacity) }
func (o observer) SegmentSplit()                 { o.mc.RecordSplit() }
func (o observer) SegmentsMerged()               { o.mc.RecordMerge() }

func (o observer) Sorted(n int64, runs int, d time.Duration) {
	o.mc.RecordSort(n, runs, d)
}
