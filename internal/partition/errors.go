package partition

import (
	"errors"
	"fmt"

	"github.com/hupe1980/biglist/internal/segment"
)

var (
	// ErrIndexOutOfRange is returned when an index is negative or not below Count.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidRange is returned when a start/count pair does not describe a valid range.
	ErrInvalidRange = errors.New("invalid range")
	// ErrNilArgument is returned when a required sequence, comparer or predicate is nil.
	ErrNilArgument = errors.New("nil argument")
	// ErrInvalidState is returned when an operation is not valid in the current state.
	ErrInvalidState = errors.New("invalid state")
	// ErrCapacity is returned when a buffer or memory budget is too small.
	ErrCapacity = errors.New("insufficient capacity")
	// ErrInvalidConfig is returned for unusable configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	errModified = fmt.Errorf("%w: sequence was modified during the operation", ErrInvalidState)
)

// IndexError reports an index outside [0, Count).
type IndexError struct {
	Index int64
	Count int64
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Count)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// RangeError reports a start/count pair outside the valid bounds.
type RangeError struct {
	Start int64
	Count int64
	Len   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range: start %d, count %d (len %d)", e.Start, e.Count, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// translateError maps segment errors onto the partition taxonomy. A segment
// error escaping to a caller means a partition invariant was broken.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, segment.ErrFull) {
		return fmt.Errorf("%w: %w", ErrCapacity, err)
	}
	if errors.Is(err, segment.ErrIndex) {
		return fmt.Errorf("%w: %w", ErrIndexOutOfRange, err)
	}
	return err
}
