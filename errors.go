package biglist

import (
	"fmt"

	"github.com/hupe1980/biglist/internal/partition"
)

var (
	// ErrIndexOutOfRange is returned when an index is negative or not below Count.
	ErrIndexOutOfRange = partition.ErrIndexOutOfRange

	// ErrInvalidRange is returned when a start/count pair does not describe a
	// valid range.
	ErrInvalidRange = partition.ErrInvalidRange

	// ErrNilArgument is returned when a required sequence, comparer, predicate
	// or converter is nil.
	ErrNilArgument = partition.ErrNilArgument

	// ErrInvalidState is returned when iteration observes a structural change,
	// a callback modifies the list it was called on, or an operation is not
	// valid for the current contents.
	ErrInvalidState = partition.ErrInvalidState

	// ErrCapacity is returned when a destination buffer is too small or the
	// memory budget refuses an allocation.
	ErrCapacity = partition.ErrCapacity

	// ErrInvalidConfig is returned for unusable configuration values.
	ErrInvalidConfig = partition.ErrInvalidConfig

	// ErrReadOnly is returned by every mutating hook of a read-only view.
	ErrReadOnly = fmt.Errorf("%w: read-only view", ErrInvalidState)

	errNoEquality = fmt.Errorf("%w: list has no equality function", ErrNilArgument)
	errNoOrdering = fmt.Errorf("%w: list has no default comparer", ErrNilArgument)
)

// IndexError reports an index outside [0, Count).
//
// errors.Is(err, ErrIndexOutOfRange) holds for every IndexError.
type IndexError = partition.IndexError

// RangeError reports a start/count pair outside the valid bounds.
//
// errors.Is(err, ErrInvalidRange) holds for every RangeError.
type RangeError = partition.RangeError
