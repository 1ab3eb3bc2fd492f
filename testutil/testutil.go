package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int63n returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(n)
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64() < p
}

// Ints returns n values in [0, limit).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(n, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(limit)
	}
	return out
}

// Perm returns a pseudo-random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Model is a slice-backed reference sequence with 64-bit positions.
// Indices are assumed valid; tests validate against the implementation
// under test first.
type Model[T any] struct {
	items []T
}

// NewModel returns a model holding a copy of items.
func NewModel[T any](items []T) *Model[T] {
	return &Model[T]{items: slices.Clone(items)}
}

// Len returns the number of elements.
func (m *Model[T]) Len() int64 { return int64(len(m.items)) }

// Items returns the backing slice.
func (m *Model[T]) Items() []T { return m.items }

// Get returns the element at i.
func (m *Model[T]) Get(i int64) T { return m.items[i] }

// Set replaces the element at i.
func (m *Model[T]) Set(i int64, v T) { m.items[i] = v }

// Insert inserts vs at i.
func (m *Model[T]) Insert(i int64, vs ...T) {
	m.items = slices.Insert(m.items, int(i), vs...)
}

// RemoveAt removes and returns the element at i.
func (m *Model[T]) RemoveAt(i int64) T {
	v := m.items[i]
	m.items = slices.Delete(m.items, int(i), int(i)+1)
	return v
}

// RemoveRange removes count elements starting at i.
func (m *Model[T]) RemoveRange(i, count int64) {
	m.items = slices.Delete(m.items, int(i), int(i+count))
}

// RemoveFunc removes every element matching del and returns how many.
func (m *Model[T]) RemoveFunc(del func(T) bool) int64 {
	before := len(m.items)
	m.items = slices.DeleteFunc(m.items, del)
	return int64(before - len(m.items))
}

// Reverse reverses count elements starting at i.
func (m *Model[T]) Reverse(i, count int64) {
	slices.Reverse(m.items[i : i+count])
}

// Sort sorts count elements starting at i.
func (m *Model[T]) Sort(i, count int64, cmp func(a, b T) int) {
	slices.SortFunc(m.items[i:i+count], cmp)
}

// Clear removes every element.
func (m *Model[T]) Clear() { m.items = m.items[:0] }
