// Package testutil provides testing utilities for biglist.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and a slice-backed reference model
// that randomized tests replay operations against.
//
// # Random Operations
//
//	rng := testutil.NewRNG(seed)
//	i := rng.Int63n(count + 1) // insertion point
//	vals := rng.Ints(64, 1000)
//
// # Reference Model
//
//	m := testutil.NewModel[int](nil)
//	m.Insert(0, 42)
//	m.RemoveRange(0, 1)
//	require.Equal(t, m.Items(), list.ToSlice())
package testutil
