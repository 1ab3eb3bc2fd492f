// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned and different bit-width integer types.
//
// Use cases:
//   - Mapping 64-bit sequence indices onto Go slice indices (CopyTo, ToSlice)
//   - Sizing memory reservations (element count * element size)
//
// For conversions that are provably safe by domain constraints (e.g., offsets
// inside one segment), use direct type casts instead to avoid overhead.
package conv
