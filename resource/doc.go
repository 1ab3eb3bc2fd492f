// Package resource provides a memory budget that can be shared by several
// lists.
//
// Every segment a list allocates reserves its byte size on the Controller and
// returns it when the segment is released. A list never blocks on the budget:
// it uses TryAcquireMemory and fails the operation when the limit is reached.
// The Controller itself is safe for concurrent use, so lists owned by
// different goroutines may share one budget.
package resource
