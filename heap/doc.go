// Package heap implements a fixed-region, single-threaded memory
// allocator. A Heap owns one contiguous byte region and services
// variable-sized allocation and release requests against it under a
// choice of three placement policies: first-fit, next-fit and best-fit.
//
// Every block in the region is described by a small header stamped into
// its first bytes and threaded into a doubly-linked, address-ordered
// chain spanning the whole region - not a free-only list, despite what
// "free list" implies in the C allocator this package's design is drawn
// from. Allocations additionally carry a caller-supplied source location
// and variable name, purely for leak/misuse diagnostics; Dump renders
// the whole chain as a table for inspection.
//
// A Heap is not safe for concurrent use. Callers sharing a Heap across
// goroutines must serialize access themselves; there is no internal
// locking.
package heap
