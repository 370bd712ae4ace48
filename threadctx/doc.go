// Package threadctx provides per-goroutine storage for the scanning
// library: the slot index a worker uses to address its scratch data,
// and an opaque recovery handle the matching engine uses to unwind
// after an internal fault.
//
// Goroutines are the library's unit of concurrency, so "thread-local"
// here means goroutine-local. Each goroutine only ever touches its own
// entry, so reads and writes need no coordination beyond the map's own.
// A goroutine that never stored an index reads the -1 sentinel; a
// goroutine that never stored a recovery handle reads nil.
package threadctx
