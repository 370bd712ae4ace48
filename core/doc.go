// Package core owns the process-wide lifecycle of the scanning library.
//
// A Library value holds every piece of shared state explicitly: the
// initialization reference count, the case tables, the thread-context
// registry, the configuration registry, and the crypto lock bridge.
// Multiple independent users of one process share a Library through
// reference-counted Initialize/Finalize pairs: resources are created on
// the first Initialize and destroyed on the Finalize that drops the
// count back to zero.
//
// Initialize and Finalize are not internally synchronized. Callers must
// serialize them with respect to each other, typically by calling both
// only from a single controlling goroutine at startup and shutdown.
// Every worker goroutine must call FinalizeThread before it exits.
package core
