// Package cryptolock supplies the thread-safety glue a linked
// cryptographic library needs when used from multiple threads: an array
// of mutexes sized to the lock count the library reports, a locking
// callback driven by a lock/unlock mode, and a stable per-thread
// identification callback.
//
// The bridge performs no cryptography itself. When no crypto library is
// linked, the no-op bridge stands in and the rest of the lifecycle is
// unaffected.
package cryptolock
