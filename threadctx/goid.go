package threadctx

import (
	"runtime"
	"strconv"
)

// GoroutineID returns the ID of the calling goroutine.
//
// The ID is parsed from the runtime.Stack header, which always begins
// with "goroutine <id> [". Go does not expose the ID directly; parsing
// the stack header is the portable way to obtain a stable identifier
// for the caller, and the IDs are never reused within a process.
func GoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := buf[len("goroutine "):n]
	for i, c := range s {
		if c == ' ' {
			id, err := strconv.ParseUint(string(s[:i]), 10, 64)
			if err != nil {
				return 0
			}
			return id
		}
	}
	return 0
}
