package bvh

import "fmt"

// assertf panics with a formatted message when cond is false. It is used for
// programmer-error conditions (unknown element/heuristic codes, mis-sized
// buffers, traversal stack overflow) rather than recoverable errors —
// callers are expected to never trip these in production use.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
