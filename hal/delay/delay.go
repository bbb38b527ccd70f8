// Package delay provides the busy-wait primitive the blink loop is timed by.
//
// Each iteration must issue an operation the compiler cannot remove: an
// inline-asm nop on Cortex-M, an atomic add on host builds.
package delay

// Cycles executes n no-op instructions and returns. It blocks the only
// thread of execution and cannot be interrupted or cancelled.
func Cycles(n uint32) {
	for i := uint32(0); i < n; i++ {
		nop()
	}
}
