//go:build !(tinygo && cortexm)

package delay

import "sync/atomic"

var executed atomic.Uint64

//go:noinline
func nop() { executed.Add(1) }
