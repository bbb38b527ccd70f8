//go:build tinygo && cortexm

package delay

import "device/arm"

func nop() { arm.Asm("nop") }
