//go:build !(tinygo && stm32f1)

package stm32f1

import "blinky-go/hal/regs"

// HostBus stands in for the register file when not building for the chip.
var HostBus = regs.NewSim()

func devicePeripherals() *Peripherals { return NewPeripherals(HostBus) }
