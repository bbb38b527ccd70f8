//go:build !(tinygo && nrf52840)

package nrf52

import "blinky-go/hal/regs"

// HostBus stands in for the register file when not building for the chip.
var HostBus = regs.NewSim()

func devicePeripherals() *Peripherals { return NewPeripherals(HostBus) }
