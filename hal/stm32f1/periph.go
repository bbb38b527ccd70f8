// Package stm32f1 is the STM32F103 board support for the Blue Pill.
//
// Unlike the F4, the F1 GPIO packs mode and output type into one 4-bit
// field per pin, split across CRL (pins 0-7) and CRH (pins 8-15).
package stm32f1

import (
	"blinky-go/errcode"
	"blinky-go/hal/board"
	"blinky-go/hal/periph"
	"blinky-go/hal/regs"
)

// GPIO is one port's register block.
type GPIO struct {
	CRL  regs.Register
	CRH  regs.Register
	BSRR regs.Register
}

// RCC holds the one clock-enable register the LED needs.
type RCC struct {
	APB2ENR regs.Register
}

// Peripherals is the exclusively owned register space of the chip.
// GPIO is indexed by board.Port, A to E.
type Peripherals struct {
	RCC  RCC
	GPIO [board.PortE + 1]*GPIO
}

// Device is the chip's one and only peripheral block.
var Device = periph.NewSingleton("stm32f1", devicePeripherals)

// NewPeripherals builds a block from named registers ("GPIOC.CRH", ...).
func NewPeripherals(bus regs.Bus) *Peripherals {
	p := &Peripherals{RCC: RCC{APB2ENR: bus.Register("RCC.APB2ENR")}}
	strobe, _ := bus.(interface{ WriteOnly(string) })
	for port := board.PortA; port <= board.PortE; port++ {
		prefix := "GPIO" + port.String()[1:] + "."
		if strobe != nil {
			strobe.WriteOnly(prefix + "BSRR")
		}
		p.GPIO[port] = &GPIO{
			CRL:  bus.Register(prefix + "CRL"),
			CRH:  bus.Register(prefix + "CRH"),
			BSRR: bus.Register(prefix + "BSRR"),
		}
	}
	return p
}

// NewSource arms a fresh singleton over bus, for simulation.
func NewSource(bus regs.Bus) *periph.Singleton[Peripherals] {
	return periph.NewSingleton("stm32f1", func() *Peripherals { return NewPeripherals(bus) })
}

// Port returns the register block of a GPIO port.
func (p *Peripherals) Port(port board.Port) *GPIO {
	if int(port) >= len(p.GPIO) || p.GPIO[port] == nil {
		panic(&errcode.E{C: errcode.UnknownPort, Op: "stm32f1", Msg: port.String()})
	}
	return p.GPIO[port]
}
