// Package nrf52 is the nRF52840 board support. GPIO on this chip is not
// clock-gated, so initialization is only pin configuration.
package nrf52

import (
	"blinky-go/errcode"
	"blinky-go/hal/board"
	"blinky-go/hal/periph"
	"blinky-go/hal/regs"
	"blinky-go/x/strconvx"
)

// GPIO is one port's register block. OUTSET and OUTCLR are write-1 strobes.
type GPIO struct {
	OUTSET  regs.Register
	OUTCLR  regs.Register
	PIN_CNF [32]regs.Register
}

// Peripherals is the exclusively owned register space of the chip.
type Peripherals struct {
	GPIO [2]*GPIO // P0, P1
}

// Device is the chip's one and only peripheral block.
var Device = periph.NewSingleton("nrf52840", devicePeripherals)

// NewPeripherals builds a block from named registers ("P0.OUTSET",
// "P0.PIN_CNF[13]", ...).
func NewPeripherals(bus regs.Bus) *Peripherals {
	p := &Peripherals{}
	strobe, _ := bus.(interface{ WriteOnly(string) })
	for i := range p.GPIO {
		prefix := "P" + strconvx.Itoa(i) + "."
		if strobe != nil {
			strobe.WriteOnly(prefix + "OUTSET")
			strobe.WriteOnly(prefix + "OUTCLR")
		}
		g := &GPIO{
			OUTSET: bus.Register(prefix + "OUTSET"),
			OUTCLR: bus.Register(prefix + "OUTCLR"),
		}
		for n := range g.PIN_CNF {
			g.PIN_CNF[n] = bus.Register(prefix + "PIN_CNF[" + strconvx.Itoa(n) + "]")
		}
		p.GPIO[i] = g
	}
	return p
}

// NewSource arms a fresh singleton over bus, for simulation.
func NewSource(bus regs.Bus) *periph.Singleton[Peripherals] {
	return periph.NewSingleton("nrf52840", func() *Peripherals { return NewPeripherals(bus) })
}

// Port maps board.P0/P1 to a register block.
func (p *Peripherals) Port(port board.Port) *GPIO {
	i := int(port) - int(board.P0)
	if i < 0 || i >= len(p.GPIO) {
		panic(&errcode.E{C: errcode.UnknownPort, Op: "nrf52", Msg: port.String()})
	}
	return p.GPIO[i]
}
