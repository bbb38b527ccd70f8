// Package stm32f4 is the STM32F411 board support: peripheral handle,
// initializer and LED driver for the Nucleo-F411RE and the Black Pill.
package stm32f4

import (
	"blinky-go/errcode"
	"blinky-go/hal/board"
	"blinky-go/hal/periph"
	"blinky-go/hal/regs"
)

// GPIO is one port's register block.
type GPIO struct {
	MODER   regs.Register
	OTYPER  regs.Register
	OSPEEDR regs.Register
	AFRL    regs.Register
	AFRH    regs.Register
	BSRR    regs.Register
}

// RCC holds the reset and clock control registers this package touches.
type RCC struct {
	AHB1ENR regs.Register
	CFGR    regs.Register
}

// Peripherals is the exclusively owned register space of the chip.
// GPIO is indexed by board.Port; F and G are not bonded out on the F411.
type Peripherals struct {
	RCC  RCC
	GPIO [board.PortH + 1]*GPIO
}

// Device is the chip's one and only peripheral block.
var Device = periph.NewSingleton("stm32f4", devicePeripherals)

var ports = []board.Port{board.PortA, board.PortB, board.PortC, board.PortD, board.PortE, board.PortH}

// NewPeripherals builds a block from named registers ("GPIOA.MODER", ...).
func NewPeripherals(bus regs.Bus) *Peripherals {
	p := &Peripherals{
		RCC: RCC{
			AHB1ENR: bus.Register("RCC.AHB1ENR"),
			CFGR:    bus.Register("RCC.CFGR"),
		},
	}
	strobe, _ := bus.(interface{ WriteOnly(string) })
	for _, port := range ports {
		prefix := "GPIO" + port.String()[1:] + "."
		if strobe != nil {
			strobe.WriteOnly(prefix + "BSRR")
		}
		p.GPIO[port] = &GPIO{
			MODER:   bus.Register(prefix + "MODER"),
			OTYPER:  bus.Register(prefix + "OTYPER"),
			OSPEEDR: bus.Register(prefix + "OSPEEDR"),
			AFRL:    bus.Register(prefix + "AFRL"),
			AFRH:    bus.Register(prefix + "AFRH"),
			BSRR:    bus.Register(prefix + "BSRR"),
		}
	}
	return p
}

// NewSource arms a fresh singleton over bus, for simulation.
func NewSource(bus regs.Bus) *periph.Singleton[Peripherals] {
	return periph.NewSingleton("stm32f4", func() *Peripherals { return NewPeripherals(bus) })
}

// Port returns the register block of a GPIO port.
func (p *Peripherals) Port(port board.Port) *GPIO {
	if int(port) >= len(p.GPIO) || p.GPIO[port] == nil {
		panic(&errcode.E{C: errcode.UnknownPort, Op: "stm32f4", Msg: port.String()})
	}
	return p.GPIO[port]
}
