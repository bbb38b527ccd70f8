package stm32f4

import (
	"blinky-go/hal/board"
	"blinky-go/hal/periph"
	"blinky-go/x/mathx"
)

// GPIO field encodings (RM0383 §8.4).
const (
	modeOutput    = 0b01
	modeAlternate = 0b10

	speedLow      = 0b00
	speedVeryHigh = 0b11

	af0System = 0b0000
)

// RCC_CFGR clock output fields (RM0383 §6.3.3).
const (
	cfgrMCO1Pos    = 21
	cfgrMCO1PREPos = 24
	cfgrMCO2PREPos = 27
	cfgrMCO2Pos    = 30
)

// MCO1Source selects the clock routed to PA8.
type MCO1Source uint8

const (
	MCO1HSI MCO1Source = iota
	MCO1LSE
	MCO1HSE
	MCO1PLL
)

// MCO2Source selects the clock routed to PC9.
type MCO2Source uint8

const (
	MCO2SYSCLK MCO2Source = iota
	MCO2PLLI2S
	MCO2HSE
	MCO2PLL
)

// Prescaler divides a clock output.
type Prescaler uint8

const (
	Div1 Prescaler = 0b000
	Div2 Prescaler = 0b100
	Div3 Prescaler = 0b101
	Div4 Prescaler = 0b110
	Div5 Prescaler = 0b111
)

// MCO configures the two microcontroller clock outputs. They are
// diagnostic only; nothing in the blink path reads them.
type MCO struct {
	Source1    MCO1Source
	Prescaler1 Prescaler
	Source2    MCO2Source
	Prescaler2 Prescaler
}

// DiagnosticMCO puts HSI/5 on PA8 and SYSCLK/5 on PC9.
var DiagnosticMCO = MCO{
	Source1:    MCO1HSI,
	Prescaler1: Div5,
	Source2:    MCO2SYSCLK,
	Prescaler2: Div5,
}

var (
	mco1Pin = board.PinSpec{Port: board.PortA, Pin: 8}
	mco2Pin = board.PinSpec{Port: board.PortC, Pin: 9}
)

// Board is an STM32F411 board. MCO may be nil to leave the clock outputs
// unconfigured.
type Board struct {
	Info   board.Info
	MCO    *MCO
	Source *periph.Singleton[Peripherals]
}

var _ board.Board[*Peripherals] = (*Board)(nil)

func (b *Board) Describe() board.Info { return b.Info }

// Initialize takes the peripherals, clocks every GPIO port the board uses,
// then configures the clock outputs and the LED pin. A port's clock is
// always enabled before any of its registers is written.
func (b *Board) Initialize() (*Peripherals, error) {
	p, err := b.Source.Take()
	if err != nil {
		return nil, err
	}
	for _, port := range b.clockedPorts() {
		p.RCC.AHB1ENR.SetBits(mathx.Bit[uint32](uint8(port)))
	}
	if b.MCO != nil {
		configureMCO(p, *b.MCO)
	}
	led := b.Info.LED
	configurePin(p.Port(led.Port), led.Pin, modeOutput, speedLow)
	return p, nil
}

// Set drives the LED through BSRR: bit n raises the pin, bit n+16 lowers it.
func (b *Board) Set(p *Peripherals, s board.State) {
	led := b.Info.LED
	p.Port(led.Port).BSRR.Set(bsrr(led, s))
}

func bsrr(led board.PinSpec, s board.State) uint32 {
	if led.Level(s) {
		return led.Mask()
	}
	return led.Mask() << 16
}

// clockedPorts lists the ports needing AHB1 clock, ascending, once each.
// GPIOxEN sits at bit x of AHB1ENR, which matches board.Port numbering.
func (b *Board) clockedPorts() []board.Port {
	var set uint8
	set |= mathx.Bit[uint8](uint8(b.Info.LED.Port))
	if b.MCO != nil {
		set |= mathx.Bit[uint8](uint8(mco1Pin.Port)) | mathx.Bit[uint8](uint8(mco2Pin.Port))
	}
	var out []board.Port
	for port := board.PortA; port <= board.PortH; port++ {
		if set&mathx.Bit[uint8](uint8(port)) != 0 {
			out = append(out, port)
		}
	}
	return out
}

func configureMCO(p *Peripherals, m MCO) {
	configurePin(p.Port(mco1Pin.Port), mco1Pin.Pin, modeAlternate, speedVeryHigh)
	configurePin(p.Port(mco2Pin.Port), mco2Pin.Pin, modeAlternate, speedVeryHigh)

	cfgr := p.RCC.CFGR
	cfgr.ReplaceBits(uint32(m.Source1), mathx.Mask[uint32](2), cfgrMCO1Pos)
	cfgr.ReplaceBits(uint32(m.Prescaler1), mathx.Mask[uint32](3), cfgrMCO1PREPos)
	cfgr.ReplaceBits(uint32(m.Prescaler2), mathx.Mask[uint32](3), cfgrMCO2PREPos)
	cfgr.ReplaceBits(uint32(m.Source2), mathx.Mask[uint32](2), cfgrMCO2Pos)
}

// configurePin sets a push-pull pin to mode at speed. Alternate pins are
// routed to AF0 before the mode switch.
func configurePin(g *GPIO, pin uint8, mode, speed uint32) {
	g.OTYPER.ClearBits(mathx.Bit[uint32](pin))
	g.OSPEEDR.ReplaceBits(speed, mathx.Mask[uint32](2), mathx.SlotPos(pin, 2))
	if mode == modeAlternate {
		afr := g.AFRL
		if pin >= 8 {
			afr = g.AFRH
		}
		afr.ReplaceBits(af0System, mathx.Mask[uint32](4), mathx.SlotPos(pin%8, 4))
	}
	g.MODER.ReplaceBits(mode, mathx.Mask[uint32](2), mathx.SlotPos(pin, 2))
}
