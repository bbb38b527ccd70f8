package stm32f1

import (
	"blinky-go/hal/board"
	"blinky-go/hal/periph"
	"blinky-go/hal/regs"
	"blinky-go/x/mathx"
)

// CRx field: MODE in bits 1:0, CNF in bits 3:2 (RM0008 §9.2.1).
const (
	modeOutput2MHz = 0b10
	cnfPushPull    = 0b00

	crxFieldWidth = 4
)

// IOPxEN starts at bit 2 of APB2ENR with port A.
const apb2IOPAENPos = 2

type Board struct {
	Info   board.Info
	Source *periph.Singleton[Peripherals]
}

var _ board.Board[*Peripherals] = (*Board)(nil)

func (b *Board) Describe() board.Info { return b.Info }

func (b *Board) Initialize() (*Peripherals, error) {
	p, err := b.Source.Take()
	if err != nil {
		return nil, err
	}
	led := b.Info.LED
	p.RCC.APB2ENR.SetBits(mathx.Bit[uint32](apb2IOPAENPos + uint8(led.Port)))

	cr, pos := configRegister(p.Port(led.Port), led.Pin)
	cr.ReplaceBits(cnfPushPull<<2|modeOutput2MHz, mathx.Mask[uint32](crxFieldWidth), pos)
	return p, nil
}

// Set drives the LED through BSRR: bit n raises the pin, bit n+16 lowers it.
func (b *Board) Set(p *Peripherals, s board.State) {
	led := b.Info.LED
	v := led.Mask() << 16
	if led.Level(s) {
		v = led.Mask()
	}
	p.Port(led.Port).BSRR.Set(v)
}

// configRegister picks CRL or CRH for pin and the field position within it.
func configRegister(g *GPIO, pin uint8) (regs.Register, uint8) {
	pos := mathx.SlotPos(pin%8, crxFieldWidth)
	if pin < 8 {
		return g.CRL, pos
	}
	return g.CRH, pos
}
