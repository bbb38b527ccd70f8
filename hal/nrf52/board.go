package nrf52

import (
	"blinky-go/hal/board"
	"blinky-go/hal/periph"
)

// PIN_CNF fields (nRF52840 PS §6.9.2).
const (
	cnfDirOutput       = 1 << 0
	cnfInputDisconnect = 1 << 1
	cnfPullPos         = 2
	cnfDrivePos        = 8
	cnfSensePos        = 16

	pullDisabled = 0
	driveS0S1    = 0 // standard '0', standard '1'
	senseOff     = 0
)

// ledPinConfig is a push-pull output at standard drive with the input
// buffer disconnected.
const ledPinConfig = cnfDirOutput | cnfInputDisconnect |
	pullDisabled<<cnfPullPos | driveS0S1<<cnfDrivePos | senseOff<<cnfSensePos

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
	p.Port(led.Port).PIN_CNF[led.Pin].Set(ledPinConfig)
	return p, nil
}

// Set writes the pin mask to OUTSET to raise the pin or OUTCLR to lower it.
func (b *Board) Set(p *Peripherals, s board.State) {
	led := b.Info.LED
	g := p.Port(led.Port)
	if led.Level(s) {
		g.OUTSET.Set(led.Mask())
	} else {
		g.OUTCLR.Set(led.Mask())
	}
}
