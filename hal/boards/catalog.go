//go:build !tinygo

package boards

import (
	"blinky-go/blink"
	"blinky-go/errcode"
	"blinky-go/hal/board"
	"blinky-go/hal/nrf52"
	"blinky-go/hal/regs"
	"blinky-go/hal/stm32f1"
	"blinky-go/hal/stm32f4"
)

// Entry is one board known to the build, with a way to run it against a
// simulated register file.
type Entry struct {
	Info board.Info
	// Simulate initializes a copy of the board on sim and runs steps loop
	// transitions with no delay.
	Simulate func(sim *regs.Sim, steps int) error
}

// Catalog lists every board, in build-tag order.
func Catalog() []Entry {
	return []Entry{
		{Info: stm32f4.NucleoF411.Info, Simulate: func(sim *regs.Sim, steps int) error {
			b := stm32f4.NucleoF411
			b.Source = stm32f4.NewSource(sim)
			return simulate[*stm32f4.Peripherals](&b, steps)
		}},
		{Info: stm32f4.BlackPill.Info, Simulate: func(sim *regs.Sim, steps int) error {
			b := stm32f4.BlackPill
			b.Source = stm32f4.NewSource(sim)
			return simulate[*stm32f4.Peripherals](&b, steps)
		}},
		{Info: stm32f1.BluePill.Info, Simulate: func(sim *regs.Sim, steps int) error {
			b := stm32f1.BluePill
			b.Source = stm32f1.NewSource(sim)
			return simulate[*stm32f1.Peripherals](&b, steps)
		}},
		{Info: nrf52.NRF52840DK.Info, Simulate: func(sim *regs.Sim, steps int) error {
			b := nrf52.NRF52840DK
			b.Source = nrf52.NewSource(sim)
			return simulate[*nrf52.Peripherals](&b, steps)
		}},
	}
}

// Lookup finds a board by name.
func Lookup(name string) (Entry, error) {
	for _, e := range Catalog() {
		if e.Info.Name == name {
			return e, nil
		}
	}
	return Entry{}, &errcode.E{C: errcode.UnknownBoard, Op: "lookup", Msg: name}
}

func simulate[H any](b board.Board[H], steps int) error {
	l, err := blink.Start(b, blink.DefaultTiming, func(uint32) {})
	if err != nil {
		return err
	}
	for i := 0; i < steps; i++ {
		l.Step()
	}
	return nil
}
