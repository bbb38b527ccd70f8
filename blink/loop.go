// Package blink is the control loop: initialize once, then alternate the
// LED on and off forever.
package blink

import (
	"blinky-go/hal/board"
	"blinky-go/x/fmtx"
)

// Busy-wait lengths in delay cycles, not calibrated to a clock.
const (
	OnCycles  uint32 = 200_000
	OffCycles uint32 = 800_000
)

// Timing is how long each state is held, in delay cycles.
type Timing struct {
	On  uint32
	Off uint32
}

var DefaultTiming = Timing{On: OnCycles, Off: OffCycles}

// DelayFunc blocks for a number of cycles; delay.Cycles on hardware.
type DelayFunc func(cycles uint32)

// Loop is the two-state LED machine bound to an initialized board.
type Loop[H any] struct {
	board  board.Board[H]
	handle H
	state  board.State
	timing Timing
	delay  DelayFunc
}

// Start initializes b and leaves the LED off.
func Start[H any](b board.Board[H], t Timing, delay DelayFunc) (*Loop[H], error) {
	h, err := b.Initialize()
	if err != nil {
		return nil, err
	}
	b.Set(h, board.Off)
	return &Loop[H]{board: b, handle: h, state: board.Off, timing: t, delay: delay}, nil
}

func (l *Loop[H]) State() board.State { return l.state }

// Step performs one transition and its hold:
// off -> set(on), delay(On); on -> set(off), delay(Off).
func (l *Loop[H]) Step() {
	if l.state == board.Off {
		l.board.Set(l.handle, board.On)
		l.state = board.On
		l.delay(l.timing.On)
		return
	}
	l.board.Set(l.handle, board.Off)
	l.state = board.Off
	l.delay(l.timing.Off)
}

// Run never returns. An initialization failure panics into the runtime's
// halt handler.
func Run[H any](b board.Board[H], t Timing, delay DelayFunc) {
	info := b.Describe()
	l, err := Start(b, t, delay)
	if err != nil {
		panic(err)
	}
	fmtx.Printf("blink: %s (%s) led %s %s\r\n", info.Name, info.Chip, info.LED, info.LED.Polarity)
	for {
		l.Step()
	}
}
