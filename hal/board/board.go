// Package board holds the vocabulary shared by every chip package: pin
// descriptors, LED polarity, logical state and the Board capability that
// the control loop drives.
package board

import "blinky-go/x/strconvx"

// Port names a GPIO port. STM32 ports are lettered, nRF ports numbered.
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
	PortF
	PortG
	PortH

	P0
	P1
)

var portNames = [...]string{"PA", "PB", "PC", "PD", "PE", "PF", "PG", "PH", "P0.", "P1."}

func (p Port) String() string {
	if int(p) < len(portNames) {
		return portNames[p]
	}
	return "P?"
}

// Polarity is how the LED is wired to its pin.
type Polarity uint8

const (
	// ActiveHigh: the pin sources current, high lights the LED.
	ActiveHigh Polarity = iota
	// ActiveLow: the pin drains current, low lights the LED.
	ActiveLow
)

func (p Polarity) String() string {
	if p == ActiveLow {
		return "active-low"
	}
	return "active-high"
}

// PinSpec is the static LED pin descriptor of a board.
type PinSpec struct {
	Port     Port
	Pin      uint8
	Polarity Polarity
}

// Level maps a logical state to the electrical level of the pin.
func (p PinSpec) Level(s State) bool {
	return bool(s) != (p.Polarity == ActiveLow)
}

// Mask is the pin's bit in a port-wide register.
func (p PinSpec) Mask() uint32 { return 1 << p.Pin }

func (p PinSpec) String() string {
	return p.Port.String() + strconvx.Itoa(int(p.Pin))
}

// State is the logical LED state.
type State bool

const (
	Off State = false
	On  State = true
)

func (s State) String() string {
	if s {
		return "on"
	}
	return "off"
}

// Info describes a board.
type Info struct {
	Name string // e.g. "bluepill"
	Chip string // e.g. "stm32f103"
	Tag  string // build tag selecting the board
	LED  PinSpec
}

// Board is one buildable target. H is the chip's peripheral handle type:
// Initialize hands it out once and Set borrows it.
type Board[H any] interface {
	Describe() Info
	Initialize() (H, error)
	Set(h H, s State)
}
