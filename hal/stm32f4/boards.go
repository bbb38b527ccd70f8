package stm32f4

import "blinky-go/hal/board"

// NucleoF411 drives the green user LED LD2 on PA5 (sources current).
var NucleoF411 = Board{
	Info: board.Info{
		Name: "nucleo_f411",
		Chip: "stm32f411",
		Tag:  "board_nucleo_f411",
		LED:  board.PinSpec{Port: board.PortA, Pin: 5, Polarity: board.ActiveHigh},
	},
	MCO:    &DiagnosticMCO,
	Source: Device,
}

// BlackPill drives the blue user LED on PC13 (drains current).
var BlackPill = Board{
	Info: board.Info{
		Name: "black_pill",
		Chip: "stm32f411",
		Tag:  "board_black_pill",
		LED:  board.PinSpec{Port: board.PortC, Pin: 13, Polarity: board.ActiveLow},
	},
	MCO:    &DiagnosticMCO,
	Source: Device,
}
