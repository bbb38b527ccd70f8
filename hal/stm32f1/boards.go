package stm32f1

import "blinky-go/hal/board"

// BluePill drives the green LED on PC13, wired to drain current.
var BluePill = Board{
	Info: board.Info{
		Name: "bluepill",
		Chip: "stm32f103",
		Tag:  "board_bluepill",
		LED:  board.PinSpec{Port: board.PortC, Pin: 13, Polarity: board.ActiveLow},
	},
	Source: Device,
}
