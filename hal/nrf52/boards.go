package nrf52

import "blinky-go/hal/board"

// NRF52840DK drives LED1 on P0.13; the DK LEDs are active-low.
var NRF52840DK = Board{
	Info: board.Info{
		Name: "nrf52840dk",
		Chip: "nrf52840",
		Tag:  "board_nrf52840dk",
		LED:  board.PinSpec{Port: board.P0, Pin: 13, Polarity: board.ActiveLow},
	},
	Source: Device,
}
