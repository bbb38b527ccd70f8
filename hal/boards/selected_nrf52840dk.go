//go:build board_nrf52840dk

package boards

import (
	"blinky-go/hal/board"
	"blinky-go/hal/nrf52"
)

var Selected board.Board[*nrf52.Peripherals] = &nrf52.NRF52840DK
