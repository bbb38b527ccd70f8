//go:build board_nucleo_f411

package boards

import (
	"blinky-go/hal/board"
	"blinky-go/hal/stm32f4"
)

var Selected board.Board[*stm32f4.Peripherals] = &stm32f4.NucleoF411
