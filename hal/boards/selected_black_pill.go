//go:build board_black_pill

package boards

import (
	"blinky-go/hal/board"
	"blinky-go/hal/stm32f4"
)

var Selected board.Board[*stm32f4.Peripherals] = &stm32f4.BlackPill
