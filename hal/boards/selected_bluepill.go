//go:build board_bluepill

package boards

import (
	"blinky-go/hal/board"
	"blinky-go/hal/stm32f1"
)

var Selected board.Board[*stm32f1.Peripherals] = &stm32f1.BluePill
