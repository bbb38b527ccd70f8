//go:build tinygo

package main

import (
	"machine"

	"blinky-go/blink"
	"blinky-go/hal/boards"
	"blinky-go/hal/delay"
	"blinky-go/x/fmtx"
)

func main() {
	fmtx.DefaultOutput = machine.Serial
	blink.Run(boards.Selected, blink.DefaultTiming, delay.Cycles)
}
