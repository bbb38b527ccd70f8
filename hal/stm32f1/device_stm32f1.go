//go:build tinygo && stm32f1

package stm32f1

import (
	"device/stm32"

	"blinky-go/hal/board"
)

func devicePeripherals() *Peripherals {
	p := &Peripherals{RCC: RCC{APB2ENR: &stm32.RCC.APB2ENR}}
	p.GPIO[board.PortA] = &GPIO{&stm32.GPIOA.CRL, &stm32.GPIOA.CRH, &stm32.GPIOA.BSRR}
	p.GPIO[board.PortB] = &GPIO{&stm32.GPIOB.CRL, &stm32.GPIOB.CRH, &stm32.GPIOB.BSRR}
	p.GPIO[board.PortC] = &GPIO{&stm32.GPIOC.CRL, &stm32.GPIOC.CRH, &stm32.GPIOC.BSRR}
	p.GPIO[board.PortD] = &GPIO{&stm32.GPIOD.CRL, &stm32.GPIOD.CRH, &stm32.GPIOD.BSRR}
	p.GPIO[board.PortE] = &GPIO{&stm32.GPIOE.CRL, &stm32.GPIOE.CRH, &stm32.GPIOE.BSRR}
	return p
}
