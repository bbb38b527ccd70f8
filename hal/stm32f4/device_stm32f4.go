//go:build tinygo && stm32f4

package stm32f4

import (
	"device/stm32"

	"blinky-go/hal/board"
)

func devicePeripherals() *Peripherals {
	p := &Peripherals{
		RCC: RCC{
			AHB1ENR: &stm32.RCC.AHB1ENR,
			CFGR:    &stm32.RCC.CFGR,
		},
	}
	p.GPIO[board.PortA] = &GPIO{&stm32.GPIOA.MODER, &stm32.GPIOA.OTYPER, &stm32.GPIOA.OSPEEDR, &stm32.GPIOA.AFRL, &stm32.GPIOA.AFRH, &stm32.GPIOA.BSRR}
	p.GPIO[board.PortB] = &GPIO{&stm32.GPIOB.MODER, &stm32.GPIOB.OTYPER, &stm32.GPIOB.OSPEEDR, &stm32.GPIOB.AFRL, &stm32.GPIOB.AFRH, &stm32.GPIOB.BSRR}
	p.GPIO[board.PortC] = &GPIO{&stm32.GPIOC.MODER, &stm32.GPIOC.OTYPER, &stm32.GPIOC.OSPEEDR, &stm32.GPIOC.AFRL, &stm32.GPIOC.AFRH, &stm32.GPIOC.BSRR}
	p.GPIO[board.PortD] = &GPIO{&stm32.GPIOD.MODER, &stm32.GPIOD.OTYPER, &stm32.GPIOD.OSPEEDR, &stm32.GPIOD.AFRL, &stm32.GPIOD.AFRH, &stm32.GPIOD.BSRR}
	p.GPIO[board.PortE] = &GPIO{&stm32.GPIOE.MODER, &stm32.GPIOE.OTYPER, &stm32.GPIOE.OSPEEDR, &stm32.GPIOE.AFRL, &stm32.GPIOE.AFRH, &stm32.GPIOE.BSRR}
	p.GPIO[board.PortH] = &GPIO{&stm32.GPIOH.MODER, &stm32.GPIOH.OTYPER, &stm32.GPIOH.OSPEEDR, &stm32.GPIOH.AFRL, &stm32.GPIOH.AFRH, &stm32.GPIOH.BSRR}
	return p
}
