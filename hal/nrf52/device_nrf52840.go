//go:build tinygo && nrf52840

package nrf52

import "device/nrf"

func devicePeripherals() *Peripherals {
	p0 := &GPIO{OUTSET: &nrf.P0.OUTSET, OUTCLR: &nrf.P0.OUTCLR}
	p1 := &GPIO{OUTSET: &nrf.P1.OUTSET, OUTCLR: &nrf.P1.OUTCLR}
	for n := range p0.PIN_CNF {
		p0.PIN_CNF[n] = &nrf.P0.PIN_CNF[n]
		p1.PIN_CNF[n] = &nrf.P1.PIN_CNF[n]
	}
	return &Peripherals{GPIO: [2]*GPIO{p0, p1}}
}
