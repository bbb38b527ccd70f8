// Package regs is the register-definition seam between the chip packages and
// memory-mapped hardware. On TinyGo builds the chip packages bind
// *volatile.Register32 values from the device packages; host builds use Sim.
package regs

// Register is a 32-bit memory-mapped register.
// *volatile.Register32 satisfies it.
type Register interface {
	Get() uint32
	Set(value uint32)
	SetBits(value uint32)
	ClearBits(value uint32)
	ReplaceBits(value uint32, mask uint32, pos uint8)
}

// Bus resolves registers by name, e.g. "RCC.AHB1ENR" or "GPIOC.BSRR".
type Bus interface {
	Register(name string) Register
}
