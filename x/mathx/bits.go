package mathx

import "golang.org/x/exp/constraints"

// Register fields are laid out as equal-width slots: MODER uses 2 bits per
// pin, CRL/CRH 4 bits, OTYPER 1 bit.

// Mask returns the low width bits set.
func Mask[T constraints.Unsigned](width uint8) T {
	return T(1)<<width - 1
}

// Bit returns a value with only bit n set.
func Bit[T constraints.Unsigned](n uint8) T {
	return T(1) << n
}

// SlotPos is the bit position of slot index in a register of width-bit slots.
func SlotPos(index, width uint8) uint8 {
	return index * width
}

// Slot extracts the width-bit slot at index from v.
func Slot[T constraints.Unsigned](v T, index, width uint8) T {
	return (v >> SlotPos(index, width)) & Mask[T](width)
}
