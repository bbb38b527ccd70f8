// Package periph models single ownership of a chip's register space.
package periph

import (
	"sync/atomic"

	"blinky-go/errcode"
)

// Singleton hands out one peripheral block exactly once. It is armed at
// program start and never released; a second Take fails with
// errcode.ResourceAlreadyTaken.
type Singleton[P any] struct {
	name  string
	taken atomic.Bool
	open  func() *P
}

// NewSingleton arms a singleton; open builds the block on the first Take.
func NewSingleton[P any](name string, open func() *P) *Singleton[P] {
	return &Singleton[P]{name: name, open: open}
}

func (s *Singleton[P]) Take() (*P, error) {
	if !s.taken.CompareAndSwap(false, true) {
		return nil, &errcode.E{
			C:   errcode.ResourceAlreadyTaken,
			Op:  "take",
			Msg: s.name + " peripherals",
		}
	}
	return s.open(), nil
}

// Taken reports whether the block has been handed out.
func (s *Singleton[P]) Taken() bool { return s.taken.Load() }

func (s *Singleton[P]) Name() string { return s.name }
