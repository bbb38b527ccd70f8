package blink

import (
	"errors"
	"testing"

	"blinky-go/errcode"
	"blinky-go/hal/board"
)

// fakeBoard records Set calls against an int handle.
type fakeBoard struct {
	taken bool
	sets  []board.State
	err   error
}

func (f *fakeBoard) Describe() board.Info {
	return board.Info{Name: "fake", Chip: "none", LED: board.PinSpec{Port: board.PortA, Pin: 1}}
}

func (f *fakeBoard) Initialize() (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.taken {
		return 0, errcode.ResourceAlreadyTaken
	}
	f.taken = true
	return 7, nil
}

func (f *fakeBoard) Set(h int, s board.State) {
	if h != 7 {
		panic("wrong handle")
	}
	f.sets = append(f.sets, s)
}

type delays []uint32

func (d *delays) delay(n uint32) { *d = append(*d, n) }

func TestStartLeavesLEDOff(t *testing.T) {
	fb := &fakeBoard{}
	var d delays
	l, err := Start[int](fb, DefaultTiming, d.delay)
	if err != nil {
		t.Fatal(err)
	}
	if l.State() != board.Off {
		t.Fatalf("initial state = %v, want off", l.State())
	}
	if len(fb.sets) != 1 || fb.sets[0] != board.Off {
		t.Fatalf("Start sets = %v, want [off]", fb.sets)
	}
	if len(d) != 0 {
		t.Fatalf("Start delayed %v", d)
	}
}

func TestStepAlternatesWithTiming(t *testing.T) {
	fb := &fakeBoard{}
	var d delays
	l, err := Start[int](fb, Timing{On: 2, Off: 8}, d.delay)
	if err != nil {
		t.Fatal(err)
	}
	fb.sets = nil

	for i := 0; i < 4; i++ {
		l.Step()
	}
	wantSets := []board.State{board.On, board.Off, board.On, board.Off}
	wantDelays := []uint32{2, 8, 2, 8}
	for i := range wantSets {
		if fb.sets[i] != wantSets[i] || d[i] != wantDelays[i] {
			t.Fatalf("step %d: set %v delay %d, want %v %d", i, fb.sets[i], d[i], wantSets[i], wantDelays[i])
		}
	}
	if l.State() != board.Off {
		t.Fatalf("after 4 steps state = %v", l.State())
	}
}

func TestStartPropagatesInitError(t *testing.T) {
	fb := &fakeBoard{taken: true}
	if _, err := Start[int](fb, DefaultTiming, func(uint32) {}); !errors.Is(err, errcode.ResourceAlreadyTaken) {
		t.Fatalf("Start err = %v", err)
	}
}

func TestRunPanicsOnInitError(t *testing.T) {
	boom := errors.New("boom")
	defer func() {
		if r := recover(); r != boom {
			t.Fatalf("recover = %v, want boom", r)
		}
	}()
	Run[int](&fakeBoard{err: boom}, DefaultTiming, func(uint32) {})
}

func TestDefaultTiming(t *testing.T) {
	if DefaultTiming.On != 200_000 || DefaultTiming.Off != 800_000 {
		t.Fatalf("DefaultTiming = %+v", DefaultTiming)
	}
}
