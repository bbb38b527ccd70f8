package nrf52

import (
	"errors"
	"testing"

	"blinky-go/errcode"
	"blinky-go/hal/board"
	"blinky-go/hal/regs"
)

func simBoard(b Board) (*Board, *regs.Sim) {
	sim := regs.NewSim()
	b.Source = NewSource(sim)
	return &b, sim
}

func TestInitializeTwiceFails(t *testing.T) {
	b, _ := simBoard(NRF52840DK)
	if _, err := b.Initialize(); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Initialize(); !errors.Is(err, errcode.ResourceAlreadyTaken) {
		t.Fatalf("second Initialize err = %v", err)
	}
}

func TestLEDPinIsStandardDriveOutput(t *testing.T) {
	b, sim := simBoard(NRF52840DK)
	if _, err := b.Initialize(); err != nil {
		t.Fatal(err)
	}
	cnf := sim.Value("P0.PIN_CNF[13]")
	if cnf&cnfDirOutput == 0 {
		t.Fatalf("PIN_CNF[13] = %#x, DIR not output", cnf)
	}
	if drive := cnf >> cnfDrivePos & 0b111; drive != driveS0S1 {
		t.Fatalf("DRIVE = %03b, want S0S1", drive)
	}
	if pull := cnf >> cnfPullPos & 0b11; pull != pullDisabled {
		t.Fatalf("PULL = %02b, want disabled", pull)
	}
	if n := len(sim.Trace()); n != 1 {
		t.Fatalf("Initialize wrote %d registers, want 1", n)
	}
}

func TestSetUsesOutsetOutclr(t *testing.T) {
	b, sim := simBoard(NRF52840DK)
	p, err := b.Initialize()
	if err != nil {
		t.Fatal(err)
	}
	sim.ClearTrace()
	b.Set(p, board.On)
	b.Set(p, board.Off)

	tr := sim.Trace()
	if len(tr) != 2 {
		t.Fatalf("trace = %+v", tr)
	}
	// Active-low: on lowers the pin, off raises it.
	if tr[0].Reg != "P0.OUTCLR" || tr[0].Value != 1<<13 {
		t.Fatalf("on wrote %s=%#x", tr[0].Reg, tr[0].Value)
	}
	if tr[1].Reg != "P0.OUTSET" || tr[1].Value != 1<<13 {
		t.Fatalf("off wrote %s=%#x", tr[1].Reg, tr[1].Value)
	}
}

func TestPortRange(t *testing.T) {
	p := NewPeripherals(regs.NewSim())
	if p.Port(board.P1) != p.GPIO[1] {
		t.Fatalf("P1 maps to the wrong block")
	}
	defer func() {
		if e, ok := recover().(*errcode.E); !ok || e.C != errcode.UnknownPort {
			t.Fatalf("PortC on nRF should panic with unknown_port")
		}
	}()
	p.Port(board.PortC)
}
