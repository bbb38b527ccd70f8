package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"blinky-go/errcode"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListShowsEveryBoard(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"nucleo_f411", "black_pill", "bluepill", "nrf52840dk", "PC13", "P0.13", "active-low", "board_bluepill"} {
		if !strings.Contains(out, want) {
			t.Fatalf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestTraceBluePill(t *testing.T) {
	out, err := run(t, "trace", "bluepill", "--steps", "3")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// APB2ENR, CRH, then BSRR for start(off) and three steps.
	if len(lines) != 6 {
		t.Fatalf("trace has %d lines, want 6:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "RCC.APB2ENR") || !strings.Contains(lines[1], "GPIOC.CRH") {
		t.Fatalf("init order wrong:\n%s", out)
	}
	for i, want := range []string{"0x00002000", "0x20000000", "0x00002000", "0x20000000"} {
		if l := lines[2+i]; !strings.Contains(l, "GPIOC.BSRR") || !strings.Contains(l, want) {
			t.Fatalf("line %d = %q, want BSRR %s", 2+i, l, want)
		}
	}
}

func TestTraceStepsClamped(t *testing.T) {
	out, err := run(t, "trace", "nrf52840dk", "-n", "1000")
	if err != nil {
		t.Fatal(err)
	}
	// PIN_CNF + start(off) + 64 steps.
	if n := len(strings.Split(strings.TrimSpace(out), "\n")); n != 66 {
		t.Fatalf("trace has %d lines, want 66", n)
	}
}

func TestTraceUnknownBoard(t *testing.T) {
	_, err := run(t, "trace", "arduino_uno")
	if !errors.Is(err, errcode.UnknownBoard) {
		t.Fatalf("err = %v, want unknown_board", err)
	}
}
