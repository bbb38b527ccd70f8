package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":                     OK,
		"resource_already_taken": ResourceAlreadyTaken,
		"unknown_board":          UnknownBoard,
		"unknown_port":           UnknownPort,
		"error":                  Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if got := Of(nil); got != OK {
		t.Fatalf("Of(nil) = %q, want ok", got)
	}
	if got := Of(ResourceAlreadyTaken); got != ResourceAlreadyTaken {
		t.Fatalf("Of(code) = %q", got)
	}
	wrapped := &E{C: UnknownBoard, Op: "lookup", Msg: "uno"}
	if got := Of(wrapped); got != UnknownBoard {
		t.Fatalf("Of(*E) = %q", got)
	}
	if got := Of(errors.New("boom")); got != Error {
		t.Fatalf("Of(plain) = %q, want error", got)
	}
}

func TestEMessageAndMatching(t *testing.T) {
	cause := errors.New("cause")
	e := &E{C: ResourceAlreadyTaken, Op: "take", Msg: "stm32f4 peripherals", Err: cause}
	if got, want := e.Error(), "take: resource_already_taken: stm32f4 peripherals"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, ResourceAlreadyTaken) {
		t.Fatalf("errors.Is should match by code")
	}
	if errors.Is(e, UnknownBoard) {
		t.Fatalf("errors.Is matched the wrong code")
	}
	if !errors.Is(e, cause) {
		t.Fatalf("errors.Is should reach the wrapped cause")
	}
}
