package strconvx

import "testing"

func TestItoa(t *testing.T) {
	for v, want := range map[int]string{0: "0", 1: "1", -1: "-1", 42: "42", -99999: "-99999"} {
		if got := Itoa(v); got != want {
			t.Fatalf("Itoa(%d) = %q, want %q", v, got, want)
		}
	}
}

func TestFormatIntUintBases(t *testing.T) {
	type C struct {
		u    uint64
		base int
		want string
	}
	for _, c := range []C{
		{0, 2, "0"},
		{5, 2, "101"},
		{255, 16, "ff"},
		{255, 10, "255"},
		{35, 36, "z"},
	} {
		if got := FormatUint(c.u, c.base); got != c.want {
			t.Fatalf("FormatUint(%d,%d) = %q, want %q", c.u, c.base, got, c.want)
		}
	}
	if got := FormatInt(-15, 10); got != "-15" {
		t.Fatalf("FormatInt(-15,10) = %q, want -15", got)
	}
}

func TestFormatUintPad(t *testing.T) {
	type C struct {
		u     uint64
		base  int
		width int
		want  string
	}
	for _, c := range []C{
		{0x20, 16, 8, "00000020"},
		{0xdeadbeef, 16, 8, "deadbeef"},
		{0x1_0000_0000, 16, 8, "100000000"},
		{7, 10, 0, "7"},
	} {
		if got := FormatUintPad(c.u, c.base, c.width); got != c.want {
			t.Fatalf("FormatUintPad(%d,%d,%d) = %q, want %q", c.u, c.base, c.width, got, c.want)
		}
	}
}
