//go:build tinygo

package fmtx

import "io"

// DefaultOutput is used by Print/Printf on MCU builds.
// Point it at a UART from the firmware entry point.
var DefaultOutput io.Writer = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func Sprintf(format string, a ...any) string {
	var b builder
	b.format(format, a)
	return string(b.buf)
}

func Printf(format string, a ...any) (int, error) {
	return Fprintf(DefaultOutput, format, a...)
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	var b builder
	b.format(format, a)
	return w.Write(b.buf)
}

func Errorf(format string, a ...any) error {
	return &stringError{Sprintf(format, a...)}
}

func Sprint(a ...any) string {
	var b builder
	for i, v := range a {
		if i > 0 {
			b.str(" ")
		}
		b.value(v, 'v', 0)
	}
	return string(b.buf)
}

func Print(a ...any) (int, error) {
	return io.WriteString(DefaultOutput, Sprint(a...))
}

type stringError struct{ s string }

func (e *stringError) Error() string { return e.s }
