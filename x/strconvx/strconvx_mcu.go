//go:build tinygo

package strconvx

// Formatting only; the firmware never parses numbers.
// Supported bases: 2..36, anything else falls back to 10.

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

func Itoa(i int) string { return FormatInt(int64(i), 10) }

func FormatInt(i int64, base int) string {
	if i < 0 {
		return "-" + FormatUint(uint64(-i), base)
	}
	return FormatUint(uint64(i), base)
}

func FormatUint(u uint64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	var buf [64]byte
	i := len(buf)
	b := uint64(base)
	for {
		i--
		buf[i] = digits[u%b]
		u /= b
		if u == 0 {
			break
		}
	}
	return string(buf[i:])
}

func FormatUintPad(u uint64, base, width int) string {
	return pad(FormatUint(u, base), width)
}
