package strconvx

func pad(s string, width int) string {
	n := width - len(s)
	if n <= 0 {
		return s
	}
	b := make([]byte, 0, width)
	for ; n > 0; n-- {
		b = append(b, '0')
	}
	return string(append(b, s...))
}
