package fmtx

import "blinky-go/x/strconvx"

// builder covers %s %q %d %x %X %t %v %% with an optional zero-padded
// width on integers (%08x). No other flags.
type builder struct{ buf []byte }

func (b *builder) str(s string) { b.buf = append(b.buf, s...) }

func (b *builder) format(format string, args []any) {
	ai := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.buf = append(b.buf, c)
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			b.buf = append(b.buf, '%')
			continue
		}
		width := 0
		for i < len(format) && '0' <= format[i] && format[i] <= '9' {
			width = width*10 + int(format[i]-'0')
			i++
		}
		if i >= len(format) {
			b.str("%!(NOVERB)")
			return
		}
		if ai >= len(args) {
			b.buf = append(b.buf, '%', '!', format[i])
			b.str("(MISSING)")
			continue
		}
		b.value(args[ai], format[i], width)
		ai++
	}
}

func (b *builder) value(v any, verb byte, width int) {
	switch x := v.(type) {
	case string:
		if verb == 'q' {
			b.quote(x)
		} else {
			b.str(x)
		}
	case interface{ String() string }:
		b.str(x.String())
	case error:
		b.str(x.Error())
	case bool:
		if x {
			b.str("true")
		} else {
			b.str("false")
		}
	case int:
		b.signed(int64(x), verb, width)
	case int32:
		b.signed(int64(x), verb, width)
	case int64:
		b.signed(x, verb, width)
	case uint:
		b.unsigned(uint64(x), verb, width)
	case uint8:
		b.unsigned(uint64(x), verb, width)
	case uint16:
		b.unsigned(uint64(x), verb, width)
	case uint32:
		b.unsigned(uint64(x), verb, width)
	case uint64:
		b.unsigned(x, verb, width)
	default:
		b.str("<?>")
	}
}

// quote writes s in double quotes, escaping quotes, backslashes and the
// common control characters.
func (b *builder) quote(s string) {
	b.buf = append(b.buf, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.buf = append(b.buf, '\\', c)
		case '\n':
			b.buf = append(b.buf, '\\', 'n')
		case '\r':
			b.buf = append(b.buf, '\\', 'r')
		case '\t':
			b.buf = append(b.buf, '\\', 't')
		default:
			b.buf = append(b.buf, c)
		}
	}
	b.buf = append(b.buf, '"')
}

func (b *builder) signed(v int64, verb byte, width int) {
	if v < 0 {
		b.str("-")
		v = -v
	}
	b.unsigned(uint64(v), verb, width)
}

func (b *builder) unsigned(v uint64, verb byte, width int) {
	switch verb {
	case 'x':
		b.str(strconvx.FormatUintPad(v, 16, width))
	case 'X':
		s := []byte(strconvx.FormatUintPad(v, 16, width))
		for i, c := range s {
			if 'a' <= c && c <= 'f' {
				s[i] = c - ('a' - 'A')
			}
		}
		b.buf = append(b.buf, s...)
	default:
		b.str(strconvx.FormatUintPad(v, 10, width))
	}
}
