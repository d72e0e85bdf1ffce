package wire

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// Strings are encoded in Java's modified UTF-8: NUL is written as two
// bytes and supplementary characters as two 3 byte surrogates.

func mutf8Len(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r == 0:
			n += 2
		case r < 0x80:
			n++
		case r < 0x800:
			n += 2
		case r < 0x10000:
			n += 3
		default:
			n += 6
		}
	}
	return n
}

func appendMUTF8(dst []byte, s string) []byte {
	for _, r := range s {
		switch {
		case r == 0:
			dst = append(dst, 0xc0, 0x80)
		case r < 0x80:
			dst = append(dst, byte(r))
		case r < 0x800:
			dst = append(dst, 0xc0|byte(r>>6), 0x80|byte(r&0x3f))
		case r < 0x10000:
			dst = appendUnit3(dst, uint16(r))
		default:
			hi, lo := utf16.EncodeRune(r)
			dst = appendUnit3(dst, uint16(hi))
			dst = appendUnit3(dst, uint16(lo))
		}
	}
	return dst
}

func appendUnit3(dst []byte, u uint16) []byte {
	return append(dst, 0xe0|byte(u>>12), 0x80|byte((u>>6)&0x3f), 0x80|byte(u&0x3f))
}

// decodeMUTF8 returns the decoded string and its length in UTF-16
// units. Unpaired surrogates decode to U+FFFD.
func decodeMUTF8(d []byte) (string, int, error) {
	ascii := true
	for _, b := range d {
		if b >= 0x80 || b == 0 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(d), len(d), nil
	}
	units := make([]uint16, 0, len(d))
	for i := 0; i < len(d); {
		b := d[i]
		switch {
		case b&0x80 == 0:
			units = append(units, uint16(b))
			i++
		case b&0xe0 == 0xc0:
			if i+1 >= len(d) || d[i+1]&0xc0 != 0x80 {
				return "", 0, fmt.Errorf("%w: bad modified utf-8 at byte %d", ErrMalformed, i)
			}
			units = append(units, uint16(b&0x1f)<<6|uint16(d[i+1]&0x3f))
			i += 2
		case b&0xf0 == 0xe0:
			if i+2 >= len(d) || d[i+1]&0xc0 != 0x80 || d[i+2]&0xc0 != 0x80 {
				return "", 0, fmt.Errorf("%w: bad modified utf-8 at byte %d", ErrMalformed, i)
			}
			units = append(units, uint16(b&0x0f)<<12|uint16(d[i+1]&0x3f)<<6|uint16(d[i+2]&0x3f))
			i += 3
		default:
			return "", 0, fmt.Errorf("%w: bad modified utf-8 at byte %d", ErrMalformed, i)
		}
	}
	buf := make([]byte, 0, len(d))
	for _, r := range utf16.Decode(units) {
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf), len(units), nil
}
