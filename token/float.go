package token

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat32 renders v the way Java's Float.toString does: the
// shortest digits that round trip, in plain notation when
// 1e-3 <= |v| < 1e7 and in computerized scientific notation otherwise.
// Both forms carry at least one fractional digit.
func FormatFloat32(v float32) string {
	return formatFloat(float64(v), 32)
}

// FormatFloat64 is FormatFloat32 for doubles.
func FormatFloat64(v float64) string {
	return formatFloat(v, 64)
}

func formatFloat(v float64, bits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	b := &strings.Builder{}
	if v < 0 {
		b.WriteByte('-')
		v = -v
	}
	e := strconv.FormatFloat(v, 'e', -1, bits)
	mant, exps, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(exps)

	if v >= 1e-3 && v < 1e7 {
		if exp >= 0 {
			if len(digits) <= exp+1 {
				b.WriteString(digits)
				b.WriteString(strings.Repeat("0", exp+1-len(digits)))
				b.WriteString(".0")
				return b.String()
			}
			b.WriteString(digits[:exp+1])
			b.WriteByte('.')
			b.WriteString(digits[exp+1:])
			return b.String()
		}
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -exp-1))
		b.WriteString(digits)
		return b.String()
	}
	b.WriteByte(digits[0])
	b.WriteByte('.')
	if len(digits) > 1 {
		b.WriteString(digits[1:])
	} else {
		b.WriteByte('0')
	}
	b.WriteByte('E')
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}
