package token

import (
	"strings"
)

// IsUnquotedChar reports whether c may appear in an unquoted SNBT word.
func IsUnquotedChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		return true
	}
	switch c {
	case '_', '-', '.', '+':
		return true
	}
	return false
}

// IsQuoteChar reports whether c starts a quoted string.
func IsQuoteChar(c byte) bool {
	return c == '"' || c == '\''
}

// IsSimple reports whether s is a non empty word of unquoted
// characters.
func IsSimple(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsUnquotedChar(s[i]) {
			return false
		}
	}
	return true
}

// QuoteKey returns s unchanged if it is simple and quoted otherwise.
func QuoteKey(s string) string {
	if IsSimple(s) {
		return s
	}
	return Quote(s)
}

// Quote quotes s, escaping backslashes. The quote character is the
// opposite of the first quote character occurring in s, '"' if there
// is none; only occurrences of the chosen quote are escaped.
func Quote(s string) string {
	var q byte
	for i := 0; i < len(s); i++ {
		if IsQuoteChar(s[i]) {
			q = '"'
			if s[i] == '"' {
				q = '\''
			}
			break
		}
	}
	if q == 0 {
		q = '"'
	}
	b := &strings.Builder{}
	b.Grow(len(s) + 2)
	b.WriteByte(q)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == q {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte(q)
	return b.String()
}
