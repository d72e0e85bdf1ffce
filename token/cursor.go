package token

import (
	"fmt"
	"strings"
)

// Cursor reads SNBT text byte by byte and reports positions for
// errors.
type Cursor struct {
	s   string
	i   int
	doc *PosDoc
}

func NewCursor(s string) *Cursor {
	return &Cursor{s: s, doc: NewPosDoc(s)}
}

// Offset returns the index of the next unread byte.
func (c *Cursor) Offset() int { return c.i }

// Seek moves to offset i.
func (c *Cursor) Seek(i int) { c.i = i }

func (c *Cursor) Pos() *Pos { return c.doc.Pos(c.i) }

func (c *Cursor) PosAt(i int) *Pos { return c.doc.Pos(i) }

// CanRead reports whether n more bytes are available.
func (c *Cursor) CanRead(n int) bool { return c.i+n <= len(c.s) }

// Peek returns the byte n places ahead of the next unread one.
func (c *Cursor) Peek(n int) byte { return c.s[c.i+n] }

func (c *Cursor) Read() byte {
	b := c.s[c.i]
	c.i++
	return b
}

func (c *Cursor) Skip() { c.i++ }

func (c *Cursor) SkipWhitespace() {
	for c.CanRead(1) && isSpace(c.s[c.i]) {
		c.i++
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// Expect consumes b or fails without moving.
func (c *Cursor) Expect(b byte) error {
	if !c.CanRead(1) || c.Peek(0) != b {
		return ExpectedErr(fmt.Sprintf("'%c'", b), c.Pos())
	}
	c.i++
	return nil
}

// ReadUnquoted reads the longest run of unquoted characters, possibly
// empty.
func (c *Cursor) ReadUnquoted() string {
	start := c.i
	for c.CanRead(1) && IsUnquotedChar(c.s[c.i]) {
		c.i++
	}
	return c.s[start:c.i]
}

// ReadQuoted reads a string delimited by the quote character at the
// cursor. Only the delimiter and backslash may be escaped.
func (c *Cursor) ReadQuoted() (string, error) {
	if !c.CanRead(1) {
		return "", nil
	}
	start := c.i
	term := c.Read()
	if !IsQuoteChar(term) {
		c.i = start
		return "", ExpectedErr("start of quote", c.Pos())
	}
	b := &strings.Builder{}
	esc := false
	for c.CanRead(1) {
		ch := c.Read()
		switch {
		case esc:
			if ch != term && ch != '\\' {
				c.i--
				return "", NewSyntaxError(fmt.Errorf("%w '%c'", ErrBadEscape, ch), c.Pos())
			}
			b.WriteByte(ch)
			esc = false
		case ch == '\\':
			esc = true
		case ch == term:
			return b.String(), nil
		default:
			b.WriteByte(ch)
		}
	}
	return "", NewSyntaxError(ErrUnterminated, c.PosAt(start))
}

// ReadString reads a quoted string if one starts at the cursor and an
// unquoted word otherwise.
func (c *Cursor) ReadString() (string, error) {
	if !c.CanRead(1) {
		return "", nil
	}
	if IsQuoteChar(c.Peek(0)) {
		return c.ReadQuoted()
	}
	return c.ReadUnquoted(), nil
}
