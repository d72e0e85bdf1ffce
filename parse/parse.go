package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nbtkit/go-nbt/tag"
	"github.com/nbtkit/go-nbt/token"
)

type parser struct {
	c     *token.Cursor
	opts  *parseOpts
	depth int
}

func newParser(d []byte, opts []ParseOption) *parser {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return &parser{c: token.NewCursor(string(d)), opts: pOpts}
}

// Parse parses one SNBT value. Only whitespace may follow it.
func Parse(d []byte, opts ...ParseOption) (tag.Tag, error) {
	p := newParser(d, opts)
	t, err := p.value()
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseCompound parses SNBT text holding exactly one compound.
func ParseCompound(d []byte, opts ...ParseOption) (*tag.Compound, error) {
	p := newParser(d, opts)
	p.c.SkipWhitespace()
	if !p.c.CanRead(1) || p.c.Peek(0) != '{' {
		return nil, token.NewSyntaxError(ErrNotCompound, p.c.Pos())
	}
	c, err := p.compound()
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *parser) end() error {
	p.c.SkipWhitespace()
	if p.c.CanRead(1) {
		return token.NewSyntaxError(token.ErrTrailing, p.c.Pos())
	}
	return nil
}

func (p *parser) expect(b byte) error {
	p.c.SkipWhitespace()
	return p.c.Expect(b)
}

// separator consumes a comma and reports whether there was one.
func (p *parser) separator() bool {
	p.c.SkipWhitespace()
	if p.c.CanRead(1) && p.c.Peek(0) == ',' {
		p.c.Skip()
		p.c.SkipWhitespace()
		return true
	}
	return false
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return token.NewSyntaxError(fmt.Errorf("%w: depth > %d", ErrDepthExceeded, p.opts.maxDepth), p.c.Pos())
	}
	return nil
}

func (p *parser) value() (tag.Tag, error) {
	p.c.SkipWhitespace()
	if !p.c.CanRead(1) {
		return nil, token.ExpectedErr("value", p.c.Pos())
	}
	switch p.c.Peek(0) {
	case '{':
		return p.compound()
	case '[':
		if p.c.CanRead(3) && !token.IsQuoteChar(p.c.Peek(1)) && p.c.Peek(2) == ';' {
			return p.array()
		}
		return p.list()
	}
	return p.typed()
}

func (p *parser) key() (string, error) {
	p.c.SkipWhitespace()
	if !p.c.CanRead(1) {
		return "", token.ExpectedErr("key", p.c.Pos())
	}
	start := p.c.Offset()
	if token.IsQuoteChar(p.c.Peek(0)) {
		return p.c.ReadQuoted()
	}
	k := p.c.ReadUnquoted()
	if k == "" {
		p.c.Seek(start)
		return "", token.ExpectedErr("key", p.c.Pos())
	}
	return k, nil
}

func (p *parser) compound() (*tag.Compound, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.c.SkipWhitespace()
	res := tag.NewCompound()
	for p.c.CanRead(1) && p.c.Peek(0) != '}' {
		k, err := p.key()
		if err != nil {
			return nil, err
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		res.Put(k, v)
		if !p.separator() {
			break
		}
		if !p.c.CanRead(1) {
			return nil, token.ExpectedErr("key", p.c.Pos())
		}
	}
	if err := p.expect('}'); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *parser) list() (*tag.List, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.c.SkipWhitespace()
	if !p.c.CanRead(1) {
		return nil, token.ExpectedErr("value", p.c.Pos())
	}
	res := tag.NewList()
	for p.c.Peek(0) != ']' {
		start := p.c.Offset()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		if err := res.Add(v); err != nil {
			return nil, token.NewSyntaxError(fmt.Errorf("%w: cannot insert %s into list of %s",
				token.ErrMixedList, v.ID().PrettyName(), res.ElemType().PrettyName()), p.c.PosAt(start))
		}
		if !p.separator() {
			break
		}
		if !p.c.CanRead(1) {
			return nil, token.ExpectedErr("value", p.c.Pos())
		}
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *parser) array() (tag.Tag, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	start := p.c.Offset()
	kind := p.c.Read()
	p.c.Read()
	p.c.SkipWhitespace()
	if !p.c.CanRead(1) {
		return nil, token.ExpectedErr("value", p.c.Pos())
	}
	var res interface {
		tag.Tag
		Add(tag.Tag) error
	}
	var elem tag.Type
	switch kind {
	case 'B':
		res, elem = tag.NewByteArray(nil), tag.ByteType
	case 'I':
		res, elem = tag.NewIntArray(nil), tag.IntType
	case 'L':
		res, elem = tag.NewLongArray(nil), tag.LongType
	default:
		return nil, token.NewSyntaxError(fmt.Errorf("%w '%c'", ErrArrayType, kind), p.c.PosAt(start))
	}
	for p.c.Peek(0) != ']' {
		at := p.c.Offset()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		if v.ID() != elem {
			return nil, token.NewSyntaxError(fmt.Errorf("%w: cannot insert %s into %s",
				token.ErrMixedList, v.ID().PrettyName(), res.ID().PrettyName()), p.c.PosAt(at))
		}
		if err := res.Add(v); err != nil {
			return nil, err
		}
		if !p.separator() {
			break
		}
		if !p.c.CanRead(1) {
			return nil, token.ExpectedErr("value", p.c.Pos())
		}
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *parser) typed() (tag.Tag, error) {
	p.c.SkipWhitespace()
	start := p.c.Offset()
	if token.IsQuoteChar(p.c.Peek(0)) {
		s, err := p.c.ReadQuoted()
		if err != nil {
			return nil, err
		}
		return tag.String(s), nil
	}
	s := p.c.ReadUnquoted()
	if s == "" {
		p.c.Seek(start)
		return nil, token.ExpectedErr("value", p.c.Pos())
	}
	return typeOf(s), nil
}

var (
	floatRe          = regexp.MustCompile(`(?i)^[-+]?(?:[0-9]+[.]?|[0-9]*[.][0-9]+)(?:e[-+]?[0-9]+)?f$`)
	byteRe           = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)b$`)
	longRe           = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)l$`)
	shortRe          = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)s$`)
	intRe            = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)$`)
	doubleRe         = regexp.MustCompile(`(?i)^[-+]?(?:[0-9]+[.]?|[0-9]*[.][0-9]+)(?:e[-+]?[0-9]+)?d$`)
	doubleNoSuffixRe = regexp.MustCompile(`(?i)^[-+]?(?:[0-9]+[.]|[0-9]*[.][0-9]+)(?:e[-+]?[0-9]+)?$`)
)

// typeOf types an unquoted word. Numbers out of range for their type
// and words that are not numbers or booleans are strings.
func typeOf(s string) tag.Tag {
	num := s[:len(s)-1]
	switch {
	case floatRe.MatchString(s):
		if v, err := parseFloat(num, 32); err == nil {
			return tag.Float(float32(v))
		}
	case byteRe.MatchString(s):
		if v, err := strconv.ParseInt(num, 10, 8); err == nil {
			return tag.Byte(int8(v))
		}
	case longRe.MatchString(s):
		if v, err := strconv.ParseInt(num, 10, 64); err == nil {
			return tag.Long(v)
		}
	case shortRe.MatchString(s):
		if v, err := strconv.ParseInt(num, 10, 16); err == nil {
			return tag.Short(int16(v))
		}
	case intRe.MatchString(s):
		if v, err := strconv.ParseInt(s, 10, 32); err == nil {
			return tag.Int(int32(v))
		}
	case doubleRe.MatchString(s):
		if v, err := parseFloat(num, 64); err == nil {
			return tag.Double(v)
		}
	case doubleNoSuffixRe.MatchString(s):
		if v, err := parseFloat(s, 64); err == nil {
			return tag.Double(v)
		}
	case strings.EqualFold(s, "true"):
		return tag.Bool(true)
	case strings.EqualFold(s, "false"):
		return tag.Bool(false)
	}
	return tag.String(s)
}

// parseFloat saturates to an infinity on overflow.
func parseFloat(s string, bits int) (float64, error) {
	v, err := strconv.ParseFloat(s, bits)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}
