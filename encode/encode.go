package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nbtkit/go-nbt/tag"
	"github.com/nbtkit/go-nbt/token"
)

type EncState struct {
	rules   *Rules
	indent  *string
	compact bool
	path    Path

	Color func(tag.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.rules == nil {
		es.rules = DefaultRules()
	}
	return es
}

// Encode writes t in SNBT followed by a newline.
func Encode(t tag.Tag, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	b := &strings.Builder{}
	es.encode(b, t)
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// Pretty returns the indented SNBT form of t.
func Pretty(t tag.Tag, opts ...EncodeOption) string {
	es := newEncState(opts)
	es.compact = false
	b := &strings.Builder{}
	es.encode(b, t)
	return b.String()
}

// Compact returns the single line SNBT form of t with sorted keys and
// no spaces.
func Compact(t tag.Tag) string {
	b := &strings.Builder{}
	compact(b, t)
	return b.String()
}

func (es *EncState) encode(b *strings.Builder, t tag.Tag) {
	if es.compact && es.Color == nil {
		compact(b, t)
		return
	}
	indent := es.rules.Indent
	if es.indent != nil {
		indent = *es.indent
	}
	if es.compact {
		indent = ""
	}
	es.pretty(b, t, indent, 0)
}

func (es *EncState) color(t tag.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) push(step string) { es.path = append(es.path, step) }
func (es *EncState) pop()             { es.path = es.path[:len(es.path)-1] }

// scalar returns the digits and type suffix of a numeric tag or the
// quoted form of a string.
func scalar(t tag.Tag) (string, string) {
	switch x := t.(type) {
	case tag.Byte:
		return strconv.Itoa(int(x)), "b"
	case tag.Short:
		return strconv.Itoa(int(x)), "s"
	case tag.Int:
		return strconv.Itoa(int(x)), ""
	case tag.Long:
		return strconv.FormatInt(int64(x), 10), "L"
	case tag.Float:
		return token.FormatFloat32(float32(x)), "f"
	case tag.Double:
		return token.FormatFloat64(float64(x)), "d"
	case tag.String:
		return token.Quote(string(x)), ""
	case tag.End:
		return "END", ""
	}
	return fmt.Sprintf("%v", t), ""
}

func (es *EncState) pretty(b *strings.Builder, t tag.Tag, indent string, depth int) {
	switch x := t.(type) {
	case *tag.ByteArray:
		es.prettyArray(b, tag.ByteArrayType, "B", "b", x.Len(), func(i int) string {
			return strconv.Itoa(int(int8(x.Data[i])))
		})
	case *tag.IntArray:
		es.prettyArray(b, tag.IntArrayType, "I", "", x.Len(), func(i int) string {
			return strconv.Itoa(int(x.Data[i]))
		})
	case *tag.LongArray:
		es.prettyArray(b, tag.LongArrayType, "L", "L", x.Len(), func(i int) string {
			return strconv.FormatInt(x.Data[i], 10)
		})
	case *tag.List:
		es.prettyList(b, x, indent, depth)
	case *tag.Compound:
		es.prettyCompound(b, x, indent, depth)
	default:
		v, suffix := scalar(t)
		b.WriteString(es.color(t.ID(), ValueColor, v))
		if suffix != "" {
			b.WriteString(es.color(t.ID(), SuffixColor, suffix))
		}
	}
}

func (es *EncState) prettyArray(b *strings.Builder, typ tag.Type, prefix, suffix string, n int, elem func(int) string) {
	b.WriteString(es.color(typ, SepColor, "["))
	b.WriteString(es.color(typ, TagColor, prefix+";"))
	for i := range n {
		b.WriteByte(' ')
		b.WriteString(es.color(typ, ValueColor, elem(i)))
		if suffix != "" {
			b.WriteString(es.color(typ, SuffixColor, suffix))
		}
		if i != n-1 {
			b.WriteString(es.color(typ, SepColor, ","))
		}
	}
	b.WriteString(es.color(typ, SepColor, "]"))
}

// separator writes the gap between two children.
func (es *EncState) separator(b *strings.Builder, typ tag.Type, indent string) {
	b.WriteString(es.color(typ, SepColor, ","))
	if indent == "" {
		b.WriteByte(' ')
	} else {
		b.WriteByte('\n')
	}
}

func (es *EncState) prettyList(b *strings.Builder, l *tag.List, indent string, depth int) {
	if l.Len() == 0 {
		b.WriteString(es.color(tag.ListType, SepColor, "[]"))
		return
	}
	b.WriteString(es.color(tag.ListType, SepColor, "["))
	es.push(ListStep)
	if es.rules.noIndent(es.path) {
		indent = ""
	}
	if indent != "" {
		b.WriteByte('\n')
	}
	for i, t := range l.All() {
		b.WriteString(strings.Repeat(indent, depth+1))
		es.pretty(b, t, indent, depth+1)
		if i != l.Len()-1 {
			es.separator(b, tag.ListType, indent)
		}
	}
	if indent != "" {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(indent, depth))
	}
	b.WriteString(es.color(tag.ListType, SepColor, "]"))
	es.pop()
}

func (es *EncState) prettyCompound(b *strings.Builder, c *tag.Compound, indent string, depth int) {
	if c.Len() == 0 {
		b.WriteString(es.color(tag.CompoundType, SepColor, "{}"))
		return
	}
	b.WriteString(es.color(tag.CompoundType, SepColor, "{"))
	es.push(CompoundStep)
	if es.rules.noIndent(es.path) {
		indent = ""
	}
	if indent != "" {
		b.WriteByte('\n')
	}
	keys := es.rules.keys(es.path, c.Keys())
	for i, k := range keys {
		t, _ := c.Get(k)
		es.push(k)
		b.WriteString(strings.Repeat(indent, depth+1))
		b.WriteString(es.color(tag.CompoundType, FieldColor, token.QuoteKey(k)))
		b.WriteString(es.color(tag.CompoundType, SepColor, ":"))
		b.WriteByte(' ')
		es.pretty(b, t, indent, depth+1)
		es.pop()
		if i != len(keys)-1 {
			es.separator(b, tag.CompoundType, indent)
		}
	}
	if indent != "" {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(indent, depth))
	}
	b.WriteString(es.color(tag.CompoundType, SepColor, "}"))
	es.pop()
}

func compact(b *strings.Builder, t tag.Tag) {
	switch x := t.(type) {
	case *tag.ByteArray:
		b.WriteString("[B;")
		for i, v := range x.Data {
			if i != 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(int8(v))))
			b.WriteByte('B')
		}
		b.WriteByte(']')
	case *tag.IntArray:
		b.WriteString("[I;")
		for i, v := range x.Data {
			if i != 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(v)))
		}
		b.WriteByte(']')
	case *tag.LongArray:
		b.WriteString("[L;")
		for i, v := range x.Data {
			if i != 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(v, 10))
			b.WriteByte('L')
		}
		b.WriteByte(']')
	case *tag.List:
		b.WriteByte('[')
		for i, e := range x.All() {
			if i != 0 {
				b.WriteByte(',')
			}
			compact(b, e)
		}
		b.WriteByte(']')
	case *tag.Compound:
		b.WriteByte('{')
		for i, k := range x.SortedKeys() {
			if i != 0 {
				b.WriteByte(',')
			}
			v, _ := x.Get(k)
			b.WriteString(token.QuoteKey(k))
			b.WriteByte(':')
			compact(b, v)
		}
		b.WriteByte('}')
	default:
		v, suffix := scalar(t)
		b.WriteString(v)
		b.WriteString(suffix)
	}
}

// String returns the compact form of t, the form used for block state
// property values.
func String(t tag.Tag) string {
	if s, ok := t.(tag.String); ok {
		return string(s)
	}
	return Compact(t)
}
