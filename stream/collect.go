package stream

import (
	"github.com/nbtkit/go-nbt/tag"
)

// Collector is a Visitor that materializes the visited tree. Parsing
// a stream with a fresh Collector yields a tree equal to the one a full
// binary load produces.
type Collector struct {
	Base

	lastKey string
	root    tag.Tag
	sinks   []func(tag.Tag)
	err     error
}

func NewCollector() *Collector {
	return &Collector{}
}

// Result returns the collected root, nil if nothing was visited.
func (c *Collector) Result() tag.Tag {
	return c.root
}

// Err reports a structural inconsistency met while collecting, such as
// a list element whose type differs from the list's declared type.
func (c *Collector) Err() error {
	return c.err
}

// Depth is the number of open containers.
func (c *Collector) Depth() int {
	return len(c.sinks)
}

func (c *Collector) append(t tag.Tag) Result {
	if len(c.sinks) == 0 {
		return Halt
	}
	c.sinks[len(c.sinks)-1](t)
	if c.err != nil {
		return Halt
	}
	return Continue
}

func (c *Collector) VisitEnd() Result             { return c.append(tag.End{}) }
func (c *Collector) VisitString(v string) Result  { return c.append(tag.String(v)) }
func (c *Collector) VisitByte(v int8) Result      { return c.append(tag.Byte(v)) }
func (c *Collector) VisitShort(v int16) Result    { return c.append(tag.Short(v)) }
func (c *Collector) VisitInt(v int32) Result      { return c.append(tag.Int(v)) }
func (c *Collector) VisitLong(v int64) Result     { return c.append(tag.Long(v)) }
func (c *Collector) VisitFloat(v float32) Result  { return c.append(tag.Float(v)) }
func (c *Collector) VisitDouble(v float64) Result { return c.append(tag.Double(v)) }
func (c *Collector) VisitByteArray(v []byte) Result {
	return c.append(tag.NewByteArray(v))
}
func (c *Collector) VisitIntArray(v []int32) Result {
	return c.append(tag.NewIntArray(v))
}
func (c *Collector) VisitLongArray(v []int64) Result {
	return c.append(tag.NewLongArray(v))
}

func (c *Collector) VisitElement(elem tag.Type, _ int) Result {
	return c.enter(elem)
}

func (c *Collector) VisitEntryKey(t tag.Type, key string) Result {
	c.lastKey = key
	return c.enter(t)
}

func (c *Collector) enter(t tag.Type) Result {
	switch t {
	case tag.ListType:
		l := tag.NewList()
		if r := c.append(l); r != Continue {
			return r
		}
		c.sinks = append(c.sinks, c.listSink(l))
	case tag.CompoundType:
		m := tag.NewCompound()
		if r := c.append(m); r != Continue {
			return r
		}
		c.sinks = append(c.sinks, c.compoundSink(m))
	}
	return Continue
}

func (c *Collector) listSink(l *tag.List) func(tag.Tag) {
	return func(t tag.Tag) {
		if err := l.Add(t); err != nil && c.err == nil {
			c.err = err
		}
	}
}

func (c *Collector) compoundSink(m *tag.Compound) func(tag.Tag) {
	return func(t tag.Tag) {
		m.Put(c.lastKey, t)
	}
}

func (c *Collector) VisitContainerEnd() Result {
	if len(c.sinks) > 0 {
		c.sinks = c.sinks[:len(c.sinks)-1]
	}
	return Continue
}

func (c *Collector) VisitRootEntry(t tag.Type) Result {
	switch t {
	case tag.ListType:
		l := tag.NewList()
		c.root = l
		c.sinks = append(c.sinks, c.listSink(l))
	case tag.CompoundType:
		m := tag.NewCompound()
		c.root = m
		c.sinks = append(c.sinks, c.compoundSink(m))
	default:
		c.sinks = append(c.sinks, func(v tag.Tag) { c.root = v })
	}
	return Continue
}
