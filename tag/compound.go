package tag

import (
	"cmp"
	"encoding/binary"
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Compound is an insertion ordered map of unique string keys to tags.
//
// The typed getters never fail: an absent key or a value of the wrong
// type yields the zero value of the requested type, or a new empty
// container that is not attached to the compound.
type Compound struct {
	keys []string
	m    map[string]Tag
}

func NewCompound() *Compound {
	return &Compound{m: map[string]Tag{}}
}

func (*Compound) ID() Type { return CompoundType }
func (*Compound) isTag()   {}

func (c *Compound) Copy() Tag {
	res := &Compound{keys: slices.Clone(c.keys), m: make(map[string]Tag, len(c.m))}
	for k, v := range c.m {
		res.m[k] = v.Copy()
	}
	return res
}

func (c *Compound) Len() int { return len(c.keys) }

// Keys returns the keys in insertion order.
func (c *Compound) Keys() []string { return slices.Clone(c.keys) }

// SortedKeys returns the keys ordered by CompareKeys.
func (c *Compound) SortedKeys() []string { return slices.SortedFunc(slices.Values(c.keys), CompareKeys) }

// CompareKeys orders strings by their UTF-16 code units, as Java
// compares strings. It differs from byte order only when a
// supplementary character meets one in U+E000 to U+FFFF.
func CompareKeys(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			if c := cmp.Compare(firstUnit(ra), firstUnit(rb)); c != 0 {
				return c
			}
			return cmp.Compare(ra, rb)
		}
		a, b = a[na:], b[nb:]
	}
	return cmp.Compare(len(a), len(b))
}

func firstUnit(r rune) rune {
	if r < 0x10000 {
		return r
	}
	return 0xd800 + (r-0x10000)>>10
}

// All iterates over entries in insertion order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for _, k := range c.keys {
			if !yield(k, c.m[k]) {
				return
			}
		}
	}
}

// Put stores t under key, replacing any previous value in place. A nil
// t removes the key.
func (c *Compound) Put(key string, t Tag) Tag {
	if t == nil {
		prev, _ := c.Remove(key)
		return prev
	}
	if c.m == nil {
		c.m = map[string]Tag{}
	}
	prev, ok := c.m[key]
	if !ok {
		c.keys = append(c.keys, key)
	}
	c.m[key] = t
	return prev
}

// Get returns the tag under key and whether it was present.
func (c *Compound) Get(key string) (Tag, bool) {
	t, ok := c.m[key]
	return t, ok
}

// Remove deletes key and returns the previous value if present.
func (c *Compound) Remove(key string) (Tag, bool) {
	t, ok := c.m[key]
	if !ok {
		return nil, false
	}
	delete(c.m, key)
	if i := slices.Index(c.keys, key); i >= 0 {
		c.keys = slices.Delete(c.keys, i, i+1)
	}
	return t, true
}

func (c *Compound) Contains(key string) bool {
	_, ok := c.m[key]
	return ok
}

// TagType returns the type of the value under key, EndType if absent.
func (c *Compound) TagType(key string) Type {
	if t, ok := c.m[key]; ok {
		return t.ID()
	}
	return EndType
}

// ContainsType reports whether key holds a value of type want.
// AnyNumeric matches every numeric type.
func (c *Compound) ContainsType(key string, want Type) bool {
	t, ok := c.m[key]
	return ok && t.ID().Matches(want)
}

// Merge copies every entry of other into c. Compounds present on both
// sides are merged recursively; everything else is overwritten.
func (c *Compound) Merge(other *Compound) *Compound {
	for k, v := range other.All() {
		if oc, ok := v.(*Compound); ok {
			if mine, ok := c.m[k].(*Compound); ok {
				mine.Merge(oc)
				continue
			}
		}
		c.Put(k, v.Copy())
	}
	return c
}

func (c *Compound) PutByte(key string, v int8)        { c.Put(key, Byte(v)) }
func (c *Compound) PutShort(key string, v int16)      { c.Put(key, Short(v)) }
func (c *Compound) PutInt(key string, v int32)        { c.Put(key, Int(v)) }
func (c *Compound) PutLong(key string, v int64)       { c.Put(key, Long(v)) }
func (c *Compound) PutFloat(key string, v float32)    { c.Put(key, Float(v)) }
func (c *Compound) PutDouble(key string, v float64)   { c.Put(key, Double(v)) }
func (c *Compound) PutString(key string, v string)    { c.Put(key, String(v)) }
func (c *Compound) PutBool(key string, v bool)        { c.Put(key, Bool(v)) }
func (c *Compound) PutByteArray(key string, v []byte) { c.Put(key, NewByteArray(v)) }
func (c *Compound) PutIntArray(key string, v []int32) { c.Put(key, NewIntArray(v)) }
func (c *Compound) PutLongArray(key string, v []int64) {
	c.Put(key, NewLongArray(v))
}

// PutUUID stores u as an int array of four big endian words.
func (c *Compound) PutUUID(key string, u uuid.UUID) {
	d := make([]int32, 4)
	for i := range d {
		d[i] = int32(binary.BigEndian.Uint32(u[i*4:]))
	}
	c.Put(key, NewIntArray(d))
}

// HasUUID reports whether key holds a four element int array.
func (c *Compound) HasUUID(key string) bool {
	a, ok := c.m[key].(*IntArray)
	return ok && len(a.Data) == 4
}

// GetUUID returns the UUID stored under key, uuid.Nil if there is none.
func (c *Compound) GetUUID(key string) uuid.UUID {
	var u uuid.UUID
	a, ok := c.m[key].(*IntArray)
	if !ok || len(a.Data) != 4 {
		return u
	}
	for i, w := range a.Data {
		binary.BigEndian.PutUint32(u[i*4:], uint32(w))
	}
	return u
}

func (c *Compound) numeric(key string) Numeric {
	n, _ := c.m[key].(Numeric)
	return n
}

func (c *Compound) GetByte(key string) int8 {
	if n := c.numeric(key); n != nil {
		return n.AsByte()
	}
	return 0
}

func (c *Compound) GetShort(key string) int16 {
	if n := c.numeric(key); n != nil {
		return n.AsShort()
	}
	return 0
}

func (c *Compound) GetInt(key string) int32 {
	if n := c.numeric(key); n != nil {
		return n.AsInt()
	}
	return 0
}

func (c *Compound) GetLong(key string) int64 {
	if n := c.numeric(key); n != nil {
		return n.AsLong()
	}
	return 0
}

func (c *Compound) GetFloat(key string) float32 {
	if n := c.numeric(key); n != nil {
		return n.AsFloat()
	}
	return 0
}

func (c *Compound) GetDouble(key string) float64 {
	if n := c.numeric(key); n != nil {
		return n.AsDouble()
	}
	return 0
}

func (c *Compound) GetBool(key string) bool {
	return c.GetByte(key) != 0
}

func (c *Compound) GetString(key string) string {
	if s, ok := c.m[key].(String); ok {
		return string(s)
	}
	return ""
}

func (c *Compound) GetByteArray(key string) []byte {
	if a, ok := c.m[key].(*ByteArray); ok {
		return a.Data
	}
	return []byte{}
}

func (c *Compound) GetIntArray(key string) []int32 {
	if a, ok := c.m[key].(*IntArray); ok {
		return a.Data
	}
	return []int32{}
}

func (c *Compound) GetLongArray(key string) []int64 {
	if a, ok := c.m[key].(*LongArray); ok {
		return a.Data
	}
	return []int64{}
}

func (c *Compound) GetCompound(key string) *Compound {
	if v, ok := c.m[key].(*Compound); ok {
		return v
	}
	return NewCompound()
}

// GetList returns the list under key if it is empty or its elements are
// of type elem, otherwise a new empty list.
func (c *Compound) GetList(key string, elem Type) *List {
	if v, ok := c.m[key].(*List); ok {
		if v.Len() == 0 || v.ElemType() == elem {
			return v
		}
	}
	return NewList()
}
