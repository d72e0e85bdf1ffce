package tag

import (
	"iter"
	"slices"
)

// List is an ordered sequence of tags sharing one element type. An
// empty list is untyped (EndType); the first insertion fixes the type
// and removing the last element resets it.
type List struct {
	elem  Type
	items []Tag

	// Strict makes rejected insertions panic instead of returning a
	// *TypeError.
	Strict bool
}

func NewList() *List {
	return &List{}
}

// ListOf builds a list from ts, failing on the first element whose type
// differs from the first one.
func ListOf(ts ...Tag) (*List, error) {
	l := &List{items: make([]Tag, 0, len(ts))}
	for _, t := range ts {
		if err := l.Add(t); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (*List) ID() Type { return ListType }
func (*List) isTag()   {}

func (l *List) Copy() Tag {
	res := &List{elem: l.elem, Strict: l.Strict, items: make([]Tag, len(l.items))}
	for i, t := range l.items {
		res.items[i] = t.Copy()
	}
	return res
}

func (l *List) Len() int { return len(l.items) }

// ElemType returns the element type, EndType iff the list is empty.
func (l *List) ElemType() Type { return l.elem }

// Get returns element i. It panics if i is out of range.
func (l *List) Get(i int) Tag { return l.items[i] }

// All iterates over index, element pairs.
func (l *List) All() iter.Seq2[int, Tag] {
	return func(yield func(int, Tag) bool) {
		for i, t := range l.items {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Tags returns a copy of the element slice; the elements are shared.
func (l *List) Tags() []Tag {
	return slices.Clone(l.items)
}

// Add appends t.
func (l *List) Add(t Tag) error {
	return l.Insert(len(l.items), t)
}

// Insert places t at index i, shifting later elements.
func (l *List) Insert(i int, t Tag) error {
	if err := l.accept(t); err != nil {
		return err
	}
	l.items = slices.Insert(l.items, i, t)
	return nil
}

// Set replaces element i with t and returns the previous element. The
// replacement must match the established element type even when the
// list holds a single element.
func (l *List) Set(i int, t Tag) (Tag, error) {
	prev := l.items[i]
	if err := l.accept(t); err != nil {
		return nil, err
	}
	l.items[i] = t
	return prev, nil
}

// Remove deletes element i and returns it.
func (l *List) Remove(i int) Tag {
	t := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	if len(l.items) == 0 {
		l.elem = EndType
	}
	return t
}

// Clear empties the list and resets its element type.
func (l *List) Clear() {
	clear(l.items)
	l.items = l.items[:0]
	l.elem = EndType
}

func (l *List) accept(t Tag) error {
	var got Type
	if t != nil {
		got = t.ID()
	}
	switch {
	case got == EndType:
	case l.elem == EndType:
		l.elem = got
		return nil
	case l.elem == got:
		return nil
	}
	err := &TypeError{Container: ListType, Want: l.elem, Got: got}
	if l.Strict {
		panic(err)
	}
	return err
}

// GetCompound returns element i if it is a compound, otherwise a new
// empty compound.
func (l *List) GetCompound(i int) *Compound {
	if c, ok := l.at(i).(*Compound); ok {
		return c
	}
	return NewCompound()
}

// GetList returns element i if it is a list, otherwise a new empty list.
func (l *List) GetList(i int) *List {
	if v, ok := l.at(i).(*List); ok {
		return v
	}
	return NewList()
}

func (l *List) GetShort(i int) int16 {
	if v, ok := l.at(i).(Short); ok {
		return int16(v)
	}
	return 0
}

func (l *List) GetInt(i int) int32 {
	if v, ok := l.at(i).(Int); ok {
		return int32(v)
	}
	return 0
}

func (l *List) GetFloat(i int) float32 {
	if v, ok := l.at(i).(Float); ok {
		return float32(v)
	}
	return 0
}

func (l *List) GetDouble(i int) float64 {
	if v, ok := l.at(i).(Double); ok {
		return float64(v)
	}
	return 0
}

// GetString returns element i if it is a string, otherwise "".
func (l *List) GetString(i int) string {
	if v, ok := l.at(i).(String); ok {
		return string(v)
	}
	return ""
}

func (l *List) GetIntArray(i int) []int32 {
	if v, ok := l.at(i).(*IntArray); ok {
		return v.Data
	}
	return []int32{}
}

func (l *List) GetLongArray(i int) []int64 {
	if v, ok := l.at(i).(*LongArray); ok {
		return v.Data
	}
	return []int64{}
}

func (l *List) at(i int) Tag {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}
