package tag

import "slices"

// ByteArray is a resizable array of signed bytes. Data is stored
// unsigned; elements are exposed as Byte.
type ByteArray struct {
	Data []byte
}

// IntArray is a resizable array of 32-bit integers.
type IntArray struct {
	Data []int32
}

// LongArray is a resizable array of 64-bit integers.
type LongArray struct {
	Data []int64
}

// NewByteArray returns an array backed by d. The array takes ownership
// of d.
func NewByteArray(d []byte) *ByteArray {
	if d == nil {
		d = []byte{}
	}
	return &ByteArray{Data: d}
}

func NewIntArray(d []int32) *IntArray {
	if d == nil {
		d = []int32{}
	}
	return &IntArray{Data: d}
}

func NewLongArray(d []int64) *LongArray {
	if d == nil {
		d = []int64{}
	}
	return &LongArray{Data: d}
}

func (*ByteArray) ID() Type { return ByteArrayType }
func (*IntArray) ID() Type  { return IntArrayType }
func (*LongArray) ID() Type { return LongArrayType }

func (*ByteArray) isTag() {}
func (*IntArray) isTag()  {}
func (*LongArray) isTag() {}

func (a *ByteArray) Copy() Tag { return &ByteArray{Data: slices.Clone(a.Data)} }
func (a *IntArray) Copy() Tag  { return &IntArray{Data: slices.Clone(a.Data)} }
func (a *LongArray) Copy() Tag { return &LongArray{Data: slices.Clone(a.Data)} }

func (a *ByteArray) Len() int { return len(a.Data) }
func (a *IntArray) Len() int  { return len(a.Data) }
func (a *LongArray) Len() int { return len(a.Data) }

func (a *ByteArray) Clear() { a.Data = a.Data[:0] }
func (a *IntArray) Clear()  { a.Data = a.Data[:0] }
func (a *LongArray) Clear() { a.Data = a.Data[:0] }

// Get returns element i. It panics if i is out of range.
func (a *ByteArray) Get(i int) Tag { return Byte(int8(a.Data[i])) }
func (a *IntArray) Get(i int) Tag  { return Int(a.Data[i]) }
func (a *LongArray) Get(i int) Tag { return Long(a.Data[i]) }

// Set replaces element i with the narrowed value of a numeric tag.
func (a *ByteArray) Set(i int, t Tag) error {
	n, err := arrayElem(ByteArrayType, t)
	if err != nil {
		return err
	}
	a.Data[i] = byte(n.AsByte())
	return nil
}

// Insert shifts elements at and after i right and places the narrowed
// value of t at i. i may equal Len.
func (a *ByteArray) Insert(i int, t Tag) error {
	n, err := arrayElem(ByteArrayType, t)
	if err != nil {
		return err
	}
	a.Data = slices.Insert(a.Data, i, byte(n.AsByte()))
	return nil
}

// Add appends t.
func (a *ByteArray) Add(t Tag) error { return a.Insert(len(a.Data), t) }

// Remove deletes element i and returns it.
func (a *ByteArray) Remove(i int) Tag {
	v := a.Get(i)
	a.Data = slices.Delete(a.Data, i, i+1)
	return v
}

func (a *IntArray) Set(i int, t Tag) error {
	n, err := arrayElem(IntArrayType, t)
	if err != nil {
		return err
	}
	a.Data[i] = n.AsInt()
	return nil
}

func (a *IntArray) Insert(i int, t Tag) error {
	n, err := arrayElem(IntArrayType, t)
	if err != nil {
		return err
	}
	a.Data = slices.Insert(a.Data, i, n.AsInt())
	return nil
}

func (a *IntArray) Add(t Tag) error { return a.Insert(len(a.Data), t) }

func (a *IntArray) Remove(i int) Tag {
	v := a.Get(i)
	a.Data = slices.Delete(a.Data, i, i+1)
	return v
}

func (a *LongArray) Set(i int, t Tag) error {
	n, err := arrayElem(LongArrayType, t)
	if err != nil {
		return err
	}
	a.Data[i] = n.AsLong()
	return nil
}

func (a *LongArray) Insert(i int, t Tag) error {
	n, err := arrayElem(LongArrayType, t)
	if err != nil {
		return err
	}
	a.Data = slices.Insert(a.Data, i, n.AsLong())
	return nil
}

func (a *LongArray) Add(t Tag) error { return a.Insert(len(a.Data), t) }

func (a *LongArray) Remove(i int) Tag {
	v := a.Get(i)
	a.Data = slices.Delete(a.Data, i, i+1)
	return v
}

// ElemType returns the element type of an array type, or EndType for
// any other type.
func (t Type) ElemType() Type {
	switch t {
	case ByteArrayType:
		return ByteType
	case IntArrayType:
		return IntType
	case LongArrayType:
		return LongType
	}
	return EndType
}

func arrayElem(container Type, t Tag) (Numeric, error) {
	n, ok := t.(Numeric)
	if !ok {
		var got Type
		if t != nil {
			got = t.ID()
		}
		return nil, &TypeError{Container: container, Want: container.ElemType(), Got: got}
	}
	return n, nil
}
