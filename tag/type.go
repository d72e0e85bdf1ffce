package tag

import (
	"fmt"
)

// Type is the wire discriminant of a tag variant.
type Type byte

const (
	EndType Type = iota
	ByteType
	ShortType
	IntType
	LongType
	FloatType
	DoubleType
	ByteArrayType
	StringType
	ListType
	CompoundType
	IntArrayType
	LongArrayType
)

// AnyNumeric is accepted by [Compound.ContainsType] and matches every
// numeric scalar type (Byte through Double).
const AnyNumeric Type = 99

var typeNames = [...]struct{ wire, pretty string }{
	EndType:       {"TAG_End", "END"},
	ByteType:      {"TAG_Byte", "BYTE"},
	ShortType:     {"TAG_Short", "SHORT"},
	IntType:       {"TAG_Int", "INT"},
	LongType:      {"TAG_Long", "LONG"},
	FloatType:     {"TAG_Float", "FLOAT"},
	DoubleType:    {"TAG_Double", "DOUBLE"},
	ByteArrayType: {"TAG_Byte_Array", "BYTE[]"},
	StringType:    {"TAG_String", "STRING"},
	ListType:      {"TAG_List", "LIST"},
	CompoundType:  {"TAG_Compound", "COMPOUND"},
	IntArrayType:  {"TAG_Int_Array", "INT[]"},
	LongArrayType: {"TAG_Long_Array", "LONG[]"},
}

// Types returns every valid type in discriminant order.
func Types() []Type {
	res := make([]Type, len(typeNames))
	for i := range typeNames {
		res[i] = Type(i)
	}
	return res
}

// Valid reports whether t is one of the 13 defined discriminants.
func (t Type) Valid() bool {
	return int(t) < len(typeNames)
}

// Name returns the wire name, e.g. "TAG_Compound".
func (t Type) Name() string {
	if !t.Valid() {
		return fmt.Sprintf("UNKNOWN_%d", t)
	}
	return typeNames[t].wire
}

// PrettyName returns the short upper case name, e.g. "COMPOUND".
func (t Type) PrettyName() string {
	if !t.Valid() {
		return fmt.Sprintf("INVALID[%d]", t)
	}
	return typeNames[t].pretty
}

func (t Type) String() string {
	return t.Name()
}

// IsValue reports whether tags of this type are leaves: scalars,
// strings and arrays. Lists and compounds are containers.
func (t Type) IsValue() bool {
	switch t {
	case ListType, CompoundType:
		return false
	}
	return t.Valid()
}

// IsNumeric reports whether t is one of the six numeric scalars.
func (t Type) IsNumeric() bool {
	return t >= ByteType && t <= DoubleType
}

// Matches reports whether a tag of type t satisfies a request for
// type want. AnyNumeric matches every numeric type.
func (t Type) Matches(want Type) bool {
	if want == AnyNumeric {
		return t.IsNumeric()
	}
	return t == want
}
