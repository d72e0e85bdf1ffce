package tag

// Tag is one node of a tag tree. The set of implementations is closed:
// End, Byte, Short, Int, Long, Float, Double, String, *ByteArray,
// *IntArray, *LongArray, *List and *Compound.
type Tag interface {
	// ID returns the wire discriminant.
	ID() Type
	// Copy returns a deep copy of mutable tags and the receiver for
	// immutable ones.
	Copy() Tag

	isTag()
}

// End marks the end of a compound payload on the wire. It is never
// stored in a container.
type End struct{}

type (
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	String string
)

// Bool returns the Byte representation of a boolean.
func Bool(v bool) Byte {
	if v {
		return 1
	}
	return 0
}

func (End) ID() Type    { return EndType }
func (Byte) ID() Type   { return ByteType }
func (Short) ID() Type  { return ShortType }
func (Int) ID() Type    { return IntType }
func (Long) ID() Type   { return LongType }
func (Float) ID() Type  { return FloatType }
func (Double) ID() Type { return DoubleType }
func (String) ID() Type { return StringType }

func (v End) Copy() Tag    { return v }
func (v Byte) Copy() Tag   { return v }
func (v Short) Copy() Tag  { return v }
func (v Int) Copy() Tag    { return v }
func (v Long) Copy() Tag   { return v }
func (v Float) Copy() Tag  { return v }
func (v Double) Copy() Tag { return v }
func (v String) Copy() Tag { return v }

func (End) isTag()    {}
func (Byte) isTag()   {}
func (Short) isTag()  {}
func (Int) isTag()    {}
func (Long) isTag()   {}
func (Float) isTag()  {}
func (Double) isTag() {}
func (String) isTag() {}

// Zero returns a fresh empty tag of type t, or nil if t is not valid.
func Zero(t Type) Tag {
	switch t {
	case EndType:
		return End{}
	case ByteType:
		return Byte(0)
	case ShortType:
		return Short(0)
	case IntType:
		return Int(0)
	case LongType:
		return Long(0)
	case FloatType:
		return Float(0)
	case DoubleType:
		return Double(0)
	case ByteArrayType:
		return NewByteArray(nil)
	case StringType:
		return String("")
	case ListType:
		return NewList()
	case CompoundType:
		return NewCompound()
	case IntArrayType:
		return NewIntArray(nil)
	case LongArrayType:
		return NewLongArray(nil)
	}
	return nil
}
