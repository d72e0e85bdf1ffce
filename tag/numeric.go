package tag

import "math"

// Numeric is implemented by the six numeric scalars. Narrowing follows
// the wire format's reference semantics: integral values wrap, floating
// values are floored before conversion to an integral type.
type Numeric interface {
	Tag
	AsByte() int8
	AsShort() int16
	AsInt() int32
	AsLong() int64
	AsFloat() float32
	AsDouble() float64
}

func (v Byte) AsByte() int8       { return int8(v) }
func (v Byte) AsShort() int16     { return int16(v) }
func (v Byte) AsInt() int32       { return int32(v) }
func (v Byte) AsLong() int64      { return int64(v) }
func (v Byte) AsFloat() float32   { return float32(v) }
func (v Byte) AsDouble() float64  { return float64(v) }
func (v Short) AsByte() int8      { return int8(v) }
func (v Short) AsShort() int16    { return int16(v) }
func (v Short) AsInt() int32      { return int32(v) }
func (v Short) AsLong() int64     { return int64(v) }
func (v Short) AsFloat() float32  { return float32(v) }
func (v Short) AsDouble() float64 { return float64(v) }
func (v Int) AsByte() int8        { return int8(v) }
func (v Int) AsShort() int16      { return int16(v) }
func (v Int) AsInt() int32        { return int32(v) }
func (v Int) AsLong() int64       { return int64(v) }
func (v Int) AsFloat() float32    { return float32(v) }
func (v Int) AsDouble() float64   { return float64(v) }
func (v Long) AsByte() int8       { return int8(v) }
func (v Long) AsShort() int16     { return int16(v) }
func (v Long) AsInt() int32       { return int32(v) }
func (v Long) AsLong() int64      { return int64(v) }
func (v Long) AsFloat() float32   { return float32(v) }
func (v Long) AsDouble() float64  { return float64(v) }

func (v Float) AsByte() int8      { return int8(floorInt32(float64(v))) }
func (v Float) AsShort() int16    { return int16(floorInt32(float64(v))) }
func (v Float) AsInt() int32      { return floorInt32(float64(v)) }
func (v Float) AsLong() int64     { return truncInt64(float64(v)) }
func (v Float) AsFloat() float32  { return float32(v) }
func (v Float) AsDouble() float64 { return float64(v) }

func (v Double) AsByte() int8      { return int8(floorInt32(float64(v))) }
func (v Double) AsShort() int16    { return int16(floorInt32(float64(v))) }
func (v Double) AsInt() int32      { return floorInt32(float64(v)) }
func (v Double) AsLong() int64     { return truncInt64(math.Floor(float64(v))) }
func (v Double) AsFloat() float32  { return float32(v) }
func (v Double) AsDouble() float64 { return float64(v) }

// floorInt32 floors f and saturates to the int32 range, NaN maps to 0.
func floorInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(math.Floor(f))
}

// truncInt64 truncates f toward zero and saturates to the int64 range.
func truncInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
