package structure

import (
	"cmp"
	"math"

	"github.com/nbtkit/go-nbt/tag"
)

// CompareBlockPos orders int position lists by Y, then X, then Z.
func CompareBlockPos(a, b *tag.List) int {
	return cmp.Or(
		cmp.Compare(a.GetInt(1), b.GetInt(1)),
		cmp.Compare(a.GetInt(0), b.GetInt(0)),
		cmp.Compare(a.GetInt(2), b.GetInt(2)),
	)
}

// CompareEntityPos orders double position lists by Y, then X, then Z.
// Negative zero sorts before zero and NaN after every other value.
func CompareEntityPos(a, b *tag.List) int {
	return cmp.Or(
		compareDouble(a.GetDouble(1), b.GetDouble(1)),
		compareDouble(a.GetDouble(0), b.GetDouble(0)),
		compareDouble(a.GetDouble(2), b.GetDouble(2)),
	)
}

func compareDouble(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return cmp.Compare(int64(doubleBits(a)), int64(doubleBits(b)))
}

func doubleBits(f float64) uint64 {
	if math.IsNaN(f) {
		return 0x7ff8000000000000
	}
	return math.Float64bits(f)
}
