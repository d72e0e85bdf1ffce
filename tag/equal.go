package tag

import "slices"

// Equal reports whether a and b are deeply equal. Compounds compare
// without regard to key order, lists and arrays element by element.
// Floating point values compare with ==, so NaN is never equal to
// itself.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.ID() != b.ID() {
		return false
	}
	switch av := a.(type) {
	case *ByteArray:
		return slices.Equal(av.Data, b.(*ByteArray).Data)
	case *IntArray:
		return slices.Equal(av.Data, b.(*IntArray).Data)
	case *LongArray:
		return slices.Equal(av.Data, b.(*LongArray).Data)
	case *List:
		bv := b.(*List)
		if av.Len() != bv.Len() {
			return false
		}
		for i, t := range av.items {
			if !Equal(t, bv.items[i]) {
				return false
			}
		}
		return true
	case *Compound:
		bv := b.(*Compound)
		if av.Len() != bv.Len() {
			return false
		}
		for k, t := range av.m {
			u, ok := bv.m[k]
			if !ok || !Equal(t, u) {
				return false
			}
		}
		return true
	}
	return a == b
}
