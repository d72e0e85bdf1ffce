package parse

import (
	"math"
	"testing"

	"github.com/nbtkit/go-nbt/encode"
	"github.com/nbtkit/go-nbt/tag"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		`1b`,
		`1.5f`,
		`-2.0E-7d`,
		`"hello"`,
		`'it''s'`,
		`hello`,
		`true`,
		`[]`,
		`[1, 2, 3]`,
		`[[], [a]]`,
		`[B; 1b, 2b]`,
		`[I;]`,
		`[L; 1L]`,
		`{}`,
		`{a: 1, "b c": [{d: 2s}]}`,
		`{a:1`,
		`[1, 2b]`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, d []byte) {
		v, err := Parse(d)
		if err != nil {
			return
		}
		if hasNaN(v) {
			return
		}
		for _, s := range []string{encode.Compact(v), encode.Pretty(v)} {
			again, err := Parse([]byte(s))
			if err != nil {
				t.Fatalf("reparsing %q from %q: %v", s, d, err)
			}
			if !tag.Equal(v, again) {
				t.Fatalf("%q printed as %q reparsed differently", d, s)
			}
		}
	})
}

func hasNaN(t tag.Tag) bool {
	switch x := t.(type) {
	case tag.Float:
		return math.IsNaN(float64(x)) || math.IsInf(float64(x), 0)
	case tag.Double:
		return math.IsNaN(float64(x)) || math.IsInf(float64(x), 0)
	case *tag.List:
		for _, e := range x.All() {
			if hasNaN(e) {
				return true
			}
		}
	case *tag.Compound:
		for _, e := range x.All() {
			if hasNaN(e) {
				return true
			}
		}
	}
	return false
}
