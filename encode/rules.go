package encode

import (
	"maps"
	"slices"
	"strings"

	"github.com/nbtkit/go-nbt/tag"
)

// Path names a position in a tree by the containers leading to it:
// "{}" for a compound, "[]" for a list and the key of each entry, so
// an element of the root's "data" list is {}.data.[].{}.
type Path []string

const (
	CompoundStep = "{}"
	ListStep     = "[]"
)

func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	return strings.Split(s, ".")
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Rules configure the pretty printer per path.
type Rules struct {
	// Indent is the indentation unit. An empty Indent prints every
	// container on one line.
	Indent string
	// KeyOrder lists, per compound path, keys printed first and in
	// the given order. Other keys follow sorted.
	KeyOrder map[string][]string
	// NoIndent lists container paths printed on one line, including
	// everything nested in them.
	NoIndent map[string]bool
}

const defaultIndent = "    "

// DefaultRules sorts every compound and indents everything.
func DefaultRules() *Rules {
	return &Rules{Indent: defaultIndent}
}

// StructureRules lay out structure templates: header fields first,
// and the size, block, palette and entity entries on one line each.
func StructureRules() *Rules {
	return &Rules{
		Indent: defaultIndent,
		KeyOrder: map[string][]string{
			"{}":                {"DataVersion", "author", "size", "data", "entities", "palette", "palettes"},
			"{}.data.[].{}":     {"pos", "state", "nbt"},
			"{}.entities.[].{}": {"blockPos", "pos"},
		},
		NoIndent: map[string]bool{
			"{}.size.[]":        true,
			"{}.data.[].{}":     true,
			"{}.palette.[].{}":  true,
			"{}.entities.[].{}": true,
		},
	}
}

func (r *Rules) noIndent(p Path) bool {
	return r.NoIndent[p.String()]
}

// keys returns the print order of keys for the compound at p.
func (r *Rules) keys(p Path, keys []string) []string {
	order := r.KeyOrder[p.String()]
	if len(order) == 0 {
		return slices.SortedFunc(slices.Values(keys), tag.CompareKeys)
	}
	rest := map[string]bool{}
	for _, k := range keys {
		rest[k] = true
	}
	res := make([]string, 0, len(keys))
	for _, k := range order {
		if rest[k] {
			res = append(res, k)
			delete(rest, k)
		}
	}
	return append(res, slices.SortedFunc(maps.Keys(rest), tag.CompareKeys)...)
}
