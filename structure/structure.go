package structure

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/nbtkit/go-nbt/encode"
	"github.com/nbtkit/go-nbt/parse"
	"github.com/nbtkit/go-nbt/tag"
)

var ErrMissingPalette = errors.New("block state missing from palette")

// Pack rewrites a structure template in place into its text friendly
// form. Palette entries become block state strings, multi-palette
// variants become compounds keyed by the first palette's strings, and
// the "blocks" list becomes "data" with each block's palette index
// replaced by its state string. Blocks and entities are sorted by
// position.
func Pack(c *tag.Compound, opts ...Option) {
	o := makeOptions(opts)
	palettes := c.GetList("palettes", tag.ListType)
	first := c.GetList("palette", tag.CompoundType)
	if palettes.Len() > 0 {
		first = palettes.GetList(0)
	}
	states := make([]tag.Tag, first.Len())
	for i := range states {
		states[i] = tag.String(PackBlockState(first.GetCompound(i)))
	}
	palette, _ := tag.ListOf(states...)
	c.Put("palette", palette)

	if palettes.Len() > 0 {
		variants := make([]tag.Tag, palettes.Len())
		for i := range variants {
			p := palettes.GetList(i)
			v := tag.NewCompound()
			for j := range p.Len() {
				v.PutString(palette.GetString(j), PackBlockState(p.GetCompound(j)))
			}
			variants[i] = v
		}
		l, _ := tag.ListOf(variants...)
		c.Put("palettes", l)
	}

	if c.ContainsType("entities", tag.ListType) {
		c.Put("entities", sortByPos(c.GetList("entities", tag.CompoundType), tag.DoubleType, CompareEntityPos))
	}

	blocks := sortByPos(c.GetList("blocks", tag.CompoundType), tag.IntType, CompareBlockPos)
	for _, b := range blocks.All() {
		b := b.(*tag.Compound)
		i := int(b.GetInt("state"))
		if i < 0 || i >= palette.Len() {
			o.debugf("block state index out of palette", "index", i, "palette", palette.Len())
		}
		b.PutString("state", palette.GetString(i))
	}
	c.Put("data", blocks)
	c.Remove("blocks")
	o.debugf("packed structure", "palette", palette.Len(), "variants", palettes.Len(), "blocks", blocks.Len())
}

// Unpack reverses Pack in place. A block whose state string is not in
// the palette fails with ErrMissingPalette and leaves c unchanged.
func Unpack(c *tag.Compound, opts ...Option) error {
	o := makeOptions(opts)
	palette := c.GetList("palette", tag.StringType)
	states := make([]string, palette.Len())
	index := make(map[string]int32, len(states))
	for i := range states {
		s := palette.GetString(i)
		states[i] = s
		if _, ok := index[s]; !ok {
			index[s] = int32(i)
		}
	}

	hasData := c.ContainsType("data", tag.ListType)
	data := c.GetList("data", tag.CompoundType)
	refs := make([]int32, data.Len())
	for i := range refs {
		s := data.GetCompound(i).GetString("state")
		k, ok := index[s]
		if !ok {
			return fmt.Errorf("%w: entry %q", ErrMissingPalette, s)
		}
		refs[i] = k
	}

	unpacked := func(get func(string) string) *tag.List {
		ts := make([]tag.Tag, len(states))
		for i, s := range states {
			ts[i] = UnpackBlockState(get(s), opts...)
		}
		l, _ := tag.ListOf(ts...)
		return l
	}
	if c.ContainsType("palettes", tag.ListType) {
		variants := c.GetList("palettes", tag.CompoundType)
		ls := make([]tag.Tag, variants.Len())
		for i := range ls {
			ls[i] = unpacked(variants.GetCompound(i).GetString)
		}
		l, _ := tag.ListOf(ls...)
		c.Put("palettes", l)
		c.Remove("palette")
	} else {
		c.Put("palette", unpacked(func(s string) string { return s }))
	}

	if hasData {
		for i, k := range refs {
			data.GetCompound(i).PutInt("state", k)
		}
		c.Put("blocks", sortByPos(data, tag.IntType, CompareBlockPos))
		c.Remove("data")
	}
	if c.ContainsType("entities", tag.ListType) {
		c.Put("entities", sortByPos(c.GetList("entities", tag.CompoundType), tag.DoubleType, CompareEntityPos))
	}
	o.debugf("unpacked structure", "palette", len(states), "blocks", len(refs))
	return nil
}

// sortByPos returns the compounds of l stably sorted by their "pos"
// list.
func sortByPos(l *tag.List, elem tag.Type, cmp func(a, b *tag.List) int) *tag.List {
	cs := make([]*tag.Compound, l.Len())
	for i := range cs {
		cs[i] = l.GetCompound(i)
	}
	slices.SortStableFunc(cs, func(a, b *tag.Compound) int {
		return cmp(a.GetList("pos", elem), b.GetList("pos", elem))
	})
	res := tag.NewList()
	for _, c := range cs {
		_ = res.Add(c)
	}
	return res
}

// PackBlockState renders a palette entry as its name followed by its
// properties in key order, as in minecraft:stone{facing:up,lit:false}.
// The braces are present exactly when the entry has a Properties
// compound.
func PackBlockState(c *tag.Compound) string {
	var b strings.Builder
	b.WriteString(c.GetString("Name"))
	if !c.ContainsType("Properties", tag.CompoundType) {
		return b.String()
	}
	props := c.GetCompound("Properties")
	b.WriteByte('{')
	for i, k := range props.SortedKeys() {
		if i > 0 {
			b.WriteByte(',')
		}
		v, _ := props.Get(k)
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(encode.String(v))
	}
	b.WriteByte('}')
	return b.String()
}

// UnpackBlockState parses a string made by PackBlockState. Property
// values come back as strings. Malformed properties are logged and
// dropped.
func UnpackBlockState(s string, opts ...Option) *tag.Compound {
	c := tag.NewCompound()
	name, rest, found := strings.Cut(s, "{")
	c.PutString("Name", name)
	if !found {
		return c
	}
	o := makeOptions(opts)
	inner, _, closed := strings.Cut(rest, "}")
	if !closed {
		o.log.Error("unterminated block state properties", "state", s)
	}
	props := tag.NewCompound()
	if inner != "" {
		for _, kv := range strings.Split(inner, ",") {
			k, v, ok := strings.Cut(kv, ":")
			if !ok {
				o.log.Error("malformed block state property", "state", s, "property", kv)
				continue
			}
			props.PutString(k, v)
		}
	}
	c.Put("Properties", props)
	return c
}

// ToSNBT packs a copy of c and prints it with StructureRules.
func ToSNBT(c *tag.Compound, opts ...encode.EncodeOption) string {
	p := c.Copy().(*tag.Compound)
	Pack(p)
	return encode.Pretty(p, append([]encode.EncodeOption{encode.EncodeRules(encode.StructureRules())}, opts...)...)
}

// FromSNBT parses text printed by ToSNBT and unpacks it.
func FromSNBT(d []byte, opts ...Option) (*tag.Compound, error) {
	o := makeOptions(opts)
	c, err := parse.ParseCompound(d, o.parse...)
	if err != nil {
		return nil, err
	}
	if err := Unpack(c, opts...); err != nil {
		return nil, err
	}
	return c, nil
}
