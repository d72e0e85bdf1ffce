package libdiff

import (
	"fmt"
	"strconv"

	"github.com/nbtkit/go-nbt/encode"
	"github.com/nbtkit/go-nbt/tag"
	"github.com/nbtkit/go-nbt/token"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "replace"
	}
}

// Change is one difference between two trees. From is nil for an
// insertion and To is nil for a deletion. Path joins compound keys
// with "." and list indices as [i]; indices count in the old tree
// except for insertions, which count in the new one.
type Change struct {
	Path string
	From tag.Tag
	To   tag.Tag
}

func (c Change) Op() Op {
	switch {
	case c.From == nil:
		return Insert
	case c.To == nil:
		return Delete
	}
	return Replace
}

func (c Change) String() string {
	p := c.Path
	if p == "" {
		p = "."
	}
	switch c.Op() {
	case Insert:
		return fmt.Sprintf("+ %s: %s", p, encode.Compact(c.To))
	case Delete:
		return fmt.Sprintf("- %s: %s", p, encode.Compact(c.From))
	}
	from, fok := c.From.(tag.String)
	to, tok := c.To.(tag.String)
	if fok && tok {
		return fmt.Sprintf("~ %s: %s", p, DiffString(string(from), string(to)))
	}
	return fmt.Sprintf("~ %s: %s -> %s", p, encode.Compact(c.From), encode.Compact(c.To))
}

type DiffFunc func(path string, from, to tag.Tag)

type differ struct {
	changes []Change
}

// Diff lists the changes turning from into to, depth first. It is
// empty when the trees are equal.
func Diff(from, to tag.Tag) []Change {
	d := &differ{}
	d.diff("", from, to)
	return d.changes
}

func (d *differ) add(path string, from, to tag.Tag) {
	d.changes = append(d.changes, Change{Path: path, From: from, To: to})
}

func (d *differ) diff(path string, from, to tag.Tag) {
	if from.ID() != to.ID() {
		d.add(path, from, to)
		return
	}
	switch f := from.(type) {
	case *tag.Compound:
		DiffCompound(path, f, to.(*tag.Compound), d.diff, d.add)
	case seq:
		DiffArrayByIndex(path, f, to.(seq), d.diff, d.add)
	default:
		if !tag.Equal(from, to) {
			d.add(path, from, to)
		}
	}
}

func keyPath(path, key string) string {
	if path == "" {
		return token.QuoteKey(key)
	}
	return path + "." + token.QuoteKey(key)
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
