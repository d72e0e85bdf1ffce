package stream

import (
	"strings"

	"github.com/nbtkit/go-nbt/tag"
)

// FieldSelector names one compound field: the keys of the enclosing
// compounds from the root, the field's type and its key.
type FieldSelector struct {
	Path []string
	Type tag.Type
	Name string
}

// Select returns a selector for field name of type t nested under path.
func Select(t tag.Type, name string, path ...string) FieldSelector {
	return FieldSelector{Path: path, Type: t, Name: name}
}

func (s FieldSelector) String() string {
	return strings.Join(append(append([]string{}, s.Path...), s.Name), ".") + ":" + s.Type.PrettyName()
}

type fieldTree struct {
	depth    int
	selected map[string]tag.Type
	recurse  map[string]*fieldTree
}

func newFieldTree(depth int) *fieldTree {
	return &fieldTree{
		depth:    depth,
		selected: map[string]tag.Type{},
		recurse:  map[string]*fieldTree{},
	}
}

func buildFieldTree(sels []FieldSelector) *fieldTree {
	root := newFieldTree(1)
	for _, s := range sels {
		root.add(s)
	}
	return root
}

func (f *fieldTree) add(s FieldSelector) {
	if f.depth > len(s.Path) {
		f.selected[s.Name] = s.Type
		return
	}
	key := s.Path[f.depth-1]
	sub := f.recurse[key]
	if sub == nil {
		sub = newFieldTree(f.depth + 1)
		f.recurse[key] = sub
	}
	sub.add(s)
}

func (f *fieldTree) isSelected(t tag.Type, name string) bool {
	want, ok := f.selected[name]
	return ok && want == t
}

// CollectFields collects only the selected fields of a compound root,
// skipping every other subtree. It halts as soon as all selected fields
// have been found.
type CollectFields struct {
	Collector

	missing int
	wanted  map[tag.Type]bool
	stack   []*fieldTree
}

func NewCollectFields(sels ...FieldSelector) *CollectFields {
	c := &CollectFields{
		missing: len(sels),
		wanted:  map[tag.Type]bool{tag.CompoundType: true},
		stack:   []*fieldTree{buildFieldTree(sels)},
	}
	for _, s := range sels {
		c.wanted[s.Type] = true
	}
	return c
}

// Missing returns the number of selected fields not found so far.
func (c *CollectFields) Missing() int {
	return c.missing
}

func (c *CollectFields) top() *fieldTree {
	return c.stack[len(c.stack)-1]
}

func (c *CollectFields) VisitRootEntry(t tag.Type) Result {
	if t != tag.CompoundType {
		return Halt
	}
	return c.Collector.VisitRootEntry(t)
}

func (c *CollectFields) VisitEntry(t tag.Type) Result {
	ft := c.top()
	switch {
	case c.Depth() > ft.depth:
		return c.Collector.VisitEntry(t)
	case c.missing <= 0:
		return Halt
	case !c.wanted[t]:
		return Skip
	}
	return c.Collector.VisitEntry(t)
}

func (c *CollectFields) VisitEntryKey(t tag.Type, key string) Result {
	ft := c.top()
	if c.Depth() > ft.depth {
		return c.Collector.VisitEntryKey(t, key)
	}
	if ft.isSelected(t, key) {
		delete(ft.selected, key)
		c.missing--
		return c.Collector.VisitEntryKey(t, key)
	}
	if t == tag.CompoundType {
		if sub := ft.recurse[key]; sub != nil {
			c.stack = append(c.stack, sub)
			return c.Collector.VisitEntryKey(t, key)
		}
	}
	return Skip
}

func (c *CollectFields) VisitContainerEnd() Result {
	if len(c.stack) > 1 && c.Depth() == c.top().depth {
		c.stack = c.stack[:len(c.stack)-1]
	}
	return c.Collector.VisitContainerEnd()
}

// SkipFields collects a whole tree except the selected fields.
type SkipFields struct {
	Collector

	stack []*fieldTree
}

func NewSkipFields(sels ...FieldSelector) *SkipFields {
	return &SkipFields{stack: []*fieldTree{buildFieldTree(sels)}}
}

func (s *SkipFields) top() *fieldTree {
	return s.stack[len(s.stack)-1]
}

func (s *SkipFields) VisitEntryKey(t tag.Type, key string) Result {
	ft := s.top()
	if s.Depth() == ft.depth {
		if ft.isSelected(t, key) {
			return Skip
		}
		if t == tag.CompoundType {
			if sub := ft.recurse[key]; sub != nil {
				s.stack = append(s.stack, sub)
			}
		}
	}
	return s.Collector.VisitEntryKey(t, key)
}

func (s *SkipFields) VisitContainerEnd() Result {
	if len(s.stack) > 1 && s.Depth() == s.top().depth {
		s.stack = s.stack[:len(s.stack)-1]
	}
	return s.Collector.VisitContainerEnd()
}
