package libdiff

import (
	"unicode/utf8"

	"github.com/nbtkit/go-nbt/encode"
	"github.com/nbtkit/go-nbt/tag"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// seq is a list or an array.
type seq interface {
	tag.Tag
	Len() int
	Get(int) tag.Tag
}

// we map every element to a rune standing for its summary
//
//  1. containers summarize to their type, so they align and we recurse
//  2. scalars summarize to their type and printed value
//  3. diff the sequence of summaries
//  4. a deletion followed by an insertion pairs up element by element
//     into replacements, the rest are plain deletions and insertions
func DiffArrayByIndex(path string, from, to seq, df DiffFunc, add DiffFunc) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	var dels []int
	flush := func() {
		for _, i := range dels {
			add(indexPath(path, i), from.Get(i), nil)
		}
		dels = dels[:0]
	}
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				dels = append(dels, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(dels) > 0 {
					di := dels[0]
					dels = dels[1:]
					df(indexPath(path, di), from.Get(di), to.Get(ti))
				} else {
					add(indexPath(path, ti), nil, to.Get(ti))
				}
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range n {
				df(indexPath(path, fi), from.Get(fi), to.Get(ti))
				fi++
				ti++
			}
		}
	}
	flush()
}

func mapValues(m map[string]rune, s seq) []rune {
	rs := make([]rune, s.Len())
	for i := range rs {
		rs[i] = runeFor(m, summaryStr(s.Get(i)))
	}
	return rs
}

// runeFor numbers distinct strings, skipping the surrogate range so
// every rune survives conversion to and from a string.
func runeFor(m map[string]rune, s string) rune {
	r, ok := m[s]
	if !ok {
		r = rune(len(m))
		if r >= 0xd800 {
			r += 0x800
		}
		m[s] = r
	}
	return r
}

func summaryStr(t tag.Tag) string {
	switch t.(type) {
	case *tag.Compound, *tag.List, *tag.ByteArray, *tag.IntArray, *tag.LongArray:
		return t.ID().Name()
	}
	return t.ID().Name() + "-" + encode.Compact(t)
}

// DiffCompound aligns the sorted keys of two compounds, recursing on
// keys present in both.
func DiffCompound(path string, from, to *tag.Compound, df DiffFunc, add DiffFunc) {
	m := map[string]rune{}
	fromKeys, toKeys := from.SortedKeys(), to.SortedKeys()
	fromRunes := make([]rune, len(fromKeys))
	for i, k := range fromKeys {
		fromRunes[i] = runeFor(m, k)
	}
	toRunes := make([]rune, len(toKeys))
	for i, k := range toKeys {
		toRunes[i] = runeFor(m, k)
	}
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				v, _ := from.Get(fromKeys[fi])
				add(keyPath(path, fromKeys[fi]), v, nil)
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				f, _ := from.Get(fromKeys[fi])
				t, _ := to.Get(toKeys[ti])
				df(keyPath(path, fromKeys[fi]), f, t)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				v, _ := to.Get(toKeys[ti])
				add(keyPath(path, toKeys[ti]), nil, v)
				ti++
			}
		}
	}
}
