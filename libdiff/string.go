package libdiff

import (
	"strings"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString renders the edit from one string to another inline,
// deletions as [-text-] and insertions as {+text+}. When more than
// half of the shorter string changes the whole string is replaced.
func DiffString(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffCleanupSemantic(diffCfg.DiffMain(from, to, doMultiLine))
	diffSize := 0
	for _, diff := range diffs {
		if diff.Type != diffpatch.DiffEqual {
			diffSize += utf8.RuneCountInString(diff.Text)
		}
	}
	if diffSize == 0 {
		return from
	}
	if diffSize > min(utf8.RuneCountInString(from), utf8.RuneCountInString(to))/2 {
		return "[-" + from + "-]{+" + to + "+}"
	}
	var b strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-" + diff.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + diff.Text + "+}")
		case diffpatch.DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}
