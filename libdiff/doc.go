// Package libdiff computes structural differences between tag trees.
//
// # Usage
//
//	for _, c := range libdiff.Diff(oldTree, newTree) {
//		fmt.Println(c)
//	}
//
// Compound keys and list elements are aligned with a rune diff so an
// insertion in the middle of a list reports one change rather than a
// change per shifted element.
package libdiff
