// Package token provides the lexical layer of SNBT, the text form of
// tag trees.
//
// [Quote] and [QuoteKey] escape strings and keys for printing, [Cursor]
// reads words and quoted strings while tracking positions for
// [SyntaxError], and [FormatFloat32] and [FormatFloat64] render floats
// in the canonical notation.
package token
