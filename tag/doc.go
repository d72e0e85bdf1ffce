// Package tag provides the in-memory model of NBT tag trees.
//
// # Overview
//
// A tag tree is built from a closed set of variants, each carrying a
// stable wire discriminant ([Type]):
//
//   - Scalars: [Byte], [Short], [Int], [Long], [Float], [Double]
//   - Text: [String]
//   - Arrays: [ByteArray], [IntArray], [LongArray]
//   - Containers: [List], [Compound]
//   - [End], which only terminates compound payloads on the wire
//
// Scalars and strings are Go value types and therefore immutable; they
// compare with == and need no interning. Arrays and containers are
// pointers and are mutable.
//
// # Lists
//
// A List is untyped until its first element is inserted. After that
// every insertion must match the element type:
//
//	l := tag.NewList()
//	_ = l.Add(tag.String("a"))      // fixes the type to StringType
//	err := l.Add(tag.Int(1))        // *TypeError, errors.Is(err, tag.ErrTypeMismatch)
//	l.Clear()                       // untyped again
//
// Setting List.Strict turns rejections into panics.
//
// # Compounds
//
// Compound keys are unique and kept in insertion order. The typed
// getters are total: they return zero values or new empty containers
// for absent keys and for values of the wrong type, so partially
// corrupted trees can still be read.
//
//	c := tag.NewCompound()
//	c.PutString("x", "hello")
//	c.GetInt("x")    // 0
//	c.GetString("y") // ""
//
// # Ownership and Thread Safety
//
// A tag placed in a container is owned by it until removed. Use Copy to
// share a subtree. Mutable tags are not safe for concurrent mutation;
// immutable scalars and trees that are no longer mutated may be shared
// freely.
//
// # Related Packages
//
//   - github.com/nbtkit/go-nbt/wire - binary encoding
//   - github.com/nbtkit/go-nbt/encode - SNBT text printers
//   - github.com/nbtkit/go-nbt/parse - SNBT parser
//   - github.com/nbtkit/go-nbt/stream - streaming visitors
package tag
