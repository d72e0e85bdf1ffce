// Package stream provides push style visitors for partial decoding of
// binary tag trees.
//
// The wire package drives a [Visitor] while it reads: scalar and array
// payloads are handed to the visitor directly, and the [Result] of each
// callback decides whether a value is entered, skipped, whether the rest
// of the enclosing container is drained, or whether the whole traversal
// stops. Subtrees that are not of interest are skipped on the wire
// without being built.
//
// # Example: Extracting Fields
//
//	v := stream.NewCollectFields(
//	    stream.Select(tag.IntType, "DataVersion"),
//	    stream.Select(tag.StringType, "id", "Level"),
//	)
//	if err := wire.Parse(r, v); err != nil {
//	    return err
//	}
//	root := v.Result().(*tag.Compound)
//
// # Provided Visitors
//
//   - [Collector] builds the full tree
//   - [CollectFields] builds only selected fields and halts once found
//   - [SkipFields] builds everything except selected fields
//   - [SkipAll] consumes a tree without visiting it
//
// After a Halt the underlying input is not positioned at the end of the
// tree; callers must not keep reading from it.
package stream
