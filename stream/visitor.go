package stream

import (
	"fmt"

	"github.com/nbtkit/go-nbt/tag"
)

// Result is returned by every Visitor callback and steers the decoder.
type Result int

const (
	// Continue keeps visiting normally. Returned from an entry or
	// element callback it enters the value.
	Continue Result = iota
	// Skip consumes the value without visiting it and continues with
	// its siblings. From a value callback it behaves like Continue;
	// from VisitList it skips every element.
	Skip
	// Break stops visiting the remaining children of the current
	// container. Their bytes are drained and visiting resumes at the
	// parent.
	Break
	// Halt aborts the whole traversal. The input is left at an
	// unspecified position.
	Halt
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Skip:
		return "skip"
	case Break:
		return "break"
	case Halt:
		return "halt"
	}
	return fmt.Sprintf("<err: %d is not a result>", int(r))
}

// Visitor receives a tag tree as it is decoded.
//
// Compound payloads produce, per entry, VisitEntry with the entry type,
// then VisitEntryKey with the key, then the value callbacks, and finally
// VisitContainerEnd. List payloads produce VisitList, then per element
// VisitElement followed by the value callbacks, and VisitContainerEnd.
type Visitor interface {
	VisitEnd() Result
	VisitString(v string) Result
	VisitByte(v int8) Result
	VisitShort(v int16) Result
	VisitInt(v int32) Result
	VisitLong(v int64) Result
	VisitFloat(v float32) Result
	VisitDouble(v float64) Result
	VisitByteArray(v []byte) Result
	VisitIntArray(v []int32) Result
	VisitLongArray(v []int64) Result

	VisitList(elem tag.Type, size int) Result
	VisitElement(elem tag.Type, index int) Result
	VisitEntry(t tag.Type) Result
	VisitEntryKey(t tag.Type, key string) Result
	VisitContainerEnd() Result
	VisitRootEntry(t tag.Type) Result
}

// Base implements Visitor by continuing everywhere. Embed it to
// override only the callbacks of interest.
type Base struct{}

func (Base) VisitEnd() Result                      { return Continue }
func (Base) VisitString(string) Result             { return Continue }
func (Base) VisitByte(int8) Result                 { return Continue }
func (Base) VisitShort(int16) Result               { return Continue }
func (Base) VisitInt(int32) Result                 { return Continue }
func (Base) VisitLong(int64) Result                { return Continue }
func (Base) VisitFloat(float32) Result             { return Continue }
func (Base) VisitDouble(float64) Result            { return Continue }
func (Base) VisitByteArray([]byte) Result          { return Continue }
func (Base) VisitIntArray([]int32) Result          { return Continue }
func (Base) VisitLongArray([]int64) Result         { return Continue }
func (Base) VisitList(tag.Type, int) Result        { return Continue }
func (Base) VisitElement(tag.Type, int) Result     { return Continue }
func (Base) VisitEntry(tag.Type) Result            { return Continue }
func (Base) VisitEntryKey(tag.Type, string) Result { return Continue }
func (Base) VisitContainerEnd() Result             { return Continue }
func (Base) VisitRootEntry(tag.Type) Result        { return Continue }

// SkipAll consumes a tree without visiting any entry or element.
type SkipAll struct{ Base }

func (SkipAll) VisitElement(tag.Type, int) Result     { return Skip }
func (SkipAll) VisitEntry(tag.Type) Result            { return Skip }
func (SkipAll) VisitEntryKey(tag.Type, string) Result { return Skip }
