package stream_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nbtkit/go-nbt/stream"
	"github.com/nbtkit/go-nbt/tag"
	"github.com/nbtkit/go-nbt/wire"
)

// recorder logs every callback and answers with the result configured
// for the event, Continue otherwise.
type recorder struct {
	events  []string
	results map[string]stream.Result
}

func (r *recorder) rec(format string, args ...any) stream.Result {
	ev := fmt.Sprintf(format, args...)
	r.events = append(r.events, ev)
	if res, ok := r.results[ev]; ok {
		return res
	}
	return stream.Continue
}

func (r *recorder) VisitEnd() Result                          { return r.rec("end") }
func (r *recorder) VisitString(v string) Result               { return r.rec("string %s", v) }
func (r *recorder) VisitByte(v int8) Result                   { return r.rec("byte %d", v) }
func (r *recorder) VisitShort(v int16) Result                 { return r.rec("short %d", v) }
func (r *recorder) VisitInt(v int32) Result                   { return r.rec("int %d", v) }
func (r *recorder) VisitLong(v int64) Result                  { return r.rec("long %d", v) }
func (r *recorder) VisitFloat(v float32) Result               { return r.rec("float %v", v) }
func (r *recorder) VisitDouble(v float64) Result              { return r.rec("double %v", v) }
func (r *recorder) VisitByteArray(v []byte) Result            { return r.rec("bytes %v", v) }
func (r *recorder) VisitIntArray(v []int32) Result            { return r.rec("ints %v", v) }
func (r *recorder) VisitLongArray(v []int64) Result           { return r.rec("longs %v", v) }
func (r *recorder) VisitList(e tag.Type, n int) Result        { return r.rec("list %s %d", e.PrettyName(), n) }
func (r *recorder) VisitElement(e tag.Type, i int) Result     { return r.rec("elem %d", i) }
func (r *recorder) VisitEntry(t tag.Type) Result              { return r.rec("entry %s", t.PrettyName()) }
func (r *recorder) VisitEntryKey(t tag.Type, k string) Result { return r.rec("key %s", k) }
func (r *recorder) VisitContainerEnd() Result                 { return r.rec("close") }
func (r *recorder) VisitRootEntry(t tag.Type) Result          { return r.rec("root %s", t.PrettyName()) }

type Result = stream.Result

func encodeBinary(t *testing.T, c *tag.Compound) []byte {
	t.Helper()
	d, err := wire.Encode(c)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func twoEntries() *tag.Compound {
	c := tag.NewCompound()
	c.PutByte("a", 1)
	c.PutString("s", "x")
	l, _ := tag.ListOf(tag.Int(1), tag.Int(2), tag.Int(3))
	c.Put("l", l)
	return c
}

func TestControlFlow(t *testing.T) {
	tests := []struct {
		name    string
		results map[string]Result
		want    []string
	}{
		{
			name: "continue",
			want: []string{
				"root COMPOUND",
				"entry BYTE", "key a", "byte 1",
				"entry STRING", "key s", "string x",
				"entry LIST", "key l", "list INT 3",
				"elem 0", "int 1", "elem 1", "int 2", "elem 2", "int 3", "close",
				"close",
			},
		},
		{
			name:    "skip first entry",
			results: map[string]Result{"entry BYTE": stream.Skip},
			want: []string{
				"root COMPOUND",
				"entry BYTE",
				"entry STRING", "key s", "string x",
				"entry LIST", "key l", "list INT 3",
				"elem 0", "int 1", "elem 1", "int 2", "elem 2", "int 3", "close",
				"close",
			},
		},
		{
			name:    "skip key",
			results: map[string]Result{"key s": stream.Skip},
			want: []string{
				"root COMPOUND",
				"entry BYTE", "key a", "byte 1",
				"entry STRING", "key s",
				"entry LIST", "key l", "list INT 3",
				"elem 0", "int 1", "elem 1", "int 2", "elem 2", "int 3", "close",
				"close",
			},
		},
		{
			name:    "break entry",
			results: map[string]Result{"entry STRING": stream.Break},
			want: []string{
				"root COMPOUND",
				"entry BYTE", "key a", "byte 1",
				"entry STRING",
				"close",
			},
		},
		{
			name:    "skip list",
			results: map[string]Result{"list INT 3": stream.Skip},
			want: []string{
				"root COMPOUND",
				"entry BYTE", "key a", "byte 1",
				"entry STRING", "key s", "string x",
				"entry LIST", "key l", "list INT 3", "close",
				"close",
			},
		},
		{
			name:    "skip element",
			results: map[string]Result{"elem 1": stream.Skip},
			want: []string{
				"root COMPOUND",
				"entry BYTE", "key a", "byte 1",
				"entry STRING", "key s", "string x",
				"entry LIST", "key l", "list INT 3",
				"elem 0", "int 1", "elem 1", "elem 2", "int 3", "close",
				"close",
			},
		},
		{
			name:    "break element",
			results: map[string]Result{"elem 1": stream.Break},
			want: []string{
				"root COMPOUND",
				"entry BYTE", "key a", "byte 1",
				"entry STRING", "key s", "string x",
				"entry LIST", "key l", "list INT 3",
				"elem 0", "int 1", "elem 1", "close",
				"close",
			},
		},
		{
			name:    "break from value",
			results: map[string]Result{"int 1": stream.Break},
			want: []string{
				"root COMPOUND",
				"entry BYTE", "key a", "byte 1",
				"entry STRING", "key s", "string x",
				"entry LIST", "key l", "list INT 3",
				"elem 0", "int 1", "close",
				"close",
			},
		},
		{
			name:    "halt",
			results: map[string]Result{"string x": stream.Halt},
			want: []string{
				"root COMPOUND",
				"entry BYTE", "key a", "byte 1",
				"entry STRING", "key s", "string x",
			},
		},
		{
			name:    "halt nested",
			results: map[string]Result{"elem 1": stream.Halt},
			want: []string{
				"root COMPOUND",
				"entry BYTE", "key a", "byte 1",
				"entry STRING", "key s", "string x",
				"entry LIST", "key l", "list INT 3",
				"elem 0", "int 1", "elem 1",
			},
		},
		{
			name:    "halt root",
			results: map[string]Result{"root COMPOUND": stream.Halt},
			want:    []string{"root COMPOUND"},
		},
		{
			name:    "skip root",
			results: map[string]Result{"root COMPOUND": stream.Skip},
			want:    []string{"root COMPOUND"},
		},
	}
	d := encodeBinary(t, twoEntries())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{results: tt.results}
			if err := wire.Parse(bytes.NewReader(d), rec); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, rec.events); diff != "" {
				t.Errorf("events (-want +got):\n%s", diff)
			}
		})
	}
}

// After a break the enclosing compound must still be drained exactly,
// so the following sibling is visited.
func TestBreakDrainsNested(t *testing.T) {
	inner := tag.NewCompound()
	inner.PutInt("x", 1)
	inner.PutString("y", "drained")
	inner.PutIntArray("z", []int32{4, 5})
	c := tag.NewCompound()
	c.Put("inner", inner)
	c.PutString("after", "seen")
	rec := &recorder{results: map[string]Result{"key x": stream.Break}}
	if err := wire.Parse(bytes.NewReader(encodeBinary(t, c)), rec); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"root COMPOUND",
		"entry COMPOUND", "key inner",
		"entry INT", "key x", "close",
		"entry STRING", "key after", "string seen",
		"close",
	}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestRootScalar(t *testing.T) {
	var buf bytes.Buffer
	if err := wire.Write(&buf, "n", tag.Int(42)); err != nil {
		t.Fatal(err)
	}
	c := stream.NewCollector()
	if err := wire.Parse(&buf, c); err != nil {
		t.Fatal(err)
	}
	if !tag.Equal(c.Result(), tag.Int(42)) {
		t.Errorf("got %v", c.Result())
	}
}

func TestResultString(t *testing.T) {
	for r, want := range map[Result]string{
		stream.Continue: "continue",
		stream.Skip:     "skip",
		stream.Break:    "break",
		stream.Halt:     "halt",
	} {
		if r.String() != want {
			t.Errorf("%d: %s", int(r), r)
		}
	}
}
