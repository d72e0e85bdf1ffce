package encode

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/nbtkit/go-nbt/tag"
)

func list(t *testing.T, ts ...tag.Tag) *tag.List {
	t.Helper()
	l, err := tag.ListOf(ts...)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestCompact(t *testing.T) {
	c := tag.NewCompound()
	c.PutByte("b", 1)
	c.PutIntArray("a", []int32{1, 2})
	nested := tag.NewCompound()
	nested.PutString("say", `say "hi"`)
	c.Put("n", nested)

	tests := []struct {
		in  tag.Tag
		out string
	}{
		{c, `{a:[I;1,2],b:1b,n:{say:'say "hi"'}}`},
		{tag.NewCompound(), `{}`},
		{tag.NewList(), `[]`},
		{tag.NewByteArray([]byte{1, 255}), `[B;1B,-1B]`},
		{tag.NewByteArray(nil), `[B;]`},
		{tag.NewLongArray([]int64{1, -2}), `[L;1L,-2L]`},
		{list(t, tag.NewList(), list(t, tag.Short(1))), `[[],[1s]]`},
		{tag.Long(-5), `-5L`},
		{tag.Float(0.5), `0.5f`},
		{tag.Double(1e10), `1.0E10d`},
		{tag.String("plain"), `"plain"`},
	}
	for _, tt := range tests {
		if got := Compact(tt.in); got != tt.out {
			t.Errorf("got %s want %s", got, tt.out)
		}
	}
	keyed := tag.NewCompound()
	keyed.PutInt("minecraft:x", 1)
	keyed.PutInt("", 2)
	if got, want := Compact(keyed), `{"":2,"minecraft:x":1}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestPretty(t *testing.T) {
	c := tag.NewCompound()
	c.PutString("b", "x")
	c.PutByte("a", 1)
	c.Put("l", list(t, tag.Int(1), tag.Int(2)))
	c.Put("e", tag.NewCompound())
	c.PutByteArray("bytes", []byte{1, 2})
	c.PutIntArray("none", nil)
	want := `{
    a: 1b,
    b: "x",
    bytes: [B; 1b, 2b],
    e: {},
    l: [
        1,
        2
    ],
    none: [I;]
}`
	if diff := cmp.Diff(want, Pretty(c)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got, want := Pretty(tag.NewLongArray([]int64{3})), "[L; 3L]"; got != want {
		t.Errorf("got %s", got)
	}
}

func TestPrettyIndent(t *testing.T) {
	c := tag.NewCompound()
	c.PutInt("x", 1)
	c.Put("l", list(t, tag.String("a")))
	if got, want := Pretty(c, EncodeIndent("")), `{l: ["a"], x: 1}`; got != want {
		t.Errorf("got %s", got)
	}
	if got, want := Pretty(c, EncodeIndent("\t")), "{\n\tl: [\n\t\t\"a\"\n\t],\n\tx: 1\n}"; got != want {
		t.Errorf("got %q", got)
	}
}

func structure(t *testing.T) *tag.Compound {
	block := tag.NewCompound()
	block.PutString("state", "minecraft:stone")
	block.Put("pos", list(t, tag.Int(0), tag.Int(0), tag.Int(0)))
	c := tag.NewCompound()
	c.Put("palette", list(t, tag.String("minecraft:stone")))
	c.Put("data", list(t, block))
	c.Put("size", list(t, tag.Int(3), tag.Int(1), tag.Int(2)))
	c.PutString("author", "nbt")
	c.PutInt("DataVersion", 3700)
	c.PutString("extra", "z")
	return c
}

func TestStructureRules(t *testing.T) {
	want := `{
    DataVersion: 3700,
    author: "nbt",
    size: [3, 1, 2],
    data: [
        {pos: [0, 0, 0], state: "minecraft:stone"}
    ],
    palette: [
        "minecraft:stone"
    ],
    extra: "z"
}`
	got := Pretty(structure(t), EncodeRules(StructureRules()))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRulesKeys(t *testing.T) {
	r := StructureRules()
	got := r.keys(ParsePath("{}.entities.[].{}"), []string{"nbt", "pos", "blockPos", "a"})
	want := []string{"blockPos", "pos", "a", "nbt"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if p := ParsePath("{}.data.[].{}"); p.String() != "{}.data.[].{}" || len(p) != 4 {
		t.Errorf("path %v", p)
	}
}

func TestRulesKeysUTF16Order(t *testing.T) {
	r := &Rules{}
	got := r.keys(Path{CompoundStep}, []string{"\uff21", "\U0001f600", "a"})
	want := []string{"a", "\U0001f600", "\uff21"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	c := structure(t)
	c.PutString("pct", "100%")
	buf := &bytes.Buffer{}
	if err := Encode(c, buf, EncodeColors(NewColors()), EncodeRules(StructureRules())); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !ansi.MatchString(out) {
		t.Fatal("no color codes in output")
	}
	plain := Pretty(c, EncodeRules(StructureRules())) + "\n"
	if diff := cmp.Diff(plain, ansi.ReplaceAllString(out, "")); diff != "" {
		t.Errorf("(-plain +colored):\n%s", diff)
	}
}

func TestEncodeCompact(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(structure(t), buf, EncodeCompact(true)); err != nil {
		t.Fatal(err)
	}
	want := `{DataVersion:3700,author:"nbt",data:[{pos:[0,0,0],state:"minecraft:stone"}],extra:"z",palette:["minecraft:stone"],size:[3,1,2]}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("got %s", got)
	}
}

func TestString(t *testing.T) {
	if got := String(tag.String("up")); got != "up" {
		t.Errorf("got %s", got)
	}
	if got := String(tag.Int(3)); got != "3" {
		t.Errorf("got %s", got)
	}
}
