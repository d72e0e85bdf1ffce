package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/nbtkit/go-nbt/stream"
	"github.com/nbtkit/go-nbt/tag"
)

// builder assembles raw payloads for malformed input tests.
type builder struct{ bytes.Buffer }

func (b *builder) u8(v byte) *builder {
	b.WriteByte(v)
	return b
}

func (b *builder) i32(v int32) *builder {
	b.Write(binary.BigEndian.AppendUint32(nil, uint32(v)))
	return b
}

func (b *builder) str(s string) *builder {
	b.Write(binary.BigEndian.AppendUint16(nil, uint16(len(s))))
	b.WriteString(s)
	return b
}

func sample() *tag.Compound {
	c := tag.NewCompound()
	c.PutByte("byte", -1)
	c.PutShort("short", 300)
	c.PutInt("int", -70000)
	c.PutLong("long", 1<<40)
	c.PutFloat("float", 0.5)
	c.PutDouble("double", -2.25)
	c.PutString("string", "stone")
	c.PutString("mutf8", "nul\x00 é € \U0001F600")
	c.PutByteArray("bytes", []byte{1, 2, 255})
	c.PutIntArray("ints", []int32{1, -2, 3})
	c.PutLongArray("longs", []int64{-1 << 50})
	l, _ := tag.ListOf(tag.Int(1), tag.Int(2))
	c.Put("list", l)
	c.Put("empty", tag.NewList())
	sub := tag.NewCompound()
	sub.PutString("id", "minecraft:chest")
	inner, _ := tag.ListOf(sub.Copy(), sub.Copy())
	sub.Put("items", inner)
	c.Put("sub", sub)
	ll, _ := tag.ListOf(tag.NewList(), l.Copy())
	c.Put("lists", ll)
	return c
}

func TestRoundTrip(t *testing.T) {
	in := sample()
	d, err := Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Decode(d)
	if err != nil {
		t.Fatal(err)
	}
	if !tag.Equal(in, out) {
		t.Fatalf("round trip changed the tree")
	}
	name, _, err := ReadNamed(bytes.NewReader(d))
	if err != nil {
		t.Fatal(err)
	}
	if name != "" {
		t.Errorf("name %q", name)
	}
}

func TestRoundTripNamedAndUnnamed(t *testing.T) {
	in := sample()
	var buf bytes.Buffer
	if err := Write(&buf, "root", in); err != nil {
		t.Fatal(err)
	}
	name, out, err := ReadNamed(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if name != "root" || !tag.Equal(in, out) {
		t.Fatalf("named round trip: %q", name)
	}
	buf.Reset()
	for _, v := range []tag.Tag{in, tag.Int(7), tag.String("x"), tag.End{}} {
		buf.Reset()
		if err := WriteUnnamed(&buf, v); err != nil {
			t.Fatal(err)
		}
		got, err := ReadUnnamed(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if !tag.Equal(v, got) {
			t.Errorf("unnamed round trip of %s", v.ID())
		}
	}
}

func TestCompressionRoundTrip(t *testing.T) {
	in := sample()
	for _, c := range []Compression{None, Gzip, Zlib, LZ4, Zstd} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteCompressed(&buf, in, c); err != nil {
				t.Fatal(err)
			}
			if got := DetectCompression(buf.Bytes()); got != c {
				t.Errorf("detected %s", got)
			}
			out, err := ReadCompressed(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatal(err)
			}
			if !tag.Equal(in, out) {
				t.Fatal("tree changed")
			}
			out2, err := ReadCompound(bytes.NewReader(buf.Bytes()), WithCompression(c))
			if err != nil {
				t.Fatal(err)
			}
			if !tag.Equal(in, out2) {
				t.Fatal("tree changed with explicit compression")
			}
		})
	}
}

func TestParseCompression(t *testing.T) {
	for _, c := range []Compression{None, Gzip, Zlib, LZ4, Zstd} {
		got, err := ParseCompression(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCompression(%q) = %s, %v", c, got, err)
		}
	}
	if _, err := ParseCompression("brotli"); err == nil {
		t.Error("no error for unknown compression")
	}
}

func TestAccounting(t *testing.T) {
	b := new(builder)
	b.u8(10).str("").u8(1).str("a").u8(1).u8(0)
	acc := Unlimited()
	if _, err := Decode(b.Bytes(), WithAccounter(acc)); err != nil {
		t.Fatal(err)
	}
	if got, want := acc.Usage(), int64(384+224+16+72); got != want {
		t.Errorf("usage %d want %d", got, want)
	}

	b = new(builder)
	b.u8(10).str("").u8(1).str("a").u8(1).u8(1).str("a").u8(2).u8(0)
	acc = Unlimited()
	out, err := Decode(b.Bytes(), WithAccounter(acc))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := acc.Usage(), int64(384+2*(224+16+72)+288); got != want {
		t.Errorf("duplicate key usage %d want %d", got, want)
	}
	if got := out.(*tag.Compound).GetByte("a"); got != 2 {
		t.Errorf("last write should win, got %d", got)
	}
}

func TestAccounterOverflow(t *testing.T) {
	a := NewAccounter(100)
	if err := a.AccountBits(60); err != nil {
		t.Fatal(err)
	}
	err := a.AccountBits(60)
	if !errors.Is(err, ErrBudgetExceeded) {
		t.Fatalf("got %v", err)
	}
	if a.Usage() > a.Quota() {
		t.Errorf("usage %d above quota", a.Usage())
	}
	if err := Unlimited().AccountBits(1 << 62); err != nil {
		t.Error(err)
	}
}

func TestHugeClaimedCount(t *testing.T) {
	const huge = 1<<31 - 1
	tests := []struct {
		name string
		in   []byte
	}{
		{"byte array", new(builder).u8(10).str("").u8(7).str("a").i32(huge).Bytes()},
		{"int array", new(builder).u8(10).str("").u8(11).str("a").i32(huge).Bytes()},
		{"long array", new(builder).u8(10).str("").u8(12).str("a").i32(huge).Bytes()},
		{"list", new(builder).u8(10).str("").u8(9).str("a").u8(3).i32(huge).i32(1).Bytes()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in, WithQuota(DefaultNetworkQuota))
			if !errors.Is(err, ErrBudgetExceeded) {
				t.Errorf("quota: got %v", err)
			}
			_, err = Decode(tt.in)
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("unlimited: got %v", err)
			}
			err = Parse(bytes.NewReader(tt.in), stream.NewCollector(), WithQuota(DefaultNetworkQuota))
			if !errors.Is(err, ErrBudgetExceeded) {
				t.Errorf("parse: got %v", err)
			}
		})
	}
}

func nestedLists(n int) []byte {
	b := new(builder)
	b.u8(9).str("")
	for range n - 1 {
		b.u8(9).i32(1)
	}
	b.u8(0).i32(0)
	return b.Bytes()
}

func TestDepth(t *testing.T) {
	if _, err := Decode(nestedLists(MaxDepth)); err != nil {
		t.Errorf("depth %d: %v", MaxDepth, err)
	}
	_, err := Decode(nestedLists(MaxDepth + 1))
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("load: got %v", err)
	}
	err = Parse(bytes.NewReader(nestedLists(MaxDepth+1)), stream.NewCollector())
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("parse: got %v", err)
	}
	err = Parse(bytes.NewReader(nestedLists(MaxDepth+1)), stream.SkipAll{})
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("skip: got %v", err)
	}
}

func TestMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"invalid root id", new(builder).u8(13).str("").Bytes()},
		{"invalid entry id", new(builder).u8(10).str("").u8(42).str("a").Bytes()},
		{"truncated compound", new(builder).u8(10).str("").u8(1).str("a").Bytes()},
		{"truncated name", append(new(builder).u8(10).u8(0).u8(5).Bytes(), 'a', 'b')},
		{"negative array", new(builder).u8(7).str("").i32(-1).Bytes()},
		{"negative list", new(builder).u8(9).str("").u8(1).i32(-5).Bytes()},
		{"untyped list", new(builder).u8(9).str("").u8(0).i32(2).Bytes()},
		{"invalid list type", new(builder).u8(9).str("").u8(20).i32(0).Bytes()},
		{"bad mutf8", new(builder).u8(8).str("\xff").Bytes()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("load: got %v", err)
			}
		})
	}
}

func TestStringTooLong(t *testing.T) {
	c := tag.NewCompound()
	c.PutString("s", strings.Repeat("é", 40000))
	if _, err := Encode(c); !errors.Is(err, ErrStringTooLong) {
		t.Errorf("got %v", err)
	}
	c.PutString("s", strings.Repeat("a", 65535))
	if _, err := Encode(c); err != nil {
		t.Errorf("max length: %v", err)
	}
}

func TestModifiedUTF8(t *testing.T) {
	s := "a\x00\U0001F600"
	d := appendMUTF8(nil, s)
	want := []byte{'a', 0xc0, 0x80, 0xed, 0xa0, 0xbd, 0xed, 0xb8, 0x80}
	if !bytes.Equal(d, want) {
		t.Fatalf("encoded % x", d)
	}
	if mutf8Len(s) != len(want) {
		t.Errorf("len %d", mutf8Len(s))
	}
	got, units, err := decodeMUTF8(d)
	if err != nil {
		t.Fatal(err)
	}
	if got != s || units != 4 {
		t.Errorf("decoded %q with %d units", got, units)
	}
}

func TestSkipMatchesLoad(t *testing.T) {
	in := sample()
	for k, v := range in.All() {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		if err := w.WritePayload(v); err != nil {
			t.Fatal(err)
		}
		if err := w.Flush(); err != nil {
			t.Fatal(err)
		}
		buf.WriteString("tail")
		n := int64(buf.Len() - 4)
		r := NewReader(bytes.NewReader(buf.Bytes()), nil)
		if err := CodecFor(v.ID()).Skip(r, rootDepth); err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		if r.Offset() != n {
			t.Errorf("%s: skip consumed %d of %d bytes", k, r.Offset(), n)
		}
	}
	d, err := Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	r := NewReader(bytes.NewReader(d), nil)
	if err := r.Parse(stream.SkipAll{}); err != nil {
		t.Fatal(err)
	}
	if r.Offset() != int64(len(d)) {
		t.Errorf("skip all consumed %d of %d bytes", r.Offset(), len(d))
	}
}

func TestCollectorMatchesLoad(t *testing.T) {
	d, err := Encode(sample())
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := Decode(d)
	if err != nil {
		t.Fatal(err)
	}
	c := stream.NewCollector()
	if err := Parse(bytes.NewReader(d), c); err != nil {
		t.Fatal(err)
	}
	if c.Err() != nil {
		t.Fatal(c.Err())
	}
	if !tag.Equal(loaded, c.Result()) {
		t.Fatal("collected tree differs from loaded tree")
	}
}

func TestInvalidCodec(t *testing.T) {
	c := CodecFor(tag.Type(77))
	r := NewReader(bytes.NewReader(nil), nil)
	if _, err := c.Load(r, 0); !errors.Is(err, ErrMalformed) {
		t.Errorf("load: %v", err)
	}
	if err := c.Skip(r, 0); !errors.Is(err, ErrMalformed) {
		t.Errorf("skip: %v", err)
	}
	if res, err := c.Parse(r, 0, stream.Base{}); res != stream.Halt || !errors.Is(err, ErrMalformed) {
		t.Errorf("parse: %s %v", res, err)
	}
}

func TestParseSkipsRootName(t *testing.T) {
	in := new(builder).u8(10).u8(0).u8(1).u8(0x80).u8(0).Bytes()
	if _, err := Decode(in); !errors.Is(err, ErrMalformed) {
		t.Errorf("decode: got %v, want %v", err, ErrMalformed)
	}
	c := stream.NewCollector()
	if err := Parse(bytes.NewReader(in), c); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !tag.Equal(c.Result(), tag.NewCompound()) {
		t.Errorf("parse: got %v", c.Result())
	}
	if !badRootName(in) {
		t.Error("badRootName: got false")
	}
}

func TestParseNaNPayload(t *testing.T) {
	in := new(builder).u8(10).str("").u8(5).str("f").u8(0xff).u8(0xfc).u8(0x30).u8(0x30).u8(0).Bytes()
	loaded, err := Decode(in)
	if err != nil {
		t.Fatal(err)
	}
	c := stream.NewCollector()
	if err := Parse(bytes.NewReader(in), c); err != nil {
		t.Fatal(err)
	}
	f := c.Result().(*tag.Compound).GetFloat("f")
	if !hasNaN(tag.Float(f)) || !hasNaN(loaded) {
		t.Errorf("got %v, want NaN", f)
	}
}

func FuzzDecode(f *testing.F) {
	d, _ := Encode(sample())
	f.Add(d)
	f.Add(nestedLists(4))
	f.Add(new(builder).u8(10).str("").u8(7).str("a").i32(1<<31 - 1).Bytes())
	f.Fuzz(func(t *testing.T, in []byte) {
		loaded, err := Decode(in, WithQuota(DefaultNetworkQuota))
		c := stream.NewCollector()
		perr := Parse(bytes.NewReader(in), c, WithQuota(DefaultNetworkQuota))
		// Overwritten keys are charged by load only, so budget failures
		// may differ.
		budget := errors.Is(err, ErrBudgetExceeded) || errors.Is(perr, ErrBudgetExceeded)
		if (err == nil) != (perr == nil) && !budget && !badRootName(in) {
			t.Fatalf("load error %v, parse error %v", err, perr)
		}
		if err != nil || perr != nil {
			return
		}
		if c.Err() == nil && !tag.Equal(loaded, c.Result()) && !hasNaN(loaded) {
			t.Fatal("parse and load disagree")
		}
		out, err := Encode(loaded)
		if err != nil {
			return
		}
		again, err := Decode(out)
		if err != nil {
			t.Fatalf("re-decoding: %v", err)
		}
		if !tag.Equal(loaded, again) && !hasNaN(loaded) {
			t.Fatal("re-encoding changed the tree")
		}
	})
}

// badRootName reports whether in has a root name that fails to decode.
// Parse skips the root name without decoding it.
func badRootName(in []byte) bool {
	if len(in) < 3 || in[0] == 0 {
		return false
	}
	n := 3 + int(binary.BigEndian.Uint16(in[1:3]))
	if len(in) < n {
		return false
	}
	_, _, err := decodeMUTF8(in[3:n])
	return err != nil
}

func hasNaN(t tag.Tag) bool {
	switch x := t.(type) {
	case tag.Float:
		return x != x
	case tag.Double:
		return x != x
	case *tag.List:
		for _, e := range x.All() {
			if hasNaN(e) {
				return true
			}
		}
	case *tag.Compound:
		for _, e := range x.All() {
			if hasNaN(e) {
				return true
			}
		}
	}
	return false
}
