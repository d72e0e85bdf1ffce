package tag

import (
	"errors"
	"testing"
)

func TestListTyping(t *testing.T) {
	l := NewList()
	if l.ElemType() != EndType {
		t.Fatalf("new list type %s, want %s", l.ElemType(), EndType)
	}
	if err := l.Add(String("a")); err != nil {
		t.Fatalf("add string to empty list: %v", err)
	}
	if l.ElemType() != StringType {
		t.Fatalf("type after first insert %s", l.ElemType())
	}
	err := l.Add(Int(1))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("add int to string list: got %v, want ErrTypeMismatch", err)
	}
	var te *TypeError
	if !errors.As(err, &te) || te.Want != StringType || te.Got != IntType {
		t.Fatalf("unexpected type error %#v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("rejected insert changed length to %d", l.Len())
	}
	l.Clear()
	if l.ElemType() != EndType || l.Len() != 0 {
		t.Fatalf("clear left type %s len %d", l.ElemType(), l.Len())
	}
	if err := l.Add(Int(1)); err != nil {
		t.Fatalf("add int after clear: %v", err)
	}
}

func TestListRejectsEnd(t *testing.T) {
	l := NewList()
	if err := l.Add(End{}); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("add end: got %v", err)
	}
	if err := l.Add(nil); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("add nil: got %v", err)
	}
	if l.ElemType() != EndType {
		t.Fatalf("type changed to %s", l.ElemType())
	}
}

func TestListRemoveResetsType(t *testing.T) {
	l, err := ListOf(Short(1), Short(2))
	if err != nil {
		t.Fatal(err)
	}
	if got := l.Remove(0); got != Short(1) {
		t.Fatalf("remove returned %v", got)
	}
	if l.ElemType() != ShortType {
		t.Fatalf("type reset too early")
	}
	l.Remove(0)
	if l.ElemType() != EndType {
		t.Fatalf("type not reset after last removal: %s", l.ElemType())
	}
}

func TestListSet(t *testing.T) {
	l, _ := ListOf(String("a"))
	if _, err := l.Set(0, Int(3)); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("set with other type on single element list: %v", err)
	}
	prev, err := l.Set(0, String("b"))
	if err != nil || prev != String("a") {
		t.Fatalf("set: prev %v err %v", prev, err)
	}
	if l.GetString(0) != "b" {
		t.Fatalf("got %q", l.GetString(0))
	}
}

func TestListInsertShifts(t *testing.T) {
	l, _ := ListOf(Int(1), Int(3))
	if err := l.Insert(1, Int(2)); err != nil {
		t.Fatal(err)
	}
	for i, want := range []int32{1, 2, 3} {
		if got := l.GetInt(i); got != want {
			t.Errorf("element %d: got %d want %d", i, got, want)
		}
	}
}

func TestListStrict(t *testing.T) {
	l, _ := ListOf(Int(1))
	l.Strict = true
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrTypeMismatch) {
			t.Fatalf("expected type mismatch panic, got %v", r)
		}
	}()
	_ = l.Add(String("x"))
}

func TestListGettersDefault(t *testing.T) {
	l, _ := ListOf(String("s"))
	if l.GetInt(0) != 0 || l.GetInt(5) != 0 || l.GetInt(-1) != 0 {
		t.Error("GetInt should default to 0")
	}
	if l.GetCompound(0).Len() != 0 {
		t.Error("GetCompound should default to empty")
	}
	if l.GetList(3).Len() != 0 {
		t.Error("GetList should default to empty")
	}
	if l.GetString(2) != "" {
		t.Error("GetString out of range should be empty")
	}
	if len(l.GetIntArray(0)) != 0 || len(l.GetLongArray(0)) != 0 {
		t.Error("array getters should default to empty")
	}
}

func TestListCopyIsDeep(t *testing.T) {
	inner := NewCompound()
	inner.PutInt("a", 1)
	l, _ := ListOf(inner)
	cp := l.Copy().(*List)
	cp.GetCompound(0).PutInt("a", 2)
	if inner.GetInt("a") != 1 {
		t.Fatal("copy shares compound")
	}
	if !Equal(l, l.Copy()) {
		t.Fatal("copy not equal")
	}
}
