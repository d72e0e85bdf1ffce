package tag

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestByteArrayMutation(t *testing.T) {
	a := NewByteArray([]byte{1, 2, 3})
	if err := a.Insert(1, Int(-1)); err != nil {
		t.Fatal(err)
	}
	if err := a.Set(0, Short(0x1ff)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0xff, 0xff, 2, 3}, a.Data); diff != "" {
		t.Errorf("data (-want +got):\n%s", diff)
	}
	if got := a.Remove(0); got != Byte(-1) {
		t.Errorf("removed %v", got)
	}
	if a.Len() != len(a.Data) || a.Len() != 3 {
		t.Errorf("len %d", a.Len())
	}
	if err := a.Add(String("x")); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("add string: %v", err)
	}
	a.Clear()
	if a.Len() != 0 {
		t.Errorf("clear left %d", a.Len())
	}
}

func TestIntAndLongArrayMutation(t *testing.T) {
	ia := NewIntArray([]int32{5})
	if err := ia.Add(Double(2.9)); err != nil {
		t.Fatal(err)
	}
	if err := ia.Insert(0, Long(1<<33|4)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int32{4, 5, 2}, ia.Data); diff != "" {
		t.Errorf("int data (-want +got):\n%s", diff)
	}
	la := NewLongArray(nil)
	if err := la.Add(Int(-7)); err != nil {
		t.Fatal(err)
	}
	if err := la.Set(0, Float(-0.5)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int64{0}, la.Data); diff != "" {
		t.Errorf("long data (-want +got):\n%s", diff)
	}
	if err := la.Add(NewList()); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("add list: %v", err)
	}
	cp := ia.Copy().(*IntArray)
	cp.Data[0] = 100
	if ia.Data[0] != 4 {
		t.Error("copy shares backing array")
	}
}
