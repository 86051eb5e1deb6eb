// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rdd

import "testing"

func TestVarOrderLinear(t *testing.T) {
	o := NewVarOrder(4)
	for v := VarLabel(0); v < 4; v++ {
		if o.Position(v) != Level(v) {
			t.Errorf("Position(%d) = %d, want %d", v, o.Position(v), v)
		}
		if o.VarAt(Level(v)) != v {
			t.Errorf("VarAt(%d) = %d, want %d", v, o.VarAt(Level(v)), v)
		}
	}
	if o.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", o.Len())
	}
	if o.LastVar() != Level(4) {
		t.Fatalf("LastVar() = %d, want 4", o.LastVar())
	}
}

func TestVarOrderAboveBelow(t *testing.T) {
	o := NewVarOrder(3)
	if _, ok := o.Above(0); ok {
		t.Error("variable at the top should have no variable above it")
	}
	if v, ok := o.Above(2); !ok || v != 1 {
		t.Errorf("Above(2) = (%d,%v), want (1,true)", v, ok)
	}
	if _, ok := o.Below(2); ok {
		t.Error("variable at the bottom should have no variable below it")
	}
	if v, ok := o.Below(0); !ok || v != 1 {
		t.Errorf("Below(0) = (%d,%v), want (1,true)", v, ok)
	}
}

func TestVarOrderLt(t *testing.T) {
	o := NewVarOrder(3)
	if !o.Lt(0, 2) {
		t.Error("variable 0 should be above variable 2")
	}
	if o.Lt(2, 0) {
		t.Error("variable 2 should not be above variable 0")
	}
	if o.Lt(1, 1) {
		t.Error("a variable should not be above itself")
	}
}

func TestVarOrderNewVar(t *testing.T) {
	o := NewVarOrder(2)
	v := o.NewVar()
	if v != 2 {
		t.Fatalf("NewVar() = %d, want 2", v)
	}
	if o.Position(v) != Level(2) {
		t.Fatalf("Position(%d) = %d, want 2", v, o.Position(v))
	}
	if o.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", o.Len())
	}
}

func TestVarOrderPositionOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unknown variable")
		}
	}()
	NewVarOrder(2).Position(5)
}
