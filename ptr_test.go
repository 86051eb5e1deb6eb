// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rdd

import "testing"

func TestConstants(t *testing.T) {
	if !trueBddPtr.IsTrue() || trueBddPtr.IsFalse() {
		t.Fatalf("trueBddPtr misclassified: %v", trueBddPtr)
	}
	if !falseBddPtr.IsFalse() || falseBddPtr.IsTrue() {
		t.Fatalf("falseBddPtr misclassified: %v", falseBddPtr)
	}
	if trueBddPtr.Neg() != falseBddPtr {
		t.Fatalf("Neg(true) should be false, got %v", trueBddPtr.Neg())
	}
	if falseBddPtr.Neg() != trueBddPtr {
		t.Fatalf("Neg(false) should be true, got %v", falseBddPtr.Neg())
	}
}

func TestNewNodePtrRoundtrip(t *testing.T) {
	cases := []struct {
		v   VarLabel
		idx uint64
	}{
		{0, 0},
		{1, 41},
		{VarLabel(maxVar), maxIdx},
	}
	for _, c := range cases {
		p := newNodePtr(c.v, c.idx)
		if p.IsConst() {
			t.Fatalf("newNodePtr(%d,%d) produced a constant edge", c.v, c.idx)
		}
		if p.Var() != c.v {
			t.Errorf("newNodePtr(%d,%d).Var() = %d, want %d", c.v, c.idx, p.Var(), c.v)
		}
		if p.tableIdx() != c.idx {
			t.Errorf("newNodePtr(%d,%d).tableIdx() = %d, want %d", c.v, c.idx, p.tableIdx(), c.idx)
		}
	}
}

func TestNegInvolution(t *testing.T) {
	p := newNodePtr(3, 7)
	if p.Neg().Neg() != p {
		t.Fatalf("Neg is not an involution for %v", p)
	}
	if p.Regular() != p {
		t.Fatalf("an edge with a clear complement bit should equal its own Regular()")
	}
	if p.Neg().Regular() != p {
		t.Fatalf("Regular() should strip the complement bit added by Neg()")
	}
}

func TestOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on variable overflow")
		}
	}()
	newNodePtr(VarLabel(maxVar+1), 0)
}

func TestVarOnConstantPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic calling Var() on a constant BddPtr")
		}
	}()
	trueBddPtr.Var()
}
