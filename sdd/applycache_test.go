// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sdd

import "testing"

func TestSddApplyCacheHitMiss(t *testing.T) {
	c := newSddApplyCache(64)
	a := newDecompSddPtr(0, 1)
	b := newDecompSddPtr(0, 2)
	res := newDecompSddPtr(0, 3)

	if _, ok := c.Get(OpAnd, a, b); ok {
		t.Fatal("empty cache should miss")
	}
	c.Put(OpAnd, a, b, res)
	got, ok := c.Get(OpAnd, a, b)
	if !ok || got != res {
		t.Fatalf("Get(OpAnd, a, b) = %+v, %v; want %+v, true", got, ok, res)
	}
}

func TestSddApplyCacheDistinguishesOp(t *testing.T) {
	// This is the bug fixed relative to the Rust source's (a, b)-only keying:
	// two different ops over the same operands must not collide.
	c := newSddApplyCache(64)
	a := newDecompSddPtr(0, 1)
	b := newDecompSddPtr(0, 2)
	andRes := newDecompSddPtr(0, 10)
	orRes := newDecompSddPtr(0, 20)

	c.Put(OpAnd, a, b, andRes)
	c.Put(OpOr, a, b, orRes)

	got, ok := c.Get(OpAnd, a, b)
	if !ok || got != andRes {
		t.Fatalf("Get(OpAnd, a, b) = %+v, %v; want %+v, true", got, ok, andRes)
	}
	got, ok = c.Get(OpOr, a, b)
	if !ok || got != orRes {
		t.Fatalf("Get(OpOr, a, b) = %+v, %v; want %+v, true", got, ok, orRes)
	}
}

func TestSddApplyCacheDistinguishesOperandOrder(t *testing.T) {
	c := newSddApplyCache(64)
	a := newDecompSddPtr(0, 1)
	b := newDecompSddPtr(0, 2)
	fwd := newDecompSddPtr(0, 10)

	c.Put(OpIff, a, b, fwd)
	if _, ok := c.Get(OpIff, b, a); ok {
		t.Fatal("(op, a, b) and (op, b, a) are distinct keys, unlike the root package's commutative And cache")
	}
}
