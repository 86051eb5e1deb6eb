// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sdd

import (
	"strings"
	"testing"

	"github.com/dalzilio/rdd"
)

func simpleVtree() *VTree {
	return Branch[[]rdd.VarLabel, struct{}](
		struct{}{},
		Leaf[[]rdd.VarLabel, struct{}]([]rdd.VarLabel{0, 1}),
		Leaf[[]rdd.VarLabel, struct{}]([]rdd.VarLabel{2, 3}),
	)
}

func TestVarProducesSomething(t *testing.T) {
	m := New(simpleVtree())
	v := m.Var(2, true)
	got := m.Print(v)
	if got == "" {
		t.Fatal("Print should render something for a literal")
	}
}

func TestVarInRightLeafIsOnePairAtRoot(t *testing.T) {
	m := New(simpleVtree())
	// variable 2 lives in the right leaf, so at the (internal) root its SDD
	// is a single pair: the left leaf's True as prime, the right leaf's
	// literal as sub.
	v := m.Var(2, true)
	internal := m.externalTable.intoInternal(v)
	if internal.IsBdd() {
		t.Fatal("a literal under an internal vtree root should be a decomposition, not a direct BDD edge")
	}
	pairs := m.table.sddOrPanic(internal)
	if len(pairs) != 1 {
		t.Fatalf("expected exactly one (prime, sub) pair, got %d", len(pairs))
	}
	if !pairs[0].Prime.IsBdd() || !pairs[0].Prime.bdd.IsTrue() {
		t.Fatal("the prime should be the left leaf's True edge")
	}
	sub := pairs[0].Sub
	if !sub.IsBdd() || !m.table.bddManagerAt(sub.VtreeIndex()).IsVar(sub.bdd) {
		t.Fatal("the sub should be the right leaf's literal")
	}
}

func TestApplyAndOfOppositeLiteralsIsFalse(t *testing.T) {
	m := New(simpleVtree())
	v1 := m.Var(1, true)
	v2 := m.Var(1, false)
	r := m.Apply(OpAnd, v1, v2)
	if r.IsSat() {
		t.Fatal("v1 && !v1 should collapse every prime at the root to false and report Unsat")
	}
	if _, ok := r.Ref(); ok {
		t.Fatal("Ref() should report !ok once IsSat is false")
	}
}

func TestApplyAndIsIdempotent(t *testing.T) {
	m := New(simpleVtree())
	v1 := m.Var(1, true)
	r := m.Apply(OpAnd, v1, v1)
	ref, ok := r.Ref()
	if !ok {
		t.Fatal("expected a satisfiable result")
	}
	if m.Print(ref) != m.Print(v1) {
		t.Fatalf("v1 && v1 should print identically to v1: %q vs %q", m.Print(ref), m.Print(v1))
	}
}

func TestApplyAcrossLeaves(t *testing.T) {
	m := New(simpleVtree())
	v0 := m.Var(0, true) // left leaf
	v2 := m.Var(2, true) // right leaf
	r := m.Apply(OpAnd, v0, v2)
	ref, ok := r.Ref()
	if !ok {
		t.Fatal("expected a satisfiable result")
	}
	got := m.Print(ref)
	if !strings.Contains(got, "/\\") {
		t.Fatalf("a conjunction spanning both leaves should produce a structured decomposition, got %q", got)
	}
}
