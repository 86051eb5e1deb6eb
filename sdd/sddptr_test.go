// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sdd

import "testing"

func TestSortDedupPairsOrdersAndRemovesDuplicates(t *testing.T) {
	p0 := newDecompSddPtr(1, 0)
	p1 := newDecompSddPtr(1, 1)
	p2 := newDecompSddPtr(1, 2)

	pairs := []PrimeSub{
		{p2, p0},
		{p0, p1},
		{p2, p0}, // duplicate
		{p1, p0},
	}
	got := sortDedupPairs(pairs)
	if len(got) != 3 {
		t.Fatalf("expected duplicates removed, got %d pairs: %+v", len(got), got)
	}
	for i := 1; i < len(got); i++ {
		if comparePrimeSub(got[i-1], got[i]) >= 0 {
			t.Fatalf("pairs not strictly sorted at %d: %+v", i, got)
		}
	}
}

func TestEqualSddOrOrderSensitive(t *testing.T) {
	p0 := newDecompSddPtr(1, 0)
	p1 := newDecompSddPtr(1, 1)

	a := SddOr{Nodes: []PrimeSub{{p0, p1}, {p1, p0}}}
	b := SddOr{Nodes: []PrimeSub{{p0, p1}, {p1, p0}}}
	c := SddOr{Nodes: []PrimeSub{{p1, p0}, {p0, p1}}}

	if !equalSddOr(a, b) {
		t.Fatal("identical node lists should compare equal")
	}
	if equalSddOr(a, c) {
		t.Fatal("equalSddOr should be order-sensitive, as sortDedupPairs guarantees a canonical order upstream")
	}
}

func TestComparePtrDistinguishesVtreeIndexKindAndPayload(t *testing.T) {
	a := newDecompSddPtr(0, 5)
	b := newDecompSddPtr(1, 0)
	if comparePtr(a, b) >= 0 {
		t.Fatal("lower vtree index should sort first")
	}

	c := newDecompSddPtr(0, 5)
	if comparePtr(a, c) != 0 {
		t.Fatal("identical pointers should compare equal")
	}

	leaf := newBddSddPtr(0, 0)
	if comparePtr(leaf, a) >= 0 {
		t.Fatal("at the same vtree index, a BDD edge should sort before a decomposition")
	}

	d := newDecompSddPtr(0, 6)
	if comparePtr(a, d) >= 0 {
		t.Fatal("at the same vtree index and kind, the smaller payload should sort first")
	}
}
