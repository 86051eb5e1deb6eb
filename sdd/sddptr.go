// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sdd

import (
	"cmp"
	"slices"

	"github.com/dalzilio/rdd"
)

// sddKind tags what an SddPtr actually points to.
type sddKind int

const (
	sddBdd sddKind = iota
	sddDecomp
)

// SddPtr is an edge of an SDD: either a BDD edge at a vtree leaf, or an
// index into the decomposition store of an internal vtree node. It mirrors
// original_source/src/repr/bdd.rs's value-type style, but the two cases are
// distinguished by a tag instead of a bit-packed layout, since an SddPtr
// additionally carries which vtree node it belongs to and Go has no need to
// fit this into one machine word the way BddPtr does.
type SddPtr struct {
	vtreeIdx int
	kind     sddKind
	bdd      rdd.BddPtr // valid when kind == sddBdd
	decompID uint64     // valid when kind == sddDecomp
}

func newBddSddPtr(p rdd.BddPtr, vtreeIdx int) SddPtr {
	return SddPtr{vtreeIdx: vtreeIdx, kind: sddBdd, bdd: p}
}

func newDecompSddPtr(vtreeIdx int, decompID uint64) SddPtr {
	return SddPtr{vtreeIdx: vtreeIdx, kind: sddDecomp, decompID: decompID}
}

// IsBdd reports whether p is a leaf-level BDD edge rather than a structured
// decomposition.
func (p SddPtr) IsBdd() bool {
	return p.kind == sddBdd
}

// VtreeIndex returns the index (see BTree.Index) of the vtree node p
// belongs to.
func (p SddPtr) VtreeIndex() int {
	return p.vtreeIdx
}

// comparePtr gives SddPtr a total, deterministic order: by vtree index,
// then by kind, then by payload. Used to sort and dedup the (prime, sub)
// list of an SddOr, in place of original_source/src/sdd_manager.rs's
// quickersort::sort + dedup; gaissmai/bart's use of cmp.Compare over
// stdlib's slices.SortFunc is the idiom this follows.
func comparePtr(a, b SddPtr) int {
	if c := cmp.Compare(a.vtreeIdx, b.vtreeIdx); c != 0 {
		return c
	}
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	if a.kind == sddBdd {
		return cmp.Compare(a.bdd.Uint64(), b.bdd.Uint64())
	}
	return cmp.Compare(a.decompID, b.decompID)
}

// PrimeSub is one (prime, sub) pair of a disjunctive decomposition: prime
// partitions the variable space assigned to the vtree node's left subtree,
// sub is the corresponding value over the right subtree.
type PrimeSub struct {
	Prime, Sub SddPtr
}

func comparePrimeSub(a, b PrimeSub) int {
	if c := comparePtr(a.Prime, b.Prime); c != 0 {
		return c
	}
	return comparePtr(a.Sub, b.Sub)
}

// SddOr is the disjunction of a decomposition's (prime, sub) pairs, stored
// sorted and deduplicated so that two structurally identical decompositions
// always compare equal list-to-list, the precondition SddTable's hash-cons
// relies on.
type SddOr struct {
	Nodes []PrimeSub
}

// sortDedupPairs sorts pairs by comparePrimeSub and removes exact
// duplicates, in place, returning the (possibly shorter) slice. This is the
// pure tail end of canonicalizing a decomposition: merging two pairs that
// share a sub but carry different primes needs to disjoin those primes,
// which needs a manager (and the vtree node those primes live under) to call
// Apply on, so that step lives in SddManager.buildSddOr and always finishes
// by calling sortDedupPairs.
func sortDedupPairs(pairs []PrimeSub) []PrimeSub {
	slices.SortFunc(pairs, comparePrimeSub)
	return slices.CompactFunc(pairs, func(a, b PrimeSub) bool { return a == b })
}

func equalSddOr(a, b SddOr) bool {
	if len(a.Nodes) != len(b.Nodes) {
		return false
	}
	for i := range a.Nodes {
		if a.Nodes[i] != b.Nodes[i] {
			return false
		}
	}
	return true
}
