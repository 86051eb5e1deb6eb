// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sdd

import (
	"fmt"
	"strings"

	"github.com/dalzilio/rdd"
)

// SddManager owns one vtree, one SddTable (an inner rdd.BddManager per leaf
// plus a decomposition store per internal node), one ExternalRef indirection
// table, and one apply cache per vtree node index (only internal nodes'
// caches are consulted). Grounded on
// original_source/src/sdd_manager.rs's SddManager.
type SddManager struct {
	vtree         *VTree
	table         *SddTable
	externalTable *externalRefTable
	applyCache    []*sddApplyCache
}

// New builds a manager over vtree: one fresh inner rdd.BddManager per leaf,
// one empty apply cache per vtree node (leaves included, though only
// internal nodes use theirs), and no SDDs constructed yet.
func New(vtree *VTree) *SddManager {
	next := 0
	vtree.assignIndices(&next)
	n := next

	caches := make([]*sddApplyCache, n)
	for i := range caches {
		caches[i] = newSddApplyCache(10000)
	}

	return &SddManager{
		vtree:         vtree,
		table:         newSddTable(vtree),
		externalTable: newExternalRefTable(),
		applyCache:    caches,
	}
}

// Var returns the handle for the literal of lbl: the positive literal if
// polarity is true, its negation otherwise. Grounded on
// original_source/src/sdd_manager.rs's var/var_helper.
func (m *SddManager) Var(lbl rdd.VarLabel, polarity bool) ExternalRef {
	res := m.varHelper(lbl, polarity, true, m.vtree)
	return m.externalTable.genOrInc(res)
}

// varHelper builds the SDD for one literal by descending the vtree. count
// (the Rust source's threaded index parameter) is unnecessary here: each
// vtree node already carries its own static Index() from New, so the
// recursion only needs to follow vtree structure, not also rebuild a
// position counter alongside it (see vtree.go's assignIndices doc comment).
func (m *SddManager) varHelper(lbl rdd.VarLabel, isTrue, value bool, t *VTree) SddPtr {
	if t.IsLeaf() {
		vars := t.LeafValue()
		bm := m.table.bddManagerAt(t.Index())
		if containsVar(vars, lbl) {
			local := m.table.localVar(lbl)
			return newBddSddPtr(bm.Var(local, isTrue), t.Index())
		}
		var p rdd.BddPtr
		if value {
			p = bm.True()
		} else {
			p = bm.False()
		}
		return newBddSddPtr(p, t.Index())
	}

	left, right := t.Left(), t.Right()
	if containsLeafWith(left, lbl) {
		p1 := m.varHelper(lbl, isTrue, true, left)
		p2 := m.varHelper(lbl, !isTrue, true, left)
		s1 := m.varHelper(lbl, isTrue, true, right)
		s2 := m.varHelper(lbl, isTrue, false, right)
		pairs := m.buildSddOr(left, []PrimeSub{{p1, s1}, {p2, s2}})
		return m.table.getOrInsertSdd(t.Index(), SddOr{Nodes: pairs})
	}
	p := m.varHelper(lbl, isTrue, true, left)
	s := m.varHelper(lbl, isTrue, value, right)
	pairs := m.buildSddOr(left, []PrimeSub{{p, s}})
	return m.table.getOrInsertSdd(t.Index(), SddOr{Nodes: pairs})
}

// Apply computes op(a, b). Grounded on
// original_source/src/sdd_manager.rs's apply/helper; resolves the REDESIGN
// FLAG about that source's "unsat base sdd" panic by returning AppResult
// instead.
func (m *SddManager) Apply(op Op, a, b ExternalRef) AppResult {
	ia := m.externalTable.intoInternal(a)
	ib := m.externalTable.intoInternal(b)
	res, ok := m.applyHelper(m.vtree, false, op, ia, ib)
	if !ok {
		return AppResult{}
	}
	return AppResult{ref: m.externalTable.genOrInc(res), sat: true}
}

func (m *SddManager) applyHelper(t *VTree, isPrime bool, op Op, a, b SddPtr) (SddPtr, bool) {
	if t.IsLeaf() {
		bm := m.table.bddManagerAt(t.Index())
		r := applyOp(bm, op, a.bdd, b.bdd)
		if r.IsFalse() && isPrime {
			return SddPtr{}, false
		}
		return newBddSddPtr(r, t.Index()), true
	}

	idx := t.Index()
	if cached, ok := m.applyCache[idx].Get(op, a, b); ok {
		return cached, !m.isFalseSdd(cached)
	}

	var pairs []PrimeSub
	for _, ps1 := range m.table.sddOrPanic(a) {
		for _, ps2 := range m.table.sddOrPanic(b) {
			p, ok := m.applyHelper(t.Left(), true, OpAnd, ps1.Prime, ps2.Prime)
			if !ok {
				continue
			}
			s, ok := m.applyHelper(t.Right(), false, op, ps1.Sub, ps2.Sub)
			if !ok {
				// t.Right() is itself an internal node whose own
				// decomposition came out empty: that sub denotes false and
				// contributes nothing to this disjunction.
				continue
			}
			pairs = append(pairs, PrimeSub{p, s})
		}
	}
	pairs = m.buildSddOr(t.Left(), pairs)
	res := m.table.getOrInsertSdd(idx, SddOr{Nodes: pairs})
	m.applyCache[idx].Put(op, a, b, res)

	// An internal node whose cross product leaves no pair standing, because
	// every prime combination collapsed to false, denotes the false
	// function: an entirely empty decomposition is unsat. Unlike the leaf
	// case above, this does not depend on isPrime: a prime-role caller skips
	// the combination that produced it (the continue above), a sub-role
	// caller drops the pair (same continue, one level up), and Apply's
	// top-level caller surfaces it as AppResult.IsSat() == false.
	return res, len(pairs) > 0
}

// isFalseSdd reports whether p denotes the constant false function: a false
// BDD edge at a leaf, or a decomposition with no (prime, sub) pairs at all
// (the empty disjunction left once every prime has collapsed to false).
func (m *SddManager) isFalseSdd(p SddPtr) bool {
	if p.IsBdd() {
		return p.bdd.IsFalse()
	}
	return len(m.table.sddOrPanic(p)) == 0
}

// buildSddOr turns a raw (prime, sub) pair list into the canonical node list
// of an SddOr at the vtree node whose left child is left: pairs whose sub
// denotes false are dropped, since prime && false contributes nothing to the
// disjunction; pairs that still share an identical sub afterwards are merged
// by disjoining their primes, enforcing the compression invariant (no two
// pairs share a sub); the result is sorted and deduplicated for hash-consing.
// An empty result denotes the false function.
func (m *SddManager) buildSddOr(left *VTree, raw []PrimeSub) []PrimeSub {
	kept := raw[:0]
	for _, ps := range raw {
		if m.isFalseSdd(ps.Sub) {
			continue
		}
		kept = append(kept, ps)
	}

	merged := make(map[SddPtr]SddPtr, len(kept))
	order := make([]SddPtr, 0, len(kept))
	for _, ps := range kept {
		acc, ok := merged[ps.Sub]
		if !ok {
			merged[ps.Sub] = ps.Prime
			order = append(order, ps.Sub)
			continue
		}
		combined, ok := m.applyHelper(left, true, OpOr, acc, ps.Prime)
		if !ok {
			panic("rdd/sdd: compression: disjoining two non-false primes produced unsat")
		}
		merged[ps.Sub] = combined
	}

	out := make([]PrimeSub, 0, len(order))
	for _, sub := range order {
		out = append(out, PrimeSub{Prime: merged[sub], Sub: sub})
	}
	return sortDedupPairs(out)
}

// Print renders the SDD behind ref as a nested prime/sub expression,
// falling through to the owning leaf's rdd.BddManager.Print at the bottom
// of each decomposition. Grounded on
// original_source/src/sdd_manager.rs's print_sdd.
func (m *SddManager) Print(ref ExternalRef) string {
	return m.printHelper(m.externalTable.intoInternal(ref))
}

func (m *SddManager) printHelper(p SddPtr) string {
	if p.IsBdd() {
		bm := m.table.bddManagerAt(p.vtreeIdx)
		return bm.Print(p.bdd)
	}
	var b strings.Builder
	b.WriteString("\\/")
	for _, ps := range m.table.sddOrPanic(p) {
		fmt.Fprintf(&b, "(/\\ %s %s)", m.printHelper(ps.Prime), m.printHelper(ps.Sub))
	}
	return b.String()
}
