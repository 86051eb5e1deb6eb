// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sdd

import "github.com/dalzilio/rdd"

// decompBucket is the per-vtree-internal-node hash-cons store of
// SddOr decompositions: a single vtree node in general holds few distinct
// decompositions, so a linear scan on insert is simpler than a general
// hash over slices and is what the Rust source's SddTable effectively does
// too (HashMap<SddOr, usize> hashes the whole Vec, which is no cheaper than
// a scan for the sizes these trees have in practice).
type decompBucket struct {
	nodes []SddOr
}

func (b *decompBucket) getOrInsert(o SddOr) uint64 {
	for i, existing := range b.nodes {
		if equalSddOr(existing, o) {
			return uint64(i)
		}
	}
	b.nodes = append(b.nodes, o)
	return uint64(len(b.nodes) - 1)
}

// SddTable is the backing store shared by every vtree node: an inner
// rdd.BddManager at each leaf, a decompBucket at each internal node, and the
// global<->local variable translation each leaf needs since its inner
// manager numbers its own variables 0..k-1 independently of the global
// rdd.VarLabel space. Grounded on original_source/src/sdd_manager.rs's
// SddTable (sdd_to_bdd/bdd_man/get_or_insert_sdd/sdd_or_panic).
type SddTable struct {
	bddManagers []*rdd.BddManager // indexed by vtree leaf index, nil at internal indices
	decomps     []*decompBucket   // indexed by vtree internal index, nil at leaf indices
	globalToLoc map[rdd.VarLabel]rdd.VarLabel
}

func newSddTable(vtree *VTree) *SddTable {
	n := countNodes(vtree)
	t := &SddTable{
		bddManagers: make([]*rdd.BddManager, n),
		decomps:     make([]*decompBucket, n),
		globalToLoc: make(map[rdd.VarLabel]rdd.VarLabel),
	}
	var walk func(*VTree)
	walk = func(node *VTree) {
		if node.IsLeaf() {
			vars := node.LeafValue()
			t.bddManagers[node.Index()] = rdd.NewDefaultOrder(len(vars))
			for i, v := range vars {
				t.globalToLoc[v] = rdd.VarLabel(i)
			}
			return
		}
		t.decomps[node.Index()] = &decompBucket{}
		walk(node.Left())
		walk(node.Right())
	}
	walk(vtree)
	return t
}

// bddManagerAt returns the inner BddManager owning vtree leaf idx.
func (t *SddTable) bddManagerAt(idx int) *rdd.BddManager {
	m := t.bddManagers[idx]
	if m == nil {
		panic("rdd/sdd: vtree index does not name a leaf")
	}
	return m
}

// localVar translates a global variable label to the local label its
// leaf-level BddManager uses.
func (t *SddTable) localVar(lbl rdd.VarLabel) rdd.VarLabel {
	local, ok := t.globalToLoc[lbl]
	if !ok {
		panic("rdd/sdd: variable does not belong to any vtree leaf")
	}
	return local
}

// getOrInsertSdd hash-conses a decomposition at vtree internal node idx.
func (t *SddTable) getOrInsertSdd(idx int, o SddOr) SddPtr {
	b := t.decomps[idx]
	if b == nil {
		panic("rdd/sdd: vtree index does not name an internal node")
	}
	id := b.getOrInsert(o)
	return newDecompSddPtr(idx, id)
}

// sddOrPanic returns the (prime, sub) pairs of a structured decomposition.
// Panics if p is a BDD edge, mirroring
// original_source/src/sdd_manager.rs's sdd_or_panic.
func (t *SddTable) sddOrPanic(p SddPtr) []PrimeSub {
	if p.kind != sddDecomp {
		panic("rdd/sdd: sddOrPanic called on a BDD-leaf SddPtr")
	}
	return t.decomps[p.vtreeIdx].nodes[p.decompID].Nodes
}
