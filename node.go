// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rdd

// BddNode is a uniquely-stored triple (var, low, high): the decision
// variable and its two co-factor edges. BddNode values are immutable once
// stored; BddTable hands out a BddPtr that names one, never the struct
// itself.
type BddNode struct {
	Var  VarLabel
	Low  BddPtr
	High BddPtr
}

// Bdd is a destructured, read-only view of a dereferenced BddPtr: either one
// of the two constants, or the stored node an edge points to. It is produced
// by BddTable.Deref and is never itself stored.
type Bdd struct {
	node    BddNode
	ptrType PtrType
}

// IsTrue reports whether this view is the constant true.
func (b Bdd) IsTrue() bool { return b.ptrType == PtrTrue }

// IsFalse reports whether this view is the constant false.
func (b Bdd) IsFalse() bool { return b.ptrType == PtrFalse }

// IsNode reports whether this view is a stored decision node.
func (b Bdd) IsNode() bool { return b.ptrType == PtrNode }

// IntoNode returns the underlying BddNode. It panics if this view is a
// constant, matching original_source/src/repr/bdd.rs's Bdd::into_node, which
// is a precondition violation per spec.md's error taxonomy: callers are
// expected to check IsNode (or dispatch on Type) first.
func (b Bdd) IntoNode() BddNode {
	if b.ptrType != PtrNode {
		panicf("rdd: IntoNode called on a non-node Bdd")
	}
	return b.node
}
