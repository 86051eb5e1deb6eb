// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rdd

import "fmt"

// Bit layout of a BddPtr, from the low bit up:
//
//	var      [0 .. varBits)           variable label of the pointed node
//	special  [varBits .. varBits+1)   1 => constant edge (True/False)
//	compl    [varBits+1 .. varBits+2) 1 => this edge is complemented
//	idx      [varBits+2 .. 64)        index into BddTable's per-variable bucket
//
// This mirrors the BITFIELD! layout in original_source/src/repr/bdd.rs, minus
// the C-style bitfield macro (Go has no equivalent, so accessors are plain
// shifts/masks). The layout is an internal contract, not a stability
// commitment: callers only ever see a BddPtr as an opaque value with the
// methods below.
const (
	varBits = 24
	idxBits = 64 - varBits - 2

	varShift     = 0
	specialShift = varBits
	complShift   = varBits + 1
	idxShift     = varBits + 2

	varMask = (uint64(1) << varBits) - 1
	idxMask = (uint64(1) << idxBits) - 1

	// maxVar is the largest VarLabel that fits in the var field.
	maxVar = uint64(1)<<varBits - 1
	// maxIdx is the largest per-variable table index that fits in the idx
	// field; exceeding it is the "index overflow" precondition violation of
	// spec.md's error taxonomy.
	maxIdx = uint64(1)<<idxBits - 1
)

// VarLabel is a variable identity: an unsigned integer drawn from a compact
// range. Labels are created by a VarOrder at construction or by NewVar; they
// are never destroyed.
type VarLabel uint64

// Level is a position in a VarOrder: level 0 is the top of the diagram.
type Level int

// BddPtr is a value type encoding an edge of a BDD: a 64-bit packed (var,
// idx, special, compl) quadruple. BddPtr is always passed and returned by
// value and is freely copyable; its lifetime is that of the BddManager which
// produced it.
type BddPtr uint64

// trueBddPtr and falseBddPtr are the two canonical constant edges: the
// special bit set, var and idx both zero, differing only in the complement
// bit.
const (
	trueBddPtr  BddPtr = BddPtr(1) << specialShift
	falseBddPtr BddPtr = trueBddPtr | BddPtr(1)<<complShift
)

// newNodePtr builds the edge for a stored node at variable v, table index
// idx. The complement bit starts clear; canonicity normalization (if needed)
// happens in BddManager.getOrInsert before this is ever called.
func newNodePtr(v VarLabel, idx uint64) BddPtr {
	if uint64(v) > maxVar {
		panicf("rdd: variable label %d exceeds the %d-bit budget of BddPtr", v, varBits)
	}
	if idx > maxIdx {
		panicf("rdd: node table index %d exceeds the %d-bit budget of BddPtr", idx, idxBits)
	}
	return BddPtr(uint64(v)<<varShift | idx<<idxShift)
}

// IsConst reports whether p denotes one of the two constant edges.
func (p BddPtr) IsConst() bool {
	return (uint64(p)>>specialShift)&1 == 1
}

// IsCompl reports whether p's complement bit is set.
func (p BddPtr) IsCompl() bool {
	return (uint64(p)>>complShift)&1 == 1
}

// IsTrue reports whether p is exactly the constant true edge.
func (p BddPtr) IsTrue() bool {
	return p == trueBddPtr
}

// IsFalse reports whether p is exactly the constant false edge.
func (p BddPtr) IsFalse() bool {
	return p == falseBddPtr
}

// Regular returns the non-complemented form of p: the same edge with its
// complement bit cleared.
func (p BddPtr) Regular() BddPtr {
	return p &^ (BddPtr(1) << complShift)
}

// Neg returns the logical negation of p: its complement bit flipped. This is
// the whole cost of negation under the complement-edge representation.
func (p BddPtr) Neg() BddPtr {
	return p ^ (BddPtr(1) << complShift)
}

// Var returns the variable label of the node p points to. Panics if p is a
// constant edge, since constants carry no variable.
func (p BddPtr) Var() VarLabel {
	if p.IsConst() {
		panicf("rdd: Var() called on a constant BddPtr")
	}
	return VarLabel((uint64(p) >> varShift) & varMask)
}

func (p BddPtr) tableIdx() uint64 {
	return (uint64(p) >> idxShift) & idxMask
}

// raw exposes the underlying 64-bit pattern, mainly for hashing and tests.
func (p BddPtr) raw() uint64 {
	return uint64(p)
}

// Uint64 exposes the underlying 64-bit pattern to other packages, so that a
// BddPtr can be embedded in a larger composite key (rdd/sdd's SddPtr does
// this) without this package needing to know about its callers.
func (p BddPtr) Uint64() uint64 {
	return uint64(p)
}

// PtrType tags the three kinds of edge a BddPtr can denote.
type PtrType int

const (
	PtrFalse PtrType = iota
	PtrTrue
	PtrNode
)

// Type classifies p as a node edge or one of the two constants.
func (p BddPtr) Type() PtrType {
	if !p.IsConst() {
		return PtrNode
	}
	if p.IsTrue() {
		return PtrTrue
	}
	return PtrFalse
}

func (p BddPtr) String() string {
	switch p.Type() {
	case PtrTrue:
		return "BddPtr(T)"
	case PtrFalse:
		return "BddPtr(F)"
	default:
		compl := ""
		if p.IsCompl() {
			compl = "!"
		}
		return fmt.Sprintf("%sBddPtr(var=%d, idx=%d)", compl, p.Var(), p.tableIdx())
	}
}
