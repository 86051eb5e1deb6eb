// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package rdd defines Reduced Ordered Binary Decision Diagrams (ROBDDs) with
complement edges: a canonical, hash-consed representation of Boolean
functions over a fixed, named set of variables.

Basics

Each BddManager owns a VarOrder, a uniqueness store (BddTable), and an
apply-cache (BddApplyTable). Variables are VarLabel values placed at a
position (Level) in the order; level 0 is the top of the diagram. Most
operations return a BddPtr: a 64-bit value that names either a constant or a
stored (var, low, high) triple, plus a complement bit that negates the
function it points to without needing a second copy of the node.

Complement edges

A BddPtr with its complement bit set denotes the negation of the node it
points to. This halves node counts and makes negation a constant-time bit
flip, at the cost of a canonicity rule enforced on every insertion: the
high child of a stored node is never itself complemented. When inserting a
node whose would-be high child is complemented, both children are negated
and the complement bit is moved to the returned edge instead (see
BddManager's unexported getOrInsert).

Use of generics

Weighted model counting (WMC) is parameterized over the caller's numeric
semiring via Go generics (BddWmc[T], WMC[T]) rather than an interface with
Add/Mul methods, so that plain numeric types (int, float64, ...) can be used
directly with their native + and * operators.

Sentential Decision Diagrams

The companion package rdd/sdd builds Sentential Decision Diagrams (SDDs)
over a vtree, delegating to an inner BddManager at each vtree leaf.

No garbage collection

Nodes are never deleted: memory grows monotonically for the lifetime of a
manager. There is no dynamic reordering and no concurrent access; every
manager is single-threaded.
*/
package rdd
