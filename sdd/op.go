// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sdd

import "github.com/dalzilio/rdd"

// Op names the boolean connective Apply computes, mirroring the teacher's
// Operator enum in operator.go but restricted to the connectives Apply
// actually needs: the cross-product's prime half is always conjunction
// (see applyHelper), only the sub half varies by Op.
type Op int

const (
	OpAnd Op = iota
	OpOr
	OpIff
)

func applyOp(bm *rdd.BddManager, op Op, a, b rdd.BddPtr) rdd.BddPtr {
	switch op {
	case OpAnd:
		return bm.And(a, b)
	case OpOr:
		return bm.Or(a, b)
	case OpIff:
		return bm.Iff(a, b)
	default:
		panic("rdd/sdd: unknown Op")
	}
}
