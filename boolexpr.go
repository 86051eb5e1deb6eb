// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rdd

// BoolExpr is a minimal boolean-expression AST: a literal, a conjunction or
// a disjunction. It exists so FromBoolExpr has something concrete to walk;
// parsing text into a BoolExpr is out of scope (spec.md §1 places the
// expression parser outside the core).
type BoolExpr interface {
	isBoolExpr()
}

// VarExpr is a literal occurrence of a variable.
type VarExpr struct {
	Var      VarLabel
	Polarity bool
}

// AndExpr is the conjunction of two subexpressions.
type AndExpr struct {
	L, R BoolExpr
}

// OrExpr is the disjunction of two subexpressions.
type OrExpr struct {
	L, R BoolExpr
}

func (VarExpr) isBoolExpr() {}
func (AndExpr) isBoolExpr() {}
func (OrExpr) isBoolExpr()  {}

// FromBoolExpr compiles a BoolExpr into a BDD by structural recursion.
func (m *BddManager) FromBoolExpr(e BoolExpr) BddPtr {
	switch x := e.(type) {
	case VarExpr:
		return m.Var(x.Var, x.Polarity)
	case AndExpr:
		return m.And(m.FromBoolExpr(x.L), m.FromBoolExpr(x.R))
	case OrExpr:
		return m.Or(m.FromBoolExpr(x.L), m.FromBoolExpr(x.R))
	default:
		panicf("rdd: FromBoolExpr: unknown BoolExpr implementation %T", e)
		return 0
	}
}
