// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rdd

import "fmt"

// BddManager owns one VarOrder, one BddTable (the uniqueness store) and one
// BddApplyTable (the And memo cache). It is the entry point for every
// operation in this package; a BddPtr only means something relative to the
// BddManager that produced it. BddManager is not safe for concurrent use:
// spec.md places concurrency out of scope, and the teacher's own BDD type
// carries the same single-threaded assumption.
type BddManager struct {
	order      *VarOrder
	table      *BddTable
	applyCache *BddApplyTable
	cfg        *configs
	err        error
}

// New returns a manager over an existing VarOrder, with no variables
// materialized in the uniqueness table yet beyond what order.Len() names.
func New(order *VarOrder, opts ...ManagerOption) *BddManager {
	cfg := makeconfigs()
	for _, opt := range opts {
		opt(cfg)
	}
	return &BddManager{
		order:      order,
		table:      NewBddTable(order, cfg.nodesize, cfg.maxnodesize),
		applyCache: NewBddApplyTable(cfg.cachesize),
		cfg:        cfg,
	}
}

// NewDefaultOrder returns a manager over numVars variables in the default
// linear order (VarLabel(k) at level k), mirroring the teacher's New(n,
// opts...) entry point.
func NewDefaultOrder(numVars int, opts ...ManagerOption) *BddManager {
	return New(NewVarOrder(numVars), opts...)
}

// Order returns the variable order backing this manager.
func (m *BddManager) Order() *VarOrder {
	return m.order
}

// NewVar introduces a fresh variable at the deepest level of the order and
// returns its label.
func (m *BddManager) NewVar() VarLabel {
	return m.table.NewLast()
}

// True returns the constant true edge.
func (m *BddManager) True() BddPtr {
	return trueBddPtr
}

// False returns the constant false edge.
func (m *BddManager) False() BddPtr {
	return falseBddPtr
}

// Var returns the literal for variable lbl: the positive literal if
// polarity is true, its negation otherwise.
func (m *BddManager) Var(lbl VarLabel, polarity bool) BddPtr {
	p := m.getOrInsert(lbl, falseBddPtr, trueBddPtr)
	if !polarity {
		p = p.Neg()
	}
	return p
}

// getOrInsert enforces complement-edge canonicity (invariant 3 of spec.md
// §4.1: the high edge is never complemented) before delegating to the
// uniqueness table. If low == high the node would be redundant; the caller
// is expected to have already folded that case away, since every algorithm
// here treats "new_h == new_l" as a reduction opportunity rather than a
// table lookup.
func (m *BddManager) getOrInsert(v VarLabel, low, high BddPtr) BddPtr {
	if low == high {
		return low
	}
	if !high.IsCompl() {
		return m.table.GetOrInsert(v, low, high)
	}
	return m.table.GetOrInsert(v, low.Neg(), high.Neg()).Neg()
}

// And computes the conjunction of f and g. This is the one genuinely
// recursive operation in the package; every other boolean connective is
// expressed in terms of it and Neg (De Morgan is free under complement
// edges). Grounded on original_source/src/manager/bdd_manager.rs's and/
// and_helper.
func (m *BddManager) And(f, g BddPtr) BddPtr {
	// terminal cases
	if f.IsTrue() {
		return g
	}
	if g.IsTrue() {
		return f
	}
	if f.IsFalse() || g.IsFalse() {
		return falseBddPtr
	}
	if f == g {
		return f
	}
	if f.Regular() == g.Regular() {
		// f and g are complements of each other
		return falseBddPtr
	}

	// normalize argument order so the apply cache sees each unordered pair
	// exactly once regardless of call order
	if f.raw() > g.raw() {
		f, g = g, f
	}

	if res, ok := m.applyCache.Get(f, g); ok {
		return res
	}

	fIsTop, gIsTop := true, true
	var topLevel Level
	switch {
	case f.IsConst():
		topLevel = m.order.Position(g.Var())
		fIsTop = false
	case g.IsConst():
		topLevel = m.order.Position(f.Var())
		gIsTop = false
	default:
		lf, lg := m.order.Position(f.Var()), m.order.Position(g.Var())
		switch {
		case lf < lg:
			topLevel, gIsTop = lf, false
		case lg < lf:
			topLevel, fIsTop = lg, false
		default:
			topLevel = lf
		}
	}

	fLow, fHigh := f, f
	if fIsTop {
		n := m.table.Deref(f).IntoNode()
		fLow, fHigh = n.Low, n.High
	}
	gLow, gHigh := g, g
	if gIsTop {
		n := m.table.Deref(g).IntoNode()
		gLow, gHigh = n.Low, n.High
	}

	newLow := m.And(fLow, gLow)
	newHigh := m.And(fHigh, gHigh)

	var res BddPtr
	if newLow == newHigh {
		res = newLow
	} else {
		res = m.getOrInsert(m.order.VarAt(topLevel), newLow, newHigh)
	}
	m.applyCache.Put(f, g, res)
	m.maybeGrowCache()
	return res
}

// maxApplyCacheSize bounds how large WithCacheratio is allowed to grow the
// apply cache. It is a sanity limit on memory use, not a precondition of the
// representation, so exceeding it is a recoverable condition: the manager
// keeps running at its current cache capacity instead of growing without
// bound.
const maxApplyCacheSize = 1 << 24

// maybeGrowCache resizes the apply cache once the uniqueness table has grown
// enough, relative to WithCacheratio, to warrant more cache entries. A no-op
// unless WithCacheratio was configured with a positive ratio.
func (m *BddManager) maybeGrowCache() {
	if m.cfg.cacheratio <= 0 {
		return
	}
	want := m.table.NumNodes() * m.cfg.cacheratio / 100
	if want <= m.applyCache.Size() {
		return
	}
	if want > maxApplyCacheSize {
		if m.err == nil {
			m.seterror("rdd: WithCacheratio requested an apply cache of %d entries, exceeding the %d-entry limit; keeping the current %d-entry cache", want, maxApplyCacheSize, m.applyCache.Size())
		}
		return
	}
	m.applyCache.Resize(primeGte(want))
}

// Or computes the disjunction of f and g via De Morgan: free to express,
// since negation is just a complement-bit flip.
func (m *BddManager) Or(f, g BddPtr) BddPtr {
	return m.And(f.Neg(), g.Neg()).Neg()
}

// Iff computes the biconditional of f and g as the conjunction of the two
// implications.
func (m *BddManager) Iff(f, g BddPtr) BddPtr {
	return m.And(m.Or(f.Neg(), g), m.Or(g.Neg(), f))
}

// Negate returns the logical negation of f.
func (m *BddManager) Negate(f BddPtr) BddPtr {
	return f.Neg()
}

// AndList folds And over fs left to right, starting from True. Returns True
// for an empty list.
func (m *BddManager) AndList(fs ...BddPtr) BddPtr {
	res := m.True()
	for _, f := range fs {
		res = m.And(res, f)
	}
	return res
}

// OrList folds Or over fs left to right, starting from False. Returns False
// for an empty list.
func (m *BddManager) OrList(fs ...BddPtr) BddPtr {
	res := m.False()
	for _, f := range fs {
		res = m.Or(res, f)
	}
	return res
}

// BalancedAnd folds And over fs divide-and-conquer style instead of
// left-to-right, matching the shape original_source/src/manager/
// bdd_manager.rs's from_cnf uses internally for clause conjunction. Useful
// on its own for conjoining a batch of formulas without going through
// FromCNF.
func (m *BddManager) BalancedAnd(fs []BddPtr) BddPtr {
	switch len(fs) {
	case 0:
		return m.True()
	case 1:
		return fs[0]
	default:
		mid := len(fs) / 2
		left := m.BalancedAnd(fs[:mid])
		right := m.BalancedAnd(fs[mid:])
		return m.And(left, right)
	}
}

// Condition fixes variable v to value in f, eliminating it: every occurrence
// of v is replaced by the corresponding branch. Grounded on
// original_source/src/manager/bdd_manager.rs's cond_helper.
func (m *BddManager) Condition(f BddPtr, v VarLabel, value bool) BddPtr {
	vLevel := m.order.Position(v)
	memo := make(map[BddPtr]BddPtr)
	var helper func(BddPtr) BddPtr
	helper = func(p BddPtr) BddPtr {
		if p.IsConst() {
			return p
		}
		if res, ok := memo[p]; ok {
			return res
		}
		n := m.table.Deref(p).IntoNode()
		var res BddPtr
		switch {
		case n.Var == v:
			if value {
				res = n.High
			} else {
				res = n.Low
			}
		case m.order.Position(n.Var) > vLevel:
			// v is strictly above this node; it cannot occur further down
			res = p
		default:
			newLow := helper(n.Low)
			newHigh := helper(n.High)
			if newLow == newHigh {
				res = newLow
			} else {
				res = m.getOrInsert(n.Var, newLow, newHigh)
			}
		}
		memo[p] = res
		return res
	}
	return helper(f)
}

// Exists existentially quantifies v out of f: Condition(f,v,true) ||
// Condition(f,v,false).
func (m *BddManager) Exists(f BddPtr, v VarLabel) BddPtr {
	return m.Or(m.Condition(f, v, true), m.Condition(f, v, false))
}

// Relabel renames every occurrence of variable old in f to new. The caller
// is responsible for choosing a new whose level is compatible with f's
// existing variable ordering; a violation surfaces as the same ordering
// panic BddTable.GetOrInsert raises for any malformed node.
func (m *BddManager) Relabel(f BddPtr, old, new VarLabel) BddPtr {
	memo := make(map[BddPtr]BddPtr)
	var helper func(BddPtr) BddPtr
	helper = func(p BddPtr) BddPtr {
		if p.IsConst() {
			return p
		}
		if res, ok := memo[p]; ok {
			return res
		}
		n := m.table.Deref(p).IntoNode()
		v := n.Var
		if v == old {
			v = new
		}
		newLow := helper(n.Low)
		newHigh := helper(n.High)
		var res BddPtr
		if newLow == newHigh {
			res = newLow
		} else {
			res = m.getOrInsert(v, newLow, newHigh)
		}
		memo[p] = res
		return res
	}
	return helper(f)
}

// Eval evaluates f under a total assignment, following one root-to-leaf
// path. Panics if assignment is missing a variable f actually branches on.
func (m *BddManager) Eval(f BddPtr, assignment map[VarLabel]bool) bool {
	p := f
	for !p.IsConst() {
		n := m.table.Deref(p).IntoNode()
		val, ok := assignment[n.Var]
		if !ok {
			panicf("rdd: Eval: assignment is missing variable %d", n.Var)
		}
		if val {
			p = n.High
		} else {
			p = n.Low
		}
	}
	return p.IsTrue()
}

// IsVar reports whether f is exactly a single-variable literal (positive or
// negative), i.e. a node whose low edge is False and high edge is True, up
// to the top-level complement bit.
func (m *BddManager) IsVar(f BddPtr) bool {
	if f.IsConst() {
		return false
	}
	n := m.table.Deref(f.Regular()).IntoNode()
	return n.Low.IsFalse() && n.High.IsTrue()
}

// EqBdd reports whether a and b denote the same function. Since this
// package maintains full reduction and complement-edge canonicity, equal
// functions are always represented by the identical BddPtr value, so this
// is just pointer equality.
func (m *BddManager) EqBdd(a, b BddPtr) bool {
	return a == b
}

// CountNodes returns the number of distinct nodes reachable from f (the DAG
// size of the function), not the total size of the uniqueness table.
func (m *BddManager) CountNodes(f BddPtr) int {
	seen := make(map[BddPtr]bool)
	var helper func(BddPtr)
	helper = func(p BddPtr) {
		if p.IsConst() {
			return
		}
		r := p.Regular()
		if seen[r] {
			return
		}
		seen[r] = true
		n := m.table.Deref(p).IntoNode()
		helper(n.Low)
		helper(n.High)
	}
	helper(f)
	return len(seen)
}

// NumNodes returns the total number of nodes stored in the manager's
// uniqueness table, across every function ever built.
func (m *BddManager) NumNodes() int {
	return m.table.NumNodes()
}

// Stats formats the uniqueness table's and apply cache's diagnostics for
// human consumption, in the spirit of the teacher's Stats() in stdio.go.
func (m *BddManager) Stats() string {
	ts := m.table.Stats()
	as := m.applyCache.Stats()
	return fmt.Sprintf(
		"table: access=%d hits=%d misses=%d, apply cache: access=%d hits=%d misses=%d collisions=%d",
		ts.Access, ts.Hits, ts.Misses,
		as.Access, as.Hits, as.Misses, as.Collisions,
	)
}
