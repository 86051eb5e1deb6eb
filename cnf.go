// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rdd

// Lit is a literal: a variable together with its polarity (true = positive
// occurrence, false = negated occurrence).
type Lit struct {
	Var      VarLabel
	Polarity bool
}

// Clause is a disjunction of literals.
type Clause []Lit

// CNF is a conjunction of clauses: a formula in conjunctive normal form.
type CNF struct {
	Clauses []Clause
}

// FromCNF builds the BDD for a CNF formula, folding each clause's literals
// with OrList and then conjoining the clauses with BalancedAnd, matching the
// divide-and-conquer shape of original_source/src/manager/bdd_manager.rs's
// from_cnf. An empty clause is a precondition violation: it denotes False by
// definition, but admitting it silently would hide what is almost always a
// formula-construction bug upstream.
func (m *BddManager) FromCNF(c CNF) BddPtr {
	clauseBdds := make([]BddPtr, len(c.Clauses))
	for i, clause := range c.Clauses {
		if len(clause) == 0 {
			panicf("rdd: FromCNF: clause %d is empty", i)
		}
		lits := make([]BddPtr, len(clause))
		for j, lit := range clause {
			lits[j] = m.Var(lit.Var, lit.Polarity)
		}
		clauseBdds[i] = m.OrList(lits...)
	}
	return m.BalancedAnd(clauseBdds)
}
