// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sdd

// ExternalRef is a caller-facing handle to an SDD, standing in for an
// internal SddPtr so callers never see the vtree-index/decomposition-id
// internals. Grounded on original_source/src/sdd_manager.rs's
// ExternalRef/ExternalRefTable.
type ExternalRef uint64

// externalRefTable is a two-way map between internal SddPtrs and the
// ExternalRefs handed out for them: every distinct internal pointer gets
// exactly one external handle, assigned the first time it is seen.
type externalRefTable struct {
	toExternal map[SddPtr]ExternalRef
	toInternal map[ExternalRef]SddPtr
	next       ExternalRef
}

func newExternalRefTable() *externalRefTable {
	return &externalRefTable{
		toExternal: make(map[SddPtr]ExternalRef),
		toInternal: make(map[ExternalRef]SddPtr),
	}
}

// genOrInc returns the existing external handle for p, or mints a fresh one.
func (t *externalRefTable) genOrInc(p SddPtr) ExternalRef {
	if r, ok := t.toExternal[p]; ok {
		return r
	}
	r := t.next
	t.next++
	t.toExternal[p] = r
	t.toInternal[r] = p
	return r
}

// intoInternal resolves an external handle back to its internal pointer.
// Panics on an unknown handle, a precondition violation (the handle must
// have come from this same manager).
func (t *externalRefTable) intoInternal(r ExternalRef) SddPtr {
	p, ok := t.toInternal[r]
	if !ok {
		panic("rdd/sdd: unknown ExternalRef for this manager")
	}
	return p
}

// AppResult is the outcome of Apply: either the handle for a satisfiable
// result, or Unsat. This replaces the Rust source's
// `panic!("unsat base sdd")` — the REDESIGN FLAGS section of spec.md calls
// that out directly — with the AppResult type the Rust source already
// declares (Sat/Unsat) but never actually uses.
type AppResult struct {
	ref ExternalRef
	sat bool
}

// IsSat reports whether Apply's result is satisfiable, i.e. Apply returned a
// handle rather than Unsat.
func (r AppResult) IsSat() bool {
	return r.sat
}

// Ref returns the result handle and true if IsSat, or the zero value and
// false otherwise.
func (r AppResult) Ref() (ExternalRef, bool) {
	return r.ref, r.sat
}
