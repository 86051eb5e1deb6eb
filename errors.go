// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rdd

import (
	"fmt"
	"log"
)

// Error returns the error status of the manager. We return an empty string if
// there are no errors. Errors recorded here are recoverable conditions (the
// apply cache growth limit hit by WithCacheratio, see maybeGrowCache); they
// never invalidate BddPtr values already returned to the caller.
func (m *BddManager) Error() string {
	if m.err == nil {
		return ""
	}
	return m.err.Error()
}

// Errored returns true if there was a recoverable error during a previous
// computation.
func (m *BddManager) Errored() bool {
	return m.err != nil
}

func (m *BddManager) seterror(format string, a ...interface{}) {
	if m.err != nil {
		format = format + "; " + m.Error()
	}
	m.err = fmt.Errorf(format, a...)
	if _DEBUG {
		log.Println(m.err)
	}
}

// panicf reports a precondition violation: a programmer error such as
// dereferencing a constant edge as a node, an empty CNF clause, or an index
// overflow in the uniqueness table. These are never recoverable and match spec.md's "Precondition
// violation" / "Index overflow" error kinds.
func panicf(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}
