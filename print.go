// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rdd

import (
	"fmt"
	"strings"
)

// Print renders f as a parenthesized if-then-else expression over raw
// variable indices, adapted from the teacher's stdio.go Print/dotlabel. The
// REDESIGN FLAG in spec.md §9 about the constant printer's "T"/"T" typo
// (original_source/src/manager/bdd_manager.rs's print_bdd prints both
// constants as "T") is fixed here: False prints as "F".
func (m *BddManager) Print(f BddPtr) string {
	return m.printHelper(f, nil)
}

// PrintLabeled renders f the same way as Print, but substitutes a caller
// name for any variable present in labels.
func (m *BddManager) PrintLabeled(f BddPtr, labels map[VarLabel]string) string {
	return m.printHelper(f, labels)
}

// PrintDot renders f as a Graphviz dot graph, adapted from the teacher's
// stdio.go PrintDot/dotlabel: one box per distinct node (shared structure
// drawn once), dashed edges for the low branch, solid edges for the high
// branch, and a dotted edge where the parent pointer is complemented.
func (m *BddManager) PrintDot(f BddPtr) string {
	var b strings.Builder
	b.WriteString("digraph bdd {\n")
	seen := make(map[BddPtr]bool)
	var walk func(BddPtr)
	walk = func(p BddPtr) {
		r := p.Regular()
		if p.IsConst() || seen[r] {
			return
		}
		seen[r] = true
		n := m.table.Deref(r).IntoNode()
		fmt.Fprintf(&b, "  n%d [label=\"v%d\"];\n", r.raw(), n.Var)
		writeEdge(&b, r, n.Low, "dashed")
		writeEdge(&b, r, n.High, "solid")
		walk(n.Low)
		walk(n.High)
	}
	walk(f)
	if f.IsConst() {
		b.WriteString("  root [label=\"" + m.Print(f) + "\"];\n")
	} else {
		style := "solid"
		if f.IsCompl() {
			style = "dotted"
		}
		fmt.Fprintf(&b, "  root -> n%d [style=%s];\n", f.Regular().raw(), style)
	}
	b.WriteString("}\n")
	return b.String()
}

func writeEdge(b *strings.Builder, parent, child BddPtr, style string) {
	switch child.Type() {
	case PtrTrue:
		fmt.Fprintf(b, "  n%d -> true%d [style=%s];\n", parent.raw(), parent.raw(), style)
	case PtrFalse:
		fmt.Fprintf(b, "  n%d -> false%d [style=%s];\n", parent.raw(), parent.raw(), style)
	default:
		if child.IsCompl() {
			style = "dotted"
		}
		fmt.Fprintf(b, "  n%d -> n%d [style=%s];\n", parent.raw(), child.Regular().raw(), style)
	}
}

func (m *BddManager) printHelper(p BddPtr, labels map[VarLabel]string) string {
	switch p.Type() {
	case PtrTrue:
		return "T"
	case PtrFalse:
		return "F"
	default:
		n := m.table.Deref(p).IntoNode()
		name := fmt.Sprintf("v%d", n.Var)
		if s, ok := labels[n.Var]; ok {
			name = s
		}
		return fmt.Sprintf("(%s ? %s : %s)", name, m.printHelper(n.High, labels), m.printHelper(n.Low, labels))
	}
}
