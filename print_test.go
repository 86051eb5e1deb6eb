// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rdd

import (
	"strings"
	"testing"
)

func TestPrintConstants(t *testing.T) {
	m := NewDefaultOrder(1)
	if got := m.Print(m.True()); got != "T" {
		t.Fatalf("Print(True) = %q, want %q", got, "T")
	}
	if got := m.Print(m.False()); got != "F" {
		t.Fatalf("Print(False) = %q, want %q", got, "F")
	}
}

func TestPrintNode(t *testing.T) {
	m := NewDefaultOrder(1)
	v0 := m.Var(0, true)
	got := m.Print(v0)
	if !strings.Contains(got, "v0") {
		t.Fatalf("Print(v0) = %q, should mention v0", got)
	}
}

func TestPrintLabeled(t *testing.T) {
	m := NewDefaultOrder(1)
	v0 := m.Var(0, true)
	got := m.PrintLabeled(v0, map[VarLabel]string{0: "enabled"})
	if !strings.Contains(got, "enabled") {
		t.Fatalf("PrintLabeled(v0) = %q, should mention the custom label", got)
	}
}

func TestPrintDotContainsNodes(t *testing.T) {
	m := NewDefaultOrder(2)
	f := m.And(m.Var(0, true), m.Var(1, true))
	got := m.PrintDot(f)
	if !strings.HasPrefix(got, "digraph bdd {") {
		t.Fatalf("PrintDot should start with a digraph header, got %q", got)
	}
	if !strings.Contains(got, "label=\"v0\"") || !strings.Contains(got, "label=\"v1\"") {
		t.Fatalf("PrintDot should label both nodes: %q", got)
	}
}
