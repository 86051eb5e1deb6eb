// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sdd

import (
	"testing"

	"github.com/dalzilio/rdd"
)

func TestEvenSplitLeaf(t *testing.T) {
	order := []rdd.VarLabel{0, 1, 2, 3}
	tree := EvenSplit(order, 0)
	if !tree.IsLeaf() {
		t.Fatal("0 splits should produce a single leaf")
	}
	if len(tree.LeafValue()) != 4 {
		t.Fatalf("leaf should own all 4 variables, got %v", tree.LeafValue())
	}
}

func TestEvenSplitBalances(t *testing.T) {
	order := []rdd.VarLabel{0, 1, 2, 3}
	tree := EvenSplit(order, 1)
	if tree.IsLeaf() {
		t.Fatal("1 split should produce an internal node")
	}
	left, right := tree.Left(), tree.Right()
	if !left.IsLeaf() || !right.IsLeaf() {
		t.Fatal("one split should produce two leaves")
	}
	if len(left.LeafValue()) != 2 || len(right.LeafValue()) != 2 {
		t.Fatalf("split should be balanced: left=%v right=%v", left.LeafValue(), right.LeafValue())
	}
}

func TestAssignIndicesPreorder(t *testing.T) {
	tree := EvenSplit([]rdd.VarLabel{0, 1, 2, 3}, 1)
	next := 0
	tree.assignIndices(&next)
	if tree.Index() != 0 {
		t.Fatalf("root index = %d, want 0", tree.Index())
	}
	if tree.Left().Index() != 1 {
		t.Fatalf("left child index = %d, want 1", tree.Left().Index())
	}
	if tree.Right().Index() != 2 {
		t.Fatalf("right child index = %d, want 2", tree.Right().Index())
	}
	if next != 3 {
		t.Fatalf("next = %d, want 3", next)
	}
}

func TestContainsLeafWith(t *testing.T) {
	tree := EvenSplit([]rdd.VarLabel{0, 1, 2, 3}, 1)
	if !containsLeafWith(tree.Left(), 0) {
		t.Error("left subtree should contain variable 0")
	}
	if containsLeafWith(tree.Left(), 3) {
		t.Error("left subtree should not contain variable 3")
	}
}
