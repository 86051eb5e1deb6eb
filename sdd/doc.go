// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package sdd implements Sentential Decision Diagrams (SDDs) over a vtree:
// a structured, strongly canonical form that generalizes the BDDs of the
// parent rdd package by decomposing a function along a hierarchical
// partition of its variables rather than one flat total order.
//
// A VTree fixes that partition: every leaf owns a disjoint slice of
// variables and is backed by its own inner rdd.BddManager; every internal
// node combines its two children's functions through a "prime/sub"
// decomposition, a disjunction of (prime, sub) pairs where the primes form
// a partition of the left subtree's domain. SddManager owns one VTree, the
// SddTable that hash-conses decompositions per vtree node, and a cache of
// externally-visible handles (ExternalRef) so callers never touch an
// internal SddPtr directly.
//
// Like rdd, this package performs no garbage collection, reordering, or
// concurrency control: a SddManager's lifetime is the caller's, and it is
// not safe for concurrent use.
package sdd
