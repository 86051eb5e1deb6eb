// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rdd

// BackingCacheStats reports diagnostics shared by BddTable and
// BddApplyTable: accesses, hits, misses and (for the apply cache's
// direct-mapped slots) evictions. Mirrors the uniqueAccess/uniqueHit/
// uniqueMiss counters the teacher keeps in hudd.go's tables and cache.go's
// apply cache, generalized to this package's sharded/direct-mapped layout.
//
// BddTable.Stats().Collisions is always 0: Go's native map hides
// hash-bucket collisions as an implementation detail (unlike the teacher's
// buddy-tag variant, which chains collisions explicitly in its own
// open-addressed table — see DESIGN.md for why that variant was dropped
// rather than adapted). BddApplyTable.Stats().Collisions is real: its
// direct-mapped slots evict on key mismatch, and every eviction is counted.
type BackingCacheStats struct {
	Access     int64
	Hits       int64
	Misses     int64
	Collisions int64
}

func (s BackingCacheStats) add(o BackingCacheStats) BackingCacheStats {
	return BackingCacheStats{
		Access: s.Access + o.Access,
		Hits:   s.Hits + o.Hits,
		Misses: s.Misses + o.Misses,
	}
}

// toplessKey is the hash-cons key for a stored node: the pair (low, high),
// compared by raw bit pattern as spec.md §4.1 requires.
type toplessKey struct {
	low, high BddPtr
}

// bucket is the per-variable shard of the uniqueness store: BddTable is
// sharded by variable level so that a BddPtr's idx field only has to be
// unique within one variable, letting the table pack (var, idx) into a
// single 64-bit pointer.
type bucket struct {
	nodes  []BddNode
	unique map[toplessKey]uint64
	stats  BackingCacheStats
}

func newBucket(nodesize int) *bucket {
	return &bucket{
		nodes:  make([]BddNode, 0, nodesize),
		unique: make(map[toplessKey]uint64, nodesize),
	}
}

// BddTable is the uniqueness store (hash-consing table) for BDD nodes: it
// guarantees at most one stored node per distinct (var, low, high), per
// spec.md §4.1 invariant 4.
type BddTable struct {
	order       *VarOrder
	buckets     []*bucket
	maxnodesize int // 0 = unlimited (besides BddPtr's idx bit width)
}

// NewBddTable returns an empty uniqueness store for the variables already
// present in order, with an initial per-variable bucket capacity of
// nodesize. maxnodesize caps how many nodes any single variable's bucket may
// hold (0 means unlimited, besides BddPtr's idx bit width); GetOrInsert
// enforces it.
func NewBddTable(order *VarOrder, nodesize, maxnodesize int) *BddTable {
	t := &BddTable{order: order, maxnodesize: maxnodesize}
	for i := 0; i < order.Len(); i++ {
		t.buckets = append(t.buckets, newBucket(nodesize))
	}
	return t
}

// Order returns the variable order this table was built against.
func (t *BddTable) Order() *VarOrder {
	return t.order
}

// NewLast appends a fresh, empty bucket for a newly introduced variable at
// the deepest level, and returns its label.
func (t *BddTable) NewLast() VarLabel {
	lbl := t.order.NewVar()
	t.buckets = append(t.buckets, newBucket(8))
	return lbl
}

// GetOrInsert returns the unique edge for an already-normalized node: the
// caller is responsible for spec.md's reduction invariant (low != high) and
// complement-edge canonicity (high never complemented) before calling this;
// BddManager.getOrInsert enforces both. GetOrInsert itself panics on
// low == high but does not check canonicity; it enforces ordering (var
// strictly above low.Var and high.Var), uniqueness, and the maxnodesize
// limit.
func (t *BddTable) GetOrInsert(v VarLabel, low, high BddPtr) BddPtr {
	if low == high {
		panicf("rdd: GetOrInsert called with low == high (%v); caller must reduce first", low)
	}
	if !low.IsConst() && !t.order.Lt(v, low.Var()) {
		panicf("rdd: variable ordering violated: %d is not above low's variable %d", v, low.Var())
	}
	if !high.IsConst() && !t.order.Lt(v, high.Var()) {
		panicf("rdd: variable ordering violated: %d is not above high's variable %d", v, high.Var())
	}
	b := t.bucketFor(v)
	b.stats.Access++
	key := toplessKey{low, high}
	if idx, ok := b.unique[key]; ok {
		b.stats.Hits++
		return newNodePtr(v, idx)
	}
	b.stats.Misses++
	if t.maxnodesize > 0 && len(b.nodes) >= t.maxnodesize {
		panicf("rdd: node table for variable %d exceeds configured limit of %d nodes", v, t.maxnodesize)
	}
	idx := uint64(len(b.nodes))
	b.nodes = append(b.nodes, BddNode{Var: v, Low: low, High: high})
	b.unique[key] = idx
	return newNodePtr(v, idx)
}

// Deref projects a stored node back to a structural view. Constant edges are
// synthesized directly from the special bit and never touch the table.
func (t *BddTable) Deref(p BddPtr) Bdd {
	switch p.Type() {
	case PtrTrue:
		return Bdd{ptrType: PtrTrue}
	case PtrFalse:
		return Bdd{ptrType: PtrFalse}
	default:
		b := t.bucketFor(p.Var())
		n := b.nodes[p.tableIdx()]
		if p.IsCompl() {
			n.Low = n.Low.Neg()
			n.High = n.High.Neg()
		}
		return Bdd{ptrType: PtrNode, node: n}
	}
}

func (t *BddTable) bucketFor(v VarLabel) *bucket {
	l := t.order.Position(v)
	return t.buckets[l]
}

// NumNodes returns the total number of distinct nodes stored across all
// variables.
func (t *BddTable) NumNodes() int {
	total := 0
	for _, b := range t.buckets {
		total += len(b.nodes)
	}
	return total
}

// Stats returns the aggregate uniqueness-table diagnostics across all
// variable buckets.
func (t *BddTable) Stats() BackingCacheStats {
	var s BackingCacheStats
	for _, b := range t.buckets {
		s = s.add(b.stats)
	}
	return s
}
