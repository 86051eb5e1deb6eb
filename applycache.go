// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rdd

// BddApplyTable memoizes the result of And(f, g) for unordered pairs of
// operands. It is a fixed-capacity, direct-mapped, prime-sized hash table:
// a collision does not chain, it evicts the resident entry, exactly like the
// teacher's cache.go data3ncache/data4ncache tables. Capacity is fixed at
// construction unless the owning manager grows it via Resize (see
// BddManager.maybeGrowCache, driven by WithCacheratio).
type BddApplyTable struct {
	slots []applySlot
	size  uint64
	stats BackingCacheStats
}

type applySlot struct {
	used bool
	key  applyKey
	res  BddPtr
}

type applyKey struct {
	f, g BddPtr
}

// NewBddApplyTable returns an empty apply cache sized to the smallest prime
// greater than or equal to cachesize, mirroring the teacher's use of
// primeGte to size cache.go's tables.
func NewBddApplyTable(cachesize int) *BddApplyTable {
	if cachesize < 1 {
		cachesize = 1
	}
	n := primeGte(cachesize)
	return &BddApplyTable{
		slots: make([]applySlot, n),
		size:  uint64(n),
	}
}

// pairHash combines two raw BddPtr bit patterns into one mixed hash, in the
// spirit of the teacher's _PAIR macro in cache.go.
func pairHash(a, b uint64) uint64 {
	const (
		m1 = 0x9E3779B185EBCA87
		m2 = 0xC2B2AE3D27D4EB4F
	)
	h := a*m1 + b*m2
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	return h
}

// normalizedKey returns the lookup key for And(f, g): the apply cache is
// keyed on the unordered pair, since And is commutative and the manager
// always normalizes argument order before consulting the cache, but the
// cache is defensive about key order on its own so a caller mistake degrades
// to a cache miss rather than a wrong hit.
func normalizedKey(f, g BddPtr) applyKey {
	if f.raw() > g.raw() {
		f, g = g, f
	}
	return applyKey{f, g}
}

func (c *BddApplyTable) index(k applyKey) uint64 {
	return pairHash(k.f.raw(), k.g.raw()) % c.size
}

// Get looks up a memoized And(f, g) result.
func (c *BddApplyTable) Get(f, g BddPtr) (BddPtr, bool) {
	k := normalizedKey(f, g)
	c.stats.Access++
	s := &c.slots[c.index(k)]
	if s.used && s.key == k {
		c.stats.Hits++
		return s.res, true
	}
	c.stats.Misses++
	return 0, false
}

// Put records the result of And(f, g), evicting whatever previously
// occupied that slot.
func (c *BddApplyTable) Put(f, g, res BddPtr) {
	k := normalizedKey(f, g)
	s := &c.slots[c.index(k)]
	if s.used && s.key != k {
		c.stats.Collisions++
	}
	*s = applySlot{used: true, key: k, res: res}
}

// Stats returns the apply cache's diagnostics.
func (c *BddApplyTable) Stats() BackingCacheStats {
	return c.stats
}

// Size returns the apply cache's current entry capacity.
func (c *BddApplyTable) Size() int {
	return int(c.size)
}

// Resize grows the cache to newSize entries, rehashing every live entry into
// the new layout. A no-op if newSize does not exceed the current capacity:
// this cache only ever grows, matching WithCacheratio's "keep this many
// entries per 100 nodes" contract.
func (c *BddApplyTable) Resize(newSize int) {
	if newSize <= int(c.size) {
		return
	}
	old := c.slots
	c.slots = make([]applySlot, newSize)
	c.size = uint64(newSize)
	for _, s := range old {
		if s.used {
			c.Put(s.key.f, s.key.g, s.res)
		}
	}
}
