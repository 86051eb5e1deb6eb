// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rdd

// configs stores the tunable parameters of a BddManager.
type configs struct {
	nodesize    int // initial number of nodes per variable bucket in BddTable
	cachesize   int // initial number of entries in BddApplyTable
	cacheratio  int // ratio (%) of cache size to total node count (0 if size is constant)
	maxnodesize int // maximum number of nodes per variable bucket (0 if no limit)
}

func makeconfigs() *configs {
	return &configs{
		nodesize:   8,
		cachesize:  10000,
		cacheratio: 0,
	}
}

// ManagerOption configures a BddManager at construction time, following the
// teacher's config.go functional-options pattern.
type ManagerOption func(*configs)

// WithNodesize is a configuration option. Used as a parameter in New, it
// sets a preferred initial size for each per-variable bucket the uniqueness
// table creates at construction; buckets added later by NewVar start with
// room for 8 nodes. The table grows on demand; this only affects how many
// times it needs to grow.
func WithNodesize(size int) ManagerOption {
	return func(c *configs) {
		if size > 0 {
			c.nodesize = size
		}
	}
}

// WithMaxNodesize is a configuration option. Used as a parameter in New, it
// sets a limit on the number of nodes that can be stored for any single
// variable. Exceeding this limit is an index-overflow precondition violation
// (see errors.go) since BddPtr packs the per-variable index into a fixed
// number of bits. The default value (0) means no limit other than the bit
// width of BddPtr itself.
func WithMaxNodesize(size int) ManagerOption {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// WithCachesize is a configuration option. Used as a parameter in New, it
// sets the initial number of entries in the apply cache. The default value
// is 10 000.
func WithCachesize(size int) ManagerOption {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}

// WithCacheratio is a configuration option. Used as a parameter in New, it
// sets a "cache ratio" (%): the apply cache will be resized to keep this
// many entries per 100 nodes in the uniqueness table. The default value (0)
// means the cache size never grows after construction.
func WithCacheratio(ratio int) ManagerOption {
	return func(c *configs) {
		c.cacheratio = ratio
	}
}
