// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rdd

// VarOrder is a bijection between VarLabels and levels 0..n, where level 0
// is the top of the diagram. It is the shared infrastructure used by both
// BddManager and, through an inner BddManager per vtree leaf, rdd/sdd's
// SddManager.
type VarOrder struct {
	level2var []VarLabel // level -> label
	var2level []Level    // label -> level, indexed by label value
}

// NewVarOrder returns the default (linear) order on n freshly created
// variables: VarLabel(k) sits at level k, mirroring
// original_source/src/manager/bdd_manager.rs's VarOrder::linear_order.
func NewVarOrder(n int) *VarOrder {
	o := &VarOrder{
		level2var: make([]VarLabel, n),
		var2level: make([]Level, n),
	}
	for k := 0; k < n; k++ {
		o.level2var[k] = VarLabel(k)
		o.var2level[k] = Level(k)
	}
	return o
}

// Len returns the number of variables currently in the order.
func (o *VarOrder) Len() int {
	return len(o.level2var)
}

// Position returns the level of variable v: its depth in the diagram, with 0
// at the top.
func (o *VarOrder) Position(v VarLabel) Level {
	if int(v) >= len(o.var2level) {
		panicf("rdd: variable %d is not in this VarOrder", v)
	}
	return o.var2level[v]
}

// VarAt returns the variable at level l. Panics if l is out of range; callers
// that may legitimately hit the sentinel level (LastVar) must check first.
func (o *VarOrder) VarAt(l Level) VarLabel {
	if int(l) < 0 || int(l) >= len(o.level2var) {
		panicf("rdd: level %d is not in this VarOrder", l)
	}
	return o.level2var[l]
}

// Above returns the variable immediately above v (one level shallower), and
// false if v is already at the top of the order.
func (o *VarOrder) Above(v VarLabel) (VarLabel, bool) {
	l := o.Position(v)
	if l == 0 {
		return 0, false
	}
	return o.level2var[l-1], true
}

// Below returns the variable immediately below v (one level deeper), and
// false if v is already at the bottom of the order.
func (o *VarOrder) Below(v VarLabel) (VarLabel, bool) {
	l := o.Position(v)
	if int(l)+1 >= len(o.level2var) {
		return 0, false
	}
	return o.level2var[l+1], true
}

// Lt reports whether a is strictly above b in the order (i.e. a's level is
// smaller than b's).
func (o *VarOrder) Lt(a, b VarLabel) bool {
	return o.Position(a) < o.Position(b)
}

// LastVar returns the sentinel level one past the deepest variable in the
// order. It is not the level of any real variable; it is used by WMC to mark
// "smooth all the way to the bottom" for a terminal edge.
func (o *VarOrder) LastVar() Level {
	return Level(len(o.level2var))
}

// NewVar appends a fresh variable at the deepest level of the order and
// returns its label.
func (o *VarOrder) NewVar() VarLabel {
	lbl := VarLabel(len(o.level2var))
	lvl := Level(len(o.level2var))
	o.level2var = append(o.level2var, lbl)
	o.var2level = append(o.var2level, lvl)
	return lbl
}
