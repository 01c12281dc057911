// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtmdd2

import (
	"math/big"

	"ddkit/dd/mdd"
	"ddkit/dd/mtmdd"
)

// PathCount returns the number of variable assignments for which the Bool
// node n evaluates to true. The value domain has no analogous notion of a
// satisfying path count, so this is defined only on the Boolean side.
func (m *Manager) PathCount(n Node) *big.Int {
	return m.bools.PathCount(n.Bool())
}

// And returns the conjunction of f and g if both are Bool nodes, or the
// Boolean Undet otherwise (mixing domains has no meaning for And).
func (m *Manager) And(f, g Node) Node {
	if f.Kind == KindBool && g.Kind == KindBool {
		return boolNode(m.bools.And(f.Bool(), g.Bool()))
	}
	return boolNode(mdd.Undet)
}

// Or returns the disjunction of f and g if both are Bool nodes.
func (m *Manager) Or(f, g Node) Node {
	if f.Kind == KindBool && g.Kind == KindBool {
		return boolNode(m.bools.Or(f.Bool(), g.Bool()))
	}
	return boolNode(mdd.Undet)
}

// Xor returns the exclusive-or of f and g if both are Bool nodes.
func (m *Manager) Xor(f, g Node) Node {
	if f.Kind == KindBool && g.Kind == KindBool {
		return boolNode(m.bools.Xor(f.Bool(), g.Bool()))
	}
	return boolNode(mdd.Undet)
}

// Not returns the negation of f if it is a Bool node.
func (m *Manager) Not(f Node) Node {
	if f.Kind == KindBool {
		return boolNode(m.bools.Not(f.Bool()))
	}
	return boolNode(mdd.Undet)
}

// Add returns f + g if both are Value nodes, or the value Undet otherwise.
func (m *Manager) Add(f, g Node) Node {
	if f.Kind == KindValue && g.Kind == KindValue {
		return valueNode(m.values.Add(f.Value(), g.Value()))
	}
	return valueNode(mtmdd.Undet)
}

// Sub returns f - g if both are Value nodes.
func (m *Manager) Sub(f, g Node) Node {
	if f.Kind == KindValue && g.Kind == KindValue {
		return valueNode(m.values.Sub(f.Value(), g.Value()))
	}
	return valueNode(mtmdd.Undet)
}

// Mul returns f * g if both are Value nodes.
func (m *Manager) Mul(f, g Node) Node {
	if f.Kind == KindValue && g.Kind == KindValue {
		return valueNode(m.values.Mul(f.Value(), g.Value()))
	}
	return valueNode(mtmdd.Undet)
}

// Div returns f / g if both are Value nodes.
func (m *Manager) Div(f, g Node) Node {
	if f.Kind == KindValue && g.Kind == KindValue {
		return valueNode(m.values.Div(f.Value(), g.Value()))
	}
	return valueNode(mtmdd.Undet)
}

// Min returns the pointwise minimum of f and g if both are Value nodes.
func (m *Manager) Min(f, g Node) Node {
	if f.Kind == KindValue && g.Kind == KindValue {
		return valueNode(m.values.Min(f.Value(), g.Value()))
	}
	return valueNode(mtmdd.Undet)
}

// Max returns the pointwise maximum of f and g if both are Value nodes.
func (m *Manager) Max(f, g Node) Node {
	if f.Kind == KindValue && g.Kind == KindValue {
		return valueNode(m.values.Max(f.Value(), g.Value()))
	}
	return valueNode(mtmdd.Undet)
}

// Eq returns a Bool node true wherever f equals g: Bool/Bool is biimp, and
// Value/Value descends the comparison recursion in Veq.
func (m *Manager) Eq(f, g Node) Node {
	switch {
	case f.Kind == KindBool && g.Kind == KindBool:
		x := m.bools.Xor(f.Bool(), g.Bool())
		return boolNode(m.bools.Not(x))
	case f.Kind == KindValue && g.Kind == KindValue:
		return boolNode(m.Veq(f.Value(), g.Value()))
	default:
		return boolNode(mdd.Undet)
	}
}

// Veq builds, as an mdd diagram, the predicate f == g over two mtmdd value
// diagrams sharing this Manager's header namespace.
func (m *Manager) Veq(f, g mtmdd.NodeID) mdd.NodeID {
	key := opKey{"eq", int(f), int(g)}
	if res, ok := m.bcache[key]; ok {
		return res.Bool()
	}
	res := m.veq(f, g)
	m.bcache[key] = boolNode(res)
	return res
}

func (m *Manager) veq(f, g mtmdd.NodeID) mdd.NodeID {
	v := m.values
	switch {
	case v.IsUndet(f) || v.IsUndet(g):
		return mdd.Zero
	case v.IsValue(f) && v.IsValue(g):
		if v.Value(f) == v.Value(g) {
			return mdd.One
		}
		return mdd.Zero
	case v.IsValue(f):
		gc := v.Children(g)
		out := make([]mdd.NodeID, len(gc))
		for i, c := range gc {
			out[i] = m.veq(f, c)
		}
		return m.bools.CreateNode(v.Header(g), out)
	case v.IsValue(g):
		fc := v.Children(f)
		out := make([]mdd.NodeID, len(fc))
		for i, c := range fc {
			out[i] = m.veq(c, g)
		}
		return m.bools.CreateNode(v.Header(f), out)
	case v.Level(f) > v.Level(g):
		fc := v.Children(f)
		out := make([]mdd.NodeID, len(fc))
		for i, c := range fc {
			out[i] = m.veq(c, g)
		}
		return m.bools.CreateNode(v.Header(f), out)
	case v.Level(f) < v.Level(g):
		gc := v.Children(g)
		out := make([]mdd.NodeID, len(gc))
		for i, c := range gc {
			out[i] = m.veq(f, c)
		}
		return m.bools.CreateNode(v.Header(g), out)
	default:
		fc, gc := v.Children(f), v.Children(g)
		out := make([]mdd.NodeID, len(fc))
		for i := range fc {
			out[i] = m.veq(fc[i], gc[i])
		}
		return m.bools.CreateNode(v.Header(f), out)
	}
}

// Neq returns the negation of Eq.
func (m *Manager) Neq(f, g Node) Node {
	switch {
	case f.Kind == KindBool && g.Kind == KindBool:
		return boolNode(m.bools.Xor(f.Bool(), g.Bool()))
	case f.Kind == KindValue && g.Kind == KindValue:
		return boolNode(m.bools.Not(m.Veq(f.Value(), g.Value())))
	default:
		return boolNode(mdd.Undet)
	}
}

// Lt returns a Bool node true wherever f < g, for Value nodes only.
func (m *Manager) Lt(f, g Node) Node {
	if f.Kind == KindValue && g.Kind == KindValue {
		return boolNode(m.Vlt(f.Value(), g.Value()))
	}
	return boolNode(mdd.Undet)
}

// Vlt builds, as an mdd diagram, the predicate f < g over two mtmdd value
// diagrams sharing this Manager's header namespace.
func (m *Manager) Vlt(f, g mtmdd.NodeID) mdd.NodeID {
	key := opKey{"lt", int(f), int(g)}
	if res, ok := m.bcache[key]; ok {
		return res.Bool()
	}
	res := m.vlt(f, g)
	m.bcache[key] = boolNode(res)
	return res
}

func (m *Manager) vlt(f, g mtmdd.NodeID) mdd.NodeID {
	v := m.values
	switch {
	case v.IsUndet(f) || v.IsUndet(g):
		return mdd.Zero
	case v.IsValue(f) && v.IsValue(g):
		if v.Value(f) < v.Value(g) {
			return mdd.One
		}
		return mdd.Zero
	case v.IsValue(g):
		fc := v.Children(f)
		out := make([]mdd.NodeID, len(fc))
		for i, c := range fc {
			out[i] = m.vlt(c, g)
		}
		return m.bools.CreateNode(v.Header(f), out)
	case v.IsValue(f):
		gc := v.Children(g)
		out := make([]mdd.NodeID, len(gc))
		for i, c := range gc {
			out[i] = m.vlt(f, c)
		}
		return m.bools.CreateNode(v.Header(g), out)
	case v.Level(f) > v.Level(g):
		fc := v.Children(f)
		out := make([]mdd.NodeID, len(fc))
		for i, c := range fc {
			out[i] = m.vlt(c, g)
		}
		return m.bools.CreateNode(v.Header(f), out)
	case v.Level(f) < v.Level(g):
		gc := v.Children(g)
		out := make([]mdd.NodeID, len(gc))
		for i, c := range gc {
			out[i] = m.vlt(f, c)
		}
		return m.bools.CreateNode(v.Header(g), out)
	default:
		fc, gc := v.Children(f), v.Children(g)
		out := make([]mdd.NodeID, len(fc))
		for i := range fc {
			out[i] = m.vlt(fc[i], gc[i])
		}
		return m.bools.CreateNode(v.Header(f), out)
	}
}

// Lte returns f <= g, derived as Eq || Lt (short-circuited on Eq first,
// since Eq is usually cheaper to settle once cached).
func (m *Manager) Lte(f, g Node) Node {
	if f.Kind != KindValue || g.Kind != KindValue {
		return boolNode(mdd.Undet)
	}
	if m.Veq(f.Value(), g.Value()) == mdd.One {
		return m.True()
	}
	return boolNode(m.bools.Or(m.Veq(f.Value(), g.Value()), m.Vlt(f.Value(), g.Value())))
}

// Gt returns f > g, derived as Lt(g, f).
func (m *Manager) Gt(f, g Node) Node {
	if f.Kind != KindValue || g.Kind != KindValue {
		return boolNode(mdd.Undet)
	}
	return boolNode(m.Vlt(g.Value(), f.Value()))
}

// Gte returns f >= g, derived as Not(Lt(f, g)).
func (m *Manager) Gte(f, g Node) Node {
	if f.Kind != KindValue || g.Kind != KindValue {
		return boolNode(mdd.Undet)
	}
	return boolNode(m.bools.Not(m.Vlt(f.Value(), g.Value())))
}

// Ite computes (f & g) | (!f & h). When g and h are both Value nodes, the
// condition f selects between two value diagrams via Vif/Replace instead of
// Boolean ITE; when g and h are both Bool nodes it delegates to the mdd
// sub-manager's Ite directly.
func (m *Manager) Ite(f, g, h Node) Node {
	switch {
	case f.Kind == KindBool && g.Kind == KindValue && h.Kind == KindValue:
		barf := m.bools.Not(f.Bool())
		vif := m.Vif(f.Bool(), g.Value())
		barvif := m.Vif(barf, h.Value())
		return valueNode(m.values.Replace(vif, barvif))
	case f.Kind == KindBool && g.Kind == KindBool && h.Kind == KindBool:
		return boolNode(m.bools.Ite(f.Bool(), g.Bool(), h.Bool()))
	case g.Kind == KindValue && h.Kind == KindValue:
		return valueNode(mtmdd.Undet)
	default:
		return boolNode(mdd.Undet)
	}
}

// Vif computes, as an mtmdd diagram, the value of g restricted to the
// assignments where the mdd predicate f holds, and Undet elsewhere. Ite
// composes two Vif results (for f and !f) via mtmdd.Replace to merge the
// two restrictions back into one diagram.
func (m *Manager) Vif(f mdd.NodeID, g mtmdd.NodeID) mtmdd.NodeID {
	key := opKey{"if", int(f), int(g)}
	if res, ok := m.vcache[key]; ok {
		return res.Value()
	}
	res := m.vif(f, g)
	m.vcache[key] = valueNode(res)
	return res
}

func (m *Manager) vif(f mdd.NodeID, g mtmdd.NodeID) mtmdd.NodeID {
	b, v := m.bools, m.values
	switch {
	case f == mdd.Undet || v.IsUndet(g):
		return mtmdd.Undet
	case f == mdd.Zero:
		return mtmdd.Undet
	case f == mdd.One:
		return g
	case v.IsValue(g):
		fc := b.Children(f)
		out := make([]mtmdd.NodeID, len(fc))
		for i, c := range fc {
			out[i] = m.vif(c, g)
		}
		return v.CreateNode(b.Header(f), out)
	case b.Level(f) > v.Level(g):
		fc := b.Children(f)
		out := make([]mtmdd.NodeID, len(fc))
		for i, c := range fc {
			out[i] = m.vif(c, g)
		}
		return v.CreateNode(b.Header(f), out)
	case b.Level(f) < v.Level(g):
		gc := v.Children(g)
		out := make([]mtmdd.NodeID, len(gc))
		for i, c := range gc {
			out[i] = m.vif(f, c)
		}
		return v.CreateNode(v.Header(g), out)
	default:
		fc, gc := b.Children(f), v.Children(g)
		out := make([]mtmdd.NodeID, len(fc))
		for i := range fc {
			out[i] = m.vif(fc[i], gc[i])
		}
		return v.CreateNode(b.Header(f), out)
	}
}
