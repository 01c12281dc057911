// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"math/big"

	"ddkit/dd/internal/arena"
)

// PathCount returns the number of variable assignments for which n
// evaluates to One, over every header created so far, weighted by each
// skipped variable's arity rather than bdd's fixed base-2 weighting.
func (m *Manager) PathCount(n NodeID) *big.Int {
	m.checkNode("PathCount", n)
	memo := map[NodeID]*big.Int{}
	res := m.pathcount(n, memo)
	start := -1
	if n >= 3 {
		start = m.Level(n)
	}
	return res.Mul(res, m.arityProduct(start+1, m.headersLen()))
}

// arityProduct returns the product of the arities of every header at a
// level in [from, to).
func (m *Manager) arityProduct(from, to int) *big.Int {
	out := big.NewInt(1)
	for lvl := from; lvl < to; lvl++ {
		out.Mul(out, big.NewInt(int64(m.arityAtLevel(lvl))))
	}
	return out
}

func (m *Manager) arityAtLevel(level int) int {
	for id := arena.HeaderID(0); int(id) < m.headersLen(); id++ {
		h := m.headers.At(id)
		if h.Level == level {
			return h.OutDegree
		}
	}
	return 1
}

// pathcount returns the number of assignments to the variables strictly
// below n's own level for which n evaluates to One, weighted by every
// skipped variable's arity (children sit at strictly smaller levels than
// their parent, per the level-ordering invariant; a terminal child's level
// is -1, so the weighting runs all the way down to level 0).
func (m *Manager) pathcount(n NodeID, memo map[NodeID]*big.Int) *big.Int {
	switch n {
	case Zero, Undet:
		return big.NewInt(0)
	case One:
		return big.NewInt(1)
	}
	if res, ok := memo[n]; ok {
		return res
	}
	level := m.Level(n)
	res := big.NewInt(0)
	for _, c := range m.Children(n) {
		childLevel := m.Level(c)
		weight := m.arityProduct(childLevel+1, level)
		res.Add(res, weight.Mul(weight, m.pathcount(c, memo)))
	}
	memo[n] = res
	return res
}

// Not returns the negation of n: Zero and One swap, Undet is absorbing, and
// a non-terminal's children are negated pointwise.
func (m *Manager) Not(n NodeID) NodeID {
	m.checkNode("Not", n)
	return m.not(n)
}

func (m *Manager) not(n NodeID) NodeID {
	switch n {
	case Zero:
		return One
	case One:
		return Zero
	case Undet:
		return Undet
	}
	if res, ok := m.notCache[n]; ok {
		return res
	}
	children := m.Children(n)
	out := make([]NodeID, len(children))
	for i, c := range children {
		out[i] = m.not(c)
	}
	res := m.CreateNode(m.Header(n), out)
	m.notCache[n] = res
	return res
}

// terminalResult resolves the binary op over a pair where at least one side
// is Zero, One, or Undet. ok is false when neither operand is a terminal,
// meaning the caller must recurse structurally instead.
func (m *Manager) terminalResult(op Operator, f, g NodeID) (NodeID, bool) {
	if f == Undet || g == Undet {
		return Undet, true
	}
	switch op {
	case OPand:
		switch {
		case f == Zero || g == Zero:
			return Zero, true
		case f == One:
			return g, true
		case g == One:
			return f, true
		}
	case OPor:
		switch {
		case f == One || g == One:
			return One, true
		case f == Zero:
			return g, true
		case g == Zero:
			return f, true
		}
	case OPxor:
		switch {
		case f == Zero:
			return g, true
		case g == Zero:
			return f, true
		case f == One:
			return m.not(g), true
		case g == One:
			return m.not(f), true
		}
	}
	return Zero, false
}

// Apply computes the binary operation op over f and g, recursing on
// whichever operand currently has the topmost variable and zipping children
// when both share the same level.
func (m *Manager) Apply(f, g NodeID, op Operator) NodeID {
	m.checkNode("Apply", f)
	m.checkNode("Apply", g)
	switch op {
	case OPimp:
		return m.Imp(f, g)
	case OPnand:
		return m.Nand(f, g)
	case OPnor:
		return m.Nor(f, g)
	case OPxnor:
		return m.Xnor(f, g)
	}
	return m.apply(f, g, op)
}

func (m *Manager) apply(f, g NodeID, op Operator) NodeID {
	if res, ok := m.terminalResult(op, f, g); ok {
		return res
	}
	if f == g {
		if op == OPxor {
			return Zero
		}
		return f
	}
	key := applyKey{op, f, g}
	if res, ok := m.applyCache[key]; ok {
		return res
	}
	var res NodeID
	switch {
	case m.Level(f) > m.Level(g):
		fc := m.Children(f)
		out := make([]NodeID, len(fc))
		for i, c := range fc {
			out[i] = m.apply(c, g, op)
		}
		res = m.CreateNode(m.Header(f), out)
	case m.Level(f) < m.Level(g):
		gc := m.Children(g)
		out := make([]NodeID, len(gc))
		for i, c := range gc {
			out[i] = m.apply(f, c, op)
		}
		res = m.CreateNode(m.Header(g), out)
	default:
		fc, gc := m.Children(f), m.Children(g)
		out := make([]NodeID, len(fc))
		for i := range fc {
			out[i] = m.apply(fc[i], gc[i], op)
		}
		res = m.CreateNode(m.Header(f), out)
	}
	m.applyCache[key] = res
	return res
}

// And returns the conjunction of f and g.
func (m *Manager) And(f, g NodeID) NodeID { return m.Apply(f, g, OPand) }

// Or returns the disjunction of f and g.
func (m *Manager) Or(f, g NodeID) NodeID { return m.Apply(f, g, OPor) }

// Xor returns the exclusive-or of f and g.
func (m *Manager) Xor(f, g NodeID) NodeID { return m.Apply(f, g, OPxor) }

// Imp returns the material implication f -> g.
func (m *Manager) Imp(f, g NodeID) NodeID {
	return m.Apply(m.Not(f), g, OPor)
}

// Nand returns the negation of And(f, g).
func (m *Manager) Nand(f, g NodeID) NodeID {
	return m.Not(m.Apply(f, g, OPand))
}

// Nor returns the negation of Or(f, g).
func (m *Manager) Nor(f, g NodeID) NodeID {
	return m.Not(m.Apply(f, g, OPor))
}

// Xnor returns the negation of Xor(f, g).
func (m *Manager) Xnor(f, g NodeID) NodeID {
	return m.Not(m.Apply(f, g, OPxor))
}

// Ite computes (f & g) | (!f & h), composed from And/Or/Not rather than a
// dedicated 3-operand recursion.
func (m *Manager) Ite(f, g, h NodeID) NodeID {
	x1 := m.Apply(f, g, OPand)
	x2 := m.Apply(m.Not(f), h, OPand)
	return m.Apply(x1, x2, OPor)
}

// Replace fills in the Undet gaps of f using g: f's structure and its
// genuine Zero/One leaves survive unchanged, and only where f reaches Undet
// does g take over (structurally zipped against g's own variables from that
// point on). It is the Boolean counterpart of mtmdd.Manager.Replace.
func (m *Manager) Replace(f, g NodeID) NodeID {
	m.checkNode("Replace", f)
	m.checkNode("Replace", g)
	return m.replace(f, g)
}

func (m *Manager) replace(f, g NodeID) NodeID {
	if f == Undet {
		return g
	}
	if g == Undet {
		return f
	}
	if f == Zero {
		return Zero
	}
	if f == One {
		return One
	}
	key := opKey{f, g}
	if res, ok := m.replaceCache[key]; ok {
		return res
	}
	var res NodeID
	switch {
	case g < 3:
		fc := m.Children(f)
		out := make([]NodeID, len(fc))
		for i, c := range fc {
			out[i] = m.replace(c, g)
		}
		res = m.CreateNode(m.Header(f), out)
	case m.Level(f) > m.Level(g):
		fc := m.Children(f)
		out := make([]NodeID, len(fc))
		for i, c := range fc {
			out[i] = m.replace(c, g)
		}
		res = m.CreateNode(m.Header(f), out)
	case m.Level(f) < m.Level(g):
		gc := m.Children(g)
		out := make([]NodeID, len(gc))
		for i, c := range gc {
			out[i] = m.replace(f, c)
		}
		res = m.CreateNode(m.Header(g), out)
	default:
		fc, gc := m.Children(f), m.Children(g)
		out := make([]NodeID, len(fc))
		for i := range fc {
			out[i] = m.replace(fc[i], gc[i])
		}
		res = m.CreateNode(m.Header(g), out)
	}
	m.replaceCache[key] = res
	return res
}
