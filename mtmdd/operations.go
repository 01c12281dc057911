// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtmdd

// scalar applies op to two concrete integer values, returning ok=false for
// division or remainder by zero (the caller maps that to Undet).
func scalar(op Operator, a, b int64) (int64, bool) {
	switch op {
	case OPadd:
		return a + b, true
	case OPsub:
		return a - b, true
	case OPmul:
		return a * b, true
	case OPdiv:
		if b == 0 {
			return 0, false
		}
		return a / b, true
	case OPrem:
		if b == 0 {
			return 0, false
		}
		return a % b, true
	case OPmin:
		if a < b {
			return a, true
		}
		return b, true
	case OPmax:
		if a > b {
			return a, true
		}
		return b, true
	}
	return 0, false
}

// Apply computes the binary arithmetic operation op over f and g,
// propagating Undet across any cross-manager mixing and any division or
// remainder by zero.
func (m *Manager) Apply(f, g NodeID, op Operator) NodeID {
	m.checkNode("Apply", f)
	m.checkNode("Apply", g)
	return m.apply(f, g, op)
}

func (m *Manager) apply(f, g NodeID, op Operator) NodeID {
	if m.IsUndet(f) || m.IsUndet(g) {
		return Undet
	}
	key := applyKey{op, f, g}
	if res, ok := m.applyCache[key]; ok {
		return res
	}
	var res NodeID
	switch {
	case m.IsValue(f) && m.IsValue(g):
		v, ok := scalar(op, m.Value(f), m.Value(g))
		if !ok {
			return Undet
		}
		res = m.Terminal(v)
	case m.IsValue(f):
		gc := m.Children(g)
		out := make([]NodeID, len(gc))
		for i, c := range gc {
			out[i] = m.apply(f, c, op)
		}
		res = m.CreateNode(m.Header(g), out)
	case m.IsValue(g):
		fc := m.Children(f)
		out := make([]NodeID, len(fc))
		for i, c := range fc {
			out[i] = m.apply(c, g, op)
		}
		res = m.CreateNode(m.Header(f), out)
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

// Add returns f + g, pointwise over every variable assignment.
func (m *Manager) Add(f, g NodeID) NodeID { return m.Apply(f, g, OPadd) }

// Sub returns f - g.
func (m *Manager) Sub(f, g NodeID) NodeID { return m.Apply(f, g, OPsub) }

// Mul returns f * g.
func (m *Manager) Mul(f, g NodeID) NodeID { return m.Apply(f, g, OPmul) }

// Div returns f / g, yielding Undet wherever g evaluates to 0.
func (m *Manager) Div(f, g NodeID) NodeID { return m.Apply(f, g, OPdiv) }

// Rem returns f % g, yielding Undet wherever g evaluates to 0.
func (m *Manager) Rem(f, g NodeID) NodeID { return m.Apply(f, g, OPrem) }

// Min returns the pointwise minimum of f and g.
func (m *Manager) Min(f, g NodeID) NodeID { return m.Apply(f, g, OPmin) }

// Max returns the pointwise maximum of f and g.
func (m *Manager) Max(f, g NodeID) NodeID { return m.Apply(f, g, OPmax) }

// Replace fills in the Undet gaps of f using g: f's structure and its
// genuine value leaves survive unchanged, and only where f reaches Undet
// does g take over (structurally zipped against g's own variables from that
// point on). Used by MTMDD2.Ite to merge two partial, mutually-exclusive
// value-restriction branches back into a single diagram.
func (m *Manager) Replace(f, g NodeID) NodeID {
	m.checkNode("Replace", f)
	m.checkNode("Replace", g)
	return m.replace(f, g)
}

func (m *Manager) replace(f, g NodeID) NodeID {
	if m.IsUndet(f) {
		return g
	}
	if m.IsUndet(g) {
		return f
	}
	if m.IsValue(f) {
		return f
	}
	key := opKey{f, g}
	if res, ok := m.replaceCache[key]; ok {
		return res
	}
	var res NodeID
	switch {
	case m.IsValue(g) || m.Level(f) > m.Level(g):
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
		res = m.CreateNode(m.Header(f), out)
	}
	m.replaceCache[key] = res
	return res
}
