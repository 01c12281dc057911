// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import "math/big"

// Intersect returns the family of sets present in both f and g. At the
// terminals, One and Undet act as identities: Intersect(One, g) is g and
// Intersect(Undet, g) is g (and symmetrically for f).
func (m *Manager) Intersect(f, g NodeID) NodeID {
	m.checkNode("Intersect", f)
	m.checkNode("Intersect", g)
	return m.intersect(f, g)
}

func (m *Manager) intersect(f, g NodeID) NodeID {
	switch {
	case f == Undet:
		return g
	case g == Undet:
		return f
	case f == Zero || g == Zero:
		return Zero
	case f == One:
		return g
	case g == One:
		return f
	case f == g:
		return f
	}
	key := opKey{f, g}
	if res, ok := m.intersectCache[key]; ok {
		return res
	}
	var res NodeID
	switch {
	case m.Level(f) > m.Level(g):
		res = m.intersect(m.Low(f), g)
	case m.Level(f) < m.Level(g):
		res = m.intersect(f, m.Low(g))
	default:
		low := m.intersect(m.Low(f), m.Low(g))
		high := m.intersect(m.High(f), m.High(g))
		res = m.CreateNode(m.Header(f), low, high)
	}
	m.intersectCache[key] = res
	return res
}

// Union returns the family of sets present in either f or g.
func (m *Manager) Union(f, g NodeID) NodeID {
	m.checkNode("Union", f)
	m.checkNode("Union", g)
	return m.union(f, g)
}

func (m *Manager) union(f, g NodeID) NodeID {
	switch {
	case f == Undet:
		return f
	case g == Undet:
		return g
	case f == Zero:
		return g
	case g == Zero:
		return f
	case f == One && g == One:
		return One
	case f == g:
		return f
	}
	key := opKey{f, g}
	if res, ok := m.unionCache[key]; ok {
		return res
	}
	var res NodeID
	switch {
	case f != One && g == One:
		low := m.union(m.Low(f), One)
		res = m.CreateNode(m.Header(f), low, m.High(f))
	case f == One && g != One:
		low := m.union(One, m.Low(g))
		res = m.CreateNode(m.Header(g), low, m.High(g))
	case m.Level(f) > m.Level(g):
		low := m.union(m.Low(f), g)
		res = m.CreateNode(m.Header(f), low, m.High(f))
	case m.Level(f) < m.Level(g):
		low := m.union(f, m.Low(g))
		res = m.CreateNode(m.Header(g), low, m.High(g))
	default:
		low := m.union(m.Low(f), m.Low(g))
		high := m.union(m.High(f), m.High(g))
		res = m.CreateNode(m.Header(f), low, high)
	}
	m.unionCache[key] = res
	return res
}

// Setdiff returns the family of sets present in f but not in g.
func (m *Manager) Setdiff(f, g NodeID) NodeID {
	m.checkNode("Setdiff", f)
	m.checkNode("Setdiff", g)
	return m.setdiff(f, g)
}

func (m *Manager) setdiff(f, g NodeID) NodeID {
	switch {
	case f == Undet:
		return Undet
	case g == Undet:
		return f
	case f == Zero:
		return Zero
	case g == Zero:
		return f
	case f == One && g == One:
		return Zero
	case f == g:
		return Zero
	}
	key := opKey{f, g}
	if res, ok := m.setdiffCache[key]; ok {
		return res
	}
	var res NodeID
	switch {
	case f != One && g == One:
		low := m.setdiff(m.Low(f), One)
		res = m.CreateNode(m.Header(f), low, m.High(f))
	case f == One && g != One:
		res = m.setdiff(One, m.Low(g))
	case m.Level(f) > m.Level(g):
		low := m.setdiff(m.Low(f), g)
		res = m.CreateNode(m.Header(f), low, m.High(f))
	case m.Level(f) < m.Level(g):
		res = m.setdiff(f, m.Low(g))
	default:
		low := m.setdiff(m.Low(f), m.Low(g))
		high := m.setdiff(m.High(f), m.High(g))
		res = m.CreateNode(m.Header(f), low, high)
	}
	m.setdiffCache[key] = res
	return res
}

// Product returns the family {a ∪ b : a ∈ f, b ∈ g}, the Cartesian join of
// two families of sets over disjoint variables.
func (m *Manager) Product(f, g NodeID) NodeID {
	m.checkNode("Product", f)
	m.checkNode("Product", g)
	return m.product(f, g)
}

func (m *Manager) product(f, g NodeID) NodeID {
	switch {
	case f == Undet || g == Undet:
		return Undet
	case f == Zero || g == Zero:
		return Zero
	case g == One:
		return f
	case f == One:
		return g
	}
	key := opKey{f, g}
	if res, ok := m.productCache[key]; ok {
		return res
	}
	var res NodeID
	switch {
	case m.Level(f) > m.Level(g):
		low := m.product(m.Low(f), g)
		high := m.product(m.High(f), g)
		res = m.CreateNode(m.Header(f), low, high)
	case m.Level(f) < m.Level(g):
		low := m.product(f, m.Low(g))
		high := m.product(f, m.High(g))
		res = m.CreateNode(m.Header(g), low, high)
	default:
		low := m.product(m.Low(f), m.Low(g))
		high := m.product(m.High(f), m.High(g))
		high = m.union(high, m.product(m.High(f), m.Low(g)))
		high = m.union(high, m.product(m.Low(f), m.High(g)))
		res = m.CreateNode(m.Header(f), low, high)
	}
	m.productCache[key] = res
	return res
}

// Divide returns the family of sets d such that d ∪ b ∈ f for every b ∈ g
// (the quotient family f / g). Dividing by Zero, or dividing One by a family
// other than One, yields Undet.
func (m *Manager) Divide(f, g NodeID) NodeID {
	m.checkNode("Divide", f)
	m.checkNode("Divide", g)
	return m.divide(f, g)
}

func (m *Manager) divide(f, g NodeID) NodeID {
	switch {
	case f == Undet || g == Undet:
		return Undet
	case g == Zero:
		return Undet
	case g == One:
		return f
	case f == Zero:
		return Zero
	case f == One:
		return Undet
	}
	key := opKey{f, g}
	if res, ok := m.divideCache[key]; ok {
		return res
	}
	var res NodeID
	switch {
	case m.Level(f) > m.Level(g):
		low := m.divide(m.Low(f), g)
		high := m.divide(m.High(f), g)
		res = m.CreateNode(m.Header(f), low, high)
	case m.Level(f) < m.Level(g):
		res = Undet
	default:
		x := m.divide(m.Low(f), m.Low(g))
		y := m.divide(m.High(f), m.High(g))
		res = m.intersect(x, y)
	}
	m.divideCache[key] = res
	return res
}

// Count returns the number of sets in the family n, using arbitrary
// precision arithmetic since the count is exponential in the node count.
func (m *Manager) Count(n NodeID) *big.Int {
	m.checkNode("Count", n)
	memo := map[NodeID]*big.Int{}
	return m.count(n, memo)
}

func (m *Manager) count(n NodeID, memo map[NodeID]*big.Int) *big.Int {
	switch n {
	case Zero, Undet:
		return big.NewInt(0)
	case One:
		return big.NewInt(1)
	}
	if res, ok := memo[n]; ok {
		return res
	}
	res := new(big.Int).Add(m.count(m.Low(n), memo), m.count(m.High(n), memo))
	memo[n] = res
	return res
}

// Allsets calls f once per set in n, each represented as the slice of header
// levels it contains, in descending order (root first).
func (m *Manager) Allsets(n NodeID, f func([]int) error) error {
	m.checkNode("Allsets", n)
	return m.allsets(n, nil, f)
}

func (m *Manager) allsets(n NodeID, acc []int, f func([]int) error) error {
	switch n {
	case Zero, Undet:
		return nil
	case One:
		set := make([]int, len(acc))
		copy(set, acc)
		return f(set)
	}
	if err := m.allsets(m.Low(n), acc, f); err != nil {
		return err
	}
	return m.allsets(m.High(n), append(acc, m.Level(n)), f)
}
