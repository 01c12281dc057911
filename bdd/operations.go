// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"

	"ddkit/dd/internal/arena"
)

// Scanset returns the levels found when following the high branch of n, the
// dual of Makeset: Scanset(Makeset(hs)) lists the levels of the headers hs
// (up to order).
func (m *Manager) Scanset(n NodeID) []int {
	m.checkNode("Scanset", n)
	if n < 2 {
		return nil
	}
	var res []int
	for cur := n; cur > One; cur = m.High(cur) {
		res = append(res, m.Level(cur))
	}
	return res
}

// Makeset returns the conjunction (cube) of the variables named by headers,
// in their positive form.
func (m *Manager) Makeset(headers []arena.HeaderID) NodeID {
	res := One
	for _, h := range headers {
		res = m.Apply(res, m.Ithvar(h), OPand)
	}
	return res
}

// Not returns the negation of n.
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
	low := m.not(m.Low(n))
	high := m.not(m.High(n))
	res := m.CreateNode(m.Header(n), low, high)
	m.notCache[n] = res
	return res
}

// Apply computes the binary operation op over f and g; see Operator for the
// available operations and their truth tables.
func (m *Manager) Apply(f, g NodeID, op Operator) NodeID {
	m.checkNode("Apply", f)
	m.checkNode("Apply", g)
	return m.apply(f, g, op)
}

func (m *Manager) apply(f, g NodeID, op Operator) NodeID {
	if f == Undet || g == Undet {
		return Undet
	}
	if f < 2 && g < 2 {
		return truthtable[op][f][g]
	}
	key := applyKey{op, f, g}
	if res, ok := m.applyCache[key]; ok {
		return res
	}
	var res NodeID
	lf, lg := m.Level(f), m.Level(g)
	switch {
	case lf == lg:
		low := m.apply(m.Low(f), m.Low(g), op)
		high := m.apply(m.High(f), m.High(g), op)
		res = m.CreateNode(m.Header(f), low, high)
	case lf > lg:
		low := m.apply(m.Low(f), g, op)
		high := m.apply(m.High(f), g, op)
		res = m.CreateNode(m.Header(f), low, high)
	default:
		low := m.apply(f, m.Low(g), op)
		high := m.apply(f, m.High(g), op)
		res = m.CreateNode(m.Header(g), low, high)
	}
	m.applyCache[key] = res
	return res
}

// Ite computes the BDD for (f & g) | (!f & h) directly, more efficiently
// than composing the three operations.
func (m *Manager) Ite(f, g, h NodeID) NodeID {
	m.checkNode("Ite", f)
	m.checkNode("Ite", g)
	m.checkNode("Ite", h)
	return m.ite(f, g, h)
}

func (m *Manager) ite(f, g, h NodeID) NodeID {
	switch {
	case f == Undet || g == Undet || h == Undet:
		return Undet
	case f == One:
		return g
	case f == Zero:
		return h
	case g == h:
		return g
	case g == One && h == Zero:
		return f
	case g == Zero && h == One:
		return m.not(f)
	}
	key := iteKey{f, g, h}
	if res, ok := m.iteCache[key]; ok {
		return res
	}
	lvl, header := m.topLevel(f, g, h)
	low := m.ite(m.iteChild(f, lvl, false), m.iteChild(g, lvl, false), m.iteChild(h, lvl, false))
	high := m.ite(m.iteChild(f, lvl, true), m.iteChild(g, lvl, true), m.iteChild(h, lvl, true))
	res := m.CreateNode(header, low, high)
	m.iteCache[key] = res
	return res
}

// topLevel returns the largest (topmost, closest to root) level among f, g,
// h and the header that realises it.
func (m *Manager) topLevel(f, g, h NodeID) (int, arena.HeaderID) {
	best := -1
	var bestHeader arena.HeaderID
	for _, n := range [...]NodeID{f, g, h} {
		if n < 2 {
			continue
		}
		lvl := m.Level(n)
		if lvl > best {
			best = lvl
			bestHeader = m.Header(n)
		}
	}
	return best, bestHeader
}

// iteChild returns the low (high=false) or high (high=true) child of n if
// n's level equals lvl, otherwise n itself (n does not depend on lvl).
func (m *Manager) iteChild(n NodeID, lvl int, high bool) NodeID {
	if n < 2 || m.Level(n) != lvl {
		return n
	}
	if high {
		return m.High(n)
	}
	return m.Low(n)
}

// Exist returns the existential quantification of n over the variables in
// varset (a node built with Makeset).
func (m *Manager) Exist(n, varset NodeID) NodeID {
	m.checkNode("Exist", n)
	m.checkNode("Exist", varset)
	if varset < 2 {
		return n
	}
	levels := m.levelSet(varset)
	return m.quant(n, varset, levels)
}

func (m *Manager) levelSet(varset NodeID) map[int]bool {
	levels := map[int]bool{}
	for cur := varset; cur > One; cur = m.High(cur) {
		levels[m.Level(cur)] = true
	}
	return levels
}

func (m *Manager) quant(n, varset NodeID, levels map[int]bool) NodeID {
	if n < 2 {
		return n
	}
	key := existKey{n, varset}
	if res, ok := m.existCache[key]; ok {
		return res
	}
	low := m.quant(m.Low(n), varset, levels)
	high := m.quant(m.High(n), varset, levels)
	var res NodeID
	if levels[m.Level(n)] {
		res = m.apply(low, high, OPor)
	} else {
		res = m.CreateNode(m.Header(n), low, high)
	}
	m.existCache[key] = res
	return res
}

// AppEx applies op to f and g then existentially quantifies the result over
// varset in one bottom-up pass — the "relational product" when op is And.
func (m *Manager) AppEx(f, g NodeID, op Operator, varset NodeID) NodeID {
	if op > OPnor {
		return m.seterror("operator %s not supported in AppEx", op)
	}
	m.checkNode("AppEx", varset)
	if varset < 2 {
		return m.Apply(f, g, op)
	}
	m.checkNode("AppEx", f)
	m.checkNode("AppEx", g)
	levels := m.levelSet(varset)
	return m.appquant(f, g, op, varset, levels)
}

func (m *Manager) appquant(f, g NodeID, op Operator, varset NodeID, levels map[int]bool) NodeID {
	if f == Undet || g == Undet {
		return Undet
	}
	if f < 2 && g < 2 {
		return truthtable[op][f][g]
	}
	key := appexKey{op, f, g, varset}
	if res, ok := m.appexCache[key]; ok {
		return res
	}
	var res NodeID
	lf, lg := m.Level(f), m.Level(g)
	switch {
	case lf == lg:
		lvl := lf
		low := m.appquant(m.Low(f), m.Low(g), op, varset, levels)
		high := m.appquant(m.High(f), m.High(g), op, varset, levels)
		if levels[lvl] {
			res = m.apply(low, high, OPor)
		} else {
			res = m.CreateNode(m.Header(f), low, high)
		}
	case lf > lg:
		lvl := lf
		low := m.appquant(m.Low(f), g, op, varset, levels)
		high := m.appquant(m.High(f), g, op, varset, levels)
		if levels[lvl] {
			res = m.apply(low, high, OPor)
		} else {
			res = m.CreateNode(m.Header(f), low, high)
		}
	default:
		lvl := lg
		low := m.appquant(f, m.Low(g), op, varset, levels)
		high := m.appquant(f, m.High(g), op, varset, levels)
		if levels[lvl] {
			res = m.apply(low, high, OPor)
		} else {
			res = m.CreateNode(m.Header(g), low, high)
		}
	}
	m.appexCache[key] = res
	return res
}

// Replace rewrites n according to r, substituting each old variable with
// its image under r.
func (m *Manager) Replace(n NodeID, r Renamer) NodeID {
	m.checkNode("Replace", n)
	return m.replace(n, r)
}

func (m *Manager) replace(n NodeID, r Renamer) NodeID {
	if n < 2 {
		return n
	}
	image, ok := r.Image(m.Level(n))
	if !ok {
		image = m.Level(n)
	}
	key := replaceKey{r.ID(), n}
	if res, ok := m.replaceCache[key]; ok {
		return res
	}
	low := m.replace(m.Low(n), r)
	high := m.replace(m.High(n), r)
	res := m.correctify(image, low, high)
	m.replaceCache[key] = res
	return res
}

// correctify inserts a node at level, pushing low/high further down (into
// strictly smaller levels) past any variable whose level is not yet below
// level (i.e. was skipped by reduction), preserving the level-ordering
// invariant after a rename.
func (m *Manager) correctify(level int, low, high NodeID) NodeID {
	ll, lh := m.Level(low), m.Level(high)
	if (low < 2 || level > ll) && (high < 2 || level > lh) {
		h := m.headerAtLevel(level)
		return m.CreateNode(h, low, high)
	}
	switch {
	case low >= 2 && high >= 2 && ll == lh:
		left := m.correctify(level, m.Low(low), m.Low(high))
		right := m.correctify(level, m.High(low), m.High(high))
		return m.CreateNode(m.Header(low), left, right)
	case low >= 2 && (high < 2 || ll > lh):
		left := m.correctify(level, m.Low(low), high)
		right := m.correctify(level, m.High(low), high)
		return m.CreateNode(m.Header(low), left, right)
	default:
		left := m.correctify(level, low, m.Low(high))
		right := m.correctify(level, low, m.High(high))
		return m.CreateNode(m.Header(high), left, right)
	}
}

func (m *Manager) headerAtLevel(level int) arena.HeaderID {
	for id := arena.HeaderID(0); int(id) < m.headersLen(); id++ {
		if m.headers.At(id).Level == level {
			return id
		}
	}
	arena.Violate("correctify", "no header at level %d", level)
	return 0
}

func (m *Manager) headersLen() int {
	return m.headers.Len()
}

// Satcount returns the number of satisfying variable assignments of n, over
// the full set of variables created so far, using arbitrary-precision
// arithmetic to avoid overflow.
func (m *Manager) Satcount(n NodeID) *big.Int {
	m.checkNode("Satcount", n)
	res := big.NewInt(0)
	switch {
	case n == Undet:
		return res
	case n >= 2:
		res.SetBit(res, m.headersLen()-1-m.Level(n), 1)
	case n == One:
		res.SetBit(res, m.headersLen(), 1)
	}
	memo := map[NodeID]*big.Int{}
	return res.Mul(res, m.satcount(n, memo))
}

func (m *Manager) satcount(n NodeID, memo map[NodeID]*big.Int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	if res, ok := memo[n]; ok {
		return res
	}
	level := m.Level(n)
	low, high := m.Low(n), m.High(n)
	res := big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, m.gap(low, level), 1)
	res.Add(res, two.Mul(two, m.satcount(low, memo)))
	two = big.NewInt(0)
	two.SetBit(two, m.gap(high, level), 1)
	res.Add(res, two.Mul(two, m.satcount(high, memo)))
	memo[n] = res
	return res
}

// gap returns the number of variable levels strictly between child and
// parentLevel, whether child is a real node (its own level, necessarily
// smaller than parentLevel) or a terminal (level -1, so the gap runs all the
// way down to level 0).
func (m *Manager) gap(child NodeID, parentLevel int) int {
	return parentLevel - m.Level(child) - 1
}

// Allsat calls f once per satisfying assignment of n, passing a slice of
// length headersLen() where entry k is 0 (false), 1 (true), or -1 (don't
// care) for the variable at level k.
func (m *Manager) Allsat(n NodeID, f func([]int) error) error {
	m.checkNode("Allsat", n)
	prof := make([]int, m.headersLen())
	for k := range prof {
		prof[k] = -1
	}
	return m.allsat(n, prof, f)
}

func (m *Manager) allsat(n NodeID, prof []int, f func([]int) error) error {
	if n == One {
		return f(prof)
	}
	if n == Zero || n == Undet {
		return nil
	}
	lvl := m.Level(n)
	if low := m.Low(n); low != Zero {
		prof[lvl] = 0
		floor := 0
		if low >= 2 {
			floor = m.Level(low) + 1
		}
		for v := lvl - 1; v >= floor; v-- {
			prof[v] = -1
		}
		if err := m.allsat(low, prof, f); err != nil {
			return err
		}
	}
	if high := m.High(n); high != Zero {
		prof[lvl] = 1
		floor := 0
		if high >= 2 {
			floor = m.Level(high) + 1
		}
		for v := lvl - 1; v >= floor; v-- {
			prof[v] = -1
		}
		if err := m.allsat(high, prof, f); err != nil {
			return err
		}
	}
	return nil
}

// Allnodes calls f once per node reachable from the nodes in roots (or
// every live node if roots is empty), passing (id, level, low, high).
// Terminal nodes always have id 0 (False), 1 (True), 2 (Undet).
func (m *Manager) Allnodes(f func(id, level, low, high int) error, roots ...NodeID) error {
	if len(roots) == 0 {
		for id := 3; id < len(m.nodes); id++ {
			n := m.nodes[id]
			if err := f(id, m.headers.At(n.header).Level, int(n.low), int(n.high)); err != nil {
				return err
			}
		}
		return nil
	}
	seen := map[NodeID]bool{}
	var walk func(NodeID) error
	walk = func(n NodeID) error {
		if n < 3 || seen[n] {
			return nil
		}
		seen[n] = true
		nd := m.nodes[n]
		if err := walk(nd.low); err != nil {
			return err
		}
		if err := walk(nd.high); err != nil {
			return err
		}
		return f(int(n), m.headers.At(nd.header).Level, int(nd.low), int(nd.high))
	}
	for _, r := range roots {
		m.checkNode("Allnodes", r)
		if err := walk(r); err != nil {
			return err
		}
	}
	return nil
}
