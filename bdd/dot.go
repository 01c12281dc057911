// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "ddkit/dd/internal/arena"

// NodeView is a read-only snapshot of one node, exposed so external
// consumers (such as the dot package) can render a Manager's graph without
// depending on its internal representation.
type NodeView struct {
	ID         NodeID
	Terminal   bool
	HeaderID   arena.HeaderID
	Level      int
	Low, High  NodeID
}

// HeaderView is a read-only snapshot of one variable header.
type HeaderView struct {
	ID    arena.HeaderID
	Level int
	Label string
}

// View returns a read-only snapshot of n.
func (m *Manager) View(n NodeID) NodeView {
	m.checkNode("View", n)
	if m.IsTerminal(n) {
		return NodeView{ID: n, Terminal: true, Level: -1, Low: n, High: n}
	}
	return NodeView{
		ID:       n,
		HeaderID: m.Header(n),
		Level:    m.Level(n),
		Low:      m.Low(n),
		High:     m.High(n),
	}
}

// HeaderAt returns a read-only snapshot of header id h.
func (m *Manager) HeaderAt(h arena.HeaderID) HeaderView {
	hd := m.headers.At(h)
	return HeaderView{ID: hd.ID, Level: hd.Level, Label: hd.Label}
}

// Reachable returns, in a stable deterministic (pre-order) sequence, every
// node reachable from roots including the roots themselves.
func (m *Manager) Reachable(roots ...NodeID) []NodeID {
	seen := map[NodeID]bool{}
	var order []NodeID
	var walk func(NodeID)
	walk = func(n NodeID) {
		if seen[n] {
			return
		}
		seen[n] = true
		order = append(order, n)
		if !m.IsTerminal(n) {
			walk(m.Low(n))
			walk(m.High(n))
		}
	}
	for _, r := range roots {
		m.checkNode("Reachable", r)
		walk(r)
	}
	return order
}

// TerminalLabel returns the display label for a terminal NodeID.
func TerminalLabel(n NodeID) string {
	switch n {
	case Zero:
		return "0"
	case One:
		return "1"
	case Undet:
		return "?"
	default:
		return "?"
	}
}
