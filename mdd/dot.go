// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import "ddkit/dd/internal/arena"

// NodeView is a read-only snapshot of one node.
type NodeView struct {
	ID       NodeID
	Terminal bool
	HeaderID arena.HeaderID
	Level    int
	Children []NodeID
}

// HeaderView is a read-only snapshot of one variable header.
type HeaderView struct {
	ID    arena.HeaderID
	Level int
	Label string
	Arity int
}

// View returns a read-only snapshot of n.
func (m *Manager) View(n NodeID) NodeView {
	m.checkNode("View", n)
	if m.IsTerminal(n) {
		return NodeView{ID: n, Terminal: true, Level: -1, Children: []NodeID{n}}
	}
	return NodeView{ID: n, HeaderID: m.Header(n), Level: m.Level(n), Children: m.Children(n)}
}

// HeaderAt returns a read-only snapshot of header id h.
func (m *Manager) HeaderAt(h arena.HeaderID) HeaderView {
	hd := m.headers.At(h)
	return HeaderView{ID: hd.ID, Level: hd.Level, Label: hd.Label, Arity: hd.OutDegree}
}

// Reachable returns, in a stable pre-order sequence, every node reachable
// from roots including the roots themselves.
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
			for _, c := range m.Children(n) {
				walk(c)
			}
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
	default:
		return "?"
	}
}
