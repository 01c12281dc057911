// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtmdd2

import (
	"ddkit/dd/internal/arena"
	"ddkit/dd/mdd"
	"ddkit/dd/mtmdd"
)

// NodeView is a read-only snapshot of one node, delegating to whichever
// sub-manager's view matches the node's Kind.
type NodeView struct {
	Kind     Kind
	Terminal bool
	Label    string
	HeaderID arena.HeaderID
	Level    int
	Children []Node
}

// HeaderView is a read-only snapshot of one variable header, shared by both
// sub-managers under the CreateHeader invariant.
type HeaderView struct {
	ID    arena.HeaderID
	Level int
	Label string
	Arity int
}

// View returns a read-only snapshot of n.
func (m *Manager) View(n Node) NodeView {
	switch n.Kind {
	case KindBool:
		v := m.bools.View(n.Bool())
		children := make([]Node, len(v.Children))
		for i, c := range v.Children {
			children[i] = boolNode(c)
		}
		return NodeView{Kind: KindBool, Terminal: v.Terminal, Label: mdd.TerminalLabel(v.ID), HeaderID: v.HeaderID, Level: v.Level, Children: children}
	default:
		v := m.values.View(n.Value())
		children := make([]Node, len(v.Children))
		for i, c := range v.Children {
			children[i] = valueNode(c)
		}
		return NodeView{Kind: KindValue, Terminal: v.Kind != "nonterminal", Label: m.values.TerminalLabel(v.ID), HeaderID: v.HeaderID, Level: v.Level, Children: children}
	}
}

// HeaderAt returns a read-only snapshot of header id h, read from the
// Boolean sub-manager (both sub-managers agree on every header by
// construction).
func (m *Manager) HeaderAt(h arena.HeaderID) HeaderView {
	hd := m.bools.HeaderAt(h)
	return HeaderView{ID: hd.ID, Level: hd.Level, Label: hd.Label, Arity: hd.Arity}
}

// Reachable returns, in a stable pre-order sequence, every node reachable
// from roots including the roots themselves. All roots must share one Kind.
func (m *Manager) Reachable(roots ...Node) []Node {
	if len(roots) == 0 {
		return nil
	}
	switch roots[0].Kind {
	case KindBool:
		ids := make([]mdd.NodeID, len(roots))
		for i, r := range roots {
			ids[i] = r.Bool()
		}
		out := m.bools.Reachable(ids...)
		res := make([]Node, len(out))
		for i, id := range out {
			res[i] = boolNode(id)
		}
		return res
	default:
		ids := make([]mtmdd.NodeID, len(roots))
		for i, r := range roots {
			ids[i] = r.Value()
		}
		out := m.values.Reachable(ids...)
		res := make([]Node, len(out))
		for i, id := range out {
			res[i] = valueNode(id)
		}
		return res
	}
}

// TerminalLabel returns the display label for a terminal Node.
func (m *Manager) TerminalLabel(n Node) string {
	if n.Kind == KindBool {
		return mdd.TerminalLabel(n.Bool())
	}
	return m.values.TerminalLabel(n.Value())
}
