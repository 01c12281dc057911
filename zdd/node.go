// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package zdd implements Zero-suppressed Decision Diagrams: a canonical,
// hash-consed representation of families of finite sets. Unlike bdd's
// Shannon reduction (equal children collapse), a zdd node collapses when its
// high child is the empty-family terminal Zero: a variable whose selection
// can never contribute a set is suppressed from the diagram entirely, which
// is what makes ZDDs compact for sparse families over a large universe.
package zdd

import "ddkit/dd/internal/arena"

// NodeID is the opaque handle to a node inside one Manager.
type NodeID int

// Fixed terminal ids, stable for the lifetime of every Manager.
const (
	Zero  NodeID = 0
	One   NodeID = 1
	Undet NodeID = 2
)

type node struct {
	header   arena.HeaderID
	low      NodeID
	high     NodeID
	terminal bool
}

// Low returns the "variable excluded" child of n, or n itself if terminal.
func (m *Manager) Low(n NodeID) NodeID {
	if m.nodes[n].terminal {
		return n
	}
	return m.nodes[n].low
}

// High returns the "variable included" child of n, or n itself if terminal.
func (m *Manager) High(n NodeID) NodeID {
	if m.nodes[n].terminal {
		return n
	}
	return m.nodes[n].high
}

// Header returns the header id labelling n; it panics if n is a terminal.
func (m *Manager) Header(n NodeID) arena.HeaderID {
	if m.nodes[n].terminal {
		arena.Violate("Header", "node %d is a terminal", n)
	}
	return m.nodes[n].header
}

// Level returns the variable level of n, or -1 for a terminal.
func (m *Manager) Level(n NodeID) int {
	if m.nodes[n].terminal {
		return -1
	}
	return m.headers.At(m.nodes[n].header).Level
}

// IsTerminal reports whether n is one of Zero, One, or Undet.
func (m *Manager) IsTerminal(n NodeID) bool {
	return m.nodes[n].terminal
}

type uniqueKey struct {
	header arena.HeaderID
	low    NodeID
	high   NodeID
}

// CreateNode applies the zero-suppression reduction rule (a node whose high
// child is Zero contributes nothing and collapses to its low child) before
// consulting the unique table.
func (m *Manager) CreateNode(h arena.HeaderID, low, high NodeID) NodeID {
	if int(low) >= len(m.nodes) || int(high) >= len(m.nodes) {
		arena.Violate("CreateNode", "child id out of range (low=%d, high=%d)", low, high)
	}
	if high == Zero {
		return low
	}
	key := uniqueKey{h, low, high}
	if id, ok := m.unique[key]; ok {
		return id
	}
	id := NodeID(len(m.nodes))
	m.nodes = append(m.nodes, node{header: h, low: low, high: high})
	m.unique[key] = id
	return id
}
