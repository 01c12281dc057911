// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package mtmdd2 glues mdd and mtmdd into one composite engine: a single
// header namespace shared by a Boolean sub-manager and an integer-valued
// sub-manager, so that comparisons (Eq, Lt) and conditionals (Ite) can move
// a result from one domain to the other. A Node here is tagged by which
// sub-manager it lives in; operations that cross tags where the spec gives
// no meaning (e.g. adding two Booleans) yield the Undet of the result's
// domain rather than panicking, since that is an ordinary runtime outcome,
// not a programmer error.
package mtmdd2

import (
	"fmt"

	"ddkit/dd/internal/arena"
	"ddkit/dd/mdd"
	"ddkit/dd/mtmdd"
)

// Kind distinguishes which sub-manager a Node's id belongs to.
type Kind int

const (
	KindBool Kind = iota
	KindValue
)

// Node is a tagged handle into one of the two sub-managers.
type Node struct {
	Kind Kind
	id   int
}

func boolNode(n mdd.NodeID) Node    { return Node{Kind: KindBool, id: int(n)} }
func valueNode(n mtmdd.NodeID) Node { return Node{Kind: KindValue, id: int(n)} }

// Bool returns n's id as an mdd.NodeID; it panics if n is not a Bool node.
func (n Node) Bool() mdd.NodeID {
	if n.Kind != KindBool {
		arena.Violate("Bool", "node is not a boolean node")
	}
	return mdd.NodeID(n.id)
}

// Value returns n's id as an mtmdd.NodeID; it panics if n is not a Value node.
func (n Node) Value() mtmdd.NodeID {
	if n.Kind != KindValue {
		arena.Violate("Value", "node is not a value node")
	}
	return mtmdd.NodeID(n.id)
}

type opKey struct {
	op   string
	f, g int
}

// Manager owns a Boolean mdd.Manager and an integer-valued mtmdd.Manager
// that share one header/level namespace: CreateHeader always creates the
// same header in both, at the same id, so a variable means the same thing
// regardless of which domain a diagram built over it lives in.
type Manager struct {
	bools  *mdd.Manager
	values *mtmdd.Manager

	bcache map[opKey]Node
	vcache map[opKey]Node
}

// New returns an empty Manager.
func New() *Manager {
	return &Manager{
		bools:  mdd.New(),
		values: mtmdd.New(),
		bcache: map[opKey]Node{},
		vcache: map[opKey]Node{},
	}
}

// Bools returns the underlying Boolean sub-manager, for operations (such as
// quantification) that have no value-domain analogue.
func (m *Manager) Bools() *mdd.Manager { return m.bools }

// Values returns the underlying integer-valued sub-manager.
func (m *Manager) Values() *mtmdd.Manager { return m.values }

// CreateHeader creates the same header, at the same id and level, in both
// sub-managers: this is the invariant that lets vif/veq/vlt walk a
// Boolean diagram and a value diagram in lockstep by level.
func (m *Manager) CreateHeader(level int, label string, arity int) arena.HeaderID {
	h1 := m.bools.CreateHeader(level, label, arity)
	h2 := m.values.CreateHeader(level, label, arity)
	if h1 != h2 {
		arena.Violate("CreateHeader", "bool/value header ids diverged (%d != %d)", h1, h2)
	}
	return h1
}

// True returns the Boolean constant true.
func (m *Manager) True() Node { return boolNode(m.bools.True()) }

// False returns the Boolean constant false.
func (m *Manager) False() Node { return boolNode(m.bools.False()) }

// Terminal interns value as an integer value terminal.
func (m *Manager) Terminal(value int64) Node { return valueNode(m.values.Terminal(value)) }

// CreateNode creates a node of the same kind as children in the matching
// sub-manager; every element of children must share that kind.
func (m *Manager) CreateNode(h arena.HeaderID, children []Node) Node {
	switch children[0].Kind {
	case KindBool:
		ids := make([]mdd.NodeID, len(children))
		for i, c := range children {
			ids[i] = c.Bool()
		}
		return boolNode(m.bools.CreateNode(h, ids))
	default:
		ids := make([]mtmdd.NodeID, len(children))
		for i, c := range children {
			ids[i] = c.Value()
		}
		return valueNode(m.values.CreateNode(h, ids))
	}
}

// Size reports the combined header/node/value/cache counts of both
// sub-managers plus this package's own comparison and Vif caches.
func (m *Manager) Size() (headers, nodes, values, cacheEntries int) {
	_, bn, bc := m.bools.Size()
	vh, vn, vv, vc := m.values.Size()
	return vh, bn + vn, vv, bc + vc + len(m.bcache) + len(m.vcache)
}

// Stats returns a short human-readable summary of the manager's arenas.
func (m *Manager) Stats() string {
	h, n, v, c := m.Size()
	return fmt.Sprintf("headers: %d, nodes: %d, values: %d, cache entries: %d", h, n, v, c)
}
