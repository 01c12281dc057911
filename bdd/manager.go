// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package bdd implements Binary Decision Diagrams: a canonical, hash-consed
// representation of Boolean functions over a fixed set of variables. Most
// operations return a NodeID, an opaque handle into the Manager's arena;
// NodeID 0 denotes the constant false and NodeID 1 the constant true.
package bdd

import (
	"fmt"

	"ddkit/dd/internal/arena"
)

// Debug gates the package's diagnostic logging.
var Debug = false

// Manager owns every header, node, and cache for one family of BDDs. It is
// not safe for concurrent mutation: all Create* and operation methods
// assume exclusive access, matching the single-threaded cooperative model.
type Manager struct {
	headers arena.Headers
	nodes   []node
	unique  map[uniqueKey]NodeID

	notCache     map[NodeID]NodeID
	applyCache   map[applyKey]NodeID
	iteCache     map[iteKey]NodeID
	existCache   map[existKey]NodeID
	appexCache   map[appexKey]NodeID
	replaceCache map[replaceKey]NodeID

	replacerSeq int
	err         error
}

type config struct {
	nodesize  int
	cachesize int
}

// Option configures a Manager at construction time.
type Option func(*config)

// Nodesize hints at the initial capacity of the node table.
func Nodesize(n int) Option {
	return func(c *config) { c.nodesize = n }
}

// Cachesize hints at the initial capacity of each operation cache.
func Cachesize(n int) Option {
	return func(c *config) { c.cachesize = n }
}

// New returns an empty Manager: only the Zero, One, and Undet terminals
// exist until CreateHeader and CreateNode are called.
func New(opts ...Option) *Manager {
	c := &config{nodesize: 64, cachesize: 256}
	for _, o := range opts {
		o(c)
	}
	m := &Manager{
		nodes:        make([]node, 0, c.nodesize),
		unique:       make(map[uniqueKey]NodeID, c.nodesize),
		notCache:     make(map[NodeID]NodeID, c.cachesize),
		applyCache:   make(map[applyKey]NodeID, c.cachesize),
		iteCache:     make(map[iteKey]NodeID, c.cachesize),
		existCache:   make(map[existKey]NodeID, c.cachesize),
		appexCache:   make(map[appexKey]NodeID, c.cachesize),
		replaceCache: make(map[replaceKey]NodeID, c.cachesize),
	}
	m.nodes = append(m.nodes, node{terminal: true}, node{terminal: true}, node{terminal: true})
	return m
}

// CreateHeader appends a new variable header; see arena.Headers.Create.
func (m *Manager) CreateHeader(level int, label string) arena.HeaderID {
	return m.headers.Create(level, label, 2)
}

// Ithvar returns the node representing variable h in its positive form.
func (m *Manager) Ithvar(h arena.HeaderID) NodeID {
	return m.CreateNode(h, Zero, One)
}

// NIthvar returns the node representing the negation of variable h.
func (m *Manager) NIthvar(h arena.HeaderID) NodeID {
	return m.CreateNode(h, One, Zero)
}

// True returns the constant-true terminal.
func (m *Manager) True() NodeID { return One }

// False returns the constant-false terminal.
func (m *Manager) False() NodeID { return Zero }

// From returns True or False for v.
func (m *Manager) From(v bool) NodeID {
	if v {
		return One
	}
	return Zero
}

// Error returns the sticky error status of the manager, or "" if none.
func (m *Manager) Error() string {
	if m.err == nil {
		return ""
	}
	return m.err.Error()
}

// Errored reports whether the manager's sticky error flag is set.
func (m *Manager) Errored() bool {
	return m.err != nil
}

func (m *Manager) seterror(format string, a ...interface{}) NodeID {
	m.err = fmt.Errorf(format, a...)
	return Zero
}

// ClearCache discards every memoised operation result. This is purely a
// performance reset: the unique table (and therefore every node id) is
// untouched, so clearing the cache never changes the result of a later
// call with the same arguments.
func (m *Manager) ClearCache() {
	m.notCache = make(map[NodeID]NodeID, len(m.notCache))
	m.applyCache = make(map[applyKey]NodeID, len(m.applyCache))
	m.iteCache = make(map[iteKey]NodeID, len(m.iteCache))
	m.existCache = make(map[existKey]NodeID, len(m.existCache))
	m.appexCache = make(map[appexKey]NodeID, len(m.appexCache))
	m.replaceCache = make(map[replaceKey]NodeID, len(m.replaceCache))
}

// Size reports the number of headers, the number of nodes (including the
// three fixed terminals), and the total number of live cache entries.
func (m *Manager) Size() (headers, nodes, cacheEntries int) {
	cacheEntries = len(m.notCache) + len(m.applyCache) + len(m.iteCache) +
		len(m.existCache) + len(m.appexCache) + len(m.replaceCache)
	return m.headers.Len(), len(m.nodes), cacheEntries
}

// Stats returns a short human-readable summary of the manager's arenas.
func (m *Manager) Stats() string {
	h, n, c := m.Size()
	return fmt.Sprintf("headers: %d, nodes: %d, cache entries: %d", h, n, c)
}

func (m *Manager) checkNode(op string, n NodeID) {
	if int(n) < 0 || int(n) >= len(m.nodes) {
		arena.Violate(op, "node id %d is not owned by this manager", n)
	}
}
