// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"fmt"

	"ddkit/dd/internal/arena"
)

// Debug gates the package's diagnostic logging.
var Debug = false

// Manager owns every header, node, and cache for one family of MDDs.
type Manager struct {
	headers arena.Headers
	nodes   []node
	unique  map[uniqueKey]NodeID

	notCache     map[NodeID]NodeID
	applyCache   map[applyKey]NodeID
	replaceCache map[opKey]NodeID

	err error
}

type opKey struct {
	f, g NodeID
}

type applyKey struct {
	op   Operator
	f, g NodeID
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
		replaceCache: make(map[opKey]NodeID, c.cachesize),
	}
	m.nodes = append(m.nodes, node{terminal: true}, node{terminal: true}, node{terminal: true})
	return m
}

// CreateHeader appends a new variable header with the given arity
// (number of values the variable may take).
func (m *Manager) CreateHeader(level int, label string, arity int) arena.HeaderID {
	return m.headers.Create(level, label, arity)
}

// True returns the constant-true terminal.
func (m *Manager) True() NodeID { return One }

// False returns the constant-false terminal.
func (m *Manager) False() NodeID { return Zero }

func (m *Manager) seterror(format string, a ...interface{}) NodeID {
	m.err = fmt.Errorf(format, a...)
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

// ClearCache discards every memoised operation result.
func (m *Manager) ClearCache() {
	m.notCache = make(map[NodeID]NodeID, len(m.notCache))
	m.applyCache = make(map[applyKey]NodeID, len(m.applyCache))
	m.replaceCache = make(map[opKey]NodeID, len(m.replaceCache))
}

// Size reports the number of headers, nodes, and live cache entries.
func (m *Manager) Size() (headers, nodes, cacheEntries int) {
	cacheEntries = len(m.notCache) + len(m.applyCache) + len(m.replaceCache)
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

func (m *Manager) headersLen() int {
	return m.headers.Len()
}
