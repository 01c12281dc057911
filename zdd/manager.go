// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import (
	"fmt"

	"ddkit/dd/internal/arena"
)

// Debug gates the package's diagnostic logging.
var Debug = false

// Manager owns every header, node, and cache for one family of ZDDs. It is
// not safe for concurrent mutation.
type Manager struct {
	headers arena.Headers
	nodes   []node
	unique  map[uniqueKey]NodeID

	intersectCache map[opKey]NodeID
	unionCache     map[opKey]NodeID
	setdiffCache   map[opKey]NodeID
	productCache   map[opKey]NodeID
	divideCache    map[opKey]NodeID

	err error
}

type opKey struct {
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
		nodes:          make([]node, 0, c.nodesize),
		unique:         make(map[uniqueKey]NodeID, c.nodesize),
		intersectCache: make(map[opKey]NodeID, c.cachesize),
		unionCache:     make(map[opKey]NodeID, c.cachesize),
		setdiffCache:   make(map[opKey]NodeID, c.cachesize),
		productCache:   make(map[opKey]NodeID, c.cachesize),
		divideCache:    make(map[opKey]NodeID, c.cachesize),
	}
	m.nodes = append(m.nodes, node{terminal: true}, node{terminal: true}, node{terminal: true})
	return m
}

// CreateHeader appends a new variable header.
func (m *Manager) CreateHeader(level int, label string) arena.HeaderID {
	return m.headers.Create(level, label, 2)
}

// Single returns the family containing exactly the singleton set {h}.
func (m *Manager) Single(h arena.HeaderID) NodeID {
	return m.CreateNode(h, Zero, One)
}

// Empty returns the empty family (no sets at all).
func (m *Manager) Empty() NodeID { return Zero }

// Unit returns the family containing only the empty set.
func (m *Manager) Unit() NodeID { return One }

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
	m.intersectCache = make(map[opKey]NodeID, len(m.intersectCache))
	m.unionCache = make(map[opKey]NodeID, len(m.unionCache))
	m.setdiffCache = make(map[opKey]NodeID, len(m.setdiffCache))
	m.productCache = make(map[opKey]NodeID, len(m.productCache))
	m.divideCache = make(map[opKey]NodeID, len(m.divideCache))
}

// Size reports the number of headers, nodes, and live cache entries.
func (m *Manager) Size() (headers, nodes, cacheEntries int) {
	cacheEntries = len(m.intersectCache) + len(m.unionCache) + len(m.setdiffCache) +
		len(m.productCache) + len(m.divideCache)
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
