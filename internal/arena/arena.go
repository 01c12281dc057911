// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package arena holds the pieces every decision-diagram manager in this
// module shares: the append-only header table and the contract-violation
// error type. Each engine (bdd, zdd, mdd, mtmdd, mtmdd2) keeps its own node
// table, unique table, and operation caches (keyed by Go struct literals,
// which the runtime map already hashes well); only the header bookkeeping
// is common enough to live here.
package arena

import "fmt"

// HeaderID indexes into a Headers table. Ids are dense, monotone, and never
// reused: a header is created once per variable and never mutated or deleted.
type HeaderID int

// Header is an immutable record describing one variable: its rank (Level),
// its printable name (Label), and how many outgoing edges a node labelled by
// it has (OutDegree). OutDegree is 2 for BDD/ZDD and the domain size of the
// variable for MDD/MTMDD.
type Header struct {
	ID        HeaderID
	Level     int
	Label     string
	OutDegree int
}

// Headers is the append-only arena of variable headers shared by a manager.
type Headers struct {
	table []Header
}

// Create appends a new header and returns its id. Ids are dense and
// monotone; no deduplication is performed, so creating two headers with the
// same level is permitted (if discouraged — callers are responsible for a
// sane level ordering).
func (h *Headers) Create(level int, label string, outDegree int) HeaderID {
	id := HeaderID(len(h.table))
	h.table = append(h.table, Header{ID: id, Level: level, Label: label, OutDegree: outDegree})
	return id
}

// At returns the header with the given id. It panics on an out-of-range id,
// since an id that does not belong to this arena is a contract violation
// (see ContractViolation), not a recoverable error.
func (h *Headers) At(id HeaderID) Header {
	return h.table[id]
}

// Len returns the number of headers created so far.
func (h *Headers) Len() int {
	return len(h.table)
}

// ContractViolation marks a programmer error: a malformed call to a
// manager's CreateNode (wrong child count) or a node id that does not belong
// to the manager performing the lookup. Per the error-handling design, these
// are not recoverable — they abort via panic, never via a returned error.
type ContractViolation struct {
	Op   string
	Msg  string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Violate panics with a ContractViolation built from op and the formatted
// message. Engines call this instead of returning an error whenever the
// caller has broken the manager's contract (mismatched child count, foreign
// node id), matching the taxonomy in the error-handling design.
func Violate(op, format string, a ...interface{}) {
	panic(&ContractViolation{Op: op, Msg: fmt.Sprintf(format, a...)})
}
