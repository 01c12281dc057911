// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"testing"

	"ddkit/dd/internal/arena"
)

// TestConjunction checks that And(X, Y), with X at level 0 and Y at level 1,
// is a non-terminal labelled by Y whose low child is Zero and whose high
// child is X; and that not(not(And(X,Y))) is canonically the same node.
func TestConjunction(t *testing.T) {
	m := New()
	x := m.CreateHeader(0, "x")
	y := m.CreateHeader(1, "y")
	X := m.Ithvar(x)
	Y := m.Ithvar(y)

	and := m.Apply(X, Y, OPand)
	if m.Header(and) != y {
		t.Fatalf("And(X, Y) header = %v, want y", m.Header(and))
	}
	if m.Low(and) != Zero {
		t.Errorf("And(X, Y) low = %v, want Zero", m.Low(and))
	}
	if m.High(and) != X {
		t.Errorf("And(X, Y) high = %v, want X", m.High(and))
	}

	if got := m.Not(m.Not(and)); got != and {
		t.Errorf("Not(Not(And(X,Y))) = %v, want %v (canonicity)", got, and)
	}
}

// TestShannonReduction checks that a node whose low and high children are
// both One collapses to One rather than being created.
func TestShannonReduction(t *testing.T) {
	m := New()
	x := m.CreateHeader(0, "x")
	if got := m.CreateNode(x, One, One); got != One {
		t.Errorf("CreateNode(x, One, One) = %v, want One", got)
	}
}

// TestDeMorgan checks Not(And(f,g)) == Or(Not(f), Not(g)) over a
// multi-variable diagram.
func TestDeMorgan(t *testing.T) {
	m := New()
	x := m.Ithvar(m.CreateHeader(0, "x"))
	y := m.Ithvar(m.CreateHeader(1, "y"))

	lhs := m.Not(m.Apply(x, y, OPand))
	rhs := m.Apply(m.Not(x), m.Not(y), OPor)
	if lhs != rhs {
		t.Errorf("De Morgan failed: %v != %v", lhs, rhs)
	}
}

// TestIte checks that Ite(f, g, h) agrees with the Apply-based
// (f & g) | (!f & h) definition.
func TestIte(t *testing.T) {
	m := New()
	x := m.Ithvar(m.CreateHeader(0, "x"))
	y := m.Ithvar(m.CreateHeader(1, "y"))
	z := m.Ithvar(m.CreateHeader(2, "z"))

	got := m.Ite(x, y, z)
	want := m.Apply(m.Apply(x, y, OPand), m.Apply(m.Not(x), z, OPand), OPor)
	if got != want {
		t.Errorf("Ite(x,y,z) = %v, want %v", got, want)
	}
}

// TestSatcount checks that Satcount agrees with an explicit Allsat
// enumeration for a small conjunction.
func TestSatcount(t *testing.T) {
	m := New()
	x := m.Ithvar(m.CreateHeader(0, "x"))
	y := m.Ithvar(m.CreateHeader(1, "y"))
	f := m.Apply(x, y, OPand)

	n := 0
	m.Allsat(f, func([]int) error { n++; return nil })
	if got := m.Satcount(f); got.Int64() != int64(n) {
		t.Errorf("Satcount = %s, want %d", got, n)
	}
}

// TestExist checks that existentially quantifying out every variable of a
// satisfiable function yields One.
func TestExist(t *testing.T) {
	m := New()
	hx := m.CreateHeader(0, "x")
	hy := m.CreateHeader(1, "y")
	x := m.Ithvar(hx)
	y := m.Ithvar(hy)
	f := m.Apply(x, y, OPand)

	varset := m.Makeset([]arena.HeaderID{hx, hy})
	if got := m.Exist(f, varset); got != One {
		t.Errorf("Exist(f, {x,y}) = %v, want One", got)
	}
}
