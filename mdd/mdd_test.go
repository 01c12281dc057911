// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import "testing"

// TestReduction checks that a node whose children are all equal collapses
// to that child rather than being created, the k-ary generalisation of the
// BDD Shannon-reduction rule.
func TestReduction(t *testing.T) {
	m := New()
	h := m.CreateHeader(0, "x", 3)
	if got := m.CreateNode(h, []NodeID{One, One, One}); got != One {
		t.Errorf("CreateNode with equal children = %v, want One", got)
	}
}

// TestPathCount checks PathCount against a hand-built diagram with known
// arity-weighted path counts: a 3-ary variable over a 2-ary variable, with
// one path to One.
func TestPathCount(t *testing.T) {
	m := New()
	hy := m.CreateHeader(0, "y", 2)
	hx := m.CreateHeader(1, "x", 3)
	y := m.CreateNode(hy, []NodeID{Zero, One})
	x := m.CreateNode(hx, []NodeID{Zero, y, One})

	got := m.PathCount(x)
	// x=0 -> Zero: 0 assignments satisfy. x=1 -> y: satisfies only at
	// y=1, 1 assignment. x=2 -> One directly, regardless of y: 2
	// assignments (y=0 and y=1). Total 3.
	if got.Int64() != 3 {
		t.Errorf("PathCount(x) = %s, want 3", got)
	}
}

// TestDeMorgan checks Not(And(f, g)) == Or(Not(f), Not(g)).
func TestDeMorgan(t *testing.T) {
	m := New()
	h := m.CreateHeader(0, "x", 3)
	f := m.CreateNode(h, []NodeID{Zero, One, One})
	g := m.CreateNode(h, []NodeID{One, Zero, One})

	lhs := m.Not(m.And(f, g))
	rhs := m.Or(m.Not(f), m.Not(g))
	if lhs != rhs {
		t.Errorf("De Morgan failed: Not(And(f,g))=%v, Or(Not(f),Not(g))=%v", lhs, rhs)
	}
}

// TestIte checks Ite(f, g, h) against Apply-based (f & g) | (!f & h) for a
// non-trivial k-ary diagram.
func TestIte(t *testing.T) {
	m := New()
	h := m.CreateHeader(0, "x", 3)
	f := m.CreateNode(h, []NodeID{Zero, One, Zero})
	g := m.CreateNode(h, []NodeID{One, One, Zero})
	k := m.CreateNode(h, []NodeID{Zero, Zero, One})

	got := m.Ite(f, g, k)
	want := m.Or(m.And(f, g), m.And(m.Not(f), k))
	if got != want {
		t.Errorf("Ite(f,g,k) = %v, want %v", got, want)
	}
}
