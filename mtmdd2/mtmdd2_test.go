// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtmdd2

import (
	"testing"

	"ddkit/dd/mdd"
	"ddkit/dd/mtmdd"
)

// TestComparison checks that, given two identical 3-ary value diagrams X, Y
// over terminals 0,1,2, Eq(X,Y) is the MDD One, Lt(X,Y) is Zero, and
// Lt(X, Add(Y, 1)) is One.
func TestComparison(t *testing.T) {
	m := New()
	h := m.CreateHeader(0, "x", 3)
	x := m.CreateNode(h, []Node{m.Terminal(0), m.Terminal(1), m.Terminal(2)})
	y := m.CreateNode(h, []Node{m.Terminal(0), m.Terminal(1), m.Terminal(2)})

	if got := m.Eq(x, y); got != m.True() {
		t.Errorf("Eq(X, Y) = %v, want True", got)
	}
	if got := m.Lt(x, y); got != m.False() {
		t.Errorf("Lt(X, Y) = %v, want False", got)
	}

	one := m.Terminal(1)
	yPlus1 := m.Add(y, one)
	if got := m.Lt(x, yPlus1); got != m.True() {
		t.Errorf("Lt(X, Add(Y, 1)) = %v, want True", got)
	}
}

// TestDomainMismatchIsUndet checks that crossing domains (e.g. adding a
// Bool node) yields the Undet of the result's own domain rather than
// panicking, per this package's mismatch policy.
func TestDomainMismatchIsUndet(t *testing.T) {
	m := New()
	b := m.True()
	v := m.Terminal(5)

	if got := m.Add(b, v); got.Kind != KindValue || got != valueNode(mtmdd.Undet) {
		t.Errorf("Add(Bool, Value) = %v, want value Undet", got)
	}
	if got := m.And(b, v); got.Kind != KindBool || got != boolNode(mdd.Undet) {
		t.Errorf("And(Bool, Value) = %v, want bool Undet", got)
	}
}

// TestIteMixed checks Ite dispatch when the condition is Bool and the
// branches are Value: the result follows g where the condition holds and h
// where it does not.
func TestIteMixed(t *testing.T) {
	m := New()
	hx := m.CreateHeader(0, "c", 2)
	cond := m.CreateNode(hx, []Node{m.False(), m.True()})
	g := m.Terminal(10)
	h := m.Terminal(20)

	got := m.Ite(cond, g, h)
	if got.Kind != KindValue {
		t.Fatalf("Ite result kind = %v, want KindValue", got.Kind)
	}
	children := m.Values().Children(got.Value())
	if len(children) != 2 {
		t.Fatalf("Ite result has %d children, want 2", len(children))
	}
	if !m.Values().IsValue(children[0]) || m.Values().Value(children[0]) != 20 {
		t.Errorf("Ite branch 0 (cond false) = %v, want Terminal(20)", children[0])
	}
	if !m.Values().IsValue(children[1]) || m.Values().Value(children[1]) != 10 {
		t.Errorf("Ite branch 1 (cond true) = %v, want Terminal(10)", children[1])
	}
}
