// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtmdd

import "testing"

// TestAdd checks that adding two identical 3-ary MTMDDs over terminals
// 0, 1, 2 yields the pointwise doubled diagram 0, 2, 4.
func TestAdd(t *testing.T) {
	m := New()
	h := m.CreateHeader(0, "x", 3)
	x := m.CreateNode(h, []NodeID{m.Terminal(0), m.Terminal(1), m.Terminal(2)})
	y := m.CreateNode(h, []NodeID{m.Terminal(0), m.Terminal(1), m.Terminal(2)})

	sum := m.Add(x, y)
	want := []int64{0, 2, 4}
	children := m.Children(sum)
	if len(children) != 3 {
		t.Fatalf("Add(x, y) has %d children, want 3", len(children))
	}
	for i, c := range children {
		if !m.IsValue(c) || m.Value(c) != want[i] {
			t.Errorf("Add(x, y) child %d = %v, want value %d", i, c, want[i])
		}
	}
}

// TestDivByZeroIsUndet checks that division by a terminal zero yields
// Undet rather than panicking or propagating a bogus value.
func TestDivByZeroIsUndet(t *testing.T) {
	m := New()
	ten := m.Terminal(10)
	zero := m.Terminal(0)
	if got := m.Div(ten, zero); got != Undet {
		t.Errorf("Div(10, 0) = %v, want Undet", got)
	}
}

// TestTerminalInterning checks that Terminal interns by value: two calls
// with the same int64 return the same NodeID.
func TestTerminalInterning(t *testing.T) {
	m := New()
	a := m.Terminal(42)
	b := m.Terminal(42)
	if a != b {
		t.Errorf("Terminal(42) not interned: %v != %v", a, b)
	}
}

// TestReplace checks that Replace(f, g) fills in f's Undet gaps with g
// while leaving f's genuine value leaves untouched.
func TestReplace(t *testing.T) {
	m := New()
	seven := m.Terminal(7)
	if got := m.Replace(seven, m.Terminal(9)); got != seven {
		t.Errorf("Replace(Terminal(7), g) = %v, want Terminal(7) unchanged", got)
	}
	if got := m.Replace(Undet, seven); got != seven {
		t.Errorf("Replace(Undet, g) = %v, want g", got)
	}

	h := m.CreateHeader(0, "x", 2)
	f := m.CreateNode(h, []NodeID{Undet, m.Terminal(1)})
	got := m.Replace(f, seven)
	children := m.Children(got)
	if children[0] != seven {
		t.Errorf("Replace: gap at index 0 = %v, want Terminal(7)", children[0])
	}
	if !m.IsValue(children[1]) || m.Value(children[1]) != 1 {
		t.Errorf("Replace: index 1 = %v, want Terminal(1) preserved", children[1])
	}
}
