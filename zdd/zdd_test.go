// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import (
	"strconv"
	"testing"
)

// TestZeroSuppression checks that create_node(x, F, Zero) bypasses node
// creation and returns F directly.
func TestZeroSuppression(t *testing.T) {
	m := New()
	x := m.CreateHeader(0, "x")
	f := m.Single(m.CreateHeader(1, "y"))
	if got := m.CreateNode(x, f, Zero); got != f {
		t.Errorf("CreateNode(x, f, Zero) = %v, want %v", got, f)
	}
}

// TestUnionOfSingletons checks that the union of two singleton-variable
// families is a two-level diagram whose two maximal paths both reach One,
// and whose enumerated members are exactly {x} and {y}.
func TestUnionOfSingletons(t *testing.T) {
	m := New()
	hx := m.CreateHeader(0, "x")
	hy := m.CreateHeader(1, "y")
	x := m.CreateNode(hx, Zero, One)
	y := m.CreateNode(hy, Zero, One)

	u := m.Union(x, y)
	if m.IsTerminal(u) {
		t.Fatalf("Union(x, y) collapsed to a terminal")
	}

	var sets [][]int
	if err := m.Allsets(u, func(levels []int) error {
		cp := append([]int(nil), levels...)
		sets = append(sets, cp)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if len(sets) != 2 {
		t.Fatalf("expected 2 members, got %d: %v", len(sets), sets)
	}
	want := map[string]bool{"[0]": true, "[1]": true}
	for _, s := range sets {
		key := fmtLevels(s)
		if !want[key] {
			t.Errorf("unexpected member %v", s)
		}
		delete(want, key)
	}
	if len(want) != 0 {
		t.Errorf("missing members: %v", want)
	}
}

func fmtLevels(levels []int) string {
	s := "["
	for i, l := range levels {
		if i > 0 {
			s += ","
		}
		s += strconv.Itoa(l)
	}
	return s + "]"
}

// TestIntersectUnionLaws checks the standard ZDD set-family laws:
// intersection is commutative and idempotent, and the union of a family
// with itself is itself.
func TestIntersectUnionLaws(t *testing.T) {
	m := New()
	hx := m.CreateHeader(0, "x")
	hy := m.CreateHeader(1, "y")
	x := m.CreateNode(hx, Zero, One)
	y := m.CreateNode(hy, Zero, One)
	u := m.Union(x, y)

	if got := m.Intersect(u, u); got != u {
		t.Errorf("Intersect(u, u) = %v, want %v (idempotence)", got, u)
	}
	if got, want := m.Intersect(x, y), m.Intersect(y, x); got != want {
		t.Errorf("Intersect not commutative: %v != %v", got, want)
	}
	if got := m.Union(u, u); got != u {
		t.Errorf("Union(u, u) = %v, want %v (idempotence)", got, u)
	}
	if got := m.Setdiff(u, u); got != Zero {
		t.Errorf("Setdiff(u, u) = %v, want Zero", got)
	}
}

// TestCount checks that Count agrees with an explicit Allsets enumeration.
func TestCount(t *testing.T) {
	m := New()
	hx := m.CreateHeader(0, "x")
	hy := m.CreateHeader(1, "y")
	x := m.CreateNode(hx, Zero, One)
	y := m.CreateNode(hy, Zero, One)
	u := m.Union(x, y)

	n := 0
	m.Allsets(u, func([]int) error { n++; return nil })
	if got := m.Count(u); got.Int64() != int64(n) {
		t.Errorf("Count(u) = %s, want %d", got, n)
	}
}
