// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"
	"testing"

	"ddkit/dd/internal/arena"
)

// milner computes the reachable state space of a system of varnum cyclers,
// each with three Boolean state components (c, t, h) and their primed
// (next-state) counterparts, laid out as interleaved (unprimed, primed)
// pairs so that a single level-renaming table can move a primed diagram
// back onto the unprimed variables. There is a closed-form formula for the
// size of the reachable set, which is what the tests below check against.
func milner(tb testing.TB, fast bool, varnum int, opts ...Option) (*Manager, NodeID) {
	m := New(opts...)
	hdr := make([]arena.HeaderID, varnum*6)
	for i := range hdr {
		hdr[i] = m.CreateHeader(i, "")
	}
	ithvar := func(level int) NodeID { return m.Ithvar(hdr[level]) }

	c := make([]NodeID, varnum)
	cp := make([]NodeID, varnum)
	t := make([]NodeID, varnum)
	tp := make([]NodeID, varnum)
	h := make([]NodeID, varnum)
	hp := make([]NodeID, varnum)
	for n := 0; n < varnum; n++ {
		c[n] = ithvar(n * 6)
		cp[n] = ithvar(n*6 + 1)
		t[n] = ithvar(n*6 + 2)
		tp[n] = ithvar(n*6 + 3)
		h[n] = ithvar(n*6 + 4)
		hp[n] = ithvar(n*6 + 5)
	}

	pairs := make(map[int]int, varnum*3)
	var nlevels []arena.HeaderID
	for n := 0; n < varnum*3; n++ {
		pairs[n*2+1] = n * 2
		nlevels = append(nlevels, hdr[n*2])
	}
	renamer := m.NewRenamer(pairs)

	and := func(ns ...NodeID) NodeID {
		res := m.True()
		for _, n := range ns {
			res = m.Apply(res, n, OPand)
		}
		return res
	}
	or := func(ns ...NodeID) NodeID {
		res := m.False()
		for _, n := range ns {
			res = m.Apply(res, n, OPor)
		}
		return res
	}

	// I is the initial state: every cycler idle.
	I := and(c[0], m.Not(h[0]), m.Not(t[0]))
	for i := 1; i < varnum; i++ {
		I = and(I, m.Not(c[i]), m.Not(h[i]), m.Not(t[i]))
	}

	// unchangedExcept asserts every cycler other than z keeps the same
	// (x, x') value; z = varnum excludes no cycler.
	unchangedExcept := func(x, y []NodeID, z int) NodeID {
		res := m.True()
		for i := 0; i < varnum; i++ {
			if i != z {
				res = and(res, m.Apply(x[i], y[i], OPbiimp))
			}
		}
		return res
	}

	T := m.False()
	for i := 0; i < varnum; i++ {
		p1 := and(c[i], m.Not(cp[i]), tp[i], m.Not(t[i]), hp[i], unchangedExcept(c, cp, i), unchangedExcept(t, tp, i), unchangedExcept(h, hp, i))
		p2 := and(h[i], m.Not(hp[i]), cp[(i+1)%varnum], unchangedExcept(c, cp, (i+1)%varnum), unchangedExcept(h, hp, i), unchangedExcept(t, tp, varnum))
		e := and(t[i], m.Not(tp[i]), unchangedExcept(t, tp, i), unchangedExcept(h, hp, varnum), unchangedExcept(c, cp, varnum))
		T = or(T, p1, or(p2, e))
	}

	normvar := m.Makeset(nlevels)
	R := I
	for {
		prev := R
		if fast {
			R = m.Apply(m.Replace(m.AppEx(R, T, OPand, normvar), renamer), R, OPor)
		} else {
			R = or(m.Replace(m.Exist(and(R, T), normvar), renamer), R)
		}
		if R == prev {
			break
		}
	}
	return m, R
}

func TestMilner(t *testing.T) {
	for _, n := range []int{4, 5, 7} {
		fastM, rFast := milner(t, true, n, Nodesize(1000), Cachesize(250))
		slowM, rSlow := milner(t, false, n, Nodesize(1000), Cachesize(250))
		expected := big.NewInt(int64(n))
		pow := big.NewInt(0)
		pow.SetBit(pow, 4*n+1, 1)
		expected.Mul(expected, pow)
		fastResult := fastM.Satcount(rFast)
		slowResult := slowM.Satcount(rSlow)
		if fastResult.Cmp(expected) != 0 || slowResult.Cmp(expected) != 0 {
			t.Errorf("milner(%d): expected %s, got %s (fast) and %s (slow)", n, expected, fastResult, slowResult)
		}
	}
}

func BenchmarkMilner(b *testing.B) {
	for n := 0; n < b.N; n++ {
		milner(b, true, 20, Nodesize(100000), Cachesize(25000))
	}
}
