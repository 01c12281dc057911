// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"
	"testing"

	"ddkit/dd/internal/arena"
)

// nqueens computes the number of solutions to the N-Queens problem by
// building one Boolean variable per board square and conjoining a row,
// column, and diagonal non-attack constraint per square, then counting
// satisfying assignments.
//
//	    0 4  8 12
//	    1 5  9 13
//	    2 6 10 14
//	    3 7 11 15
//
// One solution places queens at 2, 4, 11, 13:
//
//	    . X . .
//	    . . . X
//	    X . . .
//	    . . X .
func nqueens(n int) *big.Int {
	m := New(Nodesize(n*n*256), Cachesize(n*n*64))
	h := make([][]arena.HeaderID, n)
	x := make([][]NodeID, n)
	for i := range h {
		h[i] = make([]arena.HeaderID, n)
		x[i] = make([]NodeID, n)
		for j := range h[i] {
			h[i][j] = m.CreateHeader(i*n+j, "")
			x[i][j] = m.Ithvar(h[i][j])
		}
	}
	queen := m.True()
	for i := 0; i < n; i++ {
		e := m.False()
		for j := 0; j < n; j++ {
			e = m.Apply(e, x[i][j], OPor)
		}
		queen = m.Apply(queen, e, OPand)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := m.True()
			for k := 0; k < n; k++ {
				if k != j {
					a = m.Apply(a, m.Apply(x[i][j], m.Not(x[i][k]), OPimp), OPand)
				}
			}
			b := m.True()
			for k := 0; k < n; k++ {
				if k != i {
					b = m.Apply(b, m.Apply(x[i][j], m.Not(x[k][j]), OPimp), OPand)
				}
			}
			c := m.True()
			for k := 0; k < n; k++ {
				if ll := k - i + j; ll >= 0 && ll < n && k != i {
					c = m.Apply(c, m.Apply(x[i][j], m.Not(x[k][ll]), OPimp), OPand)
				}
			}
			d := m.True()
			for k := 0; k < n; k++ {
				if ll := i + j - k; ll >= 0 && ll < n && k != i {
					d = m.Apply(d, m.Apply(x[i][j], m.Not(x[k][ll]), OPimp), OPand)
				}
			}
			queen = m.Apply(queen, a, OPand)
			queen = m.Apply(queen, b, OPand)
			queen = m.Apply(queen, c, OPand)
			queen = m.Apply(queen, d, OPand)
		}
	}
	return m.Satcount(queen)
}

func TestNQueens(t *testing.T) {
	tests := []struct {
		n        int
		expected int64
	}{
		{4, 2},
		{5, 10},
		{6, 4},
	}
	for _, tt := range tests {
		actual := nqueens(tt.n)
		if actual.Cmp(big.NewInt(tt.expected)) != 0 {
			t.Errorf("nqueens(%d): expected %d, got %s", tt.n, tt.expected, actual)
		}
	}
}

func BenchmarkNQueens(b *testing.B) {
	for n := 0; n < b.N; n++ {
		nqueens(6)
	}
}
