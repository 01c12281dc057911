// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Renamer maps variable levels to their replacement level, for use with
// Manager.Replace.
type Renamer interface {
	// Image returns the level to substitute for level, and whether any
	// substitution applies (false leaves the variable untouched).
	Image(level int) (int, bool)
	// ID uniquely identifies this Renamer among those built from the same
	// Manager, so Replace's cache can be keyed per-renamer.
	ID() int
}

// levelRenamer is the straightforward Renamer built by NewRenamer: a fixed
// table of old->new level pairs.
type levelRenamer struct {
	id    int
	table map[int]int
}

func (r *levelRenamer) Image(level int) (int, bool) {
	v, ok := r.table[level]
	return v, ok
}

func (r *levelRenamer) ID() int {
	return r.id
}

// NewRenamer builds a Renamer substituting, for each pair (old, new) in
// pairs, variables at level old with the variable at level new. Every
// Renamer built from the same Manager gets a distinct ID so Replace's
// cache never confuses results from two different renamings.
func (m *Manager) NewRenamer(pairs map[int]int) Renamer {
	table := make(map[int]int, len(pairs))
	for old, new := range pairs {
		table[old] = new
	}
	m.replacerSeq++
	return &levelRenamer{id: m.replacerSeq, table: table}
}
