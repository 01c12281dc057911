// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dot

import (
	"strconv"

	"github.com/emicklei/dot"

	"ddkit/dd/mtmdd"
)

// MTMDD renders the sub-diagrams rooted at roots as a DOT graph. Terminals
// are drawn with their interned integer value (or "?" for Undet) rather
// than a fixed 0/1 pair.
func MTMDD(m *mtmdd.Manager, roots ...mtmdd.NodeID) string {
	g := dot.NewGraph(dot.Directed)
	seen := map[mtmdd.NodeID]bool{}
	for _, n := range m.Reachable(roots...) {
		if seen[n] {
			continue
		}
		seen[n] = true
		v := m.View(n)
		id := strconv.Itoa(int(n))
		if v.Kind != "nonterminal" {
			g.Node(id).Attr("shape", "box").Attr("label", m.TerminalLabel(n))
			continue
		}
		h := m.HeaderAt(v.HeaderID)
		gn := g.Node(id).Attr("label", h.Label)
		for i, c := range v.Children {
			cid := strconv.Itoa(int(c))
			g.Edge(gn, g.Node(cid)).Attr("label", strconv.Itoa(i))
		}
	}
	return g.String()
}
