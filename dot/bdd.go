// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package dot renders decision diagrams from any of the five engines
// (bdd, zdd, mdd, mtmdd, mtmdd2) to Graphviz DOT, using nothing but each
// engine's read-only View/HeaderAt/Reachable/TerminalLabel accessors: this
// package never reaches into an engine's internals, the same way a
// consumer outside the module could not.
package dot

import (
	"strconv"

	"github.com/emicklei/dot"

	"ddkit/dd/bdd"
)

// BDD renders the sub-diagrams rooted at roots as a DOT graph. The low edge
// of every node is dashed, the high edge solid, matching the convention
// used throughout the BDD literature.
func BDD(m *bdd.Manager, roots ...bdd.NodeID) string {
	g := dot.NewGraph(dot.Directed)
	seen := map[bdd.NodeID]bool{}
	for _, n := range m.Reachable(roots...) {
		if seen[n] {
			continue
		}
		seen[n] = true
		v := m.View(n)
		id := strconv.Itoa(int(n))
		if v.Terminal {
			g.Node(id).Attr("shape", "box").Attr("label", bdd.TerminalLabel(n))
			continue
		}
		h := m.HeaderAt(v.HeaderID)
		gn := g.Node(id).Attr("label", h.Label)
		lowID, highID := strconv.Itoa(int(v.Low)), strconv.Itoa(int(v.High))
		g.Edge(gn, g.Node(lowID)).Attr("style", "dashed")
		g.Edge(gn, g.Node(highID)).Attr("style", "solid")
	}
	return g.String()
}
