// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dot

import (
	"strconv"

	"github.com/emicklei/dot"

	"ddkit/dd/mdd"
)

// MDD renders the sub-diagrams rooted at roots as a DOT graph. Each
// non-terminal has one outgoing edge per child, labelled with the child's
// index in [0, arity).
func MDD(m *mdd.Manager, roots ...mdd.NodeID) string {
	g := dot.NewGraph(dot.Directed)
	seen := map[mdd.NodeID]bool{}
	for _, n := range m.Reachable(roots...) {
		if seen[n] {
			continue
		}
		seen[n] = true
		v := m.View(n)
		id := strconv.Itoa(int(n))
		if v.Terminal {
			g.Node(id).Attr("shape", "box").Attr("label", mdd.TerminalLabel(n))
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
