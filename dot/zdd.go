// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dot

import (
	"strconv"

	"github.com/emicklei/dot"

	"ddkit/dd/zdd"
)

// ZDD renders the sub-diagrams rooted at roots as a DOT graph. The low edge
// (member excluded) is dashed, the high edge (member included) solid.
func ZDD(m *zdd.Manager, roots ...zdd.NodeID) string {
	g := dot.NewGraph(dot.Directed)
	seen := map[zdd.NodeID]bool{}
	for _, n := range m.Reachable(roots...) {
		if seen[n] {
			continue
		}
		seen[n] = true
		v := m.View(n)
		id := strconv.Itoa(int(n))
		if v.Terminal {
			g.Node(id).Attr("shape", "box").Attr("label", zdd.TerminalLabel(n))
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
