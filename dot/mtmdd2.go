// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dot

import (
	"strconv"

	"github.com/emicklei/dot"

	"ddkit/dd/mtmdd2"
)

func nodeID(n mtmdd2.Node) string {
	if n.Kind == mtmdd2.KindBool {
		return "b" + strconv.Itoa(int(n.Bool()))
	}
	return "v" + strconv.Itoa(int(n.Value()))
}

// MTMDD2 renders the sub-diagrams rooted at roots as a DOT graph. Bool and
// Value nodes share one graph but are namespaced ("b"/"v" id prefixes)
// since the two sub-managers assign ids independently.
func MTMDD2(m *mtmdd2.Manager, roots ...mtmdd2.Node) string {
	g := dot.NewGraph(dot.Directed)
	boolRoots, valueRoots := splitRoots(roots)
	seen := map[string]bool{}
	render := func(n mtmdd2.Node) {
		id := nodeID(n)
		if seen[id] {
			return
		}
		seen[id] = true
		v := m.View(n)
		if v.Terminal {
			g.Node(id).Attr("shape", "box").Attr("label", m.TerminalLabel(n))
			return
		}
		h := m.HeaderAt(v.HeaderID)
		gn := g.Node(id).Attr("label", h.Label)
		for i, c := range v.Children {
			g.Edge(gn, g.Node(nodeID(c))).Attr("label", strconv.Itoa(i))
		}
	}
	if len(boolRoots) > 0 {
		for _, n := range m.Reachable(boolRoots...) {
			render(n)
		}
	}
	if len(valueRoots) > 0 {
		for _, n := range m.Reachable(valueRoots...) {
			render(n)
		}
	}
	return g.String()
}

func splitRoots(roots []mtmdd2.Node) (bools, values []mtmdd2.Node) {
	for _, n := range roots {
		if n.Kind == mtmdd2.KindBool {
			bools = append(bools, n)
		} else {
			values = append(values, n)
		}
	}
	return bools, values
}
