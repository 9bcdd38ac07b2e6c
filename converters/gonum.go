// Package converters provides two-way adapters between core.Graph and
// gonum/graph, so a corpus graph can be handed to gonum's algorithms (or a
// gonum graph used as an edge source) without reimplementing either side.
package converters

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvwalk/core"
)

// ToGonum copies g into a gonum simple.UndirectedGraph. Node IDs are kept
// verbatim; isolated nodes are kept; self loops and duplicate arcs, which
// gonum's simple graphs cannot hold, are skipped.
// Complexity: O(V+E).
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	adj := g.AdjacencyList()
	for _, v := range g.Nodes() {
		if out.Node(v) == nil {
			out.AddNode(simple.Node(v))
		}
		for _, u := range adj[v] {
			if u == v || out.HasEdgeBetween(v, u) {
				continue
			}
			out.SetEdge(out.NewEdge(simple.Node(v), simple.Node(u)))
		}
	}

	return out
}

// FromGonum copies any gonum graph into a symmetrized core.Graph. Directed
// inputs are made undirected: an arc u→v becomes the edge u–v.
// Complexity: O(V+E) plus the consistency pass.
func FromGonum(src graph.Graph, opts ...core.GraphOption) *core.Graph {
	g := core.NewGraph(opts...)
	nodes := src.Nodes()
	for nodes.Next() {
		v := nodes.Node().ID()
		g.AddNode(v)
		succ := src.From(v)
		for succ.Next() {
			g.AppendNeighbors(v, succ.Node().ID())
		}
	}

	return g.MakeUndirected()
}
