// Package core provides the in-memory adjacency Graph that the loader fills
// and the walker reads.
//
// A Graph maps an int64 node ID to an ordered slice of neighbor IDs. The ID
// space may be sparse; nodes with no edges keep an empty entry and are never
// dropped.
//
// Lifecycle:
//
//	g := core.NewGraph()          // empty
//	g.AddEdge(1, 2)               // appends both directions, creates nodes
//	g.AppendNeighbors(3, 1, 1, 3) // bulk ingestion, one direction, raw
//	g.MakeUndirected()            // mirror arcs, then MakeConsistent()
//
// After MakeConsistent every neighbor list is strictly ascending, duplicate
// free and self-loop free. After MakeUndirected the relation is symmetric:
// v ∈ adj[u] ⇔ u ∈ adj[v]. Both passes are idempotent.
//
// Queries:
//
//	Nodes() []int64                      // O(V log V), ascending
//	Order(), NumberOfNodes() int         // O(1)
//	NumberOfEdges() int                  // O(V), half the arc count
//	Degree(v) (int, error)               // O(1)
//	Degrees(vs) (map[int64]int, error)   // O(len(vs))
//	HasEdge(u, v) (bool, error)          // O(log d) on consistent lists
//	Neighbors(v) ([]int64, error)        // O(d), defensive copy
//	Subgraph(vs) *Graph                  // O(V+E) induced view
//
// Errors:
//
//	ErrNodeNotFound – query against an ID that is not a key of the Graph.
//
// No query creates a node. Only AddNode, AddEdge, AppendNeighbors, Merge and
// FromAdjacency insert keys.
//
// Concurrency: every method takes the Graph's RWMutex, so readers may share a
// Graph across goroutines. The loader never shares a Graph with its workers;
// partial results are merged by a single coordinator.
package core
