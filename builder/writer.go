package builder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvwalk/core"
)

// WriteAdjacencyList renders g in the adjacency-list text format, one node
// per line in ascending ID order, neighbors in stored order. Isolated nodes
// get a line of their own so they survive a reload.
func WriteAdjacencyList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	adj := g.AdjacencyList()
	buf := make([]byte, 0, 256)
	for _, v := range g.Nodes() {
		buf = strconv.AppendInt(buf[:0], v, 10)
		for _, u := range adj[v] {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, u, 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("WriteAdjacencyList: node %d: %w", v, err)
		}
	}

	return bw.Flush()
}
