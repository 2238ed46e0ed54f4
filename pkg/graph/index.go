package graph

import (
	"github.com/lexatlas/lexatlas/pkg/common"
)

// neighbor is one adjacency entry: the node on the other end of a link and
// the type of that link.
type neighbor struct {
	id       string
	edgeType common.EdgeType
}

// graphIndex holds the undirected adjacency of the base graph. It is built
// once and never mutated, so concurrent queries can read it without locking.
type graphIndex struct {
	byID      map[string]*common.Node
	order     []string
	adjacency map[string][]neighbor

	// Links whose endpoints both exist in the node set, in input order.
	validLinks []common.Link
	dropped    int
}

// newGraphIndex builds the adjacency index. Each valid link is inserted on
// both endpoints; links referencing unknown ids are data-quality noise and
// are dropped, not reported as an error. Build cost is O(V + E).
func newGraphIndex(nodes []common.Node, links []common.Link) *graphIndex {
	idx := &graphIndex{
		byID:      make(map[string]*common.Node, len(nodes)),
		order:     make([]string, 0, len(nodes)),
		adjacency: make(map[string][]neighbor, len(nodes)),
	}

	for i := range nodes {
		n := &nodes[i]
		if _, exists := idx.byID[n.ID]; exists {
			continue
		}
		idx.byID[n.ID] = n
		idx.order = append(idx.order, n.ID)
	}

	for _, link := range links {
		_, srcOK := idx.byID[link.Source]
		_, dstOK := idx.byID[link.Target]
		if !srcOK || !dstOK {
			idx.dropped++
			continue
		}
		idx.validLinks = append(idx.validLinks, link)
		idx.adjacency[link.Source] = append(idx.adjacency[link.Source], neighbor{id: link.Target, edgeType: link.Type})
		idx.adjacency[link.Target] = append(idx.adjacency[link.Target], neighbor{id: link.Source, edgeType: link.Type})
	}

	return idx
}

func (g *graphIndex) neighbors(id string) []neighbor {
	return g.adjacency[id]
}

// degree is the node's degree in the full base graph.
func (g *graphIndex) degree(id string) int {
	return len(g.adjacency[id])
}
