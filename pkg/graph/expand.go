package graph

import (
	"github.com/lexatlas/lexatlas/pkg/common"
)

// expand grows the seed set by up to depth breadth-first layers and returns
// the union of seeds and discovered nodes.
//
// For each frontier node the neighbor list is filtered to the allowed edge
// types (empty allow-list = unrestricted) and then cut positionally to the
// first maxPerNode entries (0 = uncapped). The cap applies to the raw
// filtered list, so neighbors that were already visited still consume slots;
// this bounds per-node work without guaranteeing maxPerNode newly discovered
// nodes. Expansion stops early once a layer contributes nothing new.
func (g *graphIndex) expand(seeds map[string]struct{}, depth, maxPerNode int, edgeTypes []common.EdgeType) map[string]struct{} {
	visited := make(map[string]struct{}, len(seeds))
	frontier := make([]string, 0, len(seeds))
	for id := range seeds {
		visited[id] = struct{}{}
		frontier = append(frontier, id)
	}

	allowed := make(map[common.EdgeType]struct{}, len(edgeTypes))
	for _, t := range edgeTypes {
		allowed[t] = struct{}{}
	}

	for layer := 0; layer < depth && len(frontier) > 0; layer++ {
		var next []string
		for _, id := range frontier {
			neighbors := g.neighbors(id)

			if len(allowed) > 0 {
				filtered := make([]neighbor, 0, len(neighbors))
				for _, nb := range neighbors {
					if _, ok := allowed[nb.edgeType]; ok {
						filtered = append(filtered, nb)
					}
				}
				neighbors = filtered
			}

			if maxPerNode > 0 && len(neighbors) > maxPerNode {
				neighbors = neighbors[:maxPerNode]
			}

			for _, nb := range neighbors {
				if _, seen := visited[nb.id]; seen {
					continue
				}
				visited[nb.id] = struct{}{}
				next = append(next, nb.id)
			}
		}
		frontier = next
	}

	return visited
}
