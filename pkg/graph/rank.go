package graph

import (
	"sort"
)

// rankByDegree orders the connected candidate ids by descending degree. Under
// RankGlobal the degree comes from the full base graph; under RankSubgraph it
// is the local degree within the filtered candidate link set. Ties keep the
// incoming order, which callers arrange to be base-graph iteration order.
func rankByDegree(ids []string, idx *graphIndex, localDegree map[string]int, mode RankingMode) []string {
	degreeOf := func(id string) int {
		if mode == RankSubgraph {
			return localDegree[id]
		}
		return idx.degree(id)
	}

	ranked := make([]string, len(ids))
	copy(ranked, ids)
	sort.SliceStable(ranked, func(i, j int) bool {
		return degreeOf(ranked[i]) > degreeOf(ranked[j])
	})
	return ranked
}
