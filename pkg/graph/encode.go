package graph

import (
	"fmt"
	"math"

	"github.com/lexatlas/lexatlas/pkg/common"
)

type rgb struct {
	r, g, b int
}

type colorRamp struct {
	low, high rgb
}

// fallbackRamp is the fixed color for node types outside the known set.
var fallbackRamp = colorRamp{low: rgb{0xB0, 0xB0, 0xB0}, high: rgb{0xB0, 0xB0, 0xB0}}

// colorRamps anchors the degree-to-color interpolation per node type.
// Sections and index headings share the purple ramp.
var colorRamps = map[common.NodeType]colorRamp{
	common.NodeTypeSection: {low: rgb{0x9B, 0x96, 0xC9}, high: rgb{0x41, 0x37, 0x8F}},
	common.NodeTypeIndex:   {low: rgb{0x9B, 0x96, 0xC9}, high: rgb{0x41, 0x37, 0x8F}},
	common.NodeTypeEntity:  {low: rgb{0xF9, 0xD9, 0x9B}, high: rgb{0xF0, 0xA7, 0x34}},
	common.NodeTypeConcept: {low: rgb{0xE8, 0xB3, 0xE3}, high: rgb{0x9C, 0x33, 0x91}},
}

// encodeNetwork builds the per-query view records for the final node set:
// local degree within the final link set, mirrored as the display size, and a
// color interpolated along the node type's ramp by relative degree.
func encodeNetwork(ids []string, idx *graphIndex, links []common.Link) []NetworkNode {
	degrees := make(map[string]int, len(ids))
	for _, link := range links {
		degrees[link.Source]++
		degrees[link.Target]++
	}

	maxDegree := 1
	for _, id := range ids {
		if degrees[id] > maxDegree {
			maxDegree = degrees[id]
		}
	}

	nodes := make([]NetworkNode, 0, len(ids))
	for _, id := range ids {
		base := idx.byID[id]
		degree := degrees[id]
		color := degreeColor(base.Type, degree, maxDegree)
		nodes = append(nodes, NetworkNode{
			ID:        base.ID,
			Name:      base.Name,
			Type:      base.Type,
			Degree:    degree,
			Val:       degree,
			Color:     color,
			BaseColor: color,
		})
	}
	return nodes
}

// degreeColor interpolates the type's ramp at t = degree/maxDegree and
// renders the result as lowercase #rrggbb hex.
func degreeColor(t common.NodeType, degree, maxDegree int) string {
	ramp, ok := colorRamps[t]
	if !ok {
		ramp = fallbackRamp
	}
	if maxDegree < 1 {
		maxDegree = 1
	}

	frac := float64(degree) / float64(maxDegree)
	lerp := func(low, high int) int {
		return int(math.Round(float64(low) + (float64(high)-float64(low))*frac))
	}
	return fmt.Sprintf("#%02x%02x%02x",
		lerp(ramp.low.r, ramp.high.r),
		lerp(ramp.low.g, ramp.high.g),
		lerp(ramp.low.b, ramp.high.b),
	)
}
