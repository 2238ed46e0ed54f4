package graph

import (
	"reflect"
	"testing"

	"github.com/lexatlas/lexatlas/pkg/common"
)

// chainFixture is a path a-b-c-d-e with one cycle edge e-a.
func chainFixture() *graphIndex {
	nodes := []common.Node{
		testNode("a", common.NodeTypeSection),
		testNode("b", common.NodeTypeEntity),
		testNode("c", common.NodeTypeConcept),
		testNode("d", common.NodeTypeSection),
		testNode("e", common.NodeTypeEntity),
	}
	links := []common.Link{
		testLink("a", "b", common.EdgeTypeReference),
		testLink("b", "c", common.EdgeTypeDefinition),
		testLink("c", "d", common.EdgeTypeReference),
		testLink("d", "e", common.EdgeTypeHierarchy),
		testLink("e", "a", common.EdgeTypeReference),
	}
	return newGraphIndex(nodes, links)
}

func seedSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestExpandDepthZeroIsIdentity(t *testing.T) {
	idx := chainFixture()

	got := idx.expand(seedSet("a"), 0, 0, nil)
	if !reflect.DeepEqual(sortedIDs(got), []string{"a"}) {
		t.Errorf("expand(depth=0) = %v, want [a]", sortedIDs(got))
	}
}

func TestExpandByDepth(t *testing.T) {
	idx := chainFixture()

	tests := []struct {
		depth int
		want  []string
	}{
		{depth: 1, want: []string{"a", "b", "e"}},
		{depth: 2, want: []string{"a", "b", "c", "d", "e"}},
		{depth: 5, want: []string{"a", "b", "c", "d", "e"}},
	}

	prevSize := 1
	for _, tt := range tests {
		got := sortedIDs(idx.expand(seedSet("a"), tt.depth, 0, nil))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("expand(depth=%d) = %v, want %v", tt.depth, got, tt.want)
		}
		// Result size must be monotonically non-decreasing in depth.
		if len(got) < prevSize {
			t.Errorf("expand(depth=%d) shrank from %d to %d nodes", tt.depth, prevSize, len(got))
		}
		prevSize = len(got)
	}
}

func TestExpandEdgeTypeFilter(t *testing.T) {
	idx := chainFixture()

	got := sortedIDs(idx.expand(seedSet("b"), 1, 0, []common.EdgeType{common.EdgeTypeDefinition}))
	want := []string{"b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expand(definition only) = %v, want %v", got, want)
	}
}

func TestExpandPositionalCap(t *testing.T) {
	// hub links to x1..x4 in insertion order.
	nodes := []common.Node{
		testNode("hub", common.NodeTypeSection),
		testNode("x1", common.NodeTypeEntity),
		testNode("x2", common.NodeTypeEntity),
		testNode("x3", common.NodeTypeEntity),
		testNode("x4", common.NodeTypeEntity),
	}
	links := []common.Link{
		testLink("hub", "x1", common.EdgeTypeReference),
		testLink("hub", "x2", common.EdgeTypeReference),
		testLink("hub", "x3", common.EdgeTypeReference),
		testLink("hub", "x4", common.EdgeTypeReference),
	}
	idx := newGraphIndex(nodes, links)

	got := sortedIDs(idx.expand(seedSet("hub"), 1, 2, nil))
	want := []string{"hub", "x1", "x2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expand(cap=2) = %v, want %v", got, want)
	}

	// The cap is positional: a seed occupying an early slot still consumes
	// it, so x2 is never reached even though only one new node is found.
	got = sortedIDs(idx.expand(seedSet("hub", "x1"), 1, 2, nil))
	want = []string{"hub", "x1", "x2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expand(cap=2, visited seed) = %v, want %v", got, want)
	}
}

func TestExpandStopsOnCycles(t *testing.T) {
	idx := chainFixture()

	// Far deeper than the graph; must terminate via the empty-layer check.
	got := idx.expand(seedSet("a"), 1000, 0, nil)
	if len(got) != 5 {
		t.Errorf("expand(depth=1000) returned %d nodes, want 5", len(got))
	}
}
