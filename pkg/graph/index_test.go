package graph

import (
	"testing"

	"github.com/lexatlas/lexatlas/pkg/common"
)

func testNode(id string, t common.NodeType) common.Node {
	return common.Node{ID: id, Name: id, Type: t}
}

func testLink(source, target string, t common.EdgeType) common.Link {
	return common.Link{Source: source, Target: target, Type: t}
}

func TestNewGraphIndex(t *testing.T) {
	nodes := []common.Node{
		testNode("a", common.NodeTypeSection),
		testNode("b", common.NodeTypeEntity),
		testNode("c", common.NodeTypeConcept),
	}
	links := []common.Link{
		testLink("a", "b", common.EdgeTypeReference),
		testLink("b", "c", common.EdgeTypeDefinition),
		testLink("a", "missing", common.EdgeTypeReference),
		testLink("ghost", "b", common.EdgeTypeHierarchy),
	}

	idx := newGraphIndex(nodes, links)

	if got := len(idx.validLinks); got != 2 {
		t.Errorf("validLinks = %d, want 2", got)
	}
	if idx.dropped != 2 {
		t.Errorf("dropped = %d, want 2", idx.dropped)
	}

	// Every adjacency entry must point at a known node.
	for id, neighbors := range idx.adjacency {
		if _, ok := idx.byID[id]; !ok {
			t.Errorf("adjacency contains unknown node %q", id)
		}
		for _, nb := range neighbors {
			if _, ok := idx.byID[nb.id]; !ok {
				t.Errorf("adjacency of %q references unknown node %q", id, nb.id)
			}
		}
	}

	// Undirected: both endpoints see the link.
	if got := idx.degree("a"); got != 1 {
		t.Errorf("degree(a) = %d, want 1", got)
	}
	if got := idx.degree("b"); got != 2 {
		t.Errorf("degree(b) = %d, want 2", got)
	}
	if got := idx.degree("c"); got != 1 {
		t.Errorf("degree(c) = %d, want 1", got)
	}
}

func TestNewGraphIndexDuplicateIDs(t *testing.T) {
	nodes := []common.Node{
		{ID: "a", Name: "first", Type: common.NodeTypeSection},
		{ID: "a", Name: "second", Type: common.NodeTypeEntity},
	}

	idx := newGraphIndex(nodes, nil)

	if got := len(idx.order); got != 1 {
		t.Fatalf("order length = %d, want 1", got)
	}
	if idx.byID["a"].Name != "first" {
		t.Errorf("duplicate id should keep the first node, got %q", idx.byID["a"].Name)
	}
}

func TestNeighborsPreserveLinkOrder(t *testing.T) {
	nodes := []common.Node{
		testNode("hub", common.NodeTypeSection),
		testNode("x", common.NodeTypeEntity),
		testNode("y", common.NodeTypeEntity),
		testNode("z", common.NodeTypeEntity),
	}
	links := []common.Link{
		testLink("hub", "x", common.EdgeTypeReference),
		testLink("hub", "y", common.EdgeTypeDefinition),
		testLink("z", "hub", common.EdgeTypeHierarchy),
	}

	idx := newGraphIndex(nodes, links)

	got := idx.neighbors("hub")
	want := []neighbor{
		{id: "x", edgeType: common.EdgeTypeReference},
		{id: "y", edgeType: common.EdgeTypeDefinition},
		{id: "z", edgeType: common.EdgeTypeHierarchy},
	}
	if len(got) != len(want) {
		t.Fatalf("neighbors(hub) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbors(hub)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
