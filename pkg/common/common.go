package common

// NodeType classifies a node in the legal knowledge graph.
type NodeType string

const (
	NodeTypeSection NodeType = "section"
	NodeTypeEntity  NodeType = "entity"
	NodeTypeConcept NodeType = "concept"
	NodeTypeIndex   NodeType = "index"
)

// EdgeType classifies the relation a link expresses. Links keep their
// directional type and action semantics even though traversal treats the
// graph as undirected.
type EdgeType string

const (
	EdgeTypeDefinition EdgeType = "definition"
	EdgeTypeReference  EdgeType = "reference"
	EdgeTypeHierarchy  EdgeType = "hierarchy"
)

// Node represents one entry of the base graph: a statute section, a named
// entity, a legal concept, or an index heading. The base node set is supplied
// once at engine construction and is never mutated afterwards; computed
// display values (degree, color) live on per-query view records instead.
//
// Several top-level fields mirror keys of the Properties bag. Older dumps
// carry these values at the top level only, newer dumps inside the bag; the
// search field resolvers handle the fallback order.
type Node struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Type NodeType `json:"node_type"`

	Properties *Properties `json:"properties,omitempty"`

	// Legacy top-level mirrors of properties fields.
	Text           string `json:"text,omitempty"`
	FullName       string `json:"full_name,omitempty"`
	DisplayLabel   string `json:"display_label,omitempty"`
	SectionText    string `json:"section_text,omitempty"`
	SectionHeading string `json:"section_heading,omitempty"`
	SectionNum     string `json:"section_num,omitempty"`
	IndexHeading   string `json:"index_heading,omitempty"`
	Tag            string `json:"tag,omitempty"`
	Title          string `json:"title,omitempty"`
	TitleNum       int    `json:"title_num,omitempty"`
}

// Link represents an edge between two nodes, identified by their ids. A link
// is only valid when both endpoints exist in the node set; the engine drops
// invalid links at index build time.
type Link struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Type     EdgeType `json:"edge_type"`
	Action   string   `json:"action,omitempty"`
	Weight   float64  `json:"weight,omitempty"`
	Count    int      `json:"count,omitempty"`
	Location string   `json:"location,omitempty"`
	Occurred string   `json:"timestamp,omitempty"`
}

// Attribute performs the generic lookup used for search field keys that have
// no dedicated resolver. It checks the known top-level fields by their dump
// column names first, then string values in the property bag's extension map.
func (n *Node) Attribute(key string) (string, bool) {
	switch key {
	case "id":
		return n.ID, n.ID != ""
	case "name":
		return n.Name, n.Name != ""
	case "title":
		return n.Title, n.Title != ""
	case "index_heading":
		return n.IndexHeading, n.IndexHeading != ""
	case "display_label":
		return n.DisplayLabel, n.DisplayLabel != ""
	}
	if n.Properties != nil {
		return n.Properties.StringValue(key)
	}
	return "", false
}
