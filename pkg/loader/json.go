package loader

import (
	"encoding/json"
	"fmt"

	"github.com/lexatlas/lexatlas/pkg/common"
)

// JSON dumps come either as a bare array or wrapped in a {"nodes": ...} /
// {"links": ...} document, which is how the viewer's export writes them.

type nodeDocument struct {
	Nodes []common.Node `json:"nodes"`
}

type linkDocument struct {
	Links []common.Link `json:"links"`
}

// ParseNodesJSON parses a node dump and rejects nodes without an id.
func ParseNodesJSON(content []byte) ([]common.Node, error) {
	var nodes []common.Node
	if err := json.Unmarshal(content, &nodes); err != nil {
		var doc nodeDocument
		if docErr := json.Unmarshal(content, &doc); docErr != nil {
			return nil, err
		}
		nodes = doc.Nodes
	}

	for i, node := range nodes {
		if node.ID == "" {
			return nil, fmt.Errorf("node at position %d has no id", i)
		}
		if node.Name == "" {
			nodes[i].Name = node.ID
		}
	}
	return nodes, nil
}

// ParseLinksJSON parses a link dump and rejects links missing an endpoint.
func ParseLinksJSON(content []byte) ([]common.Link, error) {
	var links []common.Link
	if err := json.Unmarshal(content, &links); err != nil {
		var doc linkDocument
		if docErr := json.Unmarshal(content, &doc); docErr != nil {
			return nil, err
		}
		links = doc.Links
	}

	for i, link := range links {
		if link.Source == "" || link.Target == "" {
			return nil, fmt.Errorf("link at position %d is missing an endpoint", i)
		}
	}
	return links, nil
}
