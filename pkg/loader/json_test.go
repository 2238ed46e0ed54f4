package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lexatlas/lexatlas/pkg/common"
)

func TestParseNodesJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{
			name:    "bare array",
			content: `[{"id":"a","name":"A","node_type":"section"}]`,
			want:    1,
		},
		{
			name:    "wrapped document",
			content: `{"nodes":[{"id":"a","node_type":"entity"},{"id":"b","node_type":"concept"}]}`,
			want:    2,
		},
		{
			name:    "node without id",
			content: `[{"name":"anonymous"}]`,
			wantErr: true,
		},
		{
			name:    "not json",
			content: `id,name`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := ParseNodesJSON([]byte(tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseNodesJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && len(nodes) != tt.want {
				t.Errorf("ParseNodesJSON() returned %d nodes, want %d", len(nodes), tt.want)
			}
		})
	}
}

func TestParseNodesJSONPropertyBag(t *testing.T) {
	content := `[{
		"id": "sec-61",
		"node_type": "section",
		"properties": {
			"text": "Gross income defined",
			"section_num": "61",
			"popularity": 0.9,
			"aka": "gross income"
		}
	}]`

	nodes, err := ParseNodesJSON([]byte(content))
	if err != nil {
		t.Fatalf("ParseNodesJSON() error = %v", err)
	}
	if len(nodes) != 1 || nodes[0].Properties == nil {
		t.Fatalf("nodes = %+v, want one node with a bag", nodes)
	}

	props := nodes[0].Properties
	if props.Text != "Gross income defined" || props.SectionNum != "61" {
		t.Errorf("known keys = %q/%q", props.Text, props.SectionNum)
	}
	if got, ok := props.StringValue("aka"); !ok || got != "gross income" {
		t.Errorf("extra key aka = %q (%v)", got, ok)
	}
	if _, ok := props.Extra["popularity"]; !ok {
		t.Error("numeric extension value should be preserved")
	}
	// Name falls back to the id.
	if nodes[0].Name != "sec-61" {
		t.Errorf("name = %q, want sec-61", nodes[0].Name)
	}
}

func TestParseLinksJSON(t *testing.T) {
	content := `{"links":[{"source":"a","target":"b","edge_type":"hierarchy","action":"contains"}]}`

	links, err := ParseLinksJSON([]byte(content))
	if err != nil {
		t.Fatalf("ParseLinksJSON() error = %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("ParseLinksJSON() returned %d links, want 1", len(links))
	}
	if links[0].Type != common.EdgeTypeHierarchy || links[0].Action != "contains" {
		t.Errorf("link = %+v", links[0])
	}

	if _, err := ParseLinksJSON([]byte(`[{"source":"a"}]`)); err == nil {
		t.Error("expected an error for a link without a target")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	nodesPath := filepath.Join(dir, "nodes.csv")
	linksPath := filepath.Join(dir, "links.json")

	nodesCSV := "id,name,node_type\na,Alpha,section\nb,Beta,entity\n"
	linksJSON := `[{"source":"a","target":"b","edge_type":"reference"}]`

	if err := os.WriteFile(nodesPath, []byte(nodesCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(linksPath, []byte(linksJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	dataset, err := Load(context.Background(), nodesPath, linksPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(dataset.Nodes) != 2 || len(dataset.Links) != 1 {
		t.Errorf("dataset = %d nodes / %d links, want 2/1", len(dataset.Nodes), len(dataset.Links))
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nodes.xml")
	if err := os.WriteFile(path, []byte("<nodes/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(context.Background(), path, path); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}
