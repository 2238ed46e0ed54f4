package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lexatlas/lexatlas/pkg/common"
)

// Node dumps are header-driven: known columns map onto Node fields and the
// property bag, anything else lands in the bag's extension map so no column
// is silently lost.

func readRecords(content []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		empty := true
		for _, field := range record {
			if strings.TrimSpace(field) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			index[name] = i
		}
	}
	return index
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// ParseNodesCSV parses a node dump. Required columns: id, node_type. Name
// falls back to the id when the column is absent or empty.
func ParseNodesCSV(content []byte) ([]common.Node, error) {
	records, err := readRecords(content)
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, nil
	}

	index := headerIndex(records[0])
	if _, ok := index["id"]; !ok {
		return nil, fmt.Errorf("node dump is missing an id column")
	}

	nodeColumns := map[string]struct{}{
		"id": {}, "name": {}, "node_type": {}, "text": {}, "full_name": {},
		"display_label": {}, "section_text": {}, "section_heading": {},
		"section_num": {}, "index_heading": {}, "tag": {}, "title": {},
		"title_num": {}, "definition": {},
	}

	nodes := make([]common.Node, 0, len(records)-1)
	for _, record := range records[1:] {
		id := field(record, index, "id")
		if id == "" {
			continue
		}

		node := common.Node{
			ID:             id,
			Name:           field(record, index, "name"),
			Type:           common.NodeType(field(record, index, "node_type")),
			Text:           field(record, index, "text"),
			FullName:       field(record, index, "full_name"),
			DisplayLabel:   field(record, index, "display_label"),
			SectionText:    field(record, index, "section_text"),
			SectionHeading: field(record, index, "section_heading"),
			SectionNum:     field(record, index, "section_num"),
			IndexHeading:   field(record, index, "index_heading"),
			Tag:            field(record, index, "tag"),
			Title:          field(record, index, "title"),
		}
		if node.Name == "" {
			node.Name = id
		}
		if v := field(record, index, "title_num"); v != "" {
			if num, err := strconv.Atoi(v); err == nil {
				node.TitleNum = num
			}
		}

		props := &common.Properties{
			Definition: field(record, index, "definition"),
		}
		hasProps := props.Definition != ""
		for name, i := range index {
			if _, known := nodeColumns[name]; known {
				continue
			}
			if i >= len(record) {
				continue
			}
			value := strings.TrimSpace(record[i])
			if value == "" {
				continue
			}
			if props.Extra == nil {
				props.Extra = make(map[string]any)
			}
			props.Extra[name] = value
			hasProps = true
		}
		if hasProps {
			node.Properties = props
		}

		nodes = append(nodes, node)
	}
	return nodes, nil
}

// ParseLinksCSV parses a link dump. Required columns: source, target.
func ParseLinksCSV(content []byte) ([]common.Link, error) {
	records, err := readRecords(content)
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, nil
	}

	index := headerIndex(records[0])
	if _, ok := index["source"]; !ok {
		return nil, fmt.Errorf("link dump is missing a source column")
	}
	if _, ok := index["target"]; !ok {
		return nil, fmt.Errorf("link dump is missing a target column")
	}

	links := make([]common.Link, 0, len(records)-1)
	for _, record := range records[1:] {
		source := field(record, index, "source")
		target := field(record, index, "target")
		if source == "" || target == "" {
			continue
		}

		link := common.Link{
			Source:   source,
			Target:   target,
			Type:     common.EdgeType(field(record, index, "edge_type")),
			Action:   field(record, index, "action"),
			Location: field(record, index, "location"),
			Occurred: field(record, index, "timestamp"),
		}
		if v := field(record, index, "weight"); v != "" {
			if weight, err := strconv.ParseFloat(v, 64); err == nil {
				link.Weight = weight
			}
		}
		if v := field(record, index, "count"); v != "" {
			if count, err := strconv.Atoi(v); err == nil {
				link.Count = count
			}
		}

		links = append(links, link)
	}
	return links, nil
}
