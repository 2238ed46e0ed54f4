package graph

import (
	"strings"

	"github.com/lexatlas/lexatlas/pkg/common"
)

// fieldResolver returns the searchable values a node exposes under one field
// key. Most resolvers return at most one value, the first non-empty entry of
// a fallback chain; the "properties" resolver returns every string in the bag.
type fieldResolver func(n *common.Node) []string

// fieldResolvers maps each search field key to its resolver. Keeping the
// fallback policy in one table makes it auditable; field keys not listed here
// fall through to the generic attribute lookup.
var fieldResolvers = map[string]fieldResolver{
	"text": chain(
		propString("text"),
		nodeString(func(n *common.Node) string { return n.Text }),
		nodeString(func(n *common.Node) string { return n.SectionText }),
		nodeString(func(n *common.Node) string { return n.IndexHeading }),
	),
	"full_name": chain(
		propString("full_name"),
		nodeString(func(n *common.Node) string { return n.FullName }),
	),
	"display_label": chain(
		nodeString(func(n *common.Node) string { return n.DisplayLabel }),
	),
	"definition": chain(
		propString("definition"),
	),
	"entity":  typedName(common.NodeTypeEntity),
	"concept": typedName(common.NodeTypeConcept),
	"properties": func(n *common.Node) []string {
		if n.Properties == nil {
			return nil
		}
		return n.Properties.StringValues()
	},
	"section_text": chain(
		propString("section_text"),
		nodeString(func(n *common.Node) string { return n.SectionText }),
	),
	"section_heading": chain(
		propString("section_heading"),
		nodeString(func(n *common.Node) string { return n.SectionHeading }),
	),
	"section_num": chain(
		propString("section_num"),
		nodeString(func(n *common.Node) string { return n.SectionNum }),
	),
	"tag": chain(
		propString("tag"),
		nodeString(func(n *common.Node) string { return n.Tag }),
	),
}

// chain builds a resolver that returns the first non-empty value produced by
// the given lookups.
func chain(lookups ...func(n *common.Node) (string, bool)) fieldResolver {
	return func(n *common.Node) []string {
		for _, lookup := range lookups {
			if v, ok := lookup(n); ok {
				return []string{v}
			}
		}
		return nil
	}
}

func propString(key string) func(n *common.Node) (string, bool) {
	return func(n *common.Node) (string, bool) {
		if n.Properties == nil {
			return "", false
		}
		return n.Properties.StringValue(key)
	}
}

func nodeString(get func(n *common.Node) string) func(n *common.Node) (string, bool) {
	return func(n *common.Node) (string, bool) {
		v := get(n)
		return v, v != ""
	}
}

// typedName resolves to the node's display name, but only for nodes of the
// given type. This backs the "entity" and "concept" field keys.
func typedName(t common.NodeType) fieldResolver {
	return func(n *common.Node) []string {
		if n.Type != t || n.Name == "" {
			return nil
		}
		return []string{n.Name}
	}
}

func resolveField(n *common.Node, field string) []string {
	if resolver, ok := fieldResolvers[field]; ok {
		return resolver(n)
	}
	if v, ok := n.Attribute(field); ok {
		return []string{v}
	}
	return nil
}

// normalizeTerms lower-cases and trims search terms, dropping entries that
// trim to nothing.
func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			out = append(out, term)
		}
	}
	return out
}

// search returns the ids of nodes matching the given terms over the given
// fields. Matching is case-insensitive substring containment. Under LogicOr a
// node matches when any term is contained in any resolved value; under
// LogicAnd every term must be contained in at least one resolved value, not
// necessarily the same one. Empty terms or fields match nothing, never
// everything.
func (g *graphIndex) search(terms, fields []string, logic SearchLogic) map[string]struct{} {
	matched := make(map[string]struct{})

	terms = normalizeTerms(terms)
	if len(terms) == 0 || len(fields) == 0 {
		return matched
	}

	for _, id := range g.order {
		node := g.byID[id]

		var values []string
		for _, field := range fields {
			values = append(values, resolveField(node, field)...)
		}
		if len(values) == 0 {
			continue
		}
		for i, v := range values {
			values[i] = strings.ToLower(v)
		}

		if matchesTerms(values, terms, logic) {
			matched[id] = struct{}{}
		}
	}

	return matched
}

func matchesTerms(values, terms []string, logic SearchLogic) bool {
	contained := func(term string) bool {
		for _, v := range values {
			if strings.Contains(v, term) {
				return true
			}
		}
		return false
	}

	if logic == LogicAnd {
		for _, term := range terms {
			if !contained(term) {
				return false
			}
		}
		return true
	}

	for _, term := range terms {
		if contained(term) {
			return true
		}
	}
	return false
}
