package graph

import (
	"strconv"
	"strings"

	"github.com/lexatlas/lexatlas/pkg/common"
)

// matchesNodeTypes reports whether the node's type is in the allow-list.
func matchesNodeTypes(n *common.Node, types []common.NodeType) bool {
	for _, t := range types {
		if n.Type == t {
			return true
		}
	}
	return false
}

// matchesTitle reports whether the node belongs to one of the requested title
// numbers. Only section and index nodes carry title membership; the number
// may arrive as the numeric title_num or as the title string.
func matchesTitle(n *common.Node, titles []int) bool {
	if n.Type != common.NodeTypeSection && n.Type != common.NodeTypeIndex {
		return false
	}

	num := n.TitleNum
	if num == 0 && n.Properties != nil {
		num = n.Properties.TitleNum
	}

	parsed := 0
	if n.Title != "" {
		if v, err := strconv.Atoi(strings.TrimSpace(n.Title)); err == nil {
			parsed = v
		}
	}

	for _, t := range titles {
		if (num != 0 && num == t) || (parsed != 0 && parsed == t) {
			return true
		}
	}
	return false
}

// matchesSection reports whether any requested section string is a
// case-insensitive substring of the node's section number.
func matchesSection(n *common.Node, sections []string) bool {
	sectionNum := n.SectionNum
	if n.Properties != nil && n.Properties.SectionNum != "" {
		sectionNum = n.Properties.SectionNum
	}
	if sectionNum == "" {
		return false
	}

	lower := strings.ToLower(sectionNum)
	for _, s := range sections {
		if s == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

// matchesAttributes applies the seed attribute policy:
//   - a non-empty type allow-list wins outright, title/section are ignored;
//   - with no criteria at all, every node matches;
//   - otherwise the title predicate OR the section predicate must pass.
//
// The policy only ever applies to search-derived seeds; expansion-discovered
// nodes bypass it so neighbors surface regardless of type.
func matchesAttributes(n *common.Node, types []common.NodeType, titles []int, sections []string) bool {
	if len(types) > 0 {
		return matchesNodeTypes(n, types)
	}
	if len(titles) == 0 && len(sections) == 0 {
		return true
	}
	return matchesTitle(n, titles) || matchesSection(n, sections)
}

// filterByAttributes returns the ids of all nodes passing matchesAttributes.
func (g *graphIndex) filterByAttributes(types []common.NodeType, titles []int, sections []string) map[string]struct{} {
	matched := make(map[string]struct{})
	for _, id := range g.order {
		if matchesAttributes(g.byID[id], types, titles, sections) {
			matched[id] = struct{}{}
		}
	}
	return matched
}
