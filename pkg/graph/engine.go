package graph

import (
	"github.com/lexatlas/lexatlas/pkg/common"
)

// SearchLogic selects how multiple search terms combine.
type SearchLogic string

const (
	LogicAnd SearchLogic = "and"
	LogicOr  SearchLogic = "or"
)

// RankingMode selects which degree is ranked on when the result must be
// truncated. RankGlobal surfaces nodes that are important in the full base
// graph even inside a small filtered view; RankSubgraph keeps the delivered
// view maximally self-connected. Neither is strictly correct, so the caller
// chooses.
type RankingMode string

const (
	RankGlobal   RankingMode = "global"
	RankSubgraph RankingMode = "subgraph"
)

// DefaultMaxTotalNodes is the node cap used when FilterState.MaxTotalNodes is
// not positive.
const DefaultMaxTotalNodes = 500

// FilterState describes one network query. The zero value of the slice
// fields means "unrestricted" everywhere except SearchTerms/SearchFields,
// where a search only happens when both are non-empty.
//
// Negative ExpansionDepth and MaxNodesPerExpansion are clamped to zero;
// MaxNodesPerExpansion zero means uncapped.
type FilterState struct {
	SearchTerms  []string
	SearchFields []string

	NodeTypes []common.NodeType
	EdgeTypes []common.EdgeType
	Titles    []int
	Sections  []string

	ExpansionDepth       int
	MaxNodesPerExpansion int
	MaxTotalNodes        int
}

// NetworkNode is the per-query view of a surviving node. It references the
// immutable base node by id and carries the computed display values; base
// nodes are never annotated in place, so concurrent queries cannot clobber
// each other.
type NetworkNode struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Type common.NodeType `json:"node_type"`

	// Degree within the returned link set, mirrored as the display size.
	Degree int `json:"degree"`
	Val    int `json:"val"`

	// Color is the live display color, BaseColor the resting color the UI
	// returns to after highlight transitions. Identical at encode time.
	Color     string `json:"color"`
	BaseColor string `json:"base_color"`
}

// FilteredGraph is the result of one BuildNetwork call. MatchedCount is the
// size of the connected candidate set before truncation, so callers can tell
// "nothing matched" apart from "everything was cut".
type FilteredGraph struct {
	Nodes        []NetworkNode `json:"nodes"`
	Links        []common.Link `json:"links"`
	Truncated    bool          `json:"truncated"`
	MatchedCount int           `json:"matched_count"`
}

// Engine answers network queries against one immutable base graph. Build it
// once with NewEngine; afterwards any number of BuildNetwork calls may run
// concurrently without locking, since every query allocates its own output.
type Engine struct {
	index *graphIndex
}

// NewEngine indexes the base node and link lists. Links whose endpoints are
// not both present are dropped and counted; the caller decides whether that
// count is worth logging.
func NewEngine(nodes []common.Node, links []common.Link) *Engine {
	return &Engine{index: newGraphIndex(nodes, links)}
}

// NodeCount returns the number of distinct nodes in the base graph.
func (e *Engine) NodeCount() int { return len(e.index.order) }

// LinkCount returns the number of links that passed endpoint validation.
func (e *Engine) LinkCount() int { return len(e.index.validLinks) }

// DroppedLinks returns how many links were excluded because an endpoint was
// missing from the node set.
func (e *Engine) DroppedLinks() int { return e.index.dropped }

// BuildNetwork runs the full query pipeline: seed selection, bounded
// expansion, seed-only attribute filtering, link selection, isolate pruning,
// ranking/truncation, and visual encoding. It is a pure function of the
// engine's immutable base graph and its arguments.
func (e *Engine) BuildNetwork(state FilterState, logic SearchLogic, mode RankingMode) *FilteredGraph {
	idx := e.index

	depth := max(state.ExpansionDepth, 0)
	maxPerNode := max(state.MaxNodesPerExpansion, 0)
	maxTotal := state.MaxTotalNodes
	if maxTotal <= 0 {
		maxTotal = DefaultMaxTotalNodes
	}

	terms := normalizeTerms(state.SearchTerms)
	searched := len(terms) > 0 && len(state.SearchFields) > 0

	// Seed selection. Without a usable search every node is a seed.
	var seeds map[string]struct{}
	if searched {
		seeds = idx.search(terms, state.SearchFields, logic)
		if len(seeds) == 0 {
			return &FilteredGraph{Nodes: []NetworkNode{}, Links: []common.Link{}}
		}
	} else {
		seeds = make(map[string]struct{}, len(idx.order))
		for _, id := range idx.order {
			seeds[id] = struct{}{}
		}
	}

	// Expansion only ever runs outward from real search hits.
	candidates := seeds
	if searched && depth > 0 {
		candidates = idx.expand(seeds, depth, maxPerNode, state.EdgeTypes)
	}

	// Attribute filtering applies to seeds only; expansion-discovered nodes
	// are kept regardless so the neighborhood stays visible. A non-empty type
	// allow-list overrides the title/section predicates entirely.
	if searched && (len(state.NodeTypes) > 0 || len(state.Titles) > 0 || len(state.Sections) > 0) {
		filtered := make(map[string]struct{}, len(candidates))
		for id := range candidates {
			if _, wasSeed := seeds[id]; wasSeed {
				if !matchesAttributes(idx.byID[id], state.NodeTypes, state.Titles, state.Sections) {
					continue
				}
			}
			filtered[id] = struct{}{}
		}
		candidates = filtered
	}

	retainedLinks := selectLinks(idx.validLinks, candidates, state.EdgeTypes)

	// Isolate pruning: only nodes with at least one retained link survive,
	// kept in base-graph order for a stable ranking tie-break.
	linkDegree := make(map[string]int, len(candidates))
	for _, link := range retainedLinks {
		linkDegree[link.Source]++
		linkDegree[link.Target]++
	}
	connected := make([]string, 0, len(candidates))
	for _, id := range idx.order {
		if _, ok := candidates[id]; !ok {
			continue
		}
		if linkDegree[id] > 0 {
			connected = append(connected, id)
		}
	}

	matched := len(connected)
	truncated := matched > maxTotal

	final := connected
	if truncated {
		final = rankByDegree(connected, idx, linkDegree, mode)[:maxTotal]
	}

	finalSet := make(map[string]struct{}, len(final))
	for _, id := range final {
		finalSet[id] = struct{}{}
	}
	finalLinks := selectLinks(retainedLinks, finalSet, nil)

	return &FilteredGraph{
		Nodes:        encodeNetwork(final, idx, finalLinks),
		Links:        finalLinks,
		Truncated:    truncated,
		MatchedCount: matched,
	}
}

// selectLinks keeps links whose edge type is allowed (empty allow-list = all)
// and whose endpoints are both in the candidate set. The result is always a
// fresh slice, never a view into the base link list's backing state.
func selectLinks(links []common.Link, candidates map[string]struct{}, edgeTypes []common.EdgeType) []common.Link {
	allowed := make(map[common.EdgeType]struct{}, len(edgeTypes))
	for _, t := range edgeTypes {
		allowed[t] = struct{}{}
	}

	selected := make([]common.Link, 0, len(links))
	for _, link := range links {
		if len(allowed) > 0 {
			if _, ok := allowed[link.Type]; !ok {
				continue
			}
		}
		if _, ok := candidates[link.Source]; !ok {
			continue
		}
		if _, ok := candidates[link.Target]; !ok {
			continue
		}
		selected = append(selected, link)
	}
	return selected
}
