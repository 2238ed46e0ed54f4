package routes

import (
	"net/http"
	"time"

	"github.com/lexatlas/lexatlas/internal/server/middleware"
	"github.com/lexatlas/lexatlas/pkg/common"
	"github.com/lexatlas/lexatlas/pkg/graph"
	"github.com/lexatlas/lexatlas/pkg/logger"

	"github.com/labstack/echo/v4"
)

// BuildNetworkHandler answers the viewer's network query: it binds and
// validates the filter payload, runs the engine pipeline, and returns the
// filtered, visually encoded subgraph.
func BuildNetworkHandler(c echo.Context) error {
	type request struct {
		SearchTerms  []string `json:"search_terms"`
		SearchFields []string `json:"search_fields"`
		NodeTypes    []string `json:"node_types"`
		EdgeTypes    []string `json:"edge_types"`
		Titles       []int    `json:"titles"`
		Sections     []string `json:"sections"`

		ExpansionDepth       int `json:"expansion_depth" validate:"min=0"`
		MaxNodesPerExpansion int `json:"max_nodes_per_expansion" validate:"min=0"`
		MaxTotalNodes        int `json:"max_total_nodes" validate:"min=0"`

		SearchLogic string `json:"search_logic" validate:"omitempty,oneof=and or"`
		RankingMode string `json:"ranking_mode" validate:"omitempty,oneof=global subgraph"`
	}

	var req request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	logic := graph.LogicOr
	if req.SearchLogic == string(graph.LogicAnd) {
		logic = graph.LogicAnd
	}
	mode := graph.RankGlobal
	if req.RankingMode == string(graph.RankSubgraph) {
		mode = graph.RankSubgraph
	}

	nodeTypes := make([]common.NodeType, 0, len(req.NodeTypes))
	for _, t := range req.NodeTypes {
		nodeTypes = append(nodeTypes, common.NodeType(t))
	}
	edgeTypes := make([]common.EdgeType, 0, len(req.EdgeTypes))
	for _, t := range req.EdgeTypes {
		edgeTypes = append(edgeTypes, common.EdgeType(t))
	}

	state := graph.FilterState{
		SearchTerms:          req.SearchTerms,
		SearchFields:         req.SearchFields,
		NodeTypes:            nodeTypes,
		EdgeTypes:            edgeTypes,
		Titles:               req.Titles,
		Sections:             req.Sections,
		ExpansionDepth:       req.ExpansionDepth,
		MaxNodesPerExpansion: req.MaxNodesPerExpansion,
		MaxTotalNodes:        req.MaxTotalNodes,
	}

	ac := c.(*middleware.AppContext)
	start := time.Now()
	result := ac.App.Engine.BuildNetwork(state, logic, mode)
	logger.Debug("Network query answered",
		"request_id", ac.RequestID,
		"matched", result.MatchedCount,
		"returned", len(result.Nodes),
		"truncated", result.Truncated,
		"duration", time.Since(start),
	)

	return c.JSON(http.StatusOK, result)
}
