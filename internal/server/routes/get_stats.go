package routes

import (
	"net/http"

	"github.com/lexatlas/lexatlas/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

// GetGraphStatsHandler reports the size of the loaded base graph, including
// how many links were excluded for referencing unknown nodes.
func GetGraphStatsHandler(c echo.Context) error {
	type stats struct {
		Nodes        int `json:"nodes"`
		Links        int `json:"links"`
		DroppedLinks int `json:"dropped_links"`
	}

	engine := c.(*middleware.AppContext).App.Engine
	return c.JSON(http.StatusOK, stats{
		Nodes:        engine.NodeCount(),
		Links:        engine.LinkCount(),
		DroppedLinks: engine.DroppedLinks(),
	})
}
