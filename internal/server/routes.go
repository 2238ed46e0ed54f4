package server

import (
	"github.com/lexatlas/lexatlas/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Graph routes
	apiRoutes.GET("/graph/stats", routes.GetGraphStatsHandler)
	apiRoutes.POST("/graph/network", routes.BuildNetworkHandler)
}
