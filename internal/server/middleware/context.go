package middleware

import (
	"github.com/lexatlas/lexatlas/pkg/graph"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// App holds the shared application state: the immutable query engine built
// once at startup. Safe to share across requests without locking.
type App struct {
	Engine *graph.Engine
}

// AppContext wraps the echo context with the shared app state and a
// per-request id.
type AppContext struct {
	echo.Context
	App       *App
	RequestID string
}

const requestIDHeader = "X-Request-Id"

// AppContextMiddleware attaches the shared app state and a nanoid request id
// to every request. The id is echoed back in the response headers so clients
// can correlate reports.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(requestIDHeader)
			if requestID == "" {
				id, err := gonanoid.New()
				if err == nil {
					requestID = id
				}
			}
			c.Response().Header().Set(requestIDHeader, requestID)

			return next(&AppContext{
				Context:   c,
				App:       app,
				RequestID: requestID,
			})
		}
	}
}
