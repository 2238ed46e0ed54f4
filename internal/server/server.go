package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/lexatlas/lexatlas/internal/server/middleware"
	"github.com/lexatlas/lexatlas/internal/util"
	"github.com/lexatlas/lexatlas/pkg/graph"
	"github.com/lexatlas/lexatlas/pkg/loader"
	"github.com/lexatlas/lexatlas/pkg/logger"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// Init loads the base graph, builds the query engine, and serves the API
// until the process receives an interrupt.
func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	nodesPath := util.GetEnv("GRAPH_NODES_PATH")
	linksPath := util.GetEnv("GRAPH_LINKS_PATH")
	if nodesPath == "" || linksPath == "" {
		logger.Fatal("GRAPH_NODES_PATH and GRAPH_LINKS_PATH must be set")
	}

	dataset, err := loader.Load(ctx, nodesPath, linksPath)
	if err != nil {
		logger.Fatal("Failed to load graph dataset", "err", err)
	}

	engine := graph.NewEngine(dataset.Nodes, dataset.Links)
	logger.Info("Graph engine ready",
		"nodes", engine.NodeCount(),
		"links", engine.LinkCount(),
	)
	if dropped := engine.DroppedLinks(); dropped > 0 {
		logger.Warn("Dropped links with missing endpoints", "count", dropped)
	}

	e.Use(mid.AppContextMiddleware(&mid.App{Engine: engine}))
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
