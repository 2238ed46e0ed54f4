package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lexatlas/lexatlas/pkg/common"

	"golang.org/x/sync/errgroup"
)

// Dataset is a parsed base graph: the node and link lists handed to the
// engine at construction. The loader validates shape only; endpoint
// validation is the engine's job.
type Dataset struct {
	Nodes []common.Node
	Links []common.Link
}

// Load reads a node file and a link file in parallel and parses each
// according to its extension (.csv or .json). Both files must parse for the
// dataset to be usable, so the first failure wins.
func Load(ctx context.Context, nodesPath, linksPath string) (*Dataset, error) {
	dataset := &Dataset{}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		nodes, err := loadNodes(ctx, nodesPath)
		if err != nil {
			return fmt.Errorf("failed to load nodes from %s: %w", nodesPath, err)
		}
		dataset.Nodes = nodes
		return nil
	})
	eg.Go(func() error {
		links, err := loadLinks(ctx, linksPath)
		if err != nil {
			return fmt.Errorf("failed to load links from %s: %w", linksPath, err)
		}
		dataset.Links = links
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return dataset, nil
}

func loadNodes(ctx context.Context, path string) ([]common.Node, error) {
	content, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	switch detectFormat(path) {
	case formatCSV:
		return ParseNodesCSV(content)
	case formatJSON:
		return ParseNodesJSON(content)
	default:
		return nil, fmt.Errorf("unsupported node file format: %s", filepath.Ext(path))
	}
}

func loadLinks(ctx context.Context, path string) ([]common.Link, error) {
	content, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	switch detectFormat(path) {
	case formatCSV:
		return ParseLinksCSV(content)
	case formatJSON:
		return ParseLinksJSON(content)
	default:
		return nil, fmt.Errorf("unsupported link file format: %s", filepath.Ext(path))
	}
}

type fileFormat string

const (
	formatCSV     fileFormat = "csv"
	formatJSON    fileFormat = "json"
	formatUnknown fileFormat = ""
)

func detectFormat(path string) fileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return formatCSV
	case ".json":
		return formatJSON
	default:
		return formatUnknown
	}
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}
