package catalog

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed catalog.json
var defaultCatalogJSON []byte

var (
	defaultOnce  sync.Once
	defaultGraph *Graph
	defaultErr   error
)

// Default returns the graph for the built-in catalog shipped with the
// binary. Used when no --catalog file is given.
func Default() (*Graph, error) {
	defaultOnce.Do(func() {
		c, err := Parse(defaultCatalogJSON)
		if err != nil {
			defaultErr = fmt.Errorf("built-in catalog: %w", err)
			return
		}
		defaultGraph, defaultErr = NewGraph(c)
	})
	return defaultGraph, defaultErr
}
