// SPDX-License-Identifier: MIT

// Package: shortpaths/builder
//
// api.go - public entry point and the Constructor type.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories live in impl_*.go, one per file.
//   - Same inputs, options, seed and constructor order give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpaths/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate their parameters before touching g
// and return sentinel errors; they never panic.
//
// Vertices added by a constructor receive fresh VertexIDs after the ones
// already in g, so several constructors compose into disjoint components.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves the builder
// configuration from bopts, and applies every constructor in order.
// The first constructor error is wrapped with "BuildGraph: %w" and returned.
//
// Complexity: O(len(bopts)) to resolve options plus the sum of constructor costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices appends n vertices labelled by cfg.labelFn(0..n-1) and returns
// their IDs in order.
func addVertices(g *core.Graph, cfg builderConfig, n int) []core.VertexID {
	ids := make([]core.VertexID, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddVertex(cfg.labelFn(i))
	}

	return ids
}
