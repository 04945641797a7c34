package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/sbgn2sif/pkg/bipartite"
	"github.com/matzehuels/sbgn2sif/pkg/observability"
	"github.com/matzehuels/sbgn2sif/pkg/render"
)

// Render draws the mediating (bipartite) graph and the simplified network of
// a simplified result. The "projected" artifact is the projection composed
// with the entity-pool graph, so it holds every edge of the simplified table. DOT sources are always produced; SVG only when
// opts.SVG is set.
func (r *Runner) Render(ctx context.Context, res *Result, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if res == nil || res.Partition == nil || res.Simplified == nil {
		return nil, fmt.Errorf("nothing to render: result has not been simplified")
	}

	targets := []struct {
		name     string
		g        *bipartite.Graph
		dot, svg string
	}{
		{"bipartite", res.Partition.Mediating, ArtifactBipartiteDOT, ArtifactBipartiteSVG},
		{"projected", res.Simplified, ArtifactProjectedDOT, ArtifactProjectedSVG},
	}

	artifacts := make(map[string][]byte, 2*len(targets))
	hooks := observability.Pipeline()
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hooks.OnRenderStart(ctx, t.name)
		start := time.Now()

		dot := render.ToDOT(t.g, render.DOTOptions{Name: t.name, Detailed: opts.Detailed})
		artifacts[t.dot] = []byte(dot)

		if opts.SVG {
			svg, err := render.RenderSVG(ctx, dot)
			if err != nil {
				hooks.OnRenderComplete(ctx, t.name, time.Since(start), err)
				return nil, fmt.Errorf("%s: %w", t.name, err)
			}
			artifacts[t.svg] = svg
		}

		hooks.OnRenderComplete(ctx, t.name, time.Since(start), nil)
		opts.Logger.Debug("rendered graph", "graph", t.name, "nodes", t.g.NodeCount(), "svg", opts.SVG)
	}
	return artifacts, nil
}
