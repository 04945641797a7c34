package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/sbgn2sif/pkg/bipartite"
	"github.com/matzehuels/sbgn2sif/pkg/errors"
	"github.com/matzehuels/sbgn2sif/pkg/extract"
	"github.com/matzehuels/sbgn2sif/pkg/observability"
	"github.com/matzehuels/sbgn2sif/pkg/sbgn"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete extract → simplify → render pipeline.
//
// When extraction yields no edges, Execute returns a NO_EDGES error together
// with a partial Result whose Extraction is set, so callers can still persist
// the warnings.
func (r *Runner) Execute(ctx context.Context, doc *sbgn.Document, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid options")
	}

	runID := uuid.NewString()
	opts.Logger = opts.Logger.With("run", runID[:8])

	extractStart := time.Now()
	extraction, err := r.Extract(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	extractTime := time.Since(extractStart)

	result, err := r.Simplify(ctx, extraction.Edges, opts)
	if result == nil {
		result = &Result{}
	}
	result.RunID = runID
	result.Extraction = extraction
	result.Stats.Maps = len(extraction.Maps)
	result.Stats.ExtractedEdges = len(extraction.Edges)
	result.Stats.Warnings = len(extraction.Warnings)
	result.Stats.ExtractTime = extractTime
	if err != nil {
		return result, err
	}

	if opts.DOT {
		renderStart := time.Now()
		artifacts, err := r.Render(ctx, result, opts)
		if err != nil {
			return result, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(renderStart)
	}

	return result, nil
}

// Extract runs the extraction stage.
func (r *Runner) Extract(ctx context.Context, doc *sbgn.Document, opts Options) (*extract.Result, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()

	maps := 0
	if doc != nil {
		maps = len(doc.Maps)
	}
	hooks := observability.Pipeline()
	hooks.OnExtractStart(ctx, maps)

	start := time.Now()
	res, err := extract.Extract(ctx, doc, opts.ExtractOptions())
	duration := time.Since(start)
	if err != nil {
		hooks.OnExtractComplete(ctx, 0, 0, duration, err)
		return nil, err
	}
	hooks.OnExtractComplete(ctx, len(res.Edges), len(res.Warnings), duration, nil)

	opts.Logger.Info("extracted edges",
		"maps", maps,
		"edges", len(res.Edges),
		"warnings", len(res.Warnings),
		"duration", duration)
	return res, nil
}

// Simplify runs the build → project → compose stage on an edge list.
//
// An empty edge list is a NO_EDGES error.
func (r *Runner) Simplify(ctx context.Context, edges []extract.Edge, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()

	hooks := observability.Pipeline()
	hooks.OnSimplifyStart(ctx, len(edges))
	start := time.Now()

	if err := ctx.Err(); err != nil {
		hooks.OnSimplifyComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}
	if len(edges) == 0 {
		err := errors.NoEdges()
		hooks.OnSimplifyComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}

	partition := bipartite.Build(edges, opts.BuildOptions())
	opts.Logger.Debug("built bipartite graphs",
		"entity_pool_nodes", partition.EntityPool.NodeCount(),
		"entity_pool_edges", partition.EntityPool.EdgeCount(),
		"mediating_nodes", partition.Mediating.NodeCount(),
		"mediating_edges", partition.Mediating.EdgeCount(),
		"dropped", partition.Dropped)

	projected := bipartite.Project(partition.Mediating)
	simplified := bipartite.Compose(partition.EntityPool, projected)

	result := &Result{
		Partition:  partition,
		Projected:  projected,
		Simplified: simplified,
	}
	result.Stats.DroppedEdges = partition.Dropped
	result.Stats.ProjectedEdges = projected.EdgeCount()
	result.Stats.NodeCount = simplified.NodeCount()
	result.Stats.EdgeCount = simplified.EdgeCount()
	result.Stats.SimplifyTime = time.Since(start)

	hooks.OnSimplifyComplete(ctx, simplified.NodeCount(), simplified.EdgeCount(), result.Stats.SimplifyTime, nil)
	opts.Logger.Info("simplified network",
		"nodes", simplified.NodeCount(),
		"edges", simplified.EdgeCount(),
		"projected", projected.EdgeCount(),
		"duration", result.Stats.SimplifyTime)
	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
