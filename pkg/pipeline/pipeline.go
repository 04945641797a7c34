// Package pipeline provides the conversion pipeline for sbgn2sif.
//
// This package implements the complete extract → simplify → render pipeline
// used by the CLI. Each stage can be run independently or as part of the
// complete pipeline.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Extract: Walk the SBGN-ML maps and produce the typed edge list
//  2. Simplify: Build the bipartite graphs, project the mediating graph and
//     merge it with the entity-pool graph
//  3. Render: Optionally draw the bipartite and projected graphs as DOT/SVG
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{Sanitize: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table := sif.SimplifiedTable(result.Simplified)
//
// Run individual stages:
//
//	// Extract only
//	extraction, err := runner.Extract(ctx, doc, opts)
//
//	// Simplify an edge list read back from an intermediate table
//	result, err := runner.Simplify(ctx, edges, opts)
//
//	// Render the graphs of a simplified result
//	artifacts, err := runner.Render(ctx, result, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sbgn2sif/pkg/bipartite"
	"github.com/matzehuels/sbgn2sif/pkg/extract"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWorkers processes maps sequentially.
	DefaultWorkers = 1

	// MaxWorkers caps map-level fan-out.
	MaxWorkers = 64
)

// DefaultSinkClass is the glyph class dropped at graph-build time.
const DefaultSinkClass = bipartite.SinkSourceClass

// Artifact keys returned by [Runner.Render].
const (
	ArtifactBipartiteDOT = "bipartite.dot"
	ArtifactBipartiteSVG = "bipartite.svg"
	ArtifactProjectedDOT = "projected.dot"
	ArtifactProjectedSVG = "projected.svg"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the conversion pipeline.
type Options struct {
	// Extract options
	Workers int `json:"workers,omitempty"`

	// Simplify options
	Sanitize  bool   `json:"sanitize,omitempty"`
	SinkClass string `json:"sink_class,omitempty"`

	// Render options
	DOT      bool `json:"dot,omitempty"`
	SVG      bool `json:"svg,omitempty"` // implies DOT
	Detailed bool `json:"detailed,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Extraction is the typed edge list and its warnings.
	Extraction *extract.Result

	// Partition holds the entity-pool and mediating graphs.
	Partition *bipartite.Partition

	// Projected is the two-hop projection of the mediating graph.
	Projected *bipartite.Graph

	// Simplified is the entity-pool graph merged with the projection.
	Simplified *bipartite.Graph

	// Artifacts contains rendered outputs keyed by Artifact* constants.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Warnings returns the extraction warnings, or nil when extraction did not run.
func (r *Result) Warnings() []string {
	if r == nil || r.Extraction == nil {
		return nil
	}
	return r.Extraction.Warnings
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Maps           int
	ExtractedEdges int
	Warnings       int
	DroppedEdges   int
	ProjectedEdges int
	NodeCount      int
	EdgeCount      int
	ExtractTime    time.Duration
	SimplifyTime   time.Duration
	RenderTime     time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults applies defaults for every stage. It is idempotent.
func (o *Options) SetDefaults() {
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	if o.SinkClass == "" {
		o.SinkClass = DefaultSinkClass
	}
	if o.SVG {
		o.DOT = true
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks value ranges.
func (o *Options) Validate() error {
	o.SetDefaults()
	if o.Workers < 1 || o.Workers > MaxWorkers {
		return fmt.Errorf("invalid workers: %d (must be between 1 and %d)", o.Workers, MaxWorkers)
	}
	return nil
}

// ExtractOptions returns the options for the extraction stage.
func (o *Options) ExtractOptions() extract.Options {
	return extract.Options{Workers: o.Workers, Logger: o.Logger}
}

// BuildOptions returns the options for the bipartite build.
func (o *Options) BuildOptions() bipartite.BuildOptions {
	return bipartite.BuildOptions{Sanitize: o.Sanitize, SinkClass: o.SinkClass, Logger: o.Logger}
}
