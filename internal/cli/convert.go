package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgn2sif/pkg/errors"
	"github.com/matzehuels/sbgn2sif/pkg/pipeline"
	"github.com/matzehuels/sbgn2sif/pkg/sbgn"
	"github.com/matzehuels/sbgn2sif/pkg/sif"
)

// convertCommand creates the convert command, which runs the whole pipeline.
func (c *CLI) convertCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "convert [file.sbgn]",
		Short: "Extract and simplify an SBGN-ML map into SIF tables",
		Long: `Convert an SBGN-ML map into an intermediate and a simplified SIF table.

Writes next to the input (or into --output-dir):
  <name>_intermediate.sif   typed edge list, one row per arc
  <name>_simplified.sif     network with process nodes collapsed
  <name>_warnings.txt       skipped glyphs, ports and arcs (only if any)

With --dot the mediating graph and the simplified network are written as
<name>_bipartite.dot and <name>_projected.dot; --svg also renders them.`,
		Example: `  sbgn2sif convert pamp.sbgn
  sbgn2sif convert pamp.sbgn --svg -o out/
  sbgn2sif convert pamp.sbgn --workers 4 --xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateInputPath(args[0], errors.DiagramExtensions...); err != nil {
				return err
			}
			popts, err := c.resolve(cmd, &opts)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runConvert(ctx, args[0], opts, popts)
		},
	}

	addRunFlags(cmd, &opts, flagSet{extract: true, simplify: true, table: true, render: true})
	completeFiles(cmd, errors.DiagramExtensions)
	return cmd
}

func (c *CLI) runConvert(ctx context.Context, input string, opts runOpts, popts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	logger.Info("converting", "file", input)
	prog := newProgress(logger)
	paths := deriveOutputs(input, opts.outputDir)

	doc, err := sbgn.DecodeFile(input)
	if err != nil {
		return err
	}
	logDocument(logger, doc)

	res, runErr := c.newRunner().Execute(ctx, doc, popts)
	if res == nil || res.Extraction == nil {
		return runErr
	}

	var files []string
	if err := writeWarnings(ctx, paths.Warnings, res.Warnings()); err != nil {
		return err
	}
	if len(res.Warnings()) > 0 {
		files = append(files, paths.Warnings)
	}
	written, err := writeIntermediate(ctx, paths.Intermediate, res.Extraction.Edges)
	if err != nil {
		return err
	}
	if written {
		files = append(files, paths.Intermediate)
	}
	if runErr != nil {
		return runErr
	}

	simplified := sif.SimplifiedTable(res.Simplified)
	if err := writeTable(ctx, "simplified", paths.Simplified, simplified); err != nil {
		return err
	}
	files = append(files, paths.Simplified)
	if opts.xlsx {
		if err := writeXLSX(ctx, paths.XLSX, simplified); err != nil {
			return err
		}
		files = append(files, paths.XLSX)
	}
	artifacts, err := writeArtifacts(ctx, paths, res.Artifacts)
	if err != nil {
		return err
	}
	files = append(files, artifacts...)

	prog.done("converted", "file", input, "edges", res.Stats.EdgeCount)
	printSummary("Converted "+input, res.Stats.Warnings, []statPart{
		{res.Stats.Maps, "maps"},
		{doc.GlyphCount(), "glyphs"},
		{doc.ArcCount(), "arcs"},
		{res.Stats.ExtractedEdges, "extracted"},
		{res.Stats.DroppedEdges, "dropped"},
		{res.Stats.NodeCount, "nodes"},
		{res.Stats.EdgeCount, "edges"},
	}, prog.elapsed(), files)
	finish(logger, res.Stats.Warnings)
	return nil
}
