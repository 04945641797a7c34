package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgn2sif/pkg/errors"
	"github.com/matzehuels/sbgn2sif/pkg/pipeline"
)

// renderCommand creates the render command, which draws the mediating graph
// and the simplified network from an intermediate table.
func (c *CLI) renderCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "render [file_intermediate.sif]",
		Short: "Render the bipartite and projected graphs as DOT or SVG",
		Long: `Render rebuilds the graphs from a typed edge list and writes
<name>_bipartite.dot and <name>_projected.dot. With --svg both are also
laid out with Graphviz and written as SVG.

Process nodes are drawn as squares, entities as circles.`,
		Example: `  sbgn2sif render pamp_intermediate.sif
  sbgn2sif render pamp_intermediate.sif --svg --detailed -o out/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateInputPath(args[0], errors.TableExtensions...); err != nil {
				return err
			}
			popts, err := c.resolve(cmd, &opts)
			if err != nil {
				return err
			}
			popts.DOT = true
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runRender(ctx, args[0], opts, popts)
		},
	}

	addRunFlags(cmd, &opts, flagSet{simplify: true, render: true})
	completeFiles(cmd, errors.TableExtensions)
	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts runOpts, popts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	logger.Info("rendering", "file", input, "svg", popts.SVG)
	prog := newProgress(logger)
	paths := deriveOutputs(input, opts.outputDir)

	edges, err := readIntermediate(input)
	if err != nil {
		return err
	}

	runner := c.newRunner()
	res, err := runner.Simplify(ctx, edges, popts)
	if err != nil {
		return err
	}
	artifacts, err := runner.Render(ctx, res, popts)
	if err != nil {
		return err
	}

	files, err := writeArtifacts(ctx, paths, artifacts)
	if err != nil {
		return err
	}

	prog.done("rendered", "file", input, "files", len(files))
	printSummary("Rendered "+input, 0, []statPart{
		{res.Partition.Mediating.NodeCount(), "bipartite nodes"},
		{res.Simplified.NodeCount(), "projected nodes"},
		{len(files), "files"},
	}, prog.elapsed(), files)
	finish(logger, 0)
	return nil
}
