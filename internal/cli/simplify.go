package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgn2sif/pkg/errors"
	"github.com/matzehuels/sbgn2sif/pkg/pipeline"
	"github.com/matzehuels/sbgn2sif/pkg/sif"
)

// simplifyCommand creates the simplify command, which collapses an existing
// intermediate table.
func (c *CLI) simplifyCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "simplify [file_intermediate.sif]",
		Short: "Collapse process nodes of an intermediate table",
		Long: `Simplify reads a typed edge list produced by extract and writes
<name>_simplified.sif. Process and logic nodes are removed; every
entity → process → entity chain becomes a direct edge named after its
arc types.`,
		Example: `  sbgn2sif simplify pamp_intermediate.sif
  sbgn2sif simplify pamp_intermediate.sif --sanitize=false --xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateInputPath(args[0], errors.TableExtensions...); err != nil {
				return err
			}
			popts, err := c.resolve(cmd, &opts)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runSimplify(ctx, args[0], opts, popts)
		},
	}

	addRunFlags(cmd, &opts, flagSet{simplify: true, table: true})
	completeFiles(cmd, errors.TableExtensions)
	return cmd
}

func (c *CLI) runSimplify(ctx context.Context, input string, opts runOpts, popts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	logger.Info("simplifying", "file", input)
	prog := newProgress(logger)
	paths := deriveOutputs(input, opts.outputDir)

	edges, err := readIntermediate(input)
	if err != nil {
		return err
	}
	logger.Debug("read intermediate table", "edges", len(edges))

	res, err := c.newRunner().Simplify(ctx, edges, popts)
	if err != nil {
		return err
	}

	files := []string{paths.Simplified}
	table := sif.SimplifiedTable(res.Simplified)
	if err := writeTable(ctx, "simplified", paths.Simplified, table); err != nil {
		return err
	}
	if opts.xlsx {
		if err := writeXLSX(ctx, paths.XLSX, table); err != nil {
			return err
		}
		files = append(files, paths.XLSX)
	}

	prog.done("simplified", "file", input, "edges", res.Stats.EdgeCount)
	printSummary("Simplified "+input, 0, []statPart{
		{len(edges), "input edges"},
		{res.Stats.DroppedEdges, "dropped"},
		{res.Stats.NodeCount, "nodes"},
		{res.Stats.EdgeCount, "edges"},
	}, prog.elapsed(), files)
	finish(logger, 0)
	return nil
}
