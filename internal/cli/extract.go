package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgn2sif/pkg/errors"
	"github.com/matzehuels/sbgn2sif/pkg/pipeline"
	"github.com/matzehuels/sbgn2sif/pkg/sbgn"
)

// extractCommand creates the extract command, which stops after the typed
// edge list.
func (c *CLI) extractCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "extract [file.sbgn]",
		Short: "Extract the typed edge list of an SBGN-ML map",
		Long: `Extract writes <name>_intermediate.sif, one row per arc with source and
target class, label and annotation, plus <name>_warnings.txt when glyphs,
ports or arcs had to be skipped.

A map without usable arcs is not an error here: the warnings are still
written and no intermediate table is produced.`,
		Example: `  sbgn2sif extract pamp.sbgn
  sbgn2sif extract pamp.sbgn -w 8 -o out/`,
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
			return c.runExtract(ctx, args[0], opts, popts)
		},
	}

	addRunFlags(cmd, &opts, flagSet{extract: true})
	completeFiles(cmd, errors.DiagramExtensions)
	return cmd
}

func (c *CLI) runExtract(ctx context.Context, input string, opts runOpts, popts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	logger.Info("extracting", "file", input)
	prog := newProgress(logger)
	paths := deriveOutputs(input, opts.outputDir)

	doc, err := sbgn.DecodeFile(input)
	if err != nil {
		return err
	}
	logDocument(logger, doc)

	res, err := c.newRunner().Extract(ctx, doc, popts)
	if err != nil {
		return err
	}

	var files []string
	if err := writeWarnings(ctx, paths.Warnings, res.Warnings); err != nil {
		return err
	}
	if len(res.Warnings) > 0 {
		files = append(files, paths.Warnings)
	}
	written, err := writeIntermediate(ctx, paths.Intermediate, res.Edges)
	if err != nil {
		return err
	}
	if written {
		files = append(files, paths.Intermediate)
	}

	prog.done("extracted", "file", input, "edges", len(res.Edges))
	printSummary("Extracted "+input, len(res.Warnings), []statPart{
		{len(res.Maps), "maps"},
		{doc.GlyphCount(), "glyphs"},
		{doc.ArcCount(), "arcs"},
		{len(res.Edges), "edges"},
	}, prog.elapsed(), files)
	finish(logger, len(res.Warnings))
	return nil
}
