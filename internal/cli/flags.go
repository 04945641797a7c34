package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgn2sif/pkg/errors"
	"github.com/matzehuels/sbgn2sif/pkg/pipeline"
)

// runOpts holds the command-line flags shared by the conversion commands.
// Only flags the user actually set override the config file.
type runOpts struct {
	outputDir string // directory for outputs (default: next to the input)
	workers   int    // maps processed concurrently
	sanitize  bool   // replace ':', ',' and '\' in labels and annotations
	sinkClass string // glyph class treated as the empty-set marker
	dot       bool   // write bipartite and projected DOT files
	svg       bool   // also render the DOT files to SVG (implies dot)
	xlsx      bool   // write the simplified table as a workbook
	detailed  bool   // include class and annotation in DOT labels
}

// flagSet selects which flags a command registers.
type flagSet struct {
	extract  bool // workers
	simplify bool // sanitize, sink-class
	table    bool // xlsx
	render   bool // dot, svg, detailed
}

func addRunFlags(cmd *cobra.Command, opts *runOpts, set flagSet) {
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory (default: next to the input file)")
	if set.extract {
		cmd.Flags().IntVarP(&opts.workers, "workers", "w", pipeline.DefaultWorkers, "maps processed concurrently")
	}
	if set.simplify {
		cmd.Flags().BoolVar(&opts.sanitize, "sanitize", true, `replace ':', ',' and '\' with '_' in labels and annotations`)
		cmd.Flags().StringVar(&opts.sinkClass, "sink-class", pipeline.DefaultSinkClass, "glyph class of the empty-set marker")
	}
	if set.table {
		cmd.Flags().BoolVar(&opts.xlsx, "xlsx", false, "also write the simplified table as .xlsx")
	}
	if set.render {
		cmd.Flags().BoolVar(&opts.dot, "dot", false, "write bipartite and projected graphs as Graphviz DOT")
		cmd.Flags().BoolVar(&opts.svg, "svg", false, "also render the DOT graphs to SVG (implies --dot)")
		cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show class and annotation in DOT node labels")
	}
}

// resolve merges flags over the loaded config: a flag the user set wins,
// otherwise the config value applies.
func (c *CLI) resolve(cmd *cobra.Command, opts *runOpts) (pipeline.Options, error) {
	popts := c.Config.PipelineOptions()
	popts.Logger = c.Logger
	changed := cmd.Flags().Changed

	if changed("output-dir") {
		if err := errors.ValidateOutputDir(opts.outputDir); err != nil {
			return pipeline.Options{}, err
		}
	} else {
		opts.outputDir = c.Config.OutputDir
	}
	if !changed("xlsx") {
		opts.xlsx = c.Config.XLSX
	}
	if changed("workers") {
		popts.Workers = opts.workers
	}
	if changed("sanitize") {
		popts.Sanitize = opts.sanitize
	}
	if changed("sink-class") {
		popts.SinkClass = opts.sinkClass
	}
	if changed("dot") {
		popts.DOT = opts.dot
	}
	if changed("svg") {
		popts.SVG = opts.svg
	}
	if changed("detailed") {
		popts.Detailed = opts.detailed
	}

	if err := popts.Validate(); err != nil {
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid flags")
	}
	return popts, nil
}
