package cli

import (
	"path/filepath"
	"strings"
)

// Output file suffixes appended to the input's base name.
const (
	suffixIntermediate = "_intermediate.sif"
	suffixSimplified   = "_simplified.sif"
	suffixWarnings     = "_warnings.txt"
	suffixXLSX         = "_simplified.xlsx"
	suffixBipartiteDOT = "_bipartite.dot"
	suffixProjectedDOT = "_projected.dot"
	suffixBipartiteSVG = "_bipartite.svg"
	suffixProjectedSVG = "_projected.svg"
)

// outputPaths are the files a run may produce for one input.
type outputPaths struct {
	Intermediate string
	Simplified   string
	Warnings     string
	XLSX         string
	BipartiteDOT string
	ProjectedDOT string
	BipartiteSVG string
	ProjectedSVG string
}

// deriveOutputs computes output paths from an input path.
//
// The extension is stripped, as is a trailing "_intermediate" so that
// simplifying pamp_intermediate.sif writes pamp_simplified.sif. When outDir
// is set, files go there instead of next to the input.
func deriveOutputs(input, outDir string) outputPaths {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	base = strings.TrimSuffix(base, "_intermediate")
	if outDir != "" {
		base = filepath.Join(outDir, filepath.Base(base))
	}
	return outputPaths{
		Intermediate: base + suffixIntermediate,
		Simplified:   base + suffixSimplified,
		Warnings:     base + suffixWarnings,
		XLSX:         base + suffixXLSX,
		BipartiteDOT: base + suffixBipartiteDOT,
		ProjectedDOT: base + suffixProjectedDOT,
		BipartiteSVG: base + suffixBipartiteSVG,
		ProjectedSVG: base + suffixProjectedSVG,
	}
}
