package cli

import (
	"path/filepath"
	"testing"
)

func TestDeriveOutputs(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		outDir     string
		wantSimple string
		wantInter  string
	}{
		{"sbgn next to input", "maps/pamp.sbgn", "", "maps/pamp_simplified.sif", "maps/pamp_intermediate.sif"},
		{"xml input", "pamp.xml", "", "pamp_simplified.sif", "pamp_intermediate.sif"},
		{"intermediate suffix stripped", "maps/pamp_intermediate.sif", "", "maps/pamp_simplified.sif", "maps/pamp_intermediate.sif"},
		{"output dir", "maps/pamp.sbgn", "out", filepath.Join("out", "pamp_simplified.sif"), filepath.Join("out", "pamp_intermediate.sif")},
		{"dotted name", "a.b.sbgn", "", "a.b_simplified.sif", "a.b_intermediate.sif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveOutputs(tt.input, tt.outDir)
			if got.Simplified != tt.wantSimple {
				t.Errorf("Simplified = %q, want %q", got.Simplified, tt.wantSimple)
			}
			if got.Intermediate != tt.wantInter {
				t.Errorf("Intermediate = %q, want %q", got.Intermediate, tt.wantInter)
			}
		})
	}
}

func TestDeriveOutputsSuffixes(t *testing.T) {
	got := deriveOutputs("pamp.sbgn", "")
	want := outputPaths{
		Intermediate: "pamp_intermediate.sif",
		Simplified:   "pamp_simplified.sif",
		Warnings:     "pamp_warnings.txt",
		XLSX:         "pamp_simplified.xlsx",
		BipartiteDOT: "pamp_bipartite.dot",
		ProjectedDOT: "pamp_projected.dot",
		BipartiteSVG: "pamp_bipartite.svg",
		ProjectedSVG: "pamp_projected.svg",
	}
	if got != want {
		t.Errorf("deriveOutputs() = %+v, want %+v", got, want)
	}
}
