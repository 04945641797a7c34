package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sbgn2sif/pkg/errors"
	"github.com/matzehuels/sbgn2sif/pkg/extract"
	"github.com/matzehuels/sbgn2sif/pkg/observability"
	"github.com/matzehuels/sbgn2sif/pkg/pipeline"
	"github.com/matzehuels/sbgn2sif/pkg/sbgn"
	"github.com/matzehuels/sbgn2sif/pkg/sif"
)

// writeFile writes data to path, creating parent directories, and reports the
// write to the output hooks.
func writeFile(ctx context.Context, kind, path string, data []byte) error {
	hooks := observability.Output()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			hooks.OnWriteError(ctx, kind, path, err)
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		hooks.OnWriteError(ctx, kind, path, err)
		return fmt.Errorf("write %s: %w", kind, err)
	}
	hooks.OnWrite(ctx, kind, path, len(data))
	loggerFromContext(ctx).Debug("wrote file", "kind", kind, "path", path, "bytes", len(data))
	return nil
}

// writeTable serializes t as TSV.
func writeTable(ctx context.Context, kind, path string, t *sif.Table) error {
	var buf bytes.Buffer
	if err := sif.WriteTSV(&buf, t); err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	return writeFile(ctx, kind, path, buf.Bytes())
}

// writeXLSX serializes t as a workbook.
func writeXLSX(ctx context.Context, path string, t *sif.Table) error {
	var buf bytes.Buffer
	if err := sif.WriteXLSX(&buf, t, ""); err != nil {
		return fmt.Errorf("encode xlsx: %w", err)
	}
	return writeFile(ctx, "xlsx", path, buf.Bytes())
}

// writeWarnings writes one warning per line. Nothing is written when there
// are no warnings.
func writeWarnings(ctx context.Context, path string, warnings []string) error {
	if len(warnings) == 0 {
		return nil
	}
	if err := writeFile(ctx, "warnings", path, []byte(strings.Join(warnings, "\n")+"\n")); err != nil {
		return err
	}
	loggerFromContext(ctx).Warn("extraction reported warnings", "count", len(warnings), "see", path)
	return nil
}

// writeArtifacts writes the rendered DOT and SVG files present in artifacts
// and returns the written paths in a stable order.
func writeArtifacts(ctx context.Context, paths outputPaths, artifacts map[string][]byte) ([]string, error) {
	targets := []struct{ key, path string }{
		{pipeline.ArtifactBipartiteDOT, paths.BipartiteDOT},
		{pipeline.ArtifactProjectedDOT, paths.ProjectedDOT},
		{pipeline.ArtifactBipartiteSVG, paths.BipartiteSVG},
		{pipeline.ArtifactProjectedSVG, paths.ProjectedSVG},
	}
	var written []string
	for _, t := range targets {
		data, ok := artifacts[t.key]
		if !ok {
			continue
		}
		if err := writeFile(ctx, t.key, t.path, data); err != nil {
			return written, err
		}
		written = append(written, t.path)
	}
	return written, nil
}

// writeIntermediate writes the typed edge list. An empty list writes nothing
// and reports false.
func writeIntermediate(ctx context.Context, path string, edges []extract.Edge) (bool, error) {
	if len(edges) == 0 {
		loggerFromContext(ctx).Warn("no edges extracted, intermediate table not written", "path", path)
		return false, nil
	}
	if err := writeTable(ctx, "intermediate", path, sif.IntermediateTable(edges)); err != nil {
		return false, err
	}
	return true, nil
}

// readIntermediate loads a typed edge list written by extract or convert.
func readIntermediate(path string) ([]extract.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	edges, err := sif.ReadIntermediate(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return edges, nil
}

// logDocument reports the size of a decoded input before extraction.
func logDocument(logger *log.Logger, doc *sbgn.Document) {
	logger.Info("decoded document", "maps", len(doc.Maps), "glyphs", doc.GlyphCount(), "arcs", doc.ArcCount())
}

// finish logs the final status line of a run.
func finish(logger *log.Logger, warnings int) {
	if warnings > 0 {
		logger.Info("done, with warnings", "warnings", warnings)
		return
	}
	logger.Info("done, clean")
}
