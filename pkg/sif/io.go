package sif

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/sbgn2sif/pkg/errors"
	"github.com/matzehuels/sbgn2sif/pkg/extract"
)

// DefaultSheet is the worksheet name used by [WriteXLSX].
const DefaultSheet = "SIF"

// WriteTSV writes the header and rows of t, tab separated, one per line.
func WriteTSV(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(t.Header, "\t") + "\n"); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if _, err := bw.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteXLSX writes t as a single-sheet workbook named sheet, or
// [DefaultSheet] when sheet is empty.
func WriteXLSX(w io.Writer, t *Table, sheet string) error {
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}

	writeRow := func(n int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, n)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(values))
		for i, v := range values {
			row[i] = v
		}
		return sw.SetRow(cell, row)
	}

	if err := writeRow(1, t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range t.Rows {
		if err := writeRow(i+2, r); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	return f.Write(w)
}

// ReadIntermediate parses an intermediate table written by [WriteTSV].
//
// Columns are located by header name, so extra columns and reordering are
// tolerated. Blank lines are skipped. Every row needs both participants and
// valid role columns.
func ReadIntermediate(r io.Reader) ([]extract.Edge, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "missing header")
	}
	idx, err := indexHeader(strings.Split(strings.TrimRight(sc.Text(), "\r"), "\t"))
	if err != nil {
		return nil, err
	}

	var edges []extract.Edge
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		e, err := parseRow(strings.Split(text, "\t"), idx)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "line %d", line)
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return edges, nil
}

func indexHeader(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, col := range IntermediateHeader {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "missing columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func parseRow(fields []string, idx map[string]int) (extract.Edge, error) {
	get := func(col string) string {
		if i := idx[col]; i < len(fields) {
			return fields[i]
		}
		return ""
	}

	e := extract.Edge{
		Source:                get(ColParticipantA),
		Interaction:           get(ColInteractionType),
		Target:                get(ColParticipantB),
		AnnotationSource:      get(ColAnnotationSource),
		AnnotationInteraction: get(ColAnnotationInteraction),
		AnnotationTarget:      get(ColAnnotationTarget),
		SourceClass:           get(ColSourceClass),
		TargetClass:           get(ColTargetClass),
	}
	if e.Source == "" || e.Target == "" {
		return e, fmt.Errorf("empty participant")
	}

	var ok bool
	if e.SourceRole, ok = extract.ParseRole(get(ColSourceType)); !ok {
		return e, fmt.Errorf("invalid %s %q", ColSourceType, get(ColSourceType))
	}
	if e.TargetRole, ok = extract.ParseRole(get(ColTargetType)); !ok {
		return e, fmt.Errorf("invalid %s %q", ColTargetType, get(ColTargetType))
	}
	return e, nil
}
