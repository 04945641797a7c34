package sif

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/sbgn2sif/pkg/bipartite"
	"github.com/matzehuels/sbgn2sif/pkg/errors"
	"github.com/matzehuels/sbgn2sif/pkg/extract"
)

func sampleEdges() []extract.Edge {
	return []extract.Edge{
		{
			Source: "A", Interaction: "consumption", Target: "P",
			AnnotationSource: "uniprot:P1", AnnotationInteraction: "go:0001",
			SourceRole: extract.RoleEntityPool, TargetRole: extract.RoleProcess,
			SourceClass: "macromolecule", TargetClass: "process",
		},
		{
			Source: "P", Interaction: "production", Target: "B",
			AnnotationInteraction: "go:0001", AnnotationTarget: "chebi:15422",
			SourceRole: extract.RoleProcess, TargetRole: extract.RoleEntityPool,
			SourceClass: "process", TargetClass: "simple chemical",
		},
	}
}

func TestHeaders(t *testing.T) {
	assert.Equal(t,
		"PARTICIPANT_A\tINTERACTION_TYPE\tPARTICIPANT_B\tANNOTATION_SOURCE\tANNOTATION_INTERACTION\tANNOTATION_TARGET\tSOURCE_TYPE\tTARGET_TYPE\tSOURCE_CLASS\tTARGET_CLASS",
		strings.Join(IntermediateHeader, "\t"))
	assert.Equal(t,
		"PARTICIPANT_A\tINTERACTION_TYPE\tPARTICIPANT_B\tANNOTATION_SOURCE\tANNOTATION_INTERACTION\tANNOTATION_TARGET\tSOURCE_CLASS\tTARGET_CLASS",
		strings.Join(SimplifiedHeader, "\t"))
}

func TestWriteTSV_Intermediate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, IntermediateTable(sampleEdges())))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "A\tconsumption\tP\tuniprot:P1\tgo:0001\t\tentity_pool\tprocess\tmacromolecule\tprocess", lines[1])
	assert.Equal(t, "P\tproduction\tB\t\tgo:0001\tchebi:15422\tprocess\tentity_pool\tprocess\tsimple chemical", lines[2])
}

func TestSimplifiedTable(t *testing.T) {
	g := bipartite.Simplify(bipartite.Build(sampleEdges(), bipartite.BuildOptions{}))

	table := SimplifiedTable(g)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, []string{"A", "production", "B", "uniprot:P1", "go:0001", "chebi:15422", "macromolecule", "simple chemical"}, table.Rows[0])

	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, table))
	assert.True(t, strings.HasPrefix(buf.String(), strings.Join(SimplifiedHeader, "\t")+"\n"))
}

func TestSimplifiedTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, SimplifiedTable(bipartite.New())))
	assert.Equal(t, strings.Join(SimplifiedHeader, "\t")+"\n", buf.String())
}

func TestReadIntermediate_RoundTrip(t *testing.T) {
	edges := sampleEdges()
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, IntermediateTable(edges)))

	got, err := ReadIntermediate(&buf)
	require.NoError(t, err)
	assert.Equal(t, edges, got)
}

func TestReadIntermediate_ReorderedColumns(t *testing.T) {
	in := "SOURCE_TYPE\tTARGET_TYPE\tPARTICIPANT_A\tPARTICIPANT_B\tINTERACTION_TYPE\tANNOTATION_SOURCE\tANNOTATION_INTERACTION\tANNOTATION_TARGET\tSOURCE_CLASS\tTARGET_CLASS\tEXTRA\r\n" +
		"entity_pool\tentity_pool\tX\tY\tinhibition\t\t\t\tmacromolecule\tmacromolecule\tignored\r\n" +
		"\n"

	got, err := ReadIntermediate(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "X", got[0].Source)
	assert.Equal(t, "inhibition", got[0].Interaction)
	assert.Equal(t, extract.RoleEntityPool, got[0].TargetRole)
	assert.Equal(t, "macromolecule", got[0].TargetClass)
}

func TestReadIntermediate_Errors(t *testing.T) {
	header := strings.Join(IntermediateHeader, "\t") + "\n"
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"missing column", "PARTICIPANT_A\tPARTICIPANT_B\n"},
		{"empty participant", header + "\tconsumption\tP\t\t\t\tentity_pool\tprocess\tmacromolecule\tprocess\n"},
		{"bad role", header + "A\tconsumption\tP\t\t\t\tenzyme\tprocess\tmacromolecule\tprocess\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadIntermediate(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat), "got %v", err)
		})
	}
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	table := IntermediateTable(sampleEdges())

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, table, ""))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DefaultSheet}, f.GetSheetList())
	rows, err := f.GetRows(DefaultSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1+table.Len())
	assert.Equal(t, table.Header, rows[0])
	for i, want := range table.Rows {
		// trailing empty cells are not stored
		got := rows[i+1]
		for len(got) < len(want) {
			got = append(got, "")
		}
		assert.Equal(t, want, got, "row %d", i+1)
	}
}
