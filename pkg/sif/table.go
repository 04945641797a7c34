package sif

import (
	"github.com/matzehuels/sbgn2sif/pkg/bipartite"
	"github.com/matzehuels/sbgn2sif/pkg/extract"
)

// Column names shared by both tables.
const (
	ColParticipantA          = "PARTICIPANT_A"
	ColInteractionType       = "INTERACTION_TYPE"
	ColParticipantB          = "PARTICIPANT_B"
	ColAnnotationSource      = "ANNOTATION_SOURCE"
	ColAnnotationInteraction = "ANNOTATION_INTERACTION"
	ColAnnotationTarget      = "ANNOTATION_TARGET"
	ColSourceType            = "SOURCE_TYPE"
	ColTargetType            = "TARGET_TYPE"
	ColSourceClass           = "SOURCE_CLASS"
	ColTargetClass           = "TARGET_CLASS"
)

// IntermediateHeader is the header of the extraction-stage table.
var IntermediateHeader = []string{
	ColParticipantA, ColInteractionType, ColParticipantB,
	ColAnnotationSource, ColAnnotationInteraction, ColAnnotationTarget,
	ColSourceType, ColTargetType,
	ColSourceClass, ColTargetClass,
}

// SimplifiedHeader is the header of the simplified table. It has no role
// columns.
var SimplifiedHeader = []string{
	ColParticipantA, ColInteractionType, ColParticipantB,
	ColAnnotationSource, ColAnnotationInteraction, ColAnnotationTarget,
	ColSourceClass, ColTargetClass,
}

// Table is a header plus rows of equal width.
type Table struct {
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// IntermediateTable lays out extracted edges in discovery order.
func IntermediateTable(edges []extract.Edge) *Table {
	t := &Table{Header: IntermediateHeader, Rows: make([][]string, 0, len(edges))}
	for _, e := range edges {
		t.Rows = append(t.Rows, e.Fields())
	}
	return t
}

// SimplifiedTable lays out the edges of g in g's iteration order. Source and
// target annotation and class come from the endpoint nodes.
func SimplifiedTable(g *bipartite.Graph) *Table {
	edges := g.Edges()
	t := &Table{Header: SimplifiedHeader, Rows: make([][]string, 0, len(edges))}
	for _, e := range edges {
		src, _ := g.Node(e.From)
		tgt, _ := g.Node(e.To)
		t.Rows = append(t.Rows, []string{
			src.Label, e.InteractionType, tgt.Label,
			src.Annotation, e.Annotation, tgt.Annotation,
			src.Class, tgt.Class,
		})
	}
	return t
}
