package bipartite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/sbgn2sif/pkg/extract"
)

func edge(src, srcClass, interaction, tgt, tgtClass string) extract.Edge {
	return extract.Edge{
		Source:      src,
		Interaction: interaction,
		Target:      tgt,
		SourceRole:  extract.ClassifyRole(srcClass),
		TargetRole:  extract.ClassifyRole(tgtClass),
		SourceClass: srcClass,
		TargetClass: tgtClass,
	}
}

func TestBuild_Routing(t *testing.T) {
	p := Build([]extract.Edge{
		edge("A", "macromolecule", "consumption", "P", "process"),
		edge("P", "process", "production", "B", "macromolecule"),
		edge("A", "macromolecule", "stimulation", "C", "macromolecule"),
	}, BuildOptions{})

	assert.Equal(t, 0, p.Dropped)
	assert.Equal(t, 3, p.Mediating.NodeCount())
	assert.Equal(t, 2, p.Mediating.EdgeCount())
	assert.True(t, p.Mediating.HasEdge("A", "P"))
	assert.True(t, p.Mediating.HasEdge("P", "B"))

	assert.Equal(t, 2, p.EntityPool.NodeCount())
	assert.True(t, p.EntityPool.HasEdge("A", "C"))

	a, _ := p.Mediating.Node("A")
	assert.Equal(t, SideEntityPool, a.Side)
	assert.Equal(t, ShapeCircle, a.Shape)
	proc, _ := p.Mediating.Node("P")
	assert.Equal(t, SideMediating, proc.Side)
	assert.Equal(t, ShapeSquare, proc.Shape)
}

func TestBuild_Filtering(t *testing.T) {
	p := Build([]extract.Edge{
		edge("A", "macromolecule", "logic arc", "AND", "and"),
		edge("OR", "or", "stimulation", "P", "process"),
		edge("∅", "source and sink", "consumption", "P", "process"),
		edge("P", "process", "production", "∅", "source and sink"),
		edge("A", "macromolecule", "stimulation", "B", "macromolecule"),
	}, BuildOptions{})

	assert.Equal(t, 4, p.Dropped)
	assert.Equal(t, 0, p.Mediating.NodeCount())
	assert.Equal(t, 1, p.EntityPool.EdgeCount())
	for _, g := range []*Graph{p.EntityPool, p.Mediating} {
		for _, n := range g.Nodes() {
			assert.NotEqual(t, "and", n.Class)
			assert.NotEqual(t, "or", n.Class)
			assert.NotEqual(t, SinkSourceClass, n.Class)
		}
	}
}

func TestBuild_CustomSinkClass(t *testing.T) {
	p := Build([]extract.Edge{
		edge("∅", "empty set", "consumption", "P", "process"),
	}, BuildOptions{SinkClass: "empty set"})
	assert.Equal(t, 1, p.Dropped)
}

func TestBuild_Attributes(t *testing.T) {
	e := edge("A", "macromolecule", "consumption", "P", "process")
	e.AnnotationSource = "uniprot:A"
	e.AnnotationInteraction = "go:P"

	p := Build([]extract.Edge{e}, BuildOptions{})

	a, ok := p.Mediating.Node("A")
	require.True(t, ok)
	assert.Equal(t, Node{ID: "A", Label: "A", Class: "macromolecule", Annotation: "uniprot:A", Side: SideEntityPool, Shape: ShapeCircle}, a)

	attrs, ok := p.Mediating.EdgeAttrs("A", "P")
	require.True(t, ok)
	assert.Equal(t, Attrs{InteractionType: "consumption", Annotation: "go:P"}, attrs)
}

func TestBuild_LastWriteWins(t *testing.T) {
	first := edge("A", "macromolecule", "consumption", "P", "process")
	first.AnnotationSource = "old"
	second := edge("A", "macromolecule", "stimulation", "P", "process")
	second.AnnotationSource = "new"

	p := Build([]extract.Edge{first, second}, BuildOptions{})

	a, _ := p.Mediating.Node("A")
	assert.Equal(t, "new", a.Annotation)
	attrs, _ := p.Mediating.EdgeAttrs("A", "P")
	assert.Equal(t, "stimulation", attrs.InteractionType)
	assert.Equal(t, 1, p.Mediating.EdgeCount())
}

func TestBuild_Sanitize(t *testing.T) {
	e := edge(`Ca2+:calmodulin`, "complex", "stimulation", `a,b\c`, "macromolecule")
	e.AnnotationSource = "http://identifiers.org/chebi/CHEBI:29108"

	p := Build([]extract.Edge{e}, BuildOptions{Sanitize: true})
	require.True(t, p.EntityPool.HasEdge("Ca2+_calmodulin", "a_b_c"))
	n, _ := p.EntityPool.Node("Ca2+_calmodulin")
	assert.Equal(t, "http_//identifiers.org/chebi/CHEBI_29108", n.Annotation)

	raw := Build([]extract.Edge{e}, BuildOptions{})
	assert.True(t, raw.EntityPool.HasEdge(`Ca2+:calmodulin`, `a,b\c`))
}
