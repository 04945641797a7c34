package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/sbgn2sif/pkg/errors"
	"github.com/matzehuels/sbgn2sif/pkg/sbgn"
)

func glyph(id, class string, labels ...string) sbgn.Glyph {
	g := sbgn.Glyph{ID: id, Class: class}
	for _, l := range labels {
		g.Labels = append(g.Labels, sbgn.Label{Text: l})
	}
	return g
}

func annotated(g sbgn.Glyph, refs ...string) sbgn.Glyph {
	a := sbgn.Annotation{}
	for _, r := range refs {
		a.References = append(a.References, sbgn.Reference{Resource: r})
	}
	g.Annotations = append(g.Annotations, a)
	return g
}

func arc(id, class, source, target string) sbgn.Arc {
	return sbgn.Arc{ID: id, Class: class, Source: source, Target: target}
}

func run(t *testing.T, maps ...sbgn.Map) *Result {
	t.Helper()
	res, err := Extract(context.Background(), &sbgn.Document{Maps: maps}, Options{})
	require.NoError(t, err)
	return res
}

func TestExtract_SimpleReaction(t *testing.T) {
	res := run(t, sbgn.Map{
		Glyphs: []sbgn.Glyph{
			glyph("a", "simple chemical", "A"),
			glyph("b", "simple chemical", "B"),
			glyph("p", "process"),
		},
		Arcs: []sbgn.Arc{
			arc("a1", "consumption", "a", "p"),
			arc("a2", "production", "p", "b"),
		},
	})

	require.Len(t, res.Edges, 2)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, Edge{
		Source: "A", Interaction: "consumption", Target: "p",
		SourceRole: RoleEntityPool, TargetRole: RoleProcess,
		SourceClass: "simple chemical", TargetClass: "process",
	}, res.Edges[0])
	assert.Equal(t, RoleProcess, res.Edges[1].SourceRole)
	assert.Equal(t, RoleEntityPool, res.Edges[1].TargetRole)
	assert.Equal(t, "B", res.Edges[1].Target)
}

func TestExtract_Labels(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   string
	}{
		{name: "no labels", labels: nil, want: "g"},
		{name: "empty labels", labels: []string{"", ""}, want: "g"},
		{name: "dedup keeps order", labels: []string{"A", "A", "B"}, want: "A|B"},
		{name: "newline folded", labels: []string{"Ca\n2+"}, want: "Ca 2+"},
		{name: "crlf folded", labels: []string{"x\r\ny"}, want: "x y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, sbgn.Map{
				Glyphs: []sbgn.Glyph{glyph("g", "macromolecule", tt.labels...), glyph("h", "macromolecule", "H")},
				Arcs:   []sbgn.Arc{arc("e", "stimulation", "g", "h")},
			})
			require.Len(t, res.Edges, 1)
			assert.Equal(t, tt.want, res.Edges[0].Source)
		})
	}
}

func TestExtract_DuplicateGlyph(t *testing.T) {
	res := run(t, sbgn.Map{
		Glyphs: []sbgn.Glyph{
			glyph("a", "macromolecule", "First"),
			glyph("a", "macromolecule", "Second"),
			glyph("b", "macromolecule", "B"),
			glyph("", "macromolecule", "Anonymous"),
		},
		Arcs: []sbgn.Arc{arc("e", "stimulation", "a", "b")},
	})

	require.Len(t, res.Edges, 1)
	assert.Equal(t, "First", res.Edges[0].Source, "first registration wins")
	assert.Equal(t, []string{
		"glyph a: duplicated ID, skipping",
		"glyph with no ID, skipping",
	}, res.Warnings)
	assert.Equal(t, 2, res.Maps[0].Glyphs)
}

func TestExtract_Ports(t *testing.T) {
	p := annotated(glyph("p", "process"), "go:0001")
	p.Ports = []sbgn.Port{{ID: "p.1"}, {ID: "p.2"}, {ID: "a"}, {ID: ""}}

	res := run(t, sbgn.Map{
		Glyphs: []sbgn.Glyph{glyph("a", "simple chemical", "A"), p},
		Arcs:   []sbgn.Arc{arc("e1", "consumption", "a", "p.1")},
	})

	assert.Equal(t, []string{
		"glyph p: port a: duplicated ID, skipping",
		"glyph p: port with no ID, skipping",
	}, res.Warnings)
	require.Len(t, res.Edges, 1)
	e := res.Edges[0]
	assert.Equal(t, "p", e.Target, "port resolves to parent label")
	assert.Equal(t, "process", e.TargetClass)
	assert.Equal(t, RoleProcess, e.TargetRole)
	assert.Equal(t, "go:0001", e.AnnotationInteraction, "port inherits parent annotation")
	assert.Equal(t, 2, res.Maps[0].Ports)
}

func TestExtract_PortOfDuplicateGlyphIgnored(t *testing.T) {
	dup := glyph("a", "process")
	dup.Ports = []sbgn.Port{{ID: "a.1"}}

	res := run(t, sbgn.Map{
		Glyphs: []sbgn.Glyph{glyph("a", "macromolecule", "A"), dup, glyph("b", "macromolecule", "B")},
		Arcs:   []sbgn.Arc{arc("e", "stimulation", "a.1", "b")},
	})

	assert.Empty(t, res.Edges)
	assert.Equal(t, []string{
		"glyph a: duplicated ID, skipping",
		"arc e: invalid source glyph, skipping",
	}, res.Warnings)
}

func TestExtract_AnnotationSlots(t *testing.T) {
	a := annotated(glyph("a", "macromolecule", "A"), "uniprot:A")
	b := annotated(glyph("b", "macromolecule", "B"), "uniprot:B")
	p := annotated(glyph("p", "process"), "go:P")
	q := annotated(glyph("q", "omitted process"), "go:Q")

	tests := []struct {
		name                  string
		source, target        string
		wantSrc, wantInt, wantTgt string
	}{
		{name: "entity to process", source: "a", target: "p", wantSrc: "uniprot:A", wantInt: "go:P", wantTgt: ""},
		{name: "process to entity", source: "p", target: "b", wantSrc: "", wantInt: "go:P", wantTgt: "uniprot:B"},
		{name: "entity to entity", source: "a", target: "b", wantSrc: "uniprot:A", wantInt: "", wantTgt: "uniprot:B"},
		{name: "process to process", source: "p", target: "q", wantSrc: "", wantInt: "go:P", wantTgt: "go:Q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, sbgn.Map{
				Glyphs: []sbgn.Glyph{a, b, p, q},
				Arcs:   []sbgn.Arc{arc("e", "stimulation", tt.source, tt.target)},
			})
			require.Len(t, res.Edges, 1)
			e := res.Edges[0]
			assert.Equal(t, tt.wantSrc, e.AnnotationSource)
			assert.Equal(t, tt.wantInt, e.AnnotationInteraction)
			assert.Equal(t, tt.wantTgt, e.AnnotationTarget)
		})
	}
}

func TestExtract_AnnotationReferences(t *testing.T) {
	a := annotated(glyph("a", "macromolecule", "A"), "r1", "", "r2", "r1")
	a = annotated(a, "r3")

	res := run(t, sbgn.Map{
		Glyphs: []sbgn.Glyph{a, glyph("b", "macromolecule", "B")},
		Arcs:   []sbgn.Arc{arc("e", "stimulation", "a", "b")},
	})

	require.Len(t, res.Edges, 1)
	assert.Equal(t, "r1|r2|r3", res.Edges[0].AnnotationSource)
	assert.Equal(t, []string{
		"glyph a: annotation with no rdf:li resource, skipping",
		"glyph a: annotation r1: duplicated reference, skipping",
	}, res.Warnings)
}

func TestExtract_InvalidArcs(t *testing.T) {
	res := run(t, sbgn.Map{
		Glyphs: []sbgn.Glyph{glyph("a", "macromolecule", "A"), glyph("b", "macromolecule", "B")},
		Arcs: []sbgn.Arc{
			arc("", "stimulation", "a", "b"),
			arc("e1", "", "a", "b"),
			arc("e2", "stimulation", "missing", "b"),
			arc("e3", "stimulation", "a", "missing"),
			arc("e4", "stimulation", "a", "b"),
			arc("e4", "inhibition", "b", "a"),
		},
	})

	require.Len(t, res.Edges, 1)
	assert.Equal(t, "stimulation", res.Edges[0].Interaction)
	assert.Equal(t, []string{
		"arc with no ID, skipping",
		"arc e1: missing class, skipping",
		"arc e2: invalid source glyph, skipping",
		"arc e3: invalid target glyph, skipping",
		"arc e4: duplicated ID, skipping",
	}, res.Warnings)
}

func TestExtract_DedupWithinMap(t *testing.T) {
	m := sbgn.Map{
		Glyphs: []sbgn.Glyph{glyph("a", "macromolecule", "A"), glyph("b", "macromolecule", "B"), glyph("b2", "macromolecule", "B")},
		Arcs: []sbgn.Arc{
			arc("e1", "stimulation", "a", "b"),
			arc("e2", "stimulation", "a", "b"),
			arc("e3", "stimulation", "a", "b2"), // same label, same class: identical tuple
		},
	}

	res := run(t, m)
	assert.Len(t, res.Edges, 1)
	assert.Equal(t, 3, res.Maps[0].Arcs)
	assert.Equal(t, 1, res.Maps[0].Edges)
}

func TestExtract_NoDedupAcrossMaps(t *testing.T) {
	m := sbgn.Map{
		Glyphs: []sbgn.Glyph{glyph("a", "macromolecule", "A"), glyph("b", "macromolecule", "B")},
		Arcs:   []sbgn.Arc{arc("e1", "stimulation", "a", "b")},
	}

	res := run(t, m, m)
	assert.Len(t, res.Edges, 2)
	assert.Len(t, res.Maps, 2)
}

func TestExtract_WorkersPreserveOrder(t *testing.T) {
	var maps []sbgn.Map
	for i := 0; i < 12; i++ {
		id := string(rune('a' + i))
		maps = append(maps, sbgn.Map{
			ID:     id,
			Glyphs: []sbgn.Glyph{glyph("x", "macromolecule", "X"+id), glyph("y", "macromolecule", "Y"), glyph("y", "macromolecule")},
			Arcs:   []sbgn.Arc{arc("e", "stimulation", "x", "y")},
		})
	}
	doc := &sbgn.Document{Maps: maps}

	seq, err := Extract(context.Background(), doc, Options{Workers: 1})
	require.NoError(t, err)
	par, err := Extract(context.Background(), doc, Options{Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, seq.Edges, par.Edges)
	assert.Equal(t, seq.Warnings, par.Warnings)
	assert.Equal(t, seq.Maps, par.Maps)
	assert.Equal(t, "Xa", par.Edges[0].Source)
	assert.Equal(t, "Xl", par.Edges[11].Source)
}

func TestExtract_NoMaps(t *testing.T) {
	_, err := Extract(context.Background(), &sbgn.Document{}, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeMalformedDocument))

	_, err = Extract(context.Background(), nil, Options{})
	assert.True(t, errors.Is(err, errors.ErrCodeMalformedDocument))
}

func TestExtract_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Extract(ctx, &sbgn.Document{Maps: []sbgn.Map{{}}}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
