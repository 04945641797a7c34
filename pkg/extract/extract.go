package extract

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/sbgn2sif/pkg/errors"
	"github.com/matzehuels/sbgn2sif/pkg/sbgn"
)

// Separator joins multiple labels or annotation references of one glyph.
const Separator = "|"

// Options configures an extraction run.
type Options struct {
	// Workers bounds how many maps are processed concurrently.
	// Values below 1 mean sequential processing.
	Workers int

	// Logger receives debug traces. Defaults to a discarding logger.
	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return o
}

// Result is the outcome of an extraction run.
type Result struct {
	// Edges are deduplicated within each map and concatenated in map order.
	Edges []Edge
	// Warnings lists every skipped glyph, port, reference or arc, in order.
	Warnings []string
	// Maps holds per-map counters in document order.
	Maps []MapStats
}

// MapStats summarizes the extraction of a single map.
type MapStats struct {
	ID       string
	Glyphs   int // registered glyphs
	Ports    int // registered port aliases
	Arcs     int // arcs that passed validation
	Edges    int // distinct edges after dedup
	Warnings int
}

// Extract walks every map of doc and produces the typed edge list.
//
// Maps are independent: each gets its own node table, annotation table and
// dedup set. With Workers > 1 maps are processed concurrently, but the
// output order is always map discovery order, identical to a sequential run.
//
// Extract only fails when doc has no maps ([errors.ErrCodeMalformedDocument])
// or ctx is cancelled. Everything else is reported through Result.Warnings.
func Extract(ctx context.Context, doc *sbgn.Document, opts Options) (*Result, error) {
	if doc == nil || len(doc.Maps) == 0 {
		return nil, errors.MalformedDocument(nil, "document has no maps")
	}
	opts = opts.withDefaults()

	parts := make([]*mapResult, len(doc.Maps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range doc.Maps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parts[i] = extractMap(&doc.Maps[i], opts.Logger.With("map", mapName(&doc.Maps[i], i)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Maps: make([]MapStats, 0, len(parts))}
	for _, p := range parts {
		res.Edges = append(res.Edges, p.edges...)
		res.Warnings = append(res.Warnings, p.warnings...)
		res.Maps = append(res.Maps, p.stats)
	}
	return res, nil
}

func mapName(m *sbgn.Map, i int) string {
	if m.ID != "" {
		return m.ID
	}
	return fmt.Sprintf("#%d", i)
}

// node is a registered glyph or port. Ports share their parent's fields;
// owner is the glyph id that annotations are keyed by.
type node struct {
	label string
	class string
	role  Role
	owner string
}

type mapResult struct {
	edges    []Edge
	warnings []string
	stats    MapStats
}

type mapExtractor struct {
	logger      *log.Logger
	nodes       map[string]node
	annotations map[string]string
	res         mapResult
}

func extractMap(m *sbgn.Map, logger *log.Logger) *mapResult {
	x := &mapExtractor{
		logger:      logger,
		nodes:       make(map[string]node),
		annotations: make(map[string]string),
	}
	x.res.stats.ID = m.ID

	accepted := x.registerGlyphs(m.Glyphs)
	x.registerPorts(accepted)
	x.resolveAnnotations(accepted)
	x.collectArcs(m.Arcs)

	x.res.stats.Edges = len(x.res.edges)
	x.res.stats.Warnings = len(x.res.warnings)
	logger.Debug("map extracted",
		"glyphs", x.res.stats.Glyphs,
		"ports", x.res.stats.Ports,
		"arcs", x.res.stats.Arcs,
		"edges", x.res.stats.Edges,
		"warnings", x.res.stats.Warnings)
	return &x.res
}

func (x *mapExtractor) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	x.logger.Debug("skipped", "reason", msg)
	x.res.warnings = append(x.res.warnings, msg)
}

// registerGlyphs registers every glyph with a fresh id and returns the
// accepted ones; rejected duplicates contribute nothing further.
func (x *mapExtractor) registerGlyphs(glyphs []sbgn.Glyph) []*sbgn.Glyph {
	accepted := make([]*sbgn.Glyph, 0, len(glyphs))
	for i := range glyphs {
		gl := &glyphs[i]
		switch {
		case gl.ID == "":
			x.warn("glyph with no ID, skipping")
		case x.has(gl.ID):
			x.warn("glyph %s: duplicated ID, skipping", gl.ID)
		default:
			x.nodes[gl.ID] = node{
				label: glyphLabel(gl),
				class: gl.Class,
				role:  ClassifyRole(gl.Class),
				owner: gl.ID,
			}
			x.res.stats.Glyphs++
			accepted = append(accepted, gl)
		}
	}
	return accepted
}

func (x *mapExtractor) registerPorts(glyphs []*sbgn.Glyph) {
	for _, gl := range glyphs {
		parent := x.nodes[gl.ID]
		for _, p := range gl.Ports {
			switch {
			case p.ID == "":
				x.warn("glyph %s: port with no ID, skipping", gl.ID)
			case x.has(p.ID):
				x.warn("glyph %s: port %s: duplicated ID, skipping", gl.ID, p.ID)
			default:
				x.nodes[p.ID] = parent
				x.res.stats.Ports++
			}
		}
	}
}

func (x *mapExtractor) resolveAnnotations(glyphs []*sbgn.Glyph) {
	for _, gl := range glyphs {
		if len(gl.Annotations) == 0 {
			continue
		}
		var refs []string
		seen := make(map[string]bool)
		for _, a := range gl.Annotations {
			for _, ref := range a.References {
				switch {
				case ref.Resource == "":
					x.warn("glyph %s: annotation with no rdf:li resource, skipping", gl.ID)
				case seen[ref.Resource]:
					x.warn("glyph %s: annotation %s: duplicated reference, skipping", gl.ID, ref.Resource)
				default:
					seen[ref.Resource] = true
					refs = append(refs, ref.Resource)
				}
			}
		}
		x.annotations[gl.ID] = strings.Join(refs, Separator)
	}
}

func (x *mapExtractor) collectArcs(arcs []sbgn.Arc) {
	seenArcs := make(map[string]bool, len(arcs))
	seenEdges := make(map[Edge]bool, len(arcs))

	for _, arc := range arcs {
		switch {
		case arc.ID == "":
			x.warn("arc with no ID, skipping")
			continue
		case seenArcs[arc.ID]:
			x.warn("arc %s: duplicated ID, skipping", arc.ID)
			continue
		case arc.Class == "":
			x.warn("arc %s: missing class, skipping", arc.ID)
			continue
		case !x.has(arc.Source):
			x.warn("arc %s: invalid source glyph, skipping", arc.ID)
			continue
		case !x.has(arc.Target):
			x.warn("arc %s: invalid target glyph, skipping", arc.ID)
			continue
		}
		seenArcs[arc.ID] = true
		x.res.stats.Arcs++

		e := x.edge(arc)
		if seenEdges[e] {
			continue
		}
		seenEdges[e] = true
		x.logger.Debug("edge", "arc", arc.ID, "source", e.Source, "interaction", e.Interaction, "target", e.Target,
			"source_role", e.SourceRole, "target_role", e.TargetRole)
		x.res.edges = append(x.res.edges, e)
	}
}

// edge builds the flat record for a validated arc. Whichever endpoint is a
// process gives up its source/target slot and fills the interaction slot.
func (x *mapExtractor) edge(arc sbgn.Arc) Edge {
	src, tgt := x.nodes[arc.Source], x.nodes[arc.Target]
	srcAnn, tgtAnn := x.annotations[src.owner], x.annotations[tgt.owner]

	e := Edge{
		Source:      src.label,
		Interaction: arc.Class,
		Target:      tgt.label,
		SourceRole:  src.role,
		TargetRole:  tgt.role,
		SourceClass: src.class,
		TargetClass: tgt.class,
	}
	switch {
	case src.role == RoleProcess:
		e.AnnotationInteraction, e.AnnotationTarget = srcAnn, tgtAnn
	case tgt.role == RoleProcess:
		e.AnnotationSource, e.AnnotationInteraction = srcAnn, tgtAnn
	default:
		e.AnnotationSource, e.AnnotationTarget = srcAnn, tgtAnn
	}
	return e
}

func (x *mapExtractor) has(id string) bool {
	_, ok := x.nodes[id]
	return ok
}

var labelReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// glyphLabel joins the distinct non-empty label texts of gl in order,
// falling back to the glyph id.
func glyphLabel(gl *sbgn.Glyph) string {
	var labels []string
	seen := make(map[string]bool, len(gl.Labels))
	for _, l := range gl.Labels {
		name := labelReplacer.Replace(l.Text)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		labels = append(labels, name)
	}
	if len(labels) == 0 {
		return gl.ID
	}
	return strings.Join(labels, Separator)
}
