package bipartite

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sbgn2sif/pkg/extract"
)

// SinkSourceClass is the glyph class of the empty-set marker. Edges touching
// it carry no biology and are dropped.
const SinkSourceClass = "source and sink"

// BuildOptions configures [Build].
type BuildOptions struct {
	// Sanitize replaces ':', ',' and '\' with '_' in labels and annotations,
	// which keeps node ids usable as Graphviz identifiers.
	Sanitize bool

	// SinkClass overrides SinkSourceClass.
	SinkClass string

	// Logger receives debug traces. Defaults to a discarding logger.
	Logger *log.Logger
}

func (o BuildOptions) withDefaults() BuildOptions {
	if o.SinkClass == "" {
		o.SinkClass = SinkSourceClass
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return o
}

// Partition is the result of routing extracted edges into two graphs.
type Partition struct {
	// EntityPool holds edges between two entity pools.
	EntityPool *Graph
	// Mediating holds every edge with at least one process endpoint.
	Mediating *Graph
	// Dropped counts edges removed by the logic / sink-source filter.
	Dropped int
}

var sanitizer = strings.NewReplacer(":", "_", ",", "_", `\`, "_")

// Build partitions edges into the entity-pool graph and the mediating graph.
//
// Edges with a logic endpoint or a sink/source endpoint are dropped. Edges
// touching a process go to Mediating, all others to EntityPool. Node
// attributes are rewritten by every edge that touches the node; the last
// write wins.
func Build(edges []extract.Edge, opts BuildOptions) *Partition {
	opts = opts.withDefaults()
	p := &Partition{EntityPool: New(), Mediating: New()}

	clean := func(s string) string { return s }
	if opts.Sanitize {
		clean = sanitizer.Replace
	}

	for _, e := range edges {
		if e.TouchesLogic() || e.SourceClass == opts.SinkClass || e.TargetClass == opts.SinkClass {
			opts.Logger.Debug("dropped edge", "source", e.Source, "target", e.Target,
				"source_class", e.SourceClass, "target_class", e.TargetClass)
			p.Dropped++
			continue
		}

		g := p.EntityPool
		if e.TouchesProcess() {
			g = p.Mediating
		}

		src := newNode(clean(e.Source), e.SourceClass, clean(e.AnnotationSource), e.SourceRole)
		tgt := newNode(clean(e.Target), e.TargetClass, clean(e.AnnotationTarget), e.TargetRole)
		// IDs come from non-empty labels, so these writes cannot fail.
		_ = g.SetNode(src)
		_ = g.SetNode(tgt)
		_ = g.SetEdge(Edge{
			From: src.ID,
			To:   tgt.ID,
			Attrs: Attrs{
				InteractionType: e.Interaction,
				Annotation:      clean(e.AnnotationInteraction),
			},
		})
	}
	return p
}

func newNode(label, class, annotation string, role extract.Role) Node {
	n := Node{ID: label, Label: label, Class: class, Annotation: annotation, Side: SideMediating, Shape: ShapeSquare}
	if role == extract.RoleEntityPool {
		n.Side, n.Shape = SideEntityPool, ShapeCircle
	}
	return n
}
