package sbgn

// RDFNamespace is the namespace of the rdf:RDF blocks that carry glyph
// annotations.
const RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// Document is a decoded SBGN-ML file. A document holds one or more maps;
// SBGN-ML 0.2 files always hold exactly one.
type Document struct {
	Maps []Map `xml:"map"`
}

// Map is one self-contained pathway diagram. Only glyphs and arcs that are
// direct children of the map element are kept; glyphs nested inside
// complexes or compartments are not addressed by arcs in the subset this
// package supports.
type Map struct {
	ID       string  `xml:"id,attr"`
	Language string  `xml:"language,attr"`
	Glyphs   []Glyph `xml:"glyph"`
	Arcs     []Arc   `xml:"arc"`
}

// Glyph is a diagram node: an entity pool, a process, or a logical operator.
// An empty ID or Class means the attribute was absent or blank.
type Glyph struct {
	ID          string       `xml:"id,attr"`
	Class       string       `xml:"class,attr"`
	Labels      []Label      `xml:"label"`
	Ports       []Port       `xml:"port"`
	Annotations []Annotation `xml:"extension>annotation>RDF"`
}

// Label is a display name attached to a glyph.
type Label struct {
	Text string `xml:"text,attr"`
}

// Port is an alternative arc endpoint on a glyph.
type Port struct {
	ID string `xml:"id,attr"`
}

// Annotation is one rdf:RDF block from a glyph's extension element. The
// path to it is matched by local name: a namespace in the tag would have to
// hold for extension and annotation too.
// References holds every rdf:li found inside the block, at any depth,
// in document order.
type Annotation struct {
	References []Reference
}

// Reference is a single rdf:li entry. Resource is empty when the entry has
// no rdf:resource attribute.
type Reference struct {
	Resource string
}

// Arc is a directed, typed connection between two glyph or port ids.
type Arc struct {
	ID     string `xml:"id,attr"`
	Class  string `xml:"class,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

// GlyphCount returns the number of top-level glyphs across all maps.
func (d *Document) GlyphCount() int {
	n := 0
	for _, m := range d.Maps {
		n += len(m.Glyphs)
	}
	return n
}

// ArcCount returns the number of arcs across all maps.
func (d *Document) ArcCount() int {
	n := 0
	for _, m := range d.Maps {
		n += len(m.Arcs)
	}
	return n
}
