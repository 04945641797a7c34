package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sbgn2sif/pkg/bipartite"
	"github.com/matzehuels/sbgn2sif/pkg/errors"
)

// DefaultFontSize is the node font size used when DOTOptions.FontSize is 0.
// Pathway maps are large; small labels keep the layout readable.
const DefaultFontSize = 4

// DOTOptions configures DOT generation.
type DOTOptions struct {
	// Name is the graph identifier. Defaults to "G".
	Name string

	// FontSize of node labels. Defaults to DefaultFontSize.
	FontSize int

	// Detailed appends class and annotation to node labels.
	Detailed bool
}

// ToDOT converts a bipartite graph to Graphviz DOT format.
//
// Entity pools are drawn as circles and mediating nodes as squares. Edges are
// labelled with their interaction type. Class and annotation travel as extra
// attributes so the DOT file keeps the full graph data.
func ToDOT(g *bipartite.Graph, opts DOTOptions) string {
	if opts.Name == "" {
		opts.Name = "G"
	}
	if opts.FontSize == 0 {
		opts.FontSize = DefaultFontSize
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", quote(opts.Name))
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [fontsize=%d];\n", opts.FontSize)
	fmt.Fprintf(&buf, "  edge [fontsize=%d];\n", opts.FontSize)
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %s [%s];\n", quote(n.ID), strings.Join(nodeAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := []string{
			"label=" + quote(e.InteractionType),
			"interaction_type=" + quote(e.InteractionType),
		}
		if e.Annotation != "" {
			attrs = append(attrs, "annotation="+quote(e.Annotation))
		}
		fmt.Fprintf(&buf, "  %s -> %s [%s];\n", quote(e.From), quote(e.To), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n bipartite.Node, detailed bool) []string {
	label := n.Label
	if label == "" {
		label = n.ID
	}
	lines := []string{dotEscaper.Replace(label)}
	if detailed {
		lines = append(lines, dotEscaper.Replace(n.Class))
		if n.Annotation != "" {
			lines = append(lines, dotEscaper.Replace(n.Annotation))
		}
	}

	attrs := []string{
		// \n is the DOT centered line break; it is added after escaping.
		`label="` + strings.Join(lines, `\n`) + `"`,
		fmt.Sprintf("shape=%s", n.Shape),
		"cls=" + quote(n.Class),
		fmt.Sprintf("bipartite=%d", n.Side),
	}
	if n.Annotation != "" {
		attrs = append(attrs, "annotation="+quote(n.Annotation))
	}
	return attrs
}

// dotEscaper escapes the two characters that are special inside a DOT
// double-quoted string. Everything else, including non-ASCII text, is kept
// as is.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote returns s as a DOT double-quoted string.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// RenderSVG renders a DOT graph to SVG using the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing scales with its
// container instead of Graphviz's point-based width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
