// Package render draws bipartite and projected pathway graphs as node-link
// diagrams.
//
// [ToDOT] produces Graphviz DOT source; [RenderSVG] lays it out in-process
// with [github.com/goccy/go-graphviz], so no Graphviz installation is needed:
//
//	dot := render.ToDOT(partition.Mediating, render.DOTOptions{})
//	svg, err := render.RenderSVG(ctx, dot)
//
// Entity pools are circles, mediating nodes are squares, and every edge is
// labelled with its interaction type.
package render
