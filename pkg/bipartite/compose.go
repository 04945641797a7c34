package bipartite

// Compose returns the union of g and h as a new graph.
//
// Nodes of g come first, followed by nodes that only h has. When both graphs
// contain a node or an edge, h's attributes win. Neither input is modified.
func Compose(g, h *Graph) *Graph {
	c := New()
	for _, src := range []*Graph{g, h} {
		for _, n := range src.Nodes() {
			_ = c.SetNode(n)
		}
	}
	for _, src := range []*Graph{g, h} {
		for _, e := range src.Edges() {
			_ = c.SetEdge(e)
		}
	}
	return c
}

// Simplify projects the mediating graph of p and merges it with the
// entity-pool graph.
func Simplify(p *Partition) *Graph {
	return Compose(p.EntityPool, Project(p.Mediating))
}
