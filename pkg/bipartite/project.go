package bipartite

// Interaction types that mark a mediator's inputs and outputs.
const (
	InteractionConsumption = "consumption"
	InteractionProduction  = "production"
)

// Collapse picks the attributes that survive when the chain
// u -in-> mediator -out-> v is replaced by u -> v.
//
// A consumption followed by a production is a substrate turned into a
// product, so the production edge represents it. Any other combination
// (stimulation, inhibition, ...) keeps the edge into the mediator.
func Collapse(in, out Attrs) Attrs {
	if in.InteractionType == InteractionConsumption && out.InteractionType == InteractionProduction {
		return out
	}
	return in
}

// Project collapses the two-hop chains of the mediating graph g.
//
// Every entity-pool node of g (side 0) is an anchor and is copied verbatim;
// mediating nodes are never copied. For each anchor u, with N1 the
// successors of u and N2 the successors of N1 other than u, every pair
// (n1, n2) in N1 × N2 for which both u→n1 and n1→n2 exist yields the edge
// u→n2 with attributes chosen by [Collapse]. When several pairs target the
// same n2 the last one written wins.
//
// The pair loop is a full cross product filtered by edge existence, not a
// walk along individual paths. Pairs whose n2 is not an anchor are skipped
// so the projection contains entity-pool nodes only.
//
// Anchors, N1 and N2 are visited in g's insertion order, so the result is
// deterministic.
func Project(g *Graph) *Graph {
	p := New()

	var anchors []string
	for _, n := range g.Nodes() {
		if n.Side == SideEntityPool {
			_ = p.SetNode(n)
			anchors = append(anchors, n.ID)
		}
	}

	for _, u := range anchors {
		n1s := g.succ[u]
		n2s := secondNeighbors(g, u, n1s)

		for _, n1 := range n1s {
			for _, n2 := range n2s {
				in, ok := g.EdgeAttrs(u, n1)
				if !ok {
					continue
				}
				out, ok := g.EdgeAttrs(n1, n2)
				if !ok {
					continue
				}
				if !p.HasNode(n2) {
					continue
				}
				_ = p.SetEdge(Edge{From: u, To: n2, Attrs: Collapse(in, out)})
			}
		}
	}
	return p
}

// secondNeighbors returns the distinct successors of n1s, excluding u,
// in first-seen order.
func secondNeighbors(g *Graph, u string, n1s []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, n1 := range n1s {
		for _, v := range g.succ[n1] {
			if v == u || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
