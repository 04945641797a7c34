package bipartite

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.SetNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrUnknownSourceNode is returned by [Graph.SetEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.SetEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Side marks which partition of the bipartite graph a node belongs to.
type Side int

const (
	// SideEntityPool holds biological entities; projection anchors live here.
	SideEntityPool Side = 0
	// SideMediating holds processes.
	SideMediating Side = 1
)

// Shape is the rendering hint carried by a node.
type Shape string

const (
	ShapeCircle Shape = "circle" // entity pools
	ShapeSquare Shape = "square" // mediating nodes
)

// Node is a graph vertex keyed by its (possibly sanitized) label.
type Node struct {
	ID         string
	Label      string
	Class      string
	Annotation string
	Side       Side
	Shape      Shape
}

// Attrs are the attributes carried by an edge.
type Attrs struct {
	InteractionType string
	Annotation      string
}

// Edge is a directed edge with its attributes.
type Edge struct {
	From string
	To   string
	Attrs
}

type edgeKey struct{ from, to string }

// Graph is a directed graph with at most one edge per ordered node pair.
//
// Writes follow overwrite semantics: setting an existing node or edge
// replaces its attributes but keeps its original position. Iteration is
// deterministic: nodes come out in first-insertion order, edges grouped by
// source node in node order and, within a source, in first-insertion order
// of their targets.
//
// The zero value is not usable - use New.
// Graph is not safe for concurrent mutation.
type Graph struct {
	nodes map[string]*Node
	order []string
	succ  map[string][]string
	edges map[edgeKey]Attrs
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		succ:  make(map[string][]string),
		edges: make(map[edgeKey]Attrs),
	}
}

// SetNode inserts n or overwrites the attributes of the node with the same ID.
func (g *Graph) SetNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if existing, ok := g.nodes[n.ID]; ok {
		*existing = n
		return nil
	}
	node := n
	g.nodes[n.ID] = &node
	g.order = append(g.order, n.ID)
	return nil
}

// SetEdge inserts e or overwrites the attributes of the edge with the same
// endpoints. Both endpoints must already exist.
func (g *Graph) SetEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	k := edgeKey{e.From, e.To}
	if _, ok := g.edges[k]; !ok {
		g.succ[e.From] = append(g.succ[e.From], e.To)
	}
	g.edges[k] = e.Attrs
	return nil
}

// Node returns the node with the given ID and true, or the zero Node and
// false if not found.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns a copy of all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.order))
	for i, id := range g.order {
		out[i] = *g.nodes[id]
	}
	return out
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edges[edgeKey{from, to}]
	return ok
}

// EdgeAttrs returns the attributes of from→to.
func (g *Graph) EdgeAttrs(from, to string) (Attrs, bool) {
	a, ok := g.edges[edgeKey{from, to}]
	return a, ok
}

// Successors returns the targets of the node's outgoing edges in insertion
// order. Returns nil if the node has none or doesn't exist.
func (g *Graph) Successors(id string) []string { return slices.Clone(g.succ[id]) }

// Edges returns a copy of all edges in iteration order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, from := range g.order {
		for _, to := range g.succ[from] {
			out = append(out, Edge{From: from, To: to, Attrs: g.edges[edgeKey{from, to}]})
		}
	}
	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }
