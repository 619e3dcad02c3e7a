package graph

// Simple implements Graph for a concrete set of comparable nodes with
// explicit edge weights.
type Simple[Node comparable] struct {
	nodes    map[Node][]SimpleEdge[Node]
	allNodes []Node
}

// SimpleEdge is the edge type used by Simple.
type SimpleEdge[Node comparable] struct {
	From, To Node
	W        uint32
}

// Graph returns g as the Graph interface. This avoids the annoying
// explicit type conversion needed by the current Go generics
// implementation. See https://github.com/golang/go/issues/41176.
func (g *Simple[Node]) Graph() Graph[Node, SimpleEdge[Node]] {
	return g
}

// AddNode adds a node. Typically this is only used to add
// nodes with no incoming or outgoing edges.
func (g *Simple[Node]) AddNode(n Node) {
	g.addNode(n)
}

// AddEdge adds nodes from and to, and adds an edge from -> to with
// weight w. You don't need to call AddNode first; the nodes will be
// implicitly added if they don't already exist. Cycles are allowed.
func (g *Simple[Node]) AddEdge(from, to Node, w uint32) {
	g.addNode(from, SimpleEdge[Node]{From: from, To: to, W: w})
	g.addNode(to)
}

func (g *Simple[Node]) addNode(n Node, edges ...SimpleEdge[Node]) {
	if g.nodes == nil {
		g.nodes = make(map[Node][]SimpleEdge[Node])
	}
	n0 := len(g.nodes)
	g.nodes[n] = append(g.nodes[n], edges...)
	if len(g.nodes) > n0 {
		g.allNodes = append(g.allNodes, n)
	}
}

// AllNodes returns all the nodes in the graph.
// Note: the caller should not mutate the returned slice.
func (g *Simple[Node]) AllNodes() []Node {
	return g.allNodes
}

// Edges implements Graph.Edges.
// Note: the caller should not mutate the returned slice.
func (g *Simple[Node]) Edges(n Node) []SimpleEdge[Node] {
	return g.nodes[n]
}

// Nodes implements Graph.Nodes.
func (g *Simple[Node]) Nodes(e SimpleEdge[Node]) (from, to Node) {
	return e.From, e.To
}

// Weight implements Graph.Weight.
func (g *Simple[Node]) Weight(e SimpleEdge[Node]) uint32 {
	return e.W
}
