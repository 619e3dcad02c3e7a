// Package graph provides a directed graph with non-negative integer
// edge weights and a shortest-path search built on the monotone radix
// heap.
package graph

import "github.com/amallia/tlx/radixheap"

// Graph represents a directed graph with nodes of type Node
// and edges of type Edge.
type Graph[Node comparable, Edge any] interface {
	// Edges returns the edges leaving n.
	Edges(n Node) []Edge
	// Nodes returns the two nodes joined by e.
	Nodes(e Edge) (from, to Node)
	// Weight returns the cost of traversing e.
	Weight(e Edge) uint32
}

// visit holds an entry in the search fringe: a node and the edge it
// was reached by. We might normally declare this inside ShortestPath
// itself, but local type declarations inside generic functions
// aren't currently supported.
type visit[Node, Edge any] struct {
	n       Node
	edge    Edge
	hasEdge bool
}

// ShortestPath returns the edges of a minimum-weight path from -> to
// in the graph g using Dijkstra's algorithm, or nil if to is not
// reachable from from. The distances visited by the search are
// non-decreasing, so the fringe is kept in a monotone radix heap;
// since the heap has no decrease-key, a node is pushed once per
// incoming candidate edge and all but its first extraction are
// skipped.
func ShortestPath[Node comparable, Edge any](g Graph[Node, Edge], from, to Node) []Edge {
	h := radixheap.NewPair[uint64, visit[Node, Edge]]()
	h.Push(0, visit[Node, Edge]{n: from})
	reached := make(map[Node]Edge)
	done := make(map[Node]bool)
	found := false
	for !h.Empty() {
		dist, v := h.Pop()
		if done[v.n] {
			continue
		}
		done[v.n] = true
		if v.hasEdge {
			reached[v.n] = v.edge
		}
		if v.n == to {
			found = true
			break
		}
		for _, e := range g.Edges(v.n) {
			edgeFrom, edgeTo := g.Nodes(e)
			if edgeFrom != v.n || done[edgeTo] {
				continue
			}
			h.Push(dist+uint64(g.Weight(e)), visit[Node, Edge]{
				n:       edgeTo,
				edge:    e,
				hasEdge: true,
			})
		}
	}
	if !found {
		return nil
	}
	var edges []Edge
	for n := to; n != from; {
		e := reached[n]
		edges = append(edges, e)
		n, _ = g.Nodes(e)
	}
	reverse(edges)
	return edges
}

// PathWeight returns the total weight of a path expressed as a slice
// of edges, as returned by ShortestPath.
func PathWeight[Node comparable, Edge any](g Graph[Node, Edge], edges []Edge) uint64 {
	var w uint64
	for _, e := range edges {
		w += uint64(g.Weight(e))
	}
	return w
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
