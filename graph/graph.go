// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph defines the directed, weighted graph contract consumed by
// the path package, along with a couple of read-only views over it
// (edge-reversed, vertex/edge-masked) that the path algorithms need without
// mutating the underlying graph.
package graph

// Node is a graph node. It must be comparable by ID; two nodes are the
// same node if and only if their IDs are equal.
type Node interface {
	// ID returns the unique ID for the node.
	ID() int64
}

// Edge is a graph edge. In directed graphs, the direction of the edge is
// given from -> to, otherwise the edge is semantically unordered.
type Edge interface {
	// From returns the from node of the edge.
	From() Node
	// To returns the to node of the edge.
	To() Node
}

// WeightedEdge is a weighted graph edge.
type WeightedEdge interface {
	Edge
	// Weight returns the weight of the edge.
	Weight() float64
}

// Graph is a general graph.
type Graph interface {
	// Node returns the node with the given ID if it exists
	// in the graph, and nil otherwise.
	Node(id int64) Node
	// Nodes returns all the nodes in the graph.
	Nodes() Nodes
	// From returns all nodes that can be reached directly from n.
	From(id int64) Nodes
	// HasEdgeBetween returns whether an edge exists between
	// nodes x and y without considering direction.
	HasEdgeBetween(xid, yid int64) bool
	// Edge returns the edge from u to v, with IDs uid and vid,
	// if such an edge exists and nil otherwise. The node v
	// must be directly reachable from u as defined by the
	// From method.
	Edge(uid, vid int64) Edge
}

// Weighted is a weighted graph.
type Weighted interface {
	Graph
	// WeightedEdge returns the weighted edge from u to v
	// if such an edge exists and nil otherwise.
	WeightedEdge(uid, vid int64) WeightedEdge
	// Weight returns the weight for the edge between x and y
	// if Edge(x,y) returns a non-nil Edge. If x and y are
	// the same node or there is no joining edge between the
	// two nodes the weight value returned is implementation
	// dependent. Weight returns true if an edge exists
	// between x and y or if x and y have the same ID, false
	// otherwise.
	Weight(xid, yid int64) (w float64, ok bool)
}

// Directed is a directed graph.
type Directed interface {
	Graph
	// HasEdgeFromTo returns whether an edge exists in the
	// graph from u to v with IDs uid and vid.
	HasEdgeFromTo(uid, vid int64) bool
	// To returns all nodes that can reach directly to n.
	To(id int64) Nodes
}

// WeightedDirected is a weighted, directed graph.
type WeightedDirected interface {
	Directed
	Weighted
}

// Multigraph is a graph that permits parallel edges between the same
// pair of nodes.
type Multigraph interface {
	Graph
	// AllEdges returns every edge between u and v with IDs
	// uid and vid, including parallel edges. It returns
	// an empty slice if no edge exists.
	AllEdges(uid, vid int64) []Edge
}

// WeightedMultigraph is a weighted graph that permits parallel edges
// between the same pair of nodes.
type WeightedMultigraph interface {
	Multigraph
	Weighted
	// AllWeightedEdges returns every weighted edge between u
	// and v with IDs uid and vid, including parallel edges.
	// It returns an empty slice if no edge exists.
	AllWeightedEdges(uid, vid int64) []WeightedEdge
}

// Empty is an empty set of nodes, usable as a sentinel zero-length
// graph.Nodes.
var Empty Nodes = emptyNodes{}

// emptyNodes is a zero-length graph.Nodes.
type emptyNodes struct{}

func (emptyNodes) Next() bool  { return false }
func (emptyNodes) Len() int    { return 0 }
func (emptyNodes) Reset()      {}
func (emptyNodes) Node() Node  { return nil }

// NodesOf returns the entirety of n as a slice, draining n in the
// process. It is safe to call NodesOf with a nil n.
func NodesOf(n Nodes) []Node {
	if n == nil {
		return nil
	}
	if s, ok := n.(NodeSlicer); ok {
		return s.NodeSlice()
	}
	if n.Len() == 0 {
		return nil
	}
	out := make([]Node, 0, n.Len())
	for n.Next() {
		out = append(out, n.Node())
	}
	return out
}

// EdgesOf returns the entirety of e as a slice, draining e in the
// process. It is safe to call EdgesOf with a nil e.
func EdgesOf(e Edges) []Edge {
	if e == nil {
		return nil
	}
	if s, ok := e.(EdgeSlicer); ok {
		return s.EdgeSlice()
	}
	if e.Len() == 0 {
		return nil
	}
	out := make([]Edge, 0, e.Len())
	for e.Next() {
		out = append(out, e.Edge())
	}
	return out
}
