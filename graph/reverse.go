// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// Reversed is a view over a WeightedDirected graph that presents every
// edge with its source and target swapped, without copying the underlying
// graph. It is used by the Eppstein preprocessing to run a
// closest-first traversal rooted at the sink as if walking backwards
// through the original graph.
type Reversed struct {
	G WeightedDirected
}

var (
	_ WeightedDirected = Reversed{}
)

// Node returns the node with the given ID if it exists in the graph, and
// nil otherwise.
func (r Reversed) Node(id int64) Node { return r.G.Node(id) }

// Nodes returns all the nodes in the graph.
func (r Reversed) Nodes() Nodes { return r.G.Nodes() }

// From returns all nodes that can be reached directly from n in the
// reversed graph, i.e. all nodes that could reach n in the original graph.
func (r Reversed) From(id int64) Nodes { return r.G.To(id) }

// To returns all nodes that can reach directly to n in the reversed
// graph, i.e. all nodes reachable from n in the original graph.
func (r Reversed) To(id int64) Nodes { return r.G.From(id) }

// HasEdgeBetween returns whether an edge exists between nodes x and y
// without considering direction.
func (r Reversed) HasEdgeBetween(xid, yid int64) bool { return r.G.HasEdgeBetween(xid, yid) }

// HasEdgeFromTo returns whether an edge exists in the reversed graph from
// u to v.
func (r Reversed) HasEdgeFromTo(uid, vid int64) bool { return r.G.HasEdgeFromTo(vid, uid) }

// Edge returns the reversed edge from u to v if the original graph has an
// edge from v to u, and nil otherwise.
func (r Reversed) Edge(uid, vid int64) Edge {
	e := r.G.Edge(vid, uid)
	if e == nil {
		return nil
	}
	return reversedEdge{e}
}

// WeightedEdge returns the reversed weighted edge from u to v if the
// original graph has a weighted edge from v to u, and nil otherwise.
func (r Reversed) WeightedEdge(uid, vid int64) WeightedEdge {
	e := r.G.WeightedEdge(vid, uid)
	if e == nil {
		return nil
	}
	return reversedWeightedEdge{e}
}

// Weight returns the weight of the edge between x and y in the reversed
// graph, which is the weight of the edge between y and x in the original
// graph.
func (r Reversed) Weight(xid, yid int64) (w float64, ok bool) { return r.G.Weight(yid, xid) }

type reversedEdge struct {
	e Edge
}

func (r reversedEdge) From() Node { return r.e.To() }
func (r reversedEdge) To() Node   { return r.e.From() }

type reversedWeightedEdge struct {
	e WeightedEdge
}

func (r reversedWeightedEdge) From() Node      { return r.e.To() }
func (r reversedWeightedEdge) To() Node        { return r.e.From() }
func (r reversedWeightedEdge) Weight() float64 { return r.e.Weight() }
