// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simple

import (
	"fmt"

	"github.com/graphwalk/kpaths/graph"
	"github.com/graphwalk/kpaths/graph/iterator"
	"github.com/graphwalk/kpaths/internal/ordered"
)

// WeightedDirectedGraph implements a generalized weighted directed graph
// that permits self-loops and parallel edges between the same ordered
// pair of nodes.
type WeightedDirectedGraph struct {
	nodes map[int64]graph.Node
	from  map[int64]map[int64][]graph.WeightedEdge
	to    map[int64]map[int64][]graph.WeightedEdge

	self, absent float64
}

var (
	_ graph.WeightedDirected   = (*WeightedDirectedGraph)(nil)
	_ graph.WeightedMultigraph = (*WeightedDirectedGraph)(nil)
)

// NewWeightedDirectedGraph returns a WeightedDirectedGraph with the
// specified self and absent edge weight values.
func NewWeightedDirectedGraph(self, absent float64) *WeightedDirectedGraph {
	return &WeightedDirectedGraph{
		nodes: make(map[int64]graph.Node),
		from:  make(map[int64]map[int64][]graph.WeightedEdge),
		to:    make(map[int64]map[int64][]graph.WeightedEdge),

		self:   self,
		absent: absent,
	}
}

// AddNode adds n to the graph. It panics if the added node ID matches an
// existing node ID.
func (g *WeightedDirectedGraph) AddNode(n graph.Node) {
	if _, exists := g.nodes[n.ID()]; exists {
		panic(fmt.Sprintf("simple: node ID collision: %d", n.ID()))
	}
	g.nodes[n.ID()] = n
	g.from[n.ID()] = make(map[int64][]graph.WeightedEdge)
	g.to[n.ID()] = make(map[int64][]graph.WeightedEdge)
}

// RemoveNode removes n from the graph, as well as any edges attached to
// it. If the node is not in the graph it is a no-op.
func (g *WeightedDirectedGraph) RemoveNode(n graph.Node) {
	if _, ok := g.nodes[n.ID()]; !ok {
		return
	}
	delete(g.nodes, n.ID())

	for from := range g.from[n.ID()] {
		delete(g.to[from], n.ID())
	}
	delete(g.from, n.ID())

	for to := range g.to[n.ID()] {
		delete(g.from[to], n.ID())
	}
	delete(g.to, n.ID())
}

// SetWeightedEdge adds a weighted edge from one node to another,
// permitting parallel edges between the same ordered pair. If the nodes
// do not exist, they are added.
func (g *WeightedDirectedGraph) SetWeightedEdge(e graph.WeightedEdge) {
	from := e.From()
	fid := from.ID()
	to := e.To()
	tid := to.ID()

	if !g.Has(fid) {
		g.AddNode(from)
	}
	if !g.Has(tid) {
		g.AddNode(to)
	}

	g.from[fid][tid] = append(g.from[fid][tid], e)
	g.to[tid][fid] = append(g.to[tid][fid], e)
}

// Node returns the node in the graph with the given ID.
func (g *WeightedDirectedGraph) Node(id int64) graph.Node {
	return g.nodes[id]
}

// Has returns whether the node exists within the graph.
func (g *WeightedDirectedGraph) Has(id int64) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all the nodes in the graph, in ascending ID order. The
// core's preprocessing relies on deterministic iteration of
// this graph for reproducible enumeration under sidetrack-cost ties.
func (g *WeightedDirectedGraph) Nodes() graph.Nodes {
	if len(g.nodes) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	ordered.ByID(nodes)
	return iterator.NewOrderedNodes(nodes)
}

// From returns all nodes in g that can be reached directly from n, in
// ascending ID order. A node with k parallel edges to a single neighbor
// appears once in the returned iterator; use AllEdges/AllWeightedEdges to
// see the parallel set.
func (g *WeightedDirectedGraph) From(id int64) graph.Nodes {
	edges, ok := g.from[id]
	if !ok || len(edges) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, len(edges))
	for tid := range edges {
		nodes = append(nodes, g.nodes[tid])
	}
	ordered.ByID(nodes)
	return iterator.NewOrderedNodes(nodes)
}

// To returns all nodes in g that can reach directly to n, in ascending ID
// order.
func (g *WeightedDirectedGraph) To(id int64) graph.Nodes {
	edges, ok := g.to[id]
	if !ok || len(edges) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, len(edges))
	for fid := range edges {
		nodes = append(nodes, g.nodes[fid])
	}
	ordered.ByID(nodes)
	return iterator.NewOrderedNodes(nodes)
}

// Edges returns all the edges in the graph, ordered by from-ID then
// to-ID, parallel edges in insertion order.
func (g *WeightedDirectedGraph) Edges() graph.Edges {
	we := g.weightedEdgeSlice()
	if len(we) == 0 {
		return iterator.NewOrderedEdges(nil)
	}
	edges := make([]graph.Edge, len(we))
	for i, e := range we {
		edges[i] = e
	}
	return iterator.NewOrderedEdges(edges)
}

// WeightedEdges returns all the weighted edges in the graph, ordered by
// from-ID then to-ID, parallel edges in insertion order.
func (g *WeightedDirectedGraph) WeightedEdges() graph.WeightedEdges {
	return iterator.NewOrderedWeightedEdges(g.weightedEdgeSlice())
}

func (g *WeightedDirectedGraph) weightedEdgeSlice() []graph.WeightedEdge {
	var edges []graph.WeightedEdge
	for it := g.Nodes(); it.Next(); {
		uid := it.Node().ID()
		for to := g.From(uid); to.Next(); {
			edges = append(edges, g.from[uid][to.Node().ID()]...)
		}
	}
	return edges
}

// HasEdgeBetween returns whether an edge exists between nodes x and y
// without considering direction.
func (g *WeightedDirectedGraph) HasEdgeBetween(xid, yid int64) bool {
	if _, ok := g.nodes[xid]; !ok {
		return false
	}
	if _, ok := g.nodes[yid]; !ok {
		return false
	}
	if len(g.from[xid][yid]) != 0 {
		return true
	}
	return len(g.from[yid][xid]) != 0
}

// HasEdgeFromTo returns whether an edge exists in the graph from u to v.
func (g *WeightedDirectedGraph) HasEdgeFromTo(uid, vid int64) bool {
	return len(g.from[uid][vid]) != 0
}

// Edge returns a representative edge from u to v if one or more such
// edges exist, and nil otherwise. When u and v are joined by several
// parallel edges, the edge returned is the lightest one, ties resolved in
// favour of the first added; callers that need the full parallel set must
// use AllEdges.
func (g *WeightedDirectedGraph) Edge(uid, vid int64) graph.Edge {
	e := g.WeightedEdge(uid, vid)
	if e == nil {
		return nil
	}
	return e
}

// WeightedEdge returns a representative weighted edge from u to v, using
// the same minimum-weight selection rule as Edge.
func (g *WeightedDirectedGraph) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	return lightest(g.from[uid][vid])
}

// lightest returns the minimum-weight edge of es, preferring the earliest
// added under ties, or nil if es is empty. Shortest-path consumers treat
// the representative edge between a pair as interchangeable with the pair's
// best parallel edge, so the two selection rules must agree.
func lightest(es []graph.WeightedEdge) graph.WeightedEdge {
	if len(es) == 0 {
		return nil
	}
	min := es[0]
	for _, e := range es[1:] {
		if e.Weight() < min.Weight() {
			min = e
		}
	}
	return min
}

// AllEdges returns every edge from u to v, including parallel edges, in
// the order they were added.
func (g *WeightedDirectedGraph) AllEdges(uid, vid int64) []graph.Edge {
	es := g.from[uid][vid]
	if len(es) == 0 {
		return nil
	}
	out := make([]graph.Edge, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

// AllWeightedEdges returns every weighted edge from u to v, including
// parallel edges, in the order they were added.
func (g *WeightedDirectedGraph) AllWeightedEdges(uid, vid int64) []graph.WeightedEdge {
	es := g.from[uid][vid]
	if len(es) == 0 {
		return nil
	}
	return append([]graph.WeightedEdge(nil), es...)
}

// Weight returns the weight for a representative edge between x and y if
// Edge(x, y) returns a non-nil Edge. If x and y are the same node the
// graph's self value is returned. If there is no joining edge between
// the two nodes the graph's absent value is returned. Weight returns
// true if an edge exists between x and y or if x and y have the same ID,
// false otherwise.
func (g *WeightedDirectedGraph) Weight(xid, yid int64) (w float64, ok bool) {
	if e := lightest(g.from[xid][yid]); e != nil {
		return e.Weight(), true
	}
	if xid == yid {
		return g.self, true
	}
	return g.absent, false
}
