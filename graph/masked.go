// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// Masked is a read-only view over a WeightedDirected graph that hides
// vertices and edges matching caller-supplied predicates, without
// mutating or copying the underlying graph. Yen's deviation loop uses it
// to hide the root-path vertices (other than the current
// spur node) and the edges already used to leave the root path by
// previously accepted paths.
type Masked struct {
	G WeightedDirected

	// VertexHidden reports whether the node with the given ID should
	// be treated as absent from the view. A nil VertexHidden hides
	// nothing.
	VertexHidden func(id int64) bool

	// EdgeHidden reports whether the edge from u to v should be
	// treated as absent from the view. A nil EdgeHidden hides
	// nothing.
	EdgeHidden func(uid, vid int64) bool
}

var _ WeightedDirected = Masked{}

func (m Masked) hiddenVertex(id int64) bool {
	return m.VertexHidden != nil && m.VertexHidden(id)
}

func (m Masked) hiddenEdge(uid, vid int64) bool {
	return m.EdgeHidden != nil && m.EdgeHidden(uid, vid)
}

// Node returns the node with the given ID if it exists in the view, and
// nil otherwise.
func (m Masked) Node(id int64) Node {
	if m.hiddenVertex(id) {
		return nil
	}
	return m.G.Node(id)
}

// Nodes returns all the nodes visible in the view.
func (m Masked) Nodes() Nodes {
	all := NodesOf(m.G.Nodes())
	if m.VertexHidden == nil {
		return orderedNodes(all).iter()
	}
	out := all[:0:0]
	for _, n := range all {
		if !m.hiddenVertex(n.ID()) {
			out = append(out, n)
		}
	}
	return orderedNodes(out).iter()
}

// From returns all visible nodes directly reachable from n over a
// visible edge.
func (m Masked) From(id int64) Nodes {
	if m.hiddenVertex(id) {
		return Empty
	}
	all := NodesOf(m.G.From(id))
	out := all[:0:0]
	for _, n := range all {
		if m.hiddenVertex(n.ID()) || m.hiddenEdge(id, n.ID()) {
			continue
		}
		out = append(out, n)
	}
	return orderedNodes(out).iter()
}

// To returns all visible nodes that can directly reach n over a visible
// edge.
func (m Masked) To(id int64) Nodes {
	if m.hiddenVertex(id) {
		return Empty
	}
	all := NodesOf(m.G.To(id))
	out := all[:0:0]
	for _, n := range all {
		if m.hiddenVertex(n.ID()) || m.hiddenEdge(n.ID(), id) {
			continue
		}
		out = append(out, n)
	}
	return orderedNodes(out).iter()
}

// HasEdgeBetween returns whether a visible edge exists between x and y
// without considering direction.
func (m Masked) HasEdgeBetween(xid, yid int64) bool {
	if m.hiddenVertex(xid) || m.hiddenVertex(yid) {
		return false
	}
	if m.G.HasEdgeFromTo(xid, yid) && !m.hiddenEdge(xid, yid) {
		return true
	}
	return m.G.HasEdgeFromTo(yid, xid) && !m.hiddenEdge(yid, xid)
}

// HasEdgeFromTo returns whether a visible edge exists from u to v.
func (m Masked) HasEdgeFromTo(uid, vid int64) bool {
	if m.hiddenVertex(uid) || m.hiddenVertex(vid) || m.hiddenEdge(uid, vid) {
		return false
	}
	return m.G.HasEdgeFromTo(uid, vid)
}

// Edge returns the edge from u to v if it is visible, and nil otherwise.
func (m Masked) Edge(uid, vid int64) Edge {
	if m.hiddenVertex(uid) || m.hiddenVertex(vid) || m.hiddenEdge(uid, vid) {
		return nil
	}
	return m.G.Edge(uid, vid)
}

// WeightedEdge returns the weighted edge from u to v if it is visible,
// and nil otherwise.
func (m Masked) WeightedEdge(uid, vid int64) WeightedEdge {
	if m.hiddenVertex(uid) || m.hiddenVertex(vid) || m.hiddenEdge(uid, vid) {
		return nil
	}
	return m.G.WeightedEdge(uid, vid)
}

// Weight returns the weight for the edge between x and y if it is
// visible. If the edge is hidden or absent, ok is false.
func (m Masked) Weight(xid, yid int64) (w float64, ok bool) {
	if m.hiddenVertex(xid) || m.hiddenVertex(yid) || m.hiddenEdge(xid, yid) {
		return 0, false
	}
	return m.G.Weight(xid, yid)
}

// orderedNodes is a minimal slice-backed Nodes iterator local to this
// file to avoid an import cycle with graph/iterator. It follows the same
// Len/Next/Node/Reset contract as graph/iterator.OrderedNodes.
type orderedNodes []Node

type onIter struct {
	idx   int
	nodes []Node
}

func (o orderedNodes) iter() Nodes { return &onIter{idx: -1, nodes: o} }

func (o *onIter) Len() int {
	if o.idx >= len(o.nodes) {
		return 0
	}
	if o.idx <= 0 {
		return len(o.nodes)
	}
	return len(o.nodes[o.idx:])
}

func (o *onIter) Next() bool {
	if uint(o.idx)+1 < uint(len(o.nodes)) {
		o.idx++
		return true
	}
	o.idx = len(o.nodes)
	return false
}

func (o *onIter) Node() Node {
	if o.idx >= len(o.nodes) || o.idx < 0 {
		return nil
	}
	return o.nodes[o.idx]
}

func (o *onIter) Reset() { o.idx = -1 }

func (o *onIter) NodeSlice() []Node {
	if o.idx >= len(o.nodes) {
		return nil
	}
	idx := o.idx + 1
	o.idx = len(o.nodes)
	return o.nodes[idx:]
}
