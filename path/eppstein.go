// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"container/heap"

	"golang.org/x/exp/rand"

	"github.com/graphwalk/kpaths/graph"
	"github.com/graphwalk/kpaths/traverse"
)

// Eppstein computes the k shortest s–t walks of a directed, non-negatively
// weighted graph, repeated vertices permitted, in O(m + n log n + k) after
// one-time preprocessing. The distances and tree edges are fixed at
// construction; H_out and H_T are built on first use and memoised on the
// Eppstein value. Iterator returns a private, stateful cursor over it.
type Eppstein struct {
	g    graph.WeightedDirected
	s, t graph.Node

	dist   map[int64]float64
	piEdge map[int64]graph.WeightedEdge

	hOutCache map[int64]*hOut
	htCache   map[int64]*htNode

	// Rand, if non-nil, breaks ties between equal-cost queue entries
	// randomly instead of leaving the order to heap internals.
	Rand *rand.Rand
}

// NewEppstein builds the Eppstein preprocessing (reverse SSSP, H_out,
// memoised H_T) for source s and sink t over g. It returns
// *InvalidInputError if s or t is not a vertex of g, and
// *UnsupportedConfigurationError if any edge of g has a negative weight.
func NewEppstein(g graph.WeightedDirected, s, t graph.Node) (*Eppstein, error) {
	if g == nil || s == nil || t == nil {
		return nil, &InvalidInputError{Reason: "graph, source and sink must be non-nil"}
	}
	if g.Node(s.ID()) == nil {
		return nil, &InvalidInputError{Reason: "source vertex not present in graph"}
	}
	if g.Node(t.ID()) == nil {
		return nil, &InvalidInputError{Reason: "sink vertex not present in graph"}
	}
	if err := checkNonNegative(g); err != nil {
		return nil, err
	}

	e := &Eppstein{
		g:         g,
		s:         s,
		t:         t,
		dist:      make(map[int64]float64),
		piEdge:    make(map[int64]graph.WeightedEdge),
		hOutCache: make(map[int64]*hOut),
		htCache:   make(map[int64]*htNode),
	}

	cf := traverse.NewClosestFirst(graph.Reversed{G: g})
	cf.Walk(t, nil)
	for it := g.Nodes(); it.Next(); {
		n := it.Node()
		v, ok := cf.Visited(n)
		if !ok {
			continue
		}
		e.dist[n.ID()] = v.Dist
		if n.ID() == t.ID() || v.Via == nil {
			continue
		}
		parent := v.Via.From()
		e.piEdge[n.ID()] = g.WeightedEdge(n.ID(), parent.ID())
	}

	return e, nil
}

// checkNonNegative reports an UnsupportedConfigurationError if any edge of
// g has a negative weight. Graphs exposing a whole-edge-set iterator are
// scanned through it; others through their adjacency.
func checkNonNegative(g graph.WeightedDirected) error {
	if wg, ok := g.(interface{ WeightedEdges() graph.WeightedEdges }); ok {
		for it := wg.WeightedEdges(); it.Next(); {
			if it.WeightedEdge().Weight() < 0 {
				return &UnsupportedConfigurationError{Reason: "negative edge weight"}
			}
		}
		return nil
	}
	for it := g.Nodes(); it.Next(); {
		u := it.Node()
		for to := g.From(u.ID()); to.Next(); {
			v := to.Node()
			for _, e := range outgoingEdges(g, u.ID(), v.ID()) {
				if e.Weight() < 0 {
					return &UnsupportedConfigurationError{Reason: "negative edge weight"}
				}
			}
		}
	}
	return nil
}

// outgoingEdges returns every parallel edge from u to v. It uses the
// WeightedMultigraph interface when g implements it, falling back to the
// single representative edge otherwise.
func outgoingEdges(g graph.WeightedDirected, uid, vid int64) []graph.WeightedEdge {
	if mg, ok := g.(graph.WeightedMultigraph); ok {
		return mg.AllWeightedEdges(uid, vid)
	}
	e := g.WeightedEdge(uid, vid)
	if e == nil {
		return nil
	}
	return []graph.WeightedEdge{e}
}

// allOutgoingEdges returns every edge out of v, across every neighbour,
// including parallel edges.
func allOutgoingEdges(g graph.WeightedDirected, vid int64) []graph.WeightedEdge {
	var out []graph.WeightedEdge
	for to := g.From(vid); to.Next(); {
		n := to.Node()
		out = append(out, outgoingEdges(g, vid, n.ID())...)
	}
	return out
}

// hOutOf returns the memoised H_out(v), or nil if v has no sidetrack.
func (e *Eppstein) hOutOf(v graph.Node) *hOut {
	vid := v.ID()
	if ho, ok := e.hOutCache[vid]; ok {
		return ho
	}
	du, ok := e.dist[vid]
	if !ok {
		e.hOutCache[vid] = nil
		return nil
	}
	ho := buildHOut(vid, allOutgoingEdges(e.g, vid), e.piEdge[vid], e.dist, du)
	e.hOutCache[vid] = ho
	return ho
}

// hTreeOf returns the memoised H_T(v), or nil if v cannot reach t or
// carries no sidetrack anywhere along its tree path.
func (e *Eppstein) hTreeOf(v graph.Node) *htNode {
	vid := v.ID()
	if n, ok := e.htCache[vid]; ok {
		return n
	}
	var result *htNode
	if vid == e.t.ID() {
		if ho := e.hOutOf(v); ho != nil {
			result = newOutroot(ho)
		}
	} else if pe, ok := e.piEdge[vid]; ok {
		u := pe.To()
		parent := e.hTreeOf(u)
		if ho := e.hOutOf(v); ho != nil {
			result = htInsert(parent, newOutroot(ho))
		} else {
			result = parent
		}
	}
	e.htCache[vid] = result
	return result
}

// piChain returns the π-edge chain from v to the sink.
func (e *Eppstein) piChain(v graph.Node) []graph.WeightedEdge {
	var edges []graph.WeightedEdge
	cur := v
	for cur.ID() != e.t.ID() {
		edge, ok := e.piEdge[cur.ID()]
		if !ok {
			panic("path: vertex on an Eppstein walk has no path to the sink")
		}
		edges = append(edges, edge)
		cur = edge.To()
	}
	return edges
}

// eppsteinToken is one entry of the best-first enumeration queue: the
// zero-value node field marks the initial token (the plain shortest
// path); a non-nil node marks a derived token associated with that H_T
// node. base is the token whose materialised path is this token's prefix.
type eppsteinToken struct {
	cost    float64
	node    *htNode
	base    *eppsteinToken
	path    GraphPath
	hasPath bool
}

type eppsteinQueue struct {
	items []*eppsteinToken
	rnd   *rand.Rand
}

func (q *eppsteinQueue) Len() int { return len(q.items) }
func (q *eppsteinQueue) Less(i, j int) bool {
	if q.items[i].cost != q.items[j].cost {
		return q.items[i].cost < q.items[j].cost
	}
	if q.rnd != nil {
		return q.rnd.Intn(2) == 0
	}
	return false
}
func (q *eppsteinQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *eppsteinQueue) Push(x interface{}) {
	q.items = append(q.items, x.(*eppsteinToken))
}
func (q *eppsteinQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	t := old[n-1]
	q.items = old[:n-1]
	return t
}

// materialize builds the GraphPath for tok: the base path's prefix up to
// the last visit of the sidetrack's source, then the sidetrack, then the
// π-chain from its target to the sink.
func (e *Eppstein) materialize(tok *eppsteinToken) GraphPath {
	if tok.node == nil {
		edges := e.piChain(e.s)
		return newGraphPath(e.s, e.t, edges, tok.cost)
	}

	base := tok.base
	if !base.hasPath {
		panic("path: eppstein base token materialised out of order")
	}
	sideEdge := tok.node.sidetrack.edge
	srcID := sideEdge.From().ID()

	verts := base.path.Vertices()
	j := -1
	for idx := len(verts) - 1; idx >= 0; idx-- {
		if verts[idx].ID() == srcID {
			j = idx
			break
		}
	}
	if j == -1 {
		panic("path: sidetrack source not found on base path")
	}

	edges := make([]graph.WeightedEdge, 0, j+1+len(verts))
	edges = append(edges, base.path.Edges()[:j]...)
	edges = append(edges, sideEdge)
	edges = append(edges, e.piChain(sideEdge.To())...)

	return newGraphPath(e.s, e.t, edges, tok.cost)
}

// EppsteinIterator is a lazy, best-first cursor over an Eppstein's s–t
// walks, in non-decreasing weight order. It is not safe for concurrent
// use.
type EppsteinIterator struct {
	e       *Eppstein
	queue   eppsteinQueue
	started bool
	done    bool
}

// Iterator returns a new, independent cursor over e's enumeration.
func (e *Eppstein) Iterator() *EppsteinIterator {
	return &EppsteinIterator{e: e, queue: eppsteinQueue{rnd: e.Rand}}
}

// Next returns the next path in the enumeration, or ok=false once the
// source cannot reach the sink at all, or (for acyclic graphs) once every
// walk has been produced. When the graph carries a reachable cycle of
// non-negative weight on some s–t walk, Next never exhausts.
func (it *EppsteinIterator) Next() (GraphPath, bool) {
	if it.done {
		return GraphPath{}, false
	}
	if !it.started {
		it.started = true
		if _, ok := it.e.dist[it.e.s.ID()]; !ok {
			it.done = true
			return GraphPath{}, false
		}
		heap.Push(&it.queue, &eppsteinToken{cost: it.e.dist[it.e.s.ID()]})
	}
	if it.queue.Len() == 0 {
		it.done = true
		return GraphPath{}, false
	}

	cur := heap.Pop(&it.queue).(*eppsteinToken)
	cur.path = it.e.materialize(cur)
	cur.hasPath = true

	if cur.node == nil {
		if root := it.e.hTreeOf(it.e.s); root != nil {
			heap.Push(&it.queue, &eppsteinToken{cost: cur.cost + root.sidetrack.delta, node: root, base: cur})
		}
	} else {
		n := cur.node
		if n.left != nil {
			heap.Push(&it.queue, &eppsteinToken{cost: cur.base.cost + n.left.sidetrack.delta, node: n.left, base: cur.base})
		}
		if n.right != nil {
			heap.Push(&it.queue, &eppsteinToken{cost: cur.base.cost + n.right.sidetrack.delta, node: n.right, base: cur.base})
		}
		if n.rest != nil {
			heap.Push(&it.queue, &eppsteinToken{cost: cur.base.cost + n.rest.sidetrack.delta, node: n.rest, base: cur.base})
		}
		u := n.sidetrack.edge.To()
		if hu := it.e.hTreeOf(u); hu != nil {
			heap.Push(&it.queue, &eppsteinToken{cost: cur.cost + hu.sidetrack.delta, node: hu, base: cur})
		}
	}

	return cur.path, true
}

// Paths returns up to the k shortest s–t walks in non-decreasing weight
// order, stopping early if fewer exist.
func (e *Eppstein) Paths(k int) ([]GraphPath, error) {
	if k <= 0 {
		return nil, &InvalidInputError{Reason: "k must be positive"}
	}
	it := e.Iterator()
	out := make([]GraphPath, 0, k)
	for i := 0; i < k; i++ {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

// EppsteinKShortestPaths returns up to the k shortest s–t walks of g,
// repeated vertices permitted.
func EppsteinKShortestPaths(g graph.WeightedDirected, s, t graph.Node, k int) ([]GraphPath, error) {
	e, err := NewEppstein(g, s, t)
	if err != nil {
		return nil, err
	}
	return e.Paths(k)
}

// EppsteinKShortestPathsIterator returns a lazy, possibly infinite
// sequence of g's s–t walks in non-decreasing weight order.
func EppsteinKShortestPathsIterator(g graph.WeightedDirected, s, t graph.Node) (*EppsteinIterator, error) {
	e, err := NewEppstein(g, s, t)
	if err != nil {
		return nil, err
	}
	return e.Iterator(), nil
}
