// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package traverse provides the closest-first traversal that Eppstein's
// preprocessing uses to build the reverse shortest-path tree
// rooted at the sink.
package traverse

import (
	"container/heap"

	"github.com/graphwalk/kpaths/graph"
)

// Visit is one step of a ClosestFirst traversal: the vertex reached, its
// distance from the root, and the spanning-tree edge (interpreted in the
// traversed graph) by which it was first reached. Via is nil for the
// root.
type Visit struct {
	Node graph.Node
	Dist float64
	Via  graph.Edge
}

// ClosestFirst implements a closest-first (Dijkstra-ordered) traversal of
// a weighted graph, visiting each reachable vertex exactly once in
// non-decreasing order of distance from the root. It mirrors the
// traversal-object idiom of a plain breadth-first walk, generalized from
// a FIFO frontier to a priority-ordered one since "closest first" needs
// relaxation, not level order.
type ClosestFirst struct {
	g graph.WeightedDirected

	queue   tentativeQueue
	visited map[int64]Visit
}

// NewClosestFirst returns a ClosestFirst traversal over g. g must not be
// mutated while the traversal is in progress.
func NewClosestFirst(g graph.WeightedDirected) *ClosestFirst {
	return &ClosestFirst{g: g}
}

// Walk performs the closest-first traversal of the graph from root,
// calling until at each visited vertex until until returns true or the
// traversal is exhausted. Walk returns the node at which until returned
// true, or nil if the traversal completed without until returning true.
func (c *ClosestFirst) Walk(root graph.Node, until func(Visit) bool) graph.Node {
	c.Reset()
	c.queue.push(tentative{node: root, dist: 0})
	for c.queue.Len() != 0 {
		t := heap.Pop(&c.queue).(tentative)
		if _, done := c.visited[t.node.ID()]; done {
			continue
		}
		v := Visit{Node: t.node, Dist: t.dist, Via: t.via}
		c.visited[t.node.ID()] = v
		if until != nil && until(v) {
			return t.node
		}
		to := c.g.From(t.node.ID())
		for to.Next() {
			n := to.Node()
			if _, done := c.visited[n.ID()]; done {
				continue
			}
			w, ok := c.g.Weight(t.node.ID(), n.ID())
			if !ok {
				continue
			}
			if w < 0 {
				panic("traverse: negative edge weight")
			}
			e := c.g.Edge(t.node.ID(), n.ID())
			heap.Push(&c.queue, tentative{node: n, dist: t.dist + w, via: e})
		}
	}
	return nil
}

// Visited reports whether n was visited during the traversal and, if so,
// returns the Visit record for it.
func (c *ClosestFirst) Visited(n graph.Node) (Visit, bool) {
	v, ok := c.visited[n.ID()]
	return v, ok
}

// Reset returns the traversal to its initial state.
func (c *ClosestFirst) Reset() {
	c.queue = nil
	c.visited = make(map[int64]Visit)
}

type tentative struct {
	node graph.Node
	dist float64
	via  graph.Edge
}

// tentativeQueue is a no-dec priority queue of tentative visits ordered
// by distance, matching the idiom of path.priorityQueue.
type tentativeQueue []tentative

func (q tentativeQueue) Len() int            { return len(q) }
func (q tentativeQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q tentativeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *tentativeQueue) Push(x interface{}) { *q = append(*q, x.(tentative)) }
func (q *tentativeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	t := old[n-1]
	*q = old[:n-1]
	return t
}

func (q *tentativeQueue) push(t tentative) {
	heap.Push(q, t)
}
