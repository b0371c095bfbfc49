// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"container/heap"

	"github.com/graphwalk/kpaths/graph"
)

// DijkstraFrom returns a shortest-path tree for the shortest paths from u
// to every node in g reachable from u. If g does not implement Weighted,
// UniformCost is used. DijkstraFrom panics if g has a u-reachable
// negative edge weight.
//
// The time complexity of DijkstraFrom is O(|E|.log|V|).
func DijkstraFrom(u graph.Node, g graph.WeightedDirected) Shortest {
	if g.Node(u.ID()) == nil {
		return Shortest{from: u}
	}
	path := newShortestFrom(u, graph.NodesOf(g.Nodes()))

	var weight Weighting
	if wg, ok := g.(Weighted); ok {
		weight = wg.Weight
	} else {
		weight = UniformCost(g)
	}

	Q := priorityQueue{{node: u, dist: 0}}
	for Q.Len() != 0 {
		mid := heap.Pop(&Q).(distanceNode)
		k := path.indexOf[mid.node.ID()]
		if mid.dist > path.dist[k] {
			continue
		}
		mnid := mid.node.ID()
		to := g.From(mnid)
		for to.Next() {
			v := to.Node()
			vid := v.ID()
			j, ok := path.indexOf[vid]
			if !ok {
				j = path.add(v)
			}
			w, ok := weight(mnid, vid)
			if !ok {
				panic("dijkstra: unexpected invalid weight")
			}
			if w < 0 {
				panic("dijkstra: negative edge weight")
			}
			joint := path.dist[k] + w
			if joint < path.dist[j] {
				heap.Push(&Q, distanceNode{node: v, dist: joint})
				path.set(j, joint, k)
			}
		}
	}

	return path
}

// DijkstraFromTo returns a shortest path from u to t in the graph g. The
// result is equivalent to DijkstraFrom(u, g).To(t.ID()), but can be more
// efficient since it terminates early once t is reached.
func DijkstraFromTo(u, t graph.Node, g graph.WeightedDirected) (path []graph.Node, weight float64) {
	if t == nil {
		panic("dijkstra: nil target node")
	}
	if g.Node(u.ID()) == nil {
		return nil, 0
	}
	sp := newShortestFrom(u, []graph.Node{u})

	var weightFn Weighting
	if wg, ok := g.(Weighted); ok {
		weightFn = wg.Weight
	} else {
		weightFn = UniformCost(g)
	}

	Q := priorityQueue{{node: u, dist: 0}}
	for Q.Len() != 0 {
		mid := heap.Pop(&Q).(distanceNode)
		k := sp.indexOf[mid.node.ID()]
		if mid.dist > sp.dist[k] {
			continue
		}
		mnid := mid.node.ID()
		if mnid == t.ID() {
			break
		}
		to := g.From(mnid)
		for to.Next() {
			v := to.Node()
			vid := v.ID()
			j, ok := sp.indexOf[vid]
			if !ok {
				j = sp.add(v)
			}
			w, ok := weightFn(mnid, vid)
			if !ok {
				panic("dijkstra: unexpected invalid weight")
			}
			if w < 0 {
				panic("dijkstra: negative edge weight")
			}
			joint := sp.dist[k] + w
			if joint < sp.dist[j] {
				heap.Push(&Q, distanceNode{node: v, dist: joint})
				sp.set(j, joint, k)
			}
		}
	}

	return sp.To(t.ID())
}

type distanceNode struct {
	node graph.Node
	dist float64
}

// priorityQueue implements a no-dec priority queue over distanceNode,
// matching the container/heap idiom this codebase uses throughout
// (traverse.tentativeQueue, the Eppstein and Yen queues).
type priorityQueue []distanceNode

func (q priorityQueue) Len() int            { return len(q) }
func (q priorityQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q priorityQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *priorityQueue) Push(n interface{}) { *q = append(*q, n.(distanceNode)) }
func (q *priorityQueue) Pop() interface{} {
	t := *q
	var n interface{}
	n, *q = t[len(t)-1], t[:len(t)-1]
	return n
}
