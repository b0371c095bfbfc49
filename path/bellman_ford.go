// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/graphwalk/kpaths/graph"

// BellmanFordFrom returns a shortest-path tree for a shortest path from u
// to all nodes in g, or ok=false if g has a negative cycle reachable from
// u. If g does not implement Weighted, UniformCost is used. Unlike
// DijkstraFrom, BellmanFordFrom tolerates negative edge weights, which is
// why Yen's SSSP oracle factory can be pointed at it for
// graphs outside Eppstein's non-negative-weight precondition.
//
// The time complexity of BellmanFordFrom is O(|V|.|E|).
func BellmanFordFrom(u graph.Node, g graph.WeightedDirected) (path Shortest, ok bool) {
	if g.Node(u.ID()) == nil {
		return Shortest{from: u}, true
	}
	var weight Weighting
	if wg, ok := g.(Weighted); ok {
		weight = wg.Weight
	} else {
		weight = UniformCost(g)
	}

	nodes := graph.NodesOf(g.Nodes())
	path = newShortestFrom(u, nodes)

	queue := []graph.Node{u}
	onQueue := make(map[int64]bool, len(nodes))
	onQueue[u.ID()] = true

	maxEdges := len(nodes) * (len(nodes) - 1)
	loops := 0
	negativeCycle := false

	for len(queue) != 0 {
		n := queue[0]
		queue = queue[1:]
		uid := n.ID()
		onQueue[uid] = false

		to := g.From(uid)
		for to.Next() {
			v := to.Node()
			vid := v.ID()
			k := path.indexOf[vid]
			w, ok := weight(uid, vid)
			if !ok {
				panic("bellman-ford: unexpected invalid weight")
			}
			j := path.indexOf[uid]
			joint := path.dist[j] + w
			if joint < path.dist[k] {
				path.set(k, joint, j)
				if !onQueue[vid] {
					onQueue[vid] = true
					queue = append(queue, v)
				}
			}
		}

		loops++
		if loops > maxEdges {
			negativeCycle = true
			break
		}
	}

	if negativeCycle {
		for j, n := range nodes {
			uid := n.ID()
			to := g.From(uid)
			for to.Next() {
				v := to.Node()
				vid := v.ID()
				k := path.indexOf[vid]
				w, ok := weight(uid, vid)
				if !ok {
					panic("bellman-ford: unexpected invalid weight")
				}
				if path.dist[j]+w < path.dist[k] {
					path.hasNegativeCycle = true
					return path, false
				}
			}
		}
	}

	return path, true
}
